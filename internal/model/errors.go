package model

import "errors"

// ErrUnavailable means a value could not be fetched and no unexpired
// cached copy exists. It is the only error providers surface.
var ErrUnavailable = errors.New("value unavailable")
