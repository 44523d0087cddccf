package commons_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	commons.RespondWithJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()

	commons.RespondWithError(rec, http.StatusServiceUnavailable, commons.FetchFailureMessage)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch data, please try again later."}`, rec.Body.String())
}
