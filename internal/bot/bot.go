package bot

import (
	"context"
	"fmt"

	"github.com/andromedanaut/marketcap-bot/internal/commons"
	"github.com/andromedanaut/marketcap-bot/internal/logger"
	"github.com/andromedanaut/marketcap-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const welcomeMessage = "Welcome to the ANDR Market Cap Bot! 🚀\n\n" +
	"Use /marketcap to get the current market cap of ANDR."

type Bot struct {
	api       *tgbotapi.BotAPI
	marketCap service.MarketCapServiceInterface
}

func New(token string, marketCap service.MarketCapServiceInterface) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:       api,
		marketCap: marketCap,
	}, nil
}

// Start long-polls for updates until ctx is done.
func (b *Bot) Start(ctx context.Context) {
	logger.Infof("authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	b.handleUpdates(ctx, updates)
}

func (b *Bot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		switch update.Message.Command() {
		case "start":
			b.reply(update, welcomeMessage)
		case "marketcap":
			b.reply(update, b.marketCapMessage(ctx))
		}
	}
}

func (b *Bot) marketCapMessage(ctx context.Context) string {
	mc, err := b.marketCap.MarketCap(ctx)
	if err != nil {
		logger.Errorf("failed to compute market cap: %v", err)
		return commons.FetchFailureMessage
	}
	return fmt.Sprintf("ANDR Market Cap: %s", mc.Formatted())
}

func (b *Bot) reply(update tgbotapi.Update, text string) {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, text)
	if _, err := b.api.Send(msg); err != nil {
		logger.Errorf("failed to send message: %v", err)
	}
}
