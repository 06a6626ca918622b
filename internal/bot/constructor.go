package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"moviebot/internal/storage"
)

// NewBot creates a new Telegram bot
func NewBot(token string, catalog Catalog, directory storage.Directory, adminIDs []int64, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	admins := make(map[int64]bool)
	for _, id := range adminIDs {
		admins[id] = true
	}

	logger.Info("Bot created", zap.String("bot_username", api.Self.UserName))

	return &Bot{
		api:       api,
		catalog:   catalog,
		directory: directory,
		admins:    admins,
		sessions:  NewSessionStore(),
		logger:    logger,
	}, nil
}

// EnableChat plugs in the intent classifier and chit-chat responder
func (b *Bot) EnableChat(classifier Classifier, responder Responder) {
	b.classifier = classifier
	b.responder = responder
}

// RequireSubscription gates the bot behind membership in the given channel
func (b *Bot) RequireSubscription(channel string) {
	b.channel = channel
	b.membership = &channelMembership{api: b.api, channel: channel}
}

// GetAPI returns the bot API for testing
func (b *Bot) GetAPI() *tgbotapi.BotAPI {
	return b.api
}
