package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// channelMembership checks subscription via the Telegram getChatMember call
type channelMembership struct {
	api     *tgbotapi.BotAPI
	channel string
}

func (c *channelMembership) IsMember(ctx context.Context, userID int64) (bool, error) {
	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: c.channel,
			UserID:             userID,
		},
	})
	if err != nil {
		return false, fmt.Errorf("chat member lookup failed: %w", err)
	}

	switch member.Status {
	case "creator", "administrator", "member":
		return true, nil
	}
	return false, nil
}

// checkSubscription enforces the channel gate when one is configured. Lookup
// failures count as not subscribed: the gate fails closed.
func (b *Bot) checkSubscription(ctx context.Context, chatID, userID int64) bool {
	if b.membership == nil {
		return true
	}

	ok, err := b.membership.IsMember(ctx, userID)
	if err != nil {
		b.logger.Warn("Membership lookup failed, treating as not subscribed",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		ok = false
	}
	if !ok {
		b.sendText(chatID, fmt.Sprintf("Please join %s first, then send /start again.", b.channel))
	}
	return ok
}
