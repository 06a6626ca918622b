package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// activityWindow is the trailing period the /stats report covers
const activityWindow = 7 * 24 * time.Hour

// handleStart resets the user's session and shows the root menu
func (b *Bot) handleStart(message *tgbotapi.Message) {
	b.sessions.Reset(message.From.ID)

	text := `Welcome to the Movie Bot! 🎬

Browse movies by genre, studio or rating, or send me a description and I'll try to guess the movie.

Pick something below to get started.`

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = rootMenuKeyboard()
	b.sendMessage(msg)
}

// handleStats sends the recent-activity report. Only allow-listed admins may
// run it; everyone else is refused before any directory access.
func (b *Bot) handleStats(ctx context.Context, message *tgbotapi.Message) {
	if !b.admins[message.From.ID] {
		b.logger.Warn("Unauthorized stats request",
			zap.Int64("user_id", message.From.ID),
			zap.String("username", message.From.UserName),
		)
		b.sendText(message.Chat.ID, "Sorry, you are not allowed to view the activity report.")
		return
	}

	users, err := b.directory.ActiveSince(ctx, time.Now().Add(-activityWindow))
	if err != nil {
		b.logger.Error("Failed to query active users", zap.Error(err))
		b.sendText(message.Chat.ID, "Couldn't load the activity report. Please try again.")
		return
	}

	if len(users) == 0 {
		b.sendText(message.Chat.ID, "No active users in the last 7 days.")
		return
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("📊 Active users, last 7 days: %d\n\n", len(users)))
	for _, user := range users {
		name := user.Username
		if name == "" {
			name = "unknown"
		}
		text.WriteString(fmt.Sprintf("• %s — last active %s\n", name, user.LastActive.Format(time.RFC3339)))
	}

	b.sendText(message.Chat.ID, text.String())
}
