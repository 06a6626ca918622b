package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"moviebot/internal/tmdb"
)

// searchBaseURL is the external search page the hand-off link points at
const searchBaseURL = "https://www.themoviedb.org/search?query="

// sendMessage sends any chattable and logs failures instead of propagating
func (b *Bot) sendMessage(c tgbotapi.Chattable) {
	if b.api == nil {
		return // For testing
	}
	if _, err := b.api.Send(c); err != nil {
		b.logger.Warn("Failed to send message", zap.Error(err))
	}
}

// answerCallback acknowledges a callback query to clear the client's loading
// state, ignoring failures (the query may have expired)
func (b *Bot) answerCallback(queryID string) {
	if b.api == nil {
		return // For testing
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(queryID, "")); err != nil {
		b.logger.Debug("Failed to answer callback query", zap.Error(err))
	}
}

// sendText sends a plain text message to a chat
func (b *Bot) sendText(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

// deleteMessage removes a message, ignoring failures (it may already be gone)
func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if b.api == nil {
		return // For testing
	}
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.logger.Debug("Failed to delete message", zap.Error(err))
	}
}

// sendMovieDetail sends a fresh detail message: photo with caption when the
// movie has a poster, plain text otherwise
func (b *Bot) sendMovieDetail(chatID int64, caption, posterPath string, markup tgbotapi.InlineKeyboardMarkup) {
	if url := tmdb.PosterURL(posterPath); url != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(url))
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeMarkdown
		photo.ReplyMarkup = markup
		b.sendMessage(photo)
		return
	}

	msg := tgbotapi.NewMessage(chatID, caption)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = markup
	b.sendMessage(msg)
}

// detailEditMatchesForm reports whether the new detail can be edited into the
// message in place: photo messages only take media edits, text messages only
// text edits.
func detailEditMatchesForm(message *tgbotapi.Message, posterPath string) bool {
	return (tmdb.PosterURL(posterPath) != "") == (len(message.Photo) > 0)
}

// editMovieDetail rewrites an existing detail message in place. With a poster
// the image and caption are replaced in one media edit; without one only the
// text is edited. When the new detail's form differs from the message's, the
// message is replaced instead, since mixing the forms for one id is invalid.
func (b *Bot) editMovieDetail(message *tgbotapi.Message, caption, posterPath string, markup tgbotapi.InlineKeyboardMarkup) {
	chatID := message.Chat.ID

	if !detailEditMatchesForm(message, posterPath) {
		b.deleteMessage(chatID, message.MessageID)
		b.sendMovieDetail(chatID, caption, posterPath, markup)
		return
	}

	if url := tmdb.PosterURL(posterPath); url != "" {
		media := tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(url))
		media.Caption = caption
		media.ParseMode = tgbotapi.ModeMarkdown
		b.sendMessage(tgbotapi.EditMessageMediaConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:      chatID,
				MessageID:   message.MessageID,
				ReplyMarkup: &markup,
			},
			Media: media,
		})
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, message.MessageID, caption, markup)
	edit.ParseMode = tgbotapi.ModeMarkdown
	b.sendMessage(edit)
}

// formatDetail renders a movie's caption text
func formatDetail(title, year string, rating float64, overview string) string {
	if overview == "" {
		overview = "No overview available."
	}
	return fmt.Sprintf("*%s* (%s)\n⭐ Rating: %.1f\n\n%s", title, year, rating, overview)
}

// searchLink builds the external search URL for a hand-off query, with spaces
// encoded as plus signs
func searchLink(query string) string {
	return searchBaseURL + strings.ReplaceAll(query, " ", "+")
}
