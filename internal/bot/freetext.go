package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// descriptionMatches caps how many titles a classifier hit shows
const descriptionMatches = 3

// handleFreeText routes a non-command text message: a pending search prompt
// consumes it, otherwise the classifier (when enabled) decides between a
// description lookup and chit-chat
func (b *Bot) handleFreeText(ctx context.Context, message *tgbotapi.Message) {
	s := b.sessions.Get(message.From.ID)
	text := strings.TrimSpace(message.Text)

	if s.AwaitingSearch {
		s.AwaitingSearch = false
		b.sendSearchLink(message.Chat.ID, text)
		return
	}

	if b.classifier == nil || b.responder == nil {
		b.sendText(message.Chat.ID, "Use /start to open the menu.")
		return
	}

	isMovie, err := b.classifier.IsMovieDescription(ctx, text)
	if err != nil {
		b.logger.Warn("Classifier call failed", zap.Error(err))
		b.sendText(message.Chat.ID, "Sorry, something went wrong. 😔")
		return
	}

	if isMovie {
		b.handleDescription(ctx, message.Chat.ID, text)
		return
	}

	reply, err := b.responder.Reply(ctx, text)
	if err != nil {
		b.logger.Warn("Chit-chat call failed", zap.Error(err))
		b.sendText(message.Chat.ID, "Sorry, something went wrong. 😔")
		return
	}
	b.sendText(message.Chat.ID, reply)
}

// sendSearchLink completes the search hand-off with an external link
func (b *Bot) sendSearchLink(chatID int64, query string) {
	link := searchLink(query)
	msg := tgbotapi.NewMessage(chatID, "🔎 Here you go:\n"+link)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Open search results", link),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to menu", dataRootMenu),
		),
	)
	b.sendMessage(msg)
}

// handleDescription searches the catalog for a described movie and shows the
// best matches as a flat list
func (b *Bot) handleDescription(ctx context.Context, chatID int64, text string) {
	movies, err := b.catalog.SearchMovies(ctx, text, 1)
	if err != nil {
		b.logger.Warn("Description search failed", zap.Error(err))
		movies = nil
	}
	if len(movies) == 0 {
		b.sendText(chatID, "Couldn't find a movie matching that description 😔")
		return
	}
	if len(movies) > descriptionMatches {
		movies = movies[:descriptionMatches]
	}

	var reply strings.Builder
	reply.WriteString("Found some movies matching your description:\n\n")
	for _, m := range movies {
		reply.WriteString(fmt.Sprintf("🎬 *%s* (%s)\n", m.Title, m.Year))
	}
	reply.WriteString("\nSend another description if you want more.")

	msg := tgbotapi.NewMessage(chatID, reply.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.sendMessage(msg)
}
