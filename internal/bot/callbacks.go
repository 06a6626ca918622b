package bot

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"moviebot/internal/models"
)

// showMenu replaces the originating message with a text menu. A photo message
// can't be edited into plain text, so those are swapped for a fresh message.
func (b *Bot) showMenu(query *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) {
	chatID := query.Message.Chat.ID

	if len(query.Message.Photo) > 0 {
		b.deleteMessage(chatID, query.Message.MessageID)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = markup
		b.sendMessage(msg)
		return
	}

	b.sendMessage(tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, text, markup))
}

// fetchCategory runs the catalog query matching a category and key
func (b *Bot) fetchCategory(ctx context.Context, cat models.Category, key string, page int) ([]models.MovieSummary, error) {
	switch cat {
	case models.CategoryGenre:
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		return b.catalog.DiscoverByGenre(ctx, id, page)
	case models.CategoryCompany:
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		return b.catalog.DiscoverByCompany(ctx, id, page)
	default:
		return b.catalog.DiscoverByRating(ctx, key == "high", page)
	}
}

// handleBrowse loads a category page and renders its first entry plus the
// picker. The fetched page replaces the previous results wholesale.
func (b *Bot) handleBrowse(ctx context.Context, query *tgbotapi.CallbackQuery, s *Session, act action) {
	chatID := query.Message.Chat.ID

	results, err := b.fetchCategory(ctx, act.category, act.key, act.page)
	if err != nil {
		b.logger.Warn("Catalog browse failed",
			zap.Error(err),
			zap.String("category", string(act.category)),
			zap.String("key", act.key),
			zap.Int("page", act.page),
		)
		results = nil
	}
	if len(results) == 0 {
		s.clearBrowse()
		b.sendText(chatID, "😔 No results found.")
		return
	}

	s.setBrowse(act.category, act.key, act.page, results)

	first := results[0]
	caption := formatDetail(first.Title, first.Year, first.Rating, first.Overview)
	markup := pickerKeyboard(s)

	if act.page == 1 {
		// Entering from a menu: the menu text can't become a photo, so the
		// detail goes out as a fresh message
		b.deleteMessage(chatID, query.Message.MessageID)
		b.sendMovieDetail(chatID, caption, first.PosterPath, markup)
		return
	}
	b.editMovieDetail(query.Message, caption, first.PosterPath, markup)
}

// handleSelect shows full details of one entry of the current page
func (b *Bot) handleSelect(ctx context.Context, query *tgbotapi.CallbackQuery, s *Session, act action) {
	chatID := query.Message.Chat.ID

	if act.index < 0 || act.index >= len(s.Results) {
		// Stale button, e.g. after a session reset
		b.sendText(chatID, "That selection is no longer valid. Please try again.")
		return
	}

	detail, err := b.catalog.GetMovie(ctx, s.Results[act.index].ID)
	if err != nil {
		b.logger.Warn("Movie detail fetch failed",
			zap.Error(err),
			zap.Int64("movie_id", s.Results[act.index].ID),
		)
		b.sendText(chatID, "Couldn't load that movie right now. Please try again.")
		return
	}

	s.SelectedIndex = act.index

	caption := formatDetail(detail.Title, detail.Year, detail.Rating, detail.Overview)
	b.editMovieDetail(query.Message, caption, detail.PosterPath, pickerKeyboard(s))
}
