package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleMessage processes a single message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleMessage", zap.Any("panic", r))
			b.sendText(message.Chat.ID, "An error occurred while processing your request. Please try again.")
		}
	}()

	if message.From == nil {
		return
	}
	ctx := context.Background()

	// Activity is recorded for every event, whatever branch it takes
	b.touchUser(ctx, message.From)

	if !b.checkSubscription(ctx, message.Chat.ID, message.From.ID) {
		return
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.handleStart(message)
		case "stats":
			b.handleStats(ctx, message)
		default:
			b.sendText(message.Chat.ID, "Unknown command. Use /start to open the menu.")
		}
		return
	}

	b.handleFreeText(ctx, message)
}

// handleCallbackQuery processes inline keyboard button clicks
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleCallbackQuery", zap.Any("panic", r))
		}
	}()

	// Answer the callback query to remove loading state
	b.answerCallback(query.ID)

	if query.Message == nil || query.From == nil {
		return
	}
	ctx := context.Background()
	chatID := query.Message.Chat.ID

	b.touchUser(ctx, query.From)

	if !b.checkSubscription(ctx, chatID, query.From.ID) {
		return
	}

	s := b.sessions.Get(query.From.ID)

	act := parseAction(query.Data)
	switch act.kind {
	case actionRootMenu:
		s.clearBrowse()
		s.AwaitingSearch = false
		b.showMenu(query, "🎬 What do you want to browse?", rootMenuKeyboard())
	case actionGenreMenu:
		s.clearBrowse()
		s.AwaitingSearch = false
		b.showMenu(query, "🎭 Pick a genre:", genreMenuKeyboard())
	case actionCompanyMenu:
		s.clearBrowse()
		s.AwaitingSearch = false
		b.showMenu(query, "🏢 Pick a studio:", companyMenuKeyboard())
	case actionSportsMenu:
		s.clearBrowse()
		s.AwaitingSearch = false
		b.showMenu(query, "🏆 How should I rank them?", sportsMenuKeyboard())
	case actionSearchPrompt:
		s.beginSearch()
		b.showMenu(query, "🔍 Send me a movie name and I'll find where to watch it.",
			tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", dataRootMenu),
				),
			))
	case actionBrowse:
		b.handleBrowse(ctx, query, s, act)
	case actionSelect:
		b.handleSelect(ctx, query, s, act)
	default:
		b.sendText(chatID, "Unrecognized selection. Use /start to open the menu.")
	}
}

// touchUser upserts the user's directory record; failures are logged and
// never block the main transition
func (b *Bot) touchUser(ctx context.Context, user *tgbotapi.User) {
	if err := b.directory.TouchUser(ctx, user.ID, user.UserName); err != nil {
		b.logger.Warn("Failed to touch user record",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
	}
}
