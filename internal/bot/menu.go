package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviebot/internal/models"
)

// pickerColumns is the fixed width of inline-keyboard grids
const pickerColumns = 2

// selectionMarker prefixes exactly the currently selected picker entry
const selectionMarker = "▶️ "

type menuEntry struct {
	name string
	id   string
}

// TMDb genre ids
var genreEntries = []menuEntry{
	{"💥 Action", "28"},
	{"😂 Comedy", "35"},
	{"🎭 Drama", "18"},
	{"👻 Horror", "27"},
	{"🚀 Science Fiction", "878"},
	{"🎨 Animation", "16"},
	{"❤️ Romance", "10749"},
	{"🔪 Thriller", "53"},
}

// TMDb production company ids
var companyEntries = []menuEntry{
	{"🦸 Marvel Studios", "420"},
	{"💡 Pixar", "3"},
	{"🏰 Walt Disney Pictures", "2"},
	{"🎬 Warner Bros.", "174"},
	{"🌍 Universal", "33"},
	{"🅰️ A24", "41077"},
}

// layoutGrid arranges buttons into rows of the given width, preserving order.
// The final row may be shorter.
func layoutGrid(buttons []tgbotapi.InlineKeyboardButton, columns int) [][]tgbotapi.InlineKeyboardButton {
	if columns < 1 {
		columns = 1
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for len(buttons) > 0 {
		n := columns
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	return rows
}

func rootMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎭 Genres", dataGenreMenu),
			tgbotapi.NewInlineKeyboardButtonData("🏢 Companies", dataCompanyMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 Top picks", dataSportsMenu),
			tgbotapi.NewInlineKeyboardButtonData("🔍 Search", dataSearchPrompt),
		),
	)
}

func categoryMenuKeyboard(cat models.Category, entries []menuEntry) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(entries))
	for _, e := range entries {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(e.name, browseData(cat, e.id, 1)))
	}
	rows := layoutGrid(buttons, pickerColumns)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", dataRootMenu),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func genreMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return categoryMenuKeyboard(models.CategoryGenre, genreEntries)
}

func companyMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return categoryMenuKeyboard(models.CategoryCompany, companyEntries)
}

func sportsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Highest rated", browseData(models.CategoryRating, "high", 1)),
			tgbotapi.NewInlineKeyboardButtonData("🙈 Lowest rated", browseData(models.CategoryRating, "low", 1)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", dataRootMenu),
		),
	)
}

// pickerKeyboard lays out the current result page: titles in a fixed-width
// grid with the selected entry marked, then a trailing control row
func pickerKeyboard(s *Session) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(s.Results))
	for i, m := range s.Results {
		label := m.Title
		if i == s.SelectedIndex {
			label = selectionMarker + label
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(label, selectData(i)))
	}

	rows := layoutGrid(buttons, pickerColumns)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("More ➡️", browseData(s.Category, s.CategoryKey, s.Page+1)),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Change list", dataRootMenu),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
