package bot

import (
	"strconv"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebot/internal/models"
)

func dataButtons(n int) []tgbotapi.InlineKeyboardButton {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, n)
	for i := 0; i < n; i++ {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(i), strconv.Itoa(i)))
	}
	return buttons
}

func TestLayoutGrid(t *testing.T) {
	testCases := []struct {
		name     string
		items    int
		columns  int
		rowSizes []int
	}{
		{"empty", 0, 2, nil},
		{"single item", 1, 2, []int{1}},
		{"exact row", 2, 2, []int{2}},
		{"odd count", 5, 2, []int{2, 2, 1}},
		{"full page", 10, 2, []int{2, 2, 2, 2, 2}},
		{"wide grid", 5, 3, []int{3, 2}},
		{"degenerate columns", 3, 0, []int{1, 1, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows := layoutGrid(dataButtons(tc.items), tc.columns)
			require.Len(t, rows, len(tc.rowSizes))
			for i, row := range rows {
				assert.Len(t, row, tc.rowSizes[i])
			}
		})
	}
}

func TestLayoutGrid_PreservesOrder(t *testing.T) {
	rows := layoutGrid(dataButtons(5), 2)

	var got []string
	for _, row := range rows {
		for _, button := range row {
			got = append(got, button.Text)
		}
	}
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, got)
}

func TestPickerKeyboard_MarksExactlySelectedEntry(t *testing.T) {
	s := &Session{
		Category:      models.CategoryGenre,
		CategoryKey:   "28",
		Page:          1,
		SelectedIndex: 2,
		Results: []models.MovieSummary{
			{ID: 1, Title: "First"},
			{ID: 2, Title: "Second"},
			{ID: 3, Title: "Third"},
			{ID: 4, Title: "Fourth"},
		},
	}

	keyboard := pickerKeyboard(s)

	var marked []string
	var unmarked int
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData == nil || !strings.HasPrefix(*button.CallbackData, selectPrefix) {
				continue
			}
			if strings.HasPrefix(button.Text, selectionMarker) {
				marked = append(marked, button.Text)
			} else {
				unmarked++
			}
		}
	}

	require.Len(t, marked, 1)
	assert.Equal(t, selectionMarker+"Third", marked[0])
	assert.Equal(t, 3, unmarked)
}

func TestPickerKeyboard_TrailingControlRow(t *testing.T) {
	s := &Session{
		Category:    models.CategoryRating,
		CategoryKey: "high",
		Page:        3,
		Results:     []models.MovieSummary{{ID: 1, Title: "Only"}},
	}

	keyboard := pickerKeyboard(s)
	require.NotEmpty(t, keyboard.InlineKeyboard)

	last := keyboard.InlineKeyboard[len(keyboard.InlineKeyboard)-1]
	require.Len(t, last, 2)
	require.NotNil(t, last[0].CallbackData)
	require.NotNil(t, last[1].CallbackData)
	assert.Equal(t, "rating_high_4", *last[0].CallbackData)
	assert.Equal(t, dataRootMenu, *last[1].CallbackData)
}

func TestMenuKeyboards_UseKnownTags(t *testing.T) {
	for _, keyboard := range []tgbotapi.InlineKeyboardMarkup{
		rootMenuKeyboard(),
		genreMenuKeyboard(),
		companyMenuKeyboard(),
		sportsMenuKeyboard(),
	} {
		for _, row := range keyboard.InlineKeyboard {
			for _, button := range row {
				require.NotNil(t, button.CallbackData)
				act := parseAction(*button.CallbackData)
				assert.NotEqual(t, actionUnknown, act.kind, "unroutable tag %q", *button.CallbackData)
			}
		}
	}
}
