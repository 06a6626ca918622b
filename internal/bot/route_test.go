package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviebot/internal/models"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected action
	}{
		{
			name:     "root menu",
			data:     "start_menu",
			expected: action{kind: actionRootMenu},
		},
		{
			name:     "genre menu",
			data:     "show_genres",
			expected: action{kind: actionGenreMenu},
		},
		{
			name:     "company menu",
			data:     "show_companies",
			expected: action{kind: actionCompanyMenu},
		},
		{
			name:     "sports menu",
			data:     "show_sports",
			expected: action{kind: actionSportsMenu},
		},
		{
			name:     "search prompt",
			data:     "search_movie",
			expected: action{kind: actionSearchPrompt},
		},
		{
			name:     "genre browse",
			data:     "genre_28_3",
			expected: action{kind: actionBrowse, category: models.CategoryGenre, key: "28", page: 3},
		},
		{
			name:     "company browse",
			data:     "company_420_1",
			expected: action{kind: actionBrowse, category: models.CategoryCompany, key: "420", page: 1},
		},
		{
			name:     "rating high browse",
			data:     "rating_high_2",
			expected: action{kind: actionBrowse, category: models.CategoryRating, key: "high", page: 2},
		},
		{
			name:     "rating low browse",
			data:     "rating_low_1",
			expected: action{kind: actionBrowse, category: models.CategoryRating, key: "low", page: 1},
		},
		{
			name:     "select",
			data:     "select_movie_4",
			expected: action{kind: actionSelect, index: 4},
		},
		{
			name:     "unknown tag",
			data:     "bogus",
			expected: action{kind: actionUnknown},
		},
		{
			name:     "non-numeric select index",
			data:     "select_movie_x",
			expected: action{kind: actionUnknown},
		},
		{
			name:     "non-numeric genre id",
			data:     "genre_horror_1",
			expected: action{kind: actionUnknown},
		},
		{
			name:     "invalid rating direction",
			data:     "rating_sideways_1",
			expected: action{kind: actionUnknown},
		},
		{
			name:     "zero page",
			data:     "genre_28_0",
			expected: action{kind: actionUnknown},
		},
		{
			name:     "missing page",
			data:     "genre_28",
			expected: action{kind: actionUnknown},
		},
		{
			name:     "empty data",
			data:     "",
			expected: action{kind: actionUnknown},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseAction(tc.data))
		})
	}
}

func TestBrowseData_RoundTrips(t *testing.T) {
	data := browseData(models.CategoryCompany, "420", 7)
	assert.Equal(t, "company_420_7", data)

	act := parseAction(data)
	assert.Equal(t, actionBrowse, act.kind)
	assert.Equal(t, models.CategoryCompany, act.category)
	assert.Equal(t, "420", act.key)
	assert.Equal(t, 7, act.page)
}

func TestSelectData_RoundTrips(t *testing.T) {
	act := parseAction(selectData(9))
	assert.Equal(t, actionSelect, act.kind)
	assert.Equal(t, 9, act.index)
}
