package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviebot/internal/models"
)

func TestSessionStore_GetCreatesOnce(t *testing.T) {
	store := NewSessionStore()

	s1 := store.Get(123)
	require.NotNil(t, s1)
	assert.Equal(t, int64(123), s1.UserID)
	assert.Equal(t, 1, s1.Page)

	s2 := store.Get(123)
	assert.Same(t, s1, s2)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_ResetDiscardsState(t *testing.T) {
	store := NewSessionStore()

	s := store.Get(123)
	s.setBrowse(models.CategoryGenre, "28", 2, []models.MovieSummary{{ID: 1, Title: "Old"}})

	fresh := store.Reset(123)
	assert.NotSame(t, s, fresh)
	assert.Empty(t, fresh.Results)
	assert.Equal(t, models.CategoryNone, fresh.Category)
	assert.Same(t, fresh, store.Get(123))
}

func TestSession_BrowseAndSearchAreExclusive(t *testing.T) {
	s := &Session{UserID: 123, Page: 1}

	s.beginSearch()
	assert.True(t, s.AwaitingSearch)
	assert.Equal(t, models.CategoryNone, s.Category)

	s.setBrowse(models.CategoryCompany, "420", 1, []models.MovieSummary{{ID: 1}})
	assert.False(t, s.AwaitingSearch)
	assert.Equal(t, models.CategoryCompany, s.Category)
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestSession_ClearBrowseResetsPage(t *testing.T) {
	s := &Session{UserID: 123}
	s.setBrowse(models.CategoryRating, "low", 5, []models.MovieSummary{{ID: 1}})

	s.clearBrowse()
	assert.Equal(t, 1, s.Page)
	assert.Empty(t, s.Results)
	assert.Equal(t, "", s.CategoryKey)
}
