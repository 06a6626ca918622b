package bot

import (
	"sync"

	"moviebot/internal/models"
)

// Session holds one user's transient navigation state. The bot is either
// browsing a category or awaiting free-text search input, never both.
type Session struct {
	UserID         int64
	Results        []models.MovieSummary
	Category       models.Category
	CategoryKey    string
	Page           int
	SelectedIndex  int
	AwaitingSearch bool
}

// setBrowse replaces the browse state wholesale with a freshly fetched page
func (s *Session) setBrowse(category models.Category, key string, page int, results []models.MovieSummary) {
	s.Category = category
	s.CategoryKey = key
	s.Page = page
	s.Results = results
	s.SelectedIndex = 0
	s.AwaitingSearch = false
}

// clearBrowse returns the session to the idle landing state
func (s *Session) clearBrowse() {
	s.Category = models.CategoryNone
	s.CategoryKey = ""
	s.Page = 1
	s.Results = nil
	s.SelectedIndex = 0
}

// beginSearch marks the next text message as a search query
func (s *Session) beginSearch() {
	s.clearBrowse()
	s.AwaitingSearch = true
}

// SessionStore keeps one session per user id. Sessions are created on first
// contact and never evicted; with the bot's user counts this is an accepted
// capacity risk rather than a leak worth an eviction policy.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Get returns the user's session, creating a fresh one on first contact
func (st *SessionStore) Get(userID int64) *Session {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok = st.sessions[userID]; ok {
		return s
	}
	s = &Session{UserID: userID, Page: 1}
	st.sessions[userID] = s
	return s
}

// Reset discards any existing state and returns a fresh session
func (st *SessionStore) Reset(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := &Session{UserID: userID, Page: 1}
	st.sessions[userID] = s
	return s
}

// Len returns the number of live sessions
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
