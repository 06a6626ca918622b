package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"moviebot/internal/models"
	"moviebot/internal/storage"
)

// Bot represents the Telegram bot wrapper
type Bot struct {
	api       *tgbotapi.BotAPI
	catalog   Catalog
	directory storage.Directory
	admins    map[int64]bool
	sessions  *SessionStore
	logger    *zap.Logger

	// Optional collaborators; nil disables the capability
	classifier Classifier
	responder  Responder
	membership MembershipChecker
	channel    string
}

// Catalog is the movie metadata lookup service
type Catalog interface {
	SearchMovies(ctx context.Context, query string, page int) ([]models.MovieSummary, error)
	DiscoverByGenre(ctx context.Context, genreID, page int) ([]models.MovieSummary, error)
	DiscoverByCompany(ctx context.Context, companyID, page int) ([]models.MovieSummary, error)
	DiscoverByRating(ctx context.Context, highestFirst bool, page int) ([]models.MovieSummary, error)
	GetMovie(ctx context.Context, id int64) (*models.MovieDetail, error)
}

// Classifier decides whether free text describes a movie or show
type Classifier interface {
	IsMovieDescription(ctx context.Context, text string) (bool, error)
}

// Responder produces a conversational reply to free text
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}

// MembershipChecker verifies that a user is subscribed to the gate channel
type MembershipChecker interface {
	IsMember(ctx context.Context, userID int64) (bool, error)
}
