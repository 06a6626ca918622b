package models

import "time"

// Category is the browse dimension driving the current result set
type Category string

const (
	CategoryNone    Category = ""
	CategoryGenre   Category = "genre"
	CategoryCompany Category = "company"
	CategoryRating  Category = "rating"
)

// MovieSummary represents one entry of a catalog result page
type MovieSummary struct {
	ID         int64
	Title      string
	Year       string
	Rating     float64
	Overview   string
	PosterPath string
}

// MovieDetail represents the full record for a single movie
type MovieDetail struct {
	MovieSummary
	Runtime int
	Genres  []string
}

// UserRecord represents a user's activity row in the directory
type UserRecord struct {
	ID         int64
	Username   string
	FirstSeen  time.Time
	LastActive time.Time
}
