package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moviebot/internal/models"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"

	// pageSize caps how many entries of a TMDb page are surfaced to the bot
	pageSize = 10

	// minVoteCount keeps the rating sort from surfacing movies with a
	// handful of votes
	minVoteCount = 200
)

type Client struct {
	apiKey  string
	baseURL string
	hc      *http.Client
}

// NewClient creates a TMDb API client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

type movieJSON struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	PosterPath    string  `json:"poster_path"`
	Runtime       int     `json:"runtime"`
	Genres        []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

type pageJSON struct {
	Page         int         `json:"page"`
	Results      []movieJSON `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("tmdb %s status %d: %s", path, resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) page(ctx context.Context, path string, params url.Values) ([]models.MovieSummary, error) {
	var res pageJSON
	if err := c.get(ctx, path, params, &res); err != nil {
		return nil, err
	}

	results := res.Results
	if len(results) > pageSize {
		results = results[:pageSize]
	}
	movies := make([]models.MovieSummary, 0, len(results))
	for _, m := range results {
		movies = append(movies, toSummary(m))
	}
	return movies, nil
}

// SearchMovies runs a free-text movie search
func (c *Client) SearchMovies(ctx context.Context, query string, page int) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	return c.page(ctx, "/search/movie", params)
}

// DiscoverByGenre returns one page of popular movies with the given genre
func (c *Client) DiscoverByGenre(ctx context.Context, genreID, page int) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))
	return c.page(ctx, "/discover/movie", params)
}

// DiscoverByCompany returns one page of popular movies from the given
// production company
func (c *Client) DiscoverByCompany(ctx context.Context, companyID, page int) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("with_companies", strconv.Itoa(companyID))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))
	return c.page(ctx, "/discover/movie", params)
}

// DiscoverByRating returns one page of movies sorted by vote average, highest
// or lowest first
func (c *Client) DiscoverByRating(ctx context.Context, highestFirst bool, page int) ([]models.MovieSummary, error) {
	sort := "vote_average.desc"
	if !highestFirst {
		sort = "vote_average.asc"
	}
	params := url.Values{}
	params.Set("sort_by", sort)
	params.Set("vote_count.gte", strconv.Itoa(minVoteCount))
	params.Set("page", strconv.Itoa(page))
	return c.page(ctx, "/discover/movie", params)
}

// GetMovie fetches the full record for a single movie
func (c *Client) GetMovie(ctx context.Context, id int64) (*models.MovieDetail, error) {
	var m movieJSON
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), url.Values{}, &m); err != nil {
		return nil, err
	}

	detail := &models.MovieDetail{
		MovieSummary: toSummary(m),
		Runtime:      m.Runtime,
	}
	for _, g := range m.Genres {
		detail.Genres = append(detail.Genres, g.Name)
	}
	return detail, nil
}

// PosterURL returns the full image URL for a poster path, or "" when the
// movie has no poster
func PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + path
}

func toSummary(m movieJSON) models.MovieSummary {
	title := m.Title
	if title == "" {
		title = m.OriginalTitle
	}
	year := "—"
	if len(m.ReleaseDate) >= 4 {
		year = m.ReleaseDate[:4]
	}
	return models.MovieSummary{
		ID:         m.ID,
		Title:      title,
		Year:       year,
		Rating:     m.VoteAverage,
		Overview:   m.Overview,
		PosterPath: m.PosterPath,
	}
}
