package searching

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tunelens/src/features/metrics"
	"tunelens/src/infra/spotify"
	"tunelens/src/music"
)

// Interpreter extracts structured search params from a free-text query.
type Interpreter interface {
	Parse(ctx context.Context, query string) music.SearchParams
}

// TokenSource provides a fresh catalog access token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Catalog searches tracks on behalf of a bearer token.
type Catalog interface {
	SearchTracks(ctx context.Context, token string, params music.SearchParams) ([]music.Track, error)
}

// Result is the uniform answer for every search, failed or not. Tracks is
// always non-nil so clients can iterate without checking.
type Result struct {
	Error           string             `json:"error,omitempty"`
	ExtractedParams music.SearchParams `json:"extracted_params"`
	Tracks          []music.Track      `json:"tracks"`
}

// User-facing envelope messages.
const (
	msgNoTracks      = "Sorry, can't find any tracks"
	msgNoCredentials = "Spotify credentials not configured"
	msgAuthFailed    = "Spotify authentication failed"
)

// Service runs the search chain: extract params, authenticate, search the
// catalog. The three steps are strictly sequential and nothing is shared
// between requests.
type Service struct {
	interpreter Interpreter
	tokens      TokenSource
	catalog     Catalog
	metrics     *metrics.Recorder
}

// NewService creates a new searching service.
func NewService(interpreter Interpreter, tokens TokenSource, catalog Catalog, recorder *metrics.Recorder) *Service {
	return &Service{
		interpreter: interpreter,
		tokens:      tokens,
		catalog:     catalog,
		metrics:     recorder,
	}
}

// Search answers a free-text query with the result envelope. Failures ride
// in the envelope's Error field; the method itself never fails.
func (s *Service) Search(ctx context.Context, query string) Result {
	start := time.Now()
	slog.Info("Searching tracks", "query", query)

	params := s.interpreter.Parse(ctx, query)

	// The token exchange runs even when the params turn out unsearchable,
	// so credential problems always surface over a no-results message.
	token, err := s.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, spotify.ErrMissingCredentials) {
			slog.Error("Catalog credentials are not configured")
			return s.finish(start, metrics.OutcomeConfigError, Result{
				Error:           msgNoCredentials,
				ExtractedParams: params,
				Tracks:          []music.Track{},
			})
		}
		slog.Error("Catalog authentication failed", "error", err)
		return s.finish(start, metrics.OutcomeAuthFailed, Result{
			Error:           msgAuthFailed,
			ExtractedParams: params,
			Tracks:          []music.Track{},
		})
	}

	tracks, err := s.catalog.SearchTracks(ctx, token, params)
	if err != nil {
		// A failed search reads the same as an empty one.
		slog.Error("Catalog search failed", "error", err, "query", query)
		tracks = nil
	}
	if len(tracks) == 0 {
		slog.Info("No tracks found", "query", query)
		return s.finish(start, metrics.OutcomeNoResults, Result{
			Error:           msgNoTracks,
			ExtractedParams: params,
			Tracks:          []music.Track{},
		})
	}

	slog.Info("Found tracks", "query", query, "count", len(tracks))
	return s.finish(start, metrics.OutcomeOK, Result{
		ExtractedParams: params,
		Tracks:          tracks,
	})
}

func (s *Service) finish(start time.Time, outcome string, result Result) Result {
	s.metrics.RecordSearch(outcome, time.Since(start))
	return result
}
