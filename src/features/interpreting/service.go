package interpreting

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"tunelens/src/features/metrics"
	"tunelens/src/music"
)

// ChatCompleter produces a chat completion for a system and user message pair.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service turns free-text music queries into structured search params.
type Service struct {
	completer ChatCompleter
	metrics   *metrics.Recorder
}

// NewService creates a new interpreting service.
func NewService(completer ChatCompleter, recorder *metrics.Recorder) *Service {
	return &Service{completer: completer, metrics: recorder}
}

// Parse extracts search params from a query. It never fails: when the model
// is unreachable or replies with something that isn't the expected JSON, the
// params come back empty and the search goes on without filters.
func (s *Service) Parse(ctx context.Context, query string) music.SearchParams {
	content, err := s.completer.Complete(ctx, systemPrompt, userPrompt(query))
	if err != nil {
		slog.Warn("Query extraction failed, continuing without params", "error", err)
		return s.downgrade()
	}

	payload := stripFences(strings.TrimSpace(content))

	var params music.SearchParams
	if err := json.Unmarshal([]byte(payload), &params); err != nil {
		slog.Warn("Query extraction returned malformed JSON, continuing without params", "error", err, "content", payload)
		return s.downgrade()
	}

	slog.Debug("Extracted search params", "query", query, "genre", params.GenreValue(), "artist", params.ArtistValue(), "era", params.EraValue())
	return params
}

func (s *Service) downgrade() music.SearchParams {
	s.metrics.InterpreterDowngrade()
	return music.SearchParams{}
}

// stripFences unwraps a markdown code block, with or without a json language
// tag. Models wrap replies in fences often enough that this counts as part
// of the wire format.
func stripFences(content string) string {
	start := strings.Index(content, "```")
	if start < 0 {
		return content
	}
	content = content[start+3:]
	if end := strings.Index(content, "```"); end >= 0 {
		content = content[:end]
	}
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "json")
	return strings.TrimSpace(content)
}
