package searching

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"tunelens/src/infra/spotify"
	"tunelens/src/music"
)

type fakeInterpreter struct {
	params music.SearchParams
}

func (f *fakeInterpreter) Parse(ctx context.Context, query string) music.SearchParams {
	return f.params
}

type fakeTokenSource struct {
	token string
	err   error
	calls int
}

func (f *fakeTokenSource) Token(ctx context.Context) (string, error) {
	f.calls++
	return f.token, f.err
}

type fakeCatalog struct {
	tracks   []music.Track
	err      error
	calls    int
	gotToken string
}

func (f *fakeCatalog) SearchTracks(ctx context.Context, token string, params music.SearchParams) ([]music.Track, error) {
	f.calls++
	f.gotToken = token
	return f.tracks, f.err
}

func strPtr(s string) *string { return &s }

func testTrack(name string) music.Track {
	var track music.Track
	track.Name = name
	return track
}

func TestSearch_FoundTracks(t *testing.T) {
	interpreter := &fakeInterpreter{params: music.SearchParams{Genre: strPtr("hip-hop"), Artist: strPtr("Nas")}}
	tokens := &fakeTokenSource{token: "tok-123"}
	catalog := &fakeCatalog{tracks: []music.Track{testTrack("N.Y. State of Mind")}}
	service := NewService(interpreter, tokens, catalog, nil)

	result := service.Search(context.Background(), "90s hip-hop by Nas")

	if result.Error != "" {
		t.Errorf("expected no envelope error, got %q", result.Error)
	}
	if len(result.Tracks) != 1 || result.Tracks[0].Name != "N.Y. State of Mind" {
		t.Errorf("unexpected tracks: %+v", result.Tracks)
	}
	if result.ExtractedParams.GenreValue() != "hip-hop" {
		t.Errorf("expected extracted params in the envelope, got %+v", result.ExtractedParams)
	}
	if catalog.gotToken != "tok-123" {
		t.Errorf("expected the catalog to get the fresh token, got %q", catalog.gotToken)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	interpreter := &fakeInterpreter{params: music.SearchParams{Genre: strPtr("zydeco")}}
	tokens := &fakeTokenSource{token: "tok-123"}
	catalog := &fakeCatalog{tracks: []music.Track{}}
	service := NewService(interpreter, tokens, catalog, nil)

	result := service.Search(context.Background(), "some zydeco")

	if result.Error != msgNoTracks {
		t.Errorf("expected %q, got %q", msgNoTracks, result.Error)
	}
	if result.Tracks == nil || len(result.Tracks) != 0 {
		t.Errorf("expected an empty non-nil track list, got %+v", result.Tracks)
	}
	if result.ExtractedParams.GenreValue() != "zydeco" {
		t.Errorf("expected extracted params to survive, got %+v", result.ExtractedParams)
	}
}

func TestSearch_CatalogFailureReadsAsNoMatches(t *testing.T) {
	interpreter := &fakeInterpreter{params: music.SearchParams{Genre: strPtr("jazz")}}
	tokens := &fakeTokenSource{token: "tok-123"}
	catalog := &fakeCatalog{err: fmt.Errorf("upstream exploded")}
	service := NewService(interpreter, tokens, catalog, nil)

	result := service.Search(context.Background(), "some jazz")

	if result.Error != msgNoTracks {
		t.Errorf("expected %q, got %q", msgNoTracks, result.Error)
	}
	if len(result.Tracks) != 0 {
		t.Errorf("expected no tracks, got %+v", result.Tracks)
	}
}

func TestSearch_MissingCredentials(t *testing.T) {
	interpreter := &fakeInterpreter{params: music.SearchParams{Artist: strPtr("Nas")}}
	tokens := &fakeTokenSource{err: spotify.ErrMissingCredentials}
	catalog := &fakeCatalog{}
	service := NewService(interpreter, tokens, catalog, nil)

	result := service.Search(context.Background(), "something by Nas")

	if result.Error != msgNoCredentials {
		t.Errorf("expected %q, got %q", msgNoCredentials, result.Error)
	}
	if catalog.calls != 0 {
		t.Errorf("expected no catalog call without a token, got %d", catalog.calls)
	}
	if result.ExtractedParams.ArtistValue() != "Nas" {
		t.Errorf("expected extracted params to survive, got %+v", result.ExtractedParams)
	}
}

func TestSearch_AuthFailure(t *testing.T) {
	interpreter := &fakeInterpreter{params: music.SearchParams{Genre: strPtr("jazz")}}
	tokens := &fakeTokenSource{err: fmt.Errorf("%w: boom", spotify.ErrAuthFailed)}
	catalog := &fakeCatalog{}
	service := NewService(interpreter, tokens, catalog, nil)

	result := service.Search(context.Background(), "some jazz")

	if result.Error != msgAuthFailed {
		t.Errorf("expected %q, got %q", msgAuthFailed, result.Error)
	}
	if catalog.calls != 0 {
		t.Errorf("expected no catalog call without a token, got %d", catalog.calls)
	}
	if len(result.Tracks) != 0 {
		t.Errorf("expected no tracks, got %+v", result.Tracks)
	}
}

func TestSearch_TokenFetchedBeforeSearchableCheck(t *testing.T) {
	// Unsearchable params plus broken credentials report the credential
	// problem, not a no-results message.
	interpreter := &fakeInterpreter{}
	tokens := &fakeTokenSource{err: spotify.ErrMissingCredentials}
	service := NewService(interpreter, tokens, &fakeCatalog{}, nil)

	result := service.Search(context.Background(), "something chill")

	if result.Error != msgNoCredentials {
		t.Errorf("expected %q, got %q", msgNoCredentials, result.Error)
	}
	if tokens.calls != 1 {
		t.Errorf("expected exactly one token exchange, got %d", tokens.calls)
	}
}

func TestResult_EnvelopeJSON(t *testing.T) {
	result := Result{
		Error:           msgNoTracks,
		ExtractedParams: music.SearchParams{},
		Tracks:          []music.Track{},
	}

	body, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := `{"error":"Sorry, can't find any tracks","extracted_params":{},"tracks":[]}`
	if string(body) != want {
		t.Errorf("unexpected envelope JSON:\n got %s\nwant %s", body, want)
	}
}

func TestResult_SuccessOmitsError(t *testing.T) {
	result := Result{
		ExtractedParams: music.SearchParams{Genre: strPtr("jazz")},
		Tracks:          []music.Track{testTrack("So What")},
	}

	body, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if _, ok := decoded["error"]; ok {
		t.Error("expected the error field to be omitted on success")
	}
	if string(decoded["extracted_params"]) != `{"genre":"jazz"}` {
		t.Errorf("unexpected extracted_params: %s", decoded["extracted_params"])
	}
}
