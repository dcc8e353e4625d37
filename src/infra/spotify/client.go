package spotify

import (
	"context"
	"fmt"

	libspotify "github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"

	"tunelens/src/music"
)

// trackPageSize is how many tracks a single search returns. One page is the
// whole result set; there is no pagination in the search chain.
const trackPageSize = 20

// Client searches the Spotify catalog. Each search builds a throwaway
// API client around the bearer token it was handed, so nothing is shared
// between requests.
type Client struct {
	baseURL string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root. The URL must end
// with a trailing slash.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a catalog search client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchTracks looks up tracks matching the given params. When the params
// carry neither genre nor artist it returns an empty result without touching
// the network.
func (c *Client) SearchTracks(ctx context.Context, token string, params music.SearchParams) ([]music.Track, error) {
	query, ok := BuildTrackQuery(params)
	if !ok {
		return nil, nil
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	var opts []libspotify.ClientOption
	if c.baseURL != "" {
		opts = append(opts, libspotify.WithBaseURL(c.baseURL))
	}
	api := libspotify.New(httpClient, opts...)

	result, err := api.Search(ctx, query, libspotify.SearchTypeTrack, libspotify.Limit(trackPageSize))
	if err != nil {
		return nil, fmt.Errorf("track search failed: %w", err)
	}
	if result.Tracks == nil {
		return []music.Track{}, nil
	}
	return result.Tracks.Tracks, nil
}
