package spotify

import (
	"context"
	"fmt"
	"net/http"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Authenticator fetches app access tokens with the client-credentials grant.
// That grant carries no user scope, which is all a catalog search needs.
type Authenticator struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
}

// AuthenticatorOption configures an Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithTokenURL points the authenticator at a different accounts endpoint.
func WithTokenURL(url string) AuthenticatorOption {
	return func(a *Authenticator) {
		a.tokenURL = url
	}
}

// WithAuthHTTPClient sets the HTTP client used for the token exchange.
func WithAuthHTTPClient(client *http.Client) AuthenticatorOption {
	return func(a *Authenticator) {
		a.httpClient = client
	}
}

// NewAuthenticator creates an authenticator for the given app credentials.
func NewAuthenticator(clientID, clientSecret string, opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     spotifyauth.TokenURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Token requests a fresh access token. Tokens are not cached or shared;
// every search chain performs its own exchange.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	if a.clientID == "" || a.clientSecret == "" {
		return "", ErrMissingCredentials
	}

	conf := &clientcredentials.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		TokenURL:     a.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	if a.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	}

	token, err := conf.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return token.AccessToken, nil
}
