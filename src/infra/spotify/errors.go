package spotify

import "errors"

var (
	// ErrMissingCredentials means the client id or secret was never configured.
	ErrMissingCredentials = errors.New("spotify credentials not configured")

	// ErrAuthFailed means the accounts service rejected the token request.
	ErrAuthFailed = errors.New("spotify authentication failed")
)
