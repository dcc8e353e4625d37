package music

import (
	spotify "github.com/zmb3/spotify/v2"
)

// Track is the catalog's full track object. It is an alias rather than a
// wrapper so results pass through to clients exactly as the provider
// returned them, artwork URLs and all.
type Track = spotify.FullTrack
