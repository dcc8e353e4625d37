package music

// SearchParams holds the structured fields extracted from a free-text music
// query. Every field is optional: nil means the query never mentioned it, and
// an empty string is treated the same way so values straight off the wire
// don't need normalizing first.
type SearchParams struct {
	Genre  *string `json:"genre,omitempty"`
	Artist *string `json:"artist,omitempty"`
	Era    *string `json:"era,omitempty"` // decade wording, e.g. "90s", "2010s"
}

// Searchable reports whether the params carry enough signal to query a
// catalog. An era alone is too broad to search on.
func (p SearchParams) Searchable() bool {
	return isSet(p.Genre) || isSet(p.Artist)
}

// GenreValue returns the genre, or "" when absent.
func (p SearchParams) GenreValue() string { return value(p.Genre) }

// ArtistValue returns the artist, or "" when absent.
func (p SearchParams) ArtistValue() string { return value(p.Artist) }

// EraValue returns the era, or "" when absent.
func (p SearchParams) EraValue() string { return value(p.Era) }

func isSet(field *string) bool {
	return field != nil && *field != ""
}

func value(field *string) string {
	if field == nil {
		return ""
	}
	return *field
}
