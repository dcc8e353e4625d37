package spotify

import (
	"strings"

	"tunelens/src/music"
)

// eraYearFilters maps decade wording to the provider's year range filter.
// Matching is substring-based after stripping apostrophes, so "'90s" and
// "the 1990s" both land on the nineties. The first rule that hits wins.
var eraYearFilters = []struct {
	terms  []string
	filter string
}{
	{[]string{"80s", "1980"}, "year:1980-1989"},
	{[]string{"90s", "1990"}, "year:1990-1999"},
	{[]string{"2000s"}, "year:2000-2009"},
	{[]string{"2010s"}, "year:2010-2019"},
	{[]string{"2020s"}, "year:2020-2029"},
}

// BuildTrackQuery renders the provider's field-filter query for the given
// params, in fixed genre, artist, year order. It returns false when the
// params carry neither genre nor artist; an era alone would match half the
// catalog, so it never searches.
func BuildTrackQuery(params music.SearchParams) (string, bool) {
	if !params.Searchable() {
		return "", false
	}

	var parts []string
	if genre := params.GenreValue(); genre != "" {
		parts = append(parts, "genre:"+genre)
	}
	if artist := params.ArtistValue(); artist != "" {
		parts = append(parts, "artist:"+artist)
	}
	if filter := yearFilterForEra(params.EraValue()); filter != "" {
		parts = append(parts, filter)
	}

	return strings.Join(parts, " "), true
}

// yearFilterForEra returns the year filter for a decade, or "" when the
// wording isn't recognized. Unrecognized eras drop the year filter and
// leave the rest of the query intact.
func yearFilterForEra(era string) string {
	if era == "" {
		return ""
	}
	era = strings.ReplaceAll(era, "'", "")
	for _, rule := range eraYearFilters {
		for _, term := range rule.terms {
			if strings.Contains(era, term) {
				return rule.filter
			}
		}
	}
	return ""
}
