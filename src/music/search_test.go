package music

import "testing"

func strPtr(s string) *string { return &s }

func TestSearchParams_Searchable(t *testing.T) {
	cases := []struct {
		name   string
		params SearchParams
		want   bool
	}{
		{"empty", SearchParams{}, false},
		{"genre only", SearchParams{Genre: strPtr("jazz")}, true},
		{"artist only", SearchParams{Artist: strPtr("Nas")}, true},
		{"era only", SearchParams{Era: strPtr("90s")}, false},
		{"empty strings count as absent", SearchParams{Genre: strPtr(""), Artist: strPtr("")}, false},
		{"genre and era", SearchParams{Genre: strPtr("hip-hop"), Era: strPtr("90s")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.params.Searchable(); got != tc.want {
				t.Errorf("Searchable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSearchParams_Values(t *testing.T) {
	p := SearchParams{Genre: strPtr("hip-hop")}
	if p.GenreValue() != "hip-hop" {
		t.Errorf("expected genre hip-hop, got %q", p.GenreValue())
	}
	if p.ArtistValue() != "" {
		t.Errorf("expected empty artist, got %q", p.ArtistValue())
	}
	if p.EraValue() != "" {
		t.Errorf("expected empty era, got %q", p.EraValue())
	}
}
