package fuzzy

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    string // "exact", "match", "none"
	}{
		{"exact match", "batman", "batman", "exact"},
		{"case insensitive exact", "Batman", "batman", "exact"},
		{"prefix", "bat", "batman", "match"},
		{"subsequence", "btmn", "batman", "match"},
		{"no match", "xyz", "batman", "none"},
		{"empty pattern", "", "batman", "none"},
		{"empty text", "bat", "", "none"},
		{"pattern longer than text", "batman returns", "batman", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Match(tt.pattern, tt.text)
			switch tt.want {
			case "exact":
				if score != 100 {
					t.Errorf("Match(%q, %q) = %d, want 100", tt.pattern, tt.text, score)
				}
			case "match":
				if score <= 0 || score >= 100 {
					t.Errorf("Match(%q, %q) = %d, want between 1 and 99", tt.pattern, tt.text, score)
				}
			case "none":
				if score != 0 {
					t.Errorf("Match(%q, %q) = %d, want 0", tt.pattern, tt.text, score)
				}
			}
		})
	}
}

func TestMatch_PrefixBeatsScattered(t *testing.T) {
	prefix := Match("bat", "batman")
	scattered := Match("bat", "bravado at")

	if prefix <= scattered {
		t.Errorf("expected prefix score %d > scattered score %d", prefix, scattered)
	}
}

func TestMatchMany(t *testing.T) {
	texts := []string{"batman", "batman returns", "dune", "the batman"}

	results := MatchMany("batman", texts, 1)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Text != "batman" {
		t.Errorf("expected exact match first, got %q", results[0].Text)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Error("expected results sorted by score descending")
		}
	}
}

func TestMatchMany_EmptyPatternReturnsAll(t *testing.T) {
	texts := []string{"batman", "dune"}

	results := MatchMany("", texts, 1)

	if len(results) != 2 {
		t.Fatalf("expected all texts for empty pattern, got %d", len(results))
	}
}
