package figfonts

import "testing"

func TestTypeFilterMatch(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		fontType   string
		want       bool
	}{
		{"prefix with matching case", "Type1", false, "Type1C", true},
		{"prefix with case mismatch", "Type1", false, "type1C", false},
		{"case mismatch ignored", "Type1", true, "type1C", true},
		{"anchored at start", "1", false, "Type1", false},
		{"truetype does not start with type", "type", true, "TrueType", false},
		{"type1 starts with type", "type", true, "Type1", true},
		{"exact", "TrueType", false, "TrueType", true},
		{"alternation is anchored as a whole", "Type1|CID", false, "CID Type 0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewTypeFilter(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("NewTypeFilter(%q, %v) failed: %v", tt.pattern, tt.ignoreCase, err)
			}
			if got := filter.Match(tt.fontType); got != tt.want {
				t.Errorf("Match(%q) with pattern %q = %v, want %v", tt.fontType, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTypeFilterInvalidPattern(t *testing.T) {
	if _, err := NewTypeFilter("(", false); err == nil {
		t.Error("expected an error for an unbalanced pattern")
	}
}
