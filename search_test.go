package floatmenu_test

import (
	"testing"

	"github.com/go-theft-auto/floatmenu"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		label  string
		search string
		want   bool
	}{
		{"Banshee", "ban", true},
		{"Banshee", "BAN", true},
		{"Banshee", "shee", true},
		{"Banshee", "Banshee", true},
		{"Banshee", "", true},
		{"Banshee", "xyz", false},
		{"Banshee", "banshees", false},
		{"", "", true},
		{"", "a", false},
	}

	for _, tt := range tests {
		if got := floatmenu.Match(tt.label, tt.search); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.label, tt.search, got, tt.want)
		}
	}
}

func TestHighlightWrapsFirstHit(t *testing.T) {
	color := floatmenu.RGBA(255, 160, 0, 255)

	got, ok := floatmenu.Highlight("Banshee", "an", color)
	if !ok {
		t.Fatal("expected a hit")
	}
	want := "B<c=#FFA000FF>an</c>shee"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightPreservesCasing(t *testing.T) {
	color := floatmenu.RGBA(255, 160, 0, 255)

	// The matched span keeps the label's casing, not the search's
	got, ok := floatmenu.Highlight("INFERNUS", "fern", color)
	if !ok {
		t.Fatal("expected a hit")
	}
	want := "IN<c=#FFA000FF>FERN</c>US"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightOnlyFirstOccurrence(t *testing.T) {
	color := floatmenu.RGBA(255, 160, 0, 255)

	got, ok := floatmenu.Highlight("banana", "an", color)
	if !ok {
		t.Fatal("expected a hit")
	}
	want := "b<c=#FFA000FF>an</c>ana"
	if got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightMissReturnsLabel(t *testing.T) {
	got, ok := floatmenu.Highlight("Banshee", "xyz", floatmenu.ColorYellow)
	if ok {
		t.Error("expected a miss")
	}
	if got != "Banshee" {
		t.Errorf("miss should return the unchanged label, got %q", got)
	}
}
