package assets

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T) *Library {
	t.Helper()
	lib, err := LoadLibrary(filepath.Join("testdata", "library.yaml"))
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	return lib
}

func TestLoadLibrary(t *testing.T) {
	lib := loadFixture(t)

	if len(lib.Icons) != 3 || len(lib.Music) != 2 || len(lib.SFX) != 1 {
		t.Fatalf("Unexpected counts: icons=%d music=%d sfx=%d", len(lib.Icons), len(lib.Music), len(lib.SFX))
	}
	if lib.Music[0].BPM != 84 || lib.Music[0].Weight != 2 {
		t.Errorf("Music fields not decoded: %+v", lib.Music[0])
	}

	tr, ok := lib.Transition("xfade-250")
	if !ok || tr.Ms != 250 || tr.Type != "crossfade" {
		t.Errorf("Transition lookup failed: %+v %v", tr, ok)
	}
	if _, ok := lib.Transition("missing"); ok {
		t.Error("Expected missing transition")
	}
}

func TestLoadLibraryJSON(t *testing.T) {
	lib, err := LoadLibrary(filepath.Join("testdata", "library.json"))
	if err != nil {
		t.Fatalf("LoadLibrary(json) failed: %v", err)
	}
	if len(lib.Music) != 1 || lib.Music[0].Weight != 2 {
		t.Errorf("Unexpected music: %+v", lib.Music)
	}
}

func TestPickOnlyReturnsMatchingItems(t *testing.T) {
	sel := NewSelector(loadFixture(t), rand.NewSource(7))

	for i := 0; i < 200; i++ {
		it, err := sel.PickIcon([]string{"speed"}, Bold)
		if err != nil {
			t.Fatal(err)
		}
		// bolt matches by tag, star passes because it declares nothing
		if it.ID != "bolt" && it.ID != "star" {
			t.Fatalf("Pick returned non-matching icon %s", it.ID)
		}
	}

	for i := 0; i < 200; i++ {
		it, err := sel.PickBackground("16x9", Calm)
		if err != nil {
			t.Fatal(err)
		}
		if it.ID != "soft-gradient-wide" {
			t.Fatalf("Expected wide background, got %s", it.ID)
		}
	}
}

func TestPickFallsBackToWholeCategory(t *testing.T) {
	lib := &Library{
		Music: []Item{
			{ID: "a", Src: "a.mp3", Tone: []Tone{Bold}},
			{ID: "b", Src: "b.mp3", Tone: []Tone{Bold}},
		},
	}
	sel := NewSelector(lib, rand.NewSource(1))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		it, err := sel.PickMusic(Calm)
		if err != nil {
			t.Fatalf("Expected fallback, got error: %v", err)
		}
		seen[it.ID] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("Fallback should draw from the full category, saw %v", seen)
	}
}

func TestPickEmptyCategory(t *testing.T) {
	sel := NewSelector(&Library{}, rand.NewSource(1))
	if _, err := sel.PickMusic(Calm); !errors.Is(err, ErrEmptyCategory) {
		t.Errorf("Expected ErrEmptyCategory, got %v", err)
	}
	if _, err := sel.Pick(Category("fonts"), Filter{}); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestPickWeighting(t *testing.T) {
	lib := &Library{
		Icons: []Item{
			{ID: "light", Weight: 0},
			{ID: "heavy", Weight: 9},
		},
	}
	sel := NewSelector(lib, rand.NewSource(42))

	counts := map[string]int{}
	const draws = 5000
	for i := 0; i < draws; i++ {
		it, _ := sel.Pick(Icons, Filter{})
		counts[it.ID]++
	}

	// expected share of "heavy" is 9/10
	share := float64(counts["heavy"]) / draws
	if share < 0.85 || share > 0.95 {
		t.Errorf("Weighted share off: heavy=%.3f (%v)", share, counts)
	}
	if counts["light"] == 0 {
		t.Error("Zero weight must still count as weight 1")
	}
}

func TestPickIsReproducible(t *testing.T) {
	lib := loadFixture(t)
	a := NewSelector(lib, rand.NewSource(99))
	b := NewSelector(lib, rand.NewSource(99))

	for i := 0; i < 20; i++ {
		x, _ := a.PickIcon(nil, Calm)
		y, _ := b.PickIcon(nil, Calm)
		if x.ID != y.ID {
			t.Fatalf("Draw %d differs under the same seed: %s vs %s", i, x.ID, y.ID)
		}
	}
}

func TestItemMatches(t *testing.T) {
	it := Item{Tags: []string{"a"}, Tone: []Tone{Calm}, AR: []string{"1x1"}}

	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{"empty filter", Filter{}, true},
		{"tag hit", Filter{Tags: []string{"x", "a"}}, true},
		{"tag miss", Filter{Tags: []string{"x"}}, false},
		{"tone miss", Filter{Tone: Bold}, false},
		{"ar hit", Filter{AR: "1x1", Tone: Calm}, true},
		{"ar miss", Filter{AR: "16x9"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := it.Matches(tt.filter); got != tt.expected {
				t.Errorf("Matches(%+v) = %v, expected %v", tt.filter, got, tt.expected)
			}
		})
	}

	if !(Item{}).Matches(Filter{Tags: []string{"x"}, Tone: Bold, AR: "9x16"}) {
		t.Error("An item without attributes must pass every filter")
	}
}
