package assets

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var ErrEmptyCategory = errors.New("asset category is empty")

// Filter narrows a category. Zero fields do not filter.
type Filter struct {
	Tags []string
	Tone Tone
	AR   string
}

// Matches reports whether the item passes the filter.
// Attributes the item does not declare never exclude it.
func (it Item) Matches(f Filter) bool {
	if len(f.Tags) > 0 && len(it.Tags) > 0 && !intersects(it.Tags, f.Tags) {
		return false
	}
	if f.Tone != "" && len(it.Tone) > 0 && !containsTone(it.Tone, f.Tone) {
		return false
	}
	if f.AR != "" && len(it.AR) > 0 && !containsString(it.AR, f.AR) {
		return false
	}
	return true
}

// Selector draws weighted random assets from a library.
// The random source is injected so picks are reproducible under a fixed seed.
type Selector struct {
	lib *Library
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector; a nil source seeds from the clock.
func NewSelector(lib *Library, src rand.Source) *Selector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{lib: lib, rng: rand.New(src)}
}

// Library returns the catalog the selector draws from
func (s *Selector) Library() *Library {
	return s.lib
}

// Pick filters the category, weights each candidate by max(1, weight) and draws one.
// An empty filtered set falls back to the whole category.
func (s *Selector) Pick(c Category, f Filter) (Item, error) {
	if s.lib == nil {
		return Item{}, fmt.Errorf("%w: %s (no library)", ErrEmptyCategory, c)
	}
	items, err := s.lib.Items(c)
	if err != nil {
		return Item{}, err
	}
	if len(items) == 0 {
		return Item{}, fmt.Errorf("%w: %s", ErrEmptyCategory, c)
	}

	candidates := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Matches(f) {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		candidates = items
	}

	return s.pickWeighted(candidates), nil
}

func (s *Selector) pickWeighted(items []Item) Item {
	total := 0
	for _, it := range items {
		total += weightOf(it)
	}

	s.mu.Lock()
	n := s.rng.Intn(total)
	s.mu.Unlock()

	for _, it := range items {
		n -= weightOf(it)
		if n < 0 {
			return it
		}
	}
	return items[0]
}

func weightOf(it Item) int {
	if it.Weight < 1 {
		return 1
	}
	return it.Weight
}

// PickIcon picks an icon sharing any of the tags
func (s *Selector) PickIcon(tags []string, tone Tone) (Item, error) {
	return s.Pick(Icons, Filter{Tags: tags, Tone: tone})
}

// PickBackground picks a background suited to the canvas aspect ("9x16", "1x1", "16x9")
func (s *Selector) PickBackground(ar string, tone Tone) (Item, error) {
	return s.Pick(Backgrounds, Filter{AR: ar, Tone: tone})
}

// PickMusic picks a background track for the tone
func (s *Selector) PickMusic(tone Tone) (Item, error) {
	return s.Pick(Music, Filter{Tone: tone})
}

// PickSFX picks a sound effect, e.g. a whoosh for scene boundaries
func (s *Selector) PickSFX(tags []string, tone Tone) (Item, error) {
	return s.Pick(SFX, Filter{Tags: tags, Tone: tone})
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if containsString(b, x) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsTone(list []Tone, v Tone) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
