package assets

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Category names one of the asset lists of the library
type Category string

const (
	Icons       Category = "icons"
	Backgrounds Category = "backgrounds"
	Music       Category = "music"
	SFX         Category = "sfx"
)

// Tone is the mood an asset fits
type Tone string

const (
	Calm    Tone = "calm"
	Bold    Tone = "bold"
	Playful Tone = "playful"
)

// Item is a single library entry. Missing tags/tone/ar mean "fits anything".
type Item struct {
	ID     string   `yaml:"id" json:"id"`
	Src    string   `yaml:"src" json:"src"`
	Tags   []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Tone   []Tone   `yaml:"tone,omitempty" json:"tone,omitempty"`
	AR     []string `yaml:"ar,omitempty" json:"ar,omitempty"`
	BPM    int      `yaml:"bpm,omitempty" json:"bpm,omitempty"`
	Weight int      `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Transition is an entry of the transitions table
type Transition struct {
	ID   string `yaml:"id" json:"id"`
	Type string `yaml:"type" json:"type"`
	Ms   int    `yaml:"ms" json:"ms"`
}

// Library is the static asset catalog. It is loaded once and never mutated.
type Library struct {
	Icons       []Item       `yaml:"icons" json:"icons"`
	Backgrounds []Item       `yaml:"backgrounds" json:"backgrounds"`
	Music       []Item       `yaml:"music" json:"music"`
	SFX         []Item       `yaml:"sfx" json:"sfx"`
	Transitions []Transition `yaml:"transitions" json:"transitions"`
}

// LoadLibrary reads a library document (YAML or JSON) from disk
func LoadLibrary(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lib, err := DecodeLibrary(f)
	if err != nil {
		return nil, fmt.Errorf("library %s: %w", path, err)
	}
	return lib, nil
}

// DecodeLibrary parses a library document
func DecodeLibrary(r io.Reader) (*Library, error) {
	var lib Library
	if err := yaml.NewDecoder(r).Decode(&lib); err != nil {
		if err == io.EOF {
			return &lib, nil
		}
		return nil, err
	}
	return &lib, nil
}

// Items returns the list for a category
func (l *Library) Items(c Category) ([]Item, error) {
	switch c {
	case Icons:
		return l.Icons, nil
	case Backgrounds:
		return l.Backgrounds, nil
	case Music:
		return l.Music, nil
	case SFX:
		return l.SFX, nil
	default:
		return nil, fmt.Errorf("unknown asset category: %s", c)
	}
}

// Transition looks up an entry of the transitions table by id
func (l *Library) Transition(id string) (Transition, bool) {
	for _, t := range l.Transitions {
		if t.ID == id {
			return t, true
		}
	}
	return Transition{}, false
}
