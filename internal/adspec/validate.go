package adspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/adreel/internal/palette"
)

var ErrInvalidSpec = errors.New("invalid ad spec")

// Issue is a single validation finding
type Issue struct {
	Path    string `yaml:"path"`
	Message string `yaml:"message"`
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

type Issues []Issue

// Err folds the issues into one error, nil when there are none.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	parts := make([]string, len(is))
	for i, issue := range is {
		parts[i] = issue.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(parts, "; "))
}

// Validate reports structural problems. It never fails itself; the caller
// decides whether to abort.
func Validate(spec AdSpec) Issues {
	var issues Issues
	add := func(path, msg string) {
		issues = append(issues, Issue{Path: path, Message: msg})
	}

	if spec.Brand == nil {
		add("brand", "brand missing")
	} else {
		colors := []struct {
			path, value string
		}{
			{"brand.primary", spec.Brand.Primary},
			{"brand.secondary", spec.Brand.Secondary},
			{"brand.background", spec.Brand.Background},
		}
		for _, c := range colors {
			if c.value == "" {
				continue
			}
			if _, err := palette.ParseHex(c.value); err != nil {
				add(c.path, "not a color: "+c.value)
			}
		}
	}

	if spec.Audio != nil && spec.Audio.Volume != nil {
		if v := *spec.Audio.Volume; v < 0 || v > 1 {
			add("audio.volume", fmt.Sprintf("must be within [0,1], got %v", v))
		}
	}

	if len(spec.Scenes) == 0 {
		add("scenes", "no scenes")
	}

	for i, sc := range spec.Scenes {
		path := fmt.Sprintf("scenes[%d]", i)
		if sc == nil {
			add(path, "scene missing")
			continue
		}
		if !(sc.DurationMs() > 0) {
			add(path+".durationMs", "must be > 0")
		}

		switch s := sc.(type) {
		case IconList:
			if len(s.Items) == 0 {
				add(path+".items", "no items")
			}
			for j, it := range s.Items {
				checkColor(add, fmt.Sprintf("%s.items[%d].color", path, j), it.Color)
			}
		case StatCounter:
			if len(s.Items) == 0 {
				add(path+".items", "no items")
			}
			for j, it := range s.Items {
				checkColor(add, fmt.Sprintf("%s.items[%d].color", path, j), it.Color)
			}
		case Carousel:
			if len(s.Images) == 0 {
				add(path+".images", "no images")
			}
		}
	}

	return issues
}

func checkColor(add func(path, msg string), path, value string) {
	if value == "" {
		return
	}
	if _, err := palette.ParseHex(value); err != nil {
		add(path, "not a color: "+value)
	}
}
