package director

import (
	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/assets"
	"github.com/ivlev/adreel/internal/audio"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/scenes"
)

// Plan is the timing sheet of one ad: where every scene sits on the frame
// axis, where its crossfades begin and end, and what plays underneath.
type Plan struct {
	Version     string         `yaml:"version"`
	ID          string         `yaml:"id"`
	Created     string         `yaml:"created"`
	Canvas      Canvas         `yaml:"canvas"`
	FPS         int            `yaml:"fps"`
	Transition  int            `yaml:"transition"` // кадры перекрытия
	TotalFrames int            `yaml:"totalFrames"`
	Tone        assets.Tone    `yaml:"tone"`
	Palette     scenes.Palette `yaml:"palette"`
	Font        string         `yaml:"font"`
	Logo        *Logo          `yaml:"logo,omitempty"`
	Background  string         `yaml:"background,omitempty"`
	Scenes      []ScenePlan    `yaml:"scenes"`
	Audio       *AudioPlan     `yaml:"audio,omitempty"`
	Cues        []Cue          `yaml:"cues,omitempty"`
}

type Canvas struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Aspect layout.Aspect `yaml:"aspect"`
}

// Logo is the brand mark and where it is drawn
type Logo struct {
	Src         string `yaml:"src"`
	layout.Logo `yaml:",inline"`
}

// ScenePlan is one scene's slot. Frames are absolute; End is exclusive.
type ScenePlan struct {
	Index        int         `yaml:"index"`
	Kind         adspec.Kind `yaml:"kind"`
	Start        int         `yaml:"start"`
	Duration     int         `yaml:"duration"`
	End          int         `yaml:"end"`
	FadeInEnd    int         `yaml:"fadeInEnd"`
	FadeOutStart int         `yaml:"fadeOutStart"`
}

type AudioPlan struct {
	Music    string         `yaml:"music"`
	Envelope audio.Envelope `yaml:"envelope"`
}

// Cue is a one-shot sound placed on an absolute frame
type Cue struct {
	Frame int    `yaml:"frame"`
	Src   string `yaml:"src"`
}
