package adspec

import (
	"github.com/ivlev/adreel/internal/assets"
)

// Kind is the scene discriminator as written in spec files
type Kind string

const (
	KindTitle        Kind = "title"
	KindHeroText     Kind = "hero_text"
	KindIconList     Kind = "icon_list"
	KindStatCounter  Kind = "stat_counter"
	KindSplitFeature Kind = "split_feature"
	KindTestimonial  Kind = "testimonial"
	KindCarousel     Kind = "carousel"
	KindCTA          Kind = "cta"
	KindCTAOutro     Kind = "cta_outro"
)

// Kinds lists every scene variant in declaration order
var Kinds = []Kind{
	KindTitle, KindHeroText, KindIconList, KindStatCounter, KindSplitFeature,
	KindTestimonial, KindCarousel, KindCTA, KindCTAOutro,
}

// PatternType selects the decorative overlay drawn behind a scene
type PatternType string

const (
	PatternDots PatternType = "dots"
	PatternGrid PatternType = "grid"
	PatternNone PatternType = "none"
)

type Pattern struct {
	Type    PatternType `yaml:"type"`
	Color   string      `yaml:"color,omitempty"`
	Opacity *float64    `yaml:"opacity,omitempty"`
	Size    float64     `yaml:"size,omitempty"`
}

// Brand carries the advisory brand colors; Enrich makes them contrast-safe.
type Brand struct {
	Primary    string   `yaml:"primary,omitempty"`
	Secondary  string   `yaml:"secondary,omitempty"`
	Background string   `yaml:"background,omitempty"`
	FontFamily string   `yaml:"fontFamily,omitempty"`
	Logo       string   `yaml:"logo,omitempty"`
	Pattern    *Pattern `yaml:"pattern,omitempty"`
}

type AudioSpec struct {
	Music  string   `yaml:"music"`
	Volume *float64 `yaml:"volume,omitempty"`
}

// AdSpec is the root aggregate: brand, optional audio and the ordered scenes.
type AdSpec struct {
	Brand  *Brand      `yaml:"brand"`
	Audio  *AudioSpec  `yaml:"audio,omitempty"`
	Tone   assets.Tone `yaml:"tone,omitempty"`
	Scenes SceneList   `yaml:"scenes"`
}

// DurationsMs returns the scene durations in order
func (s AdSpec) DurationsMs() []float64 {
	out := make([]float64, len(s.Scenes))
	for i, sc := range s.Scenes {
		out[i] = sc.DurationMs()
	}
	return out
}

// Scene is one of the nine scene variants. The set is closed: only types of
// this package implement it.
type Scene interface {
	Kind() Kind
	DurationMs() float64
	ScenePattern() *Pattern
	isScene()
}

// Base holds the fields every scene shares
type Base struct {
	Duration float64  `yaml:"durationMs"`
	Pattern  *Pattern `yaml:"pattern,omitempty"`
}

func (b Base) DurationMs() float64     { return b.Duration }
func (b Base) ScenePattern() *Pattern { return b.Pattern }
func (Base) isScene()                  {}

type Title struct {
	Base    `yaml:",inline"`
	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext,omitempty"`
}

type HeroText struct {
	Base        `yaml:",inline"`
	Headline    string `yaml:"headline"`
	Subheadline string `yaml:"subheadline,omitempty"`
}

type IconItem struct {
	Icon  string   `yaml:"icon,omitempty"`
	Label string   `yaml:"label"`
	Color string   `yaml:"color,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
}

type IconList struct {
	Base    `yaml:",inline"`
	Title   string     `yaml:"title,omitempty"`
	Items   []IconItem `yaml:"items"`
	Columns int        `yaml:"columns,omitempty"`
}

type StatItem struct {
	Label  string  `yaml:"label"`
	Value  float64 `yaml:"value"`
	Suffix string  `yaml:"suffix,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

type StatCounter struct {
	Base  `yaml:",inline"`
	Title string     `yaml:"title,omitempty"`
	Items []StatItem `yaml:"items"`
}

type Media struct {
	Type string `yaml:"type"`
	Src  string `yaml:"src"`
}

type SplitFeature struct {
	Base  `yaml:",inline"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	Media *Media `yaml:"media,omitempty"`
}

type Testimonial struct {
	Base   `yaml:",inline"`
	Quote  string `yaml:"quote"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role,omitempty"`
	Avatar string `yaml:"avatar,omitempty"`
}

type Carousel struct {
	Base   `yaml:",inline"`
	Title  string   `yaml:"title,omitempty"`
	Images []string `yaml:"images"`
}

type CTA struct {
	Base     `yaml:",inline"`
	Headline string `yaml:"headline"`
	Button   string `yaml:"button"`
}

type CTAOutro struct {
	Base `yaml:",inline"`
	URL  string `yaml:"url,omitempty"`
}

func (Title) Kind() Kind        { return KindTitle }
func (HeroText) Kind() Kind     { return KindHeroText }
func (IconList) Kind() Kind     { return KindIconList }
func (StatCounter) Kind() Kind  { return KindStatCounter }
func (SplitFeature) Kind() Kind { return KindSplitFeature }
func (Testimonial) Kind() Kind  { return KindTestimonial }
func (Carousel) Kind() Kind     { return KindCarousel }
func (CTA) Kind() Kind          { return KindCTA }
func (CTAOutro) Kind() Kind     { return KindCTAOutro }
