package scenes

import (
	"fmt"
	"math"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/motion"
)

const (
	iconListGap        = 22
	iconCellMax        = 260
	iconStaggerSeconds = 0.06
	iconAppearFrames   = 10
	iconSlideFrames    = 20
	iconSlideDistance  = 12

	statCellMax        = 420
	statNarrowWidth    = 1200
	statGap            = 22
	statGapNarrow      = 28
	statCountSeconds   = 1.8
	statStaggerSeconds = 0.08
	statAppearSeconds  = 0.3
	statSlideDistance  = 16
)

var iconOpacityTrack = []motion.Keyframe{{Frame: 0, Value: 0}, {Frame: iconAppearFrames, Value: 1}, {Frame: iconSlideFrames, Value: 1}}

type IconCell struct {
	Icon          string  `yaml:"icon"`
	Label         string  `yaml:"label"`
	Delay         int     `yaml:"delay"`
	Opacity       float64 `yaml:"opacity"`
	OffsetY       float64 `yaml:"offsetY"`
	IconSize      float64 `yaml:"iconSize"`
	LabelFontSize float64 `yaml:"labelFontSize"`
	LabelColor    string  `yaml:"labelColor"`
}

type IconListParams struct {
	Title    *Text      `yaml:"title,omitempty"`
	Columns  int        `yaml:"columns"`
	CellSize float64    `yaml:"cellSize"`
	Gap      float64    `yaml:"gap"`
	Cells    []IconCell `yaml:"cells"`
}

func (IconListParams) Kind() adspec.Kind { return adspec.KindIconList }

func gridTitle(title string, f Frame, p Palette) *Text {
	if title == "" {
		return nil
	}
	return &Text{Text: title, Opacity: 1, FontSize: layout.ScaleByWidth(f.Width, 0.06, 24, 56), Color: p.Text}
}

func animateIconList(s adspec.IconList, f Frame, p Palette) (IconListParams, error) {
	columns := s.Columns
	if columns == 0 {
		columns = 3
	}
	col := int(layout.Clamp(float64(columns), 2, 4))
	cell := math.Max(0, math.Min(float64(f.Width)/float64(col)-40, iconCellMax))
	stagger := int(f.seconds(iconStaggerSeconds))

	out := IconListParams{
		Title:    gridTitle(s.Title, f, p),
		Columns:  col,
		CellSize: cell,
		Gap:      iconListGap,
		Cells:    make([]IconCell, len(s.Items)),
	}

	for i, it := range s.Items {
		color, err := p.readable(it.Color)
		if err != nil {
			return IconListParams{}, fmt.Errorf("items[%d].color: %w", i, err)
		}
		delay := i * stagger
		local := delayed(f.Local, delay)

		out.Cells[i] = IconCell{
			Icon:          it.Icon,
			Label:         it.Label,
			Delay:         delay,
			Opacity:       motion.InterpolateKeyframes(iconOpacityTrack, local, nil),
			OffsetY:       motion.Interpolate(local, 0, iconSlideFrames, iconSlideDistance, 0, motion.EaseOutCubic),
			IconSize:      cell * 0.45,
			LabelFontSize: layout.Clamp(cell*0.09, 14, 22),
			LabelColor:    color,
		}
	}
	return out, nil
}

type StatCell struct {
	Label   string  `yaml:"label"`
	Delay   int     `yaml:"delay"`
	Value   int64   `yaml:"value"`
	Number  string  `yaml:"number"`
	Suffix  string  `yaml:"suffix,omitempty"`
	Opacity float64 `yaml:"opacity"`
	OffsetY float64 `yaml:"offsetY"`
	Color   string  `yaml:"color"`
}

// Display is the number as painted, suffix included
func (c StatCell) Display() string {
	return c.Number + c.Suffix
}

type StatCounterParams struct {
	Title          *Text      `yaml:"title,omitempty"`
	Narrow         bool       `yaml:"narrow"`
	Columns        int        `yaml:"columns"`
	CellWidth      float64    `yaml:"cellWidth"`
	Gap            float64    `yaml:"gap"`
	NumberFontSize float64    `yaml:"numberFontSize"`
	LabelFontSize  float64    `yaml:"labelFontSize"`
	Cells          []StatCell `yaml:"cells"`
}

func (StatCounterParams) Kind() adspec.Kind { return adspec.KindStatCounter }

// StatColumns is min(2, n) on narrow canvases and min(4, n) otherwise,
// never less than one column.
func StatColumns(n, width int) int {
	var cols int
	if width < statNarrowWidth {
		cols = min(2, n)
	} else {
		cols = min(4, max(1, n))
	}
	return max(1, cols)
}

// CountUp is the value displayed by a counter `local` frames after it started.
// It lands exactly on target once the count is over.
func CountUp(target float64, local, fps int) int64 {
	dur := motion.Round(statCountSeconds * float64(fps))
	progress := 1.0
	if dur > 0 {
		progress = math.Min(1, float64(max(0, local))/dur)
	}
	return int64(motion.Round(target * motion.EaseOutCubic(progress)))
}

func (a *Animator) animateStatCounter(s adspec.StatCounter, f Frame) (StatCounterParams, error) {
	p := a.palette
	narrow := f.Width < statNarrowWidth
	cols := StatColumns(len(s.Items), f.Width)
	cell := math.Max(0, math.Min(statCellMax, float64(f.Width)/float64(cols)-40))
	gap := float64(statGap)
	if narrow {
		gap = statGapNarrow
	}

	stagger := int(f.seconds(statStaggerSeconds))
	appear := f.seconds(statAppearSeconds)

	out := StatCounterParams{
		Title:          gridTitle(s.Title, f, p),
		Narrow:         narrow,
		Columns:        cols,
		CellWidth:      cell,
		Gap:            gap,
		NumberFontSize: layout.Clamp(cell*0.15, 28, 64),
		LabelFontSize:  layout.Clamp(cell*0.08, 12, 22),
		Cells:          make([]StatCell, len(s.Items)),
	}

	for i, it := range s.Items {
		color, err := p.readable(it.Color)
		if err != nil {
			return StatCounterParams{}, fmt.Errorf("items[%d].color: %w", i, err)
		}
		delay := i * stagger
		local := delayed(f.Local, delay)
		value := CountUp(it.Value, int(local), f.FPS)

		out.Cells[i] = StatCell{
			Label:   it.Label,
			Delay:   delay,
			Value:   value,
			Number:  a.printer.Sprintf("%d", value),
			Suffix:  it.Suffix,
			Opacity: motion.Ramp(local, appear, nil),
			OffsetY: motion.Interpolate(local, 0, appear, statSlideDistance, 0, motion.EaseOutCubic),
			Color:   color,
		}
	}
	return out, nil
}
