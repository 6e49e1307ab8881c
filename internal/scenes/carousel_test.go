package scenes

import (
	"math"
	"testing"

	"github.com/ivlev/adreel/internal/adspec"
)

func TestSizeTrackPresets(t *testing.T) {
	tests := []struct {
		name          string
		n, w, h       int
		landscape     bool
		visible, card int
		width, shift  int
	}{
		{"16:9", 3, 1920, 1080, true, 1572, 560, 1724, 192},
		{"9:16", 3, 1080, 1920, false, 868, 364, 1128, 300},
		{"1:1", 3, 1080, 1080, false, 868, 364, 1128, 300},
		// one capped card cannot fill a wide strip: no overflow, no scroll
		{"16:9 single card", 1, 1920, 1080, true, 1572, 560, 560, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := SizeTrack(tt.n, tt.w, tt.h)
			if tr.Landscape != tt.landscape || tr.Visible != tt.visible || tr.CardWidth != tt.card {
				t.Errorf("Track: %+v", tr)
			}
			if tr.Width != tt.width || tr.EndShift != tt.shift {
				t.Errorf("Width=%d EndShift=%d, expected %d/%d", tr.Width, tr.EndShift, tt.width, tt.shift)
			}
			if tr.CardHeight != int(math.Floor(float64(tr.CardWidth)*CarouselCardAspect+0.5)) {
				t.Errorf("CardHeight = %d", tr.CardHeight)
			}
		})
	}
}

func TestSizeTrackWidensShortStrips(t *testing.T) {
	// 800 wide portrait: two cards fit, so they are widened
	tr := SizeTrack(2, 800, 1000)
	if tr.Visible != 632 || tr.CardWidth != 363 {
		t.Fatalf("Track: %+v", tr)
	}
	if tr.Width <= tr.Visible {
		t.Errorf("Strip must overflow: width %d visible %d", tr.Width, tr.Visible)
	}
}

func TestSizeTrackInvariants(t *testing.T) {
	for _, w := range []int{480, 720, 800, 1080, 1280, 1920, 2560} {
		for _, h := range []int{720, 1080, 1920} {
			for n := 1; n <= 8; n++ {
				tr := SizeTrack(n, w, h)

				if tr.CardWidth > tr.MaxCard || tr.CardWidth < CarouselMinCard {
					t.Errorf("n=%d %dx%d: card %d outside [%d, %d]", n, w, h, tr.CardWidth, CarouselMinCard, tr.MaxCard)
				}
				if tr.EndShift < 0 {
					t.Errorf("n=%d %dx%d: negative shift", n, w, h)
				}

				// overflow is guaranteed whenever max-width cards could reach it
				reachable := n*tr.MaxCard+(n-1)*tr.Gap > tr.Visible
				if reachable && tr.Width <= tr.Visible {
					t.Errorf("n=%d %dx%d: strip %d does not overflow %d", n, w, h, tr.Width, tr.Visible)
				}
				if tr.Width > tr.Visible && tr.EndShift != tr.Width-tr.Visible+CarouselEndMargin {
					t.Errorf("n=%d %dx%d: EndShift %d", n, w, h, tr.EndShift)
				}
			}
		}
	}
}

func TestTrackOffset(t *testing.T) {
	tr := SizeTrack(3, 1920, 1080)

	if tr.Offset(0, 30) != 0 {
		t.Errorf("Offset(0) = %f", tr.Offset(0, 30))
	}
	// 3 seconds on landscape
	if got := tr.Offset(90, 30); got != -float64(tr.EndShift) {
		t.Errorf("Offset(90) = %f, expected %d", got, -tr.EndShift)
	}
	if got := tr.Offset(45, 30); got != -96 {
		t.Errorf("Offset at half way = %f, expected -96", got)
	}

	prev := 0.0
	for f := 0; f <= 120; f++ {
		x := tr.Offset(f, 30)
		if x > prev {
			t.Fatalf("Offset moved back at frame %d: %f -> %f", f, prev, x)
		}
		prev = x
	}

	portrait := SizeTrack(3, 1080, 1920)
	if got := portrait.Offset(60, 30); got != -float64(portrait.EndShift) {
		t.Errorf("Portrait scroll should end after 2s, got %f", got)
	}
}

func TestAnimateCarousel(t *testing.T) {
	s := adspec.Carousel{Title: "Built", Images: []string{"a.jpg", "b.jpg", "c.jpg"}}

	p, err := animateCarousel(s, Frame{Local: 0, FPS: 30, Width: 1920, Height: 1080}, testPalette)
	if err != nil {
		t.Fatal(err)
	}
	if p.TopPad != 9 || p.TopPadPx != 173 || p.Title == nil || p.Title.FontSize != 52 || p.OffsetX != 0 {
		t.Errorf("Landscape carousel: %+v", p)
	}

	p, err = animateCarousel(s, frameAt(60), testPalette)
	if err != nil {
		t.Fatal(err)
	}
	if p.TopPad != 18 || p.TopPadPx != 194 || p.OffsetX != -300 || len(p.Images) != 3 {
		t.Errorf("Portrait carousel: %+v", p)
	}

	empty := SizeTrack(0, 1080, 1920)
	if empty.Width != 0 || empty.EndShift != 0 {
		t.Errorf("Empty track: %+v", empty)
	}
}
