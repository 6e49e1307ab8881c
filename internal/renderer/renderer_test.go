package renderer

import (
	"strings"
	"testing"

	"github.com/ivlev/adreel/internal/audio"
	"github.com/ivlev/adreel/internal/director"
)

func testPlan(transition int) *director.Plan {
	return &director.Plan{
		FPS:        30,
		Transition: transition,
		Scenes: []director.ScenePlan{
			{Index: 0, Start: 0, Duration: 38},
			{Index: 1, Start: 30, Duration: 68},
			{Index: 2, Start: 90, Duration: 15},
		},
	}
}

func TestXfadeFilter(t *testing.T) {
	filter := XfadeFilter(testPlan(8))

	want := "[0:v][1:v]xfade=transition=fade:duration=0.266667:offset=1.000000[x1];" +
		"[x1][2:v]xfade=transition=fade:duration=0.266667:offset=3.000000[vout]"
	if filter != want {
		t.Errorf("unexpected filter:\n got %s\nwant %s", filter, want)
	}
}

func TestXfadeFilterEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		plan *director.Plan
		want string
	}{
		{"no scenes", &director.Plan{FPS: 30}, ""},
		{"single", &director.Plan{FPS: 30, Transition: 8, Scenes: []director.ScenePlan{{Duration: 10}}}, "[0:v]null[vout]"},
		{"no transition", testPlan(0), "[0:v][1:v][2:v]concat=n=3:v=1:a=0[vout]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XfadeFilter(tt.plan); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVolumeFilter(t *testing.T) {
	env := audio.Envelope{Total: 113, Intro: 6, Outro: 7, Volume: 0.5}
	filter := VolumeFilter(env, 30)

	if !strings.HasPrefix(filter, "atrim=end=3.766667,volume='") {
		t.Errorf("filter should trim to the envelope: %s", filter)
	}
	if !strings.HasSuffix(filter, "':eval=frame") {
		t.Errorf("volume must be evaluated per frame: %s", filter)
	}

	expr := buildVolumeExpression(env, 30)
	want := "max(0,min(if(lte(t,0.200000),0.500000*t/0.200000,0.500000),if(gte(t,3.533333),1-(t-3.533333)/0.233333,1)))"
	if expr != want {
		t.Errorf("unexpected expression:\n got %s\nwant %s", expr, want)
	}

	flat := buildVolumeExpression(audio.Envelope{Total: 10, Volume: 0.3}, 30)
	if flat != "max(0,min(0.300000,1))" {
		t.Errorf("envelope without fades: %s", flat)
	}

	if VolumeFilter(env, 0) != "" {
		t.Error("zero fps should give an empty filter")
	}
}
