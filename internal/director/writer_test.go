package director

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWriteReadPlan(t *testing.T) {
	d := NewDirector(1080, 1920, 30, 8)
	d.Assets = &stubAssets{}
	plan, err := d.BuildPlan(testSpec())
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := WritePlan(plan, path); err != nil {
		t.Fatalf("WritePlan failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"totalFrames: 105", "fadeInEnd:", "kind: cta_outro", "music: music/drive.mp3"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("plan file lacks %q", key)
		}
	}

	got, err := ReadPlan(path)
	if err != nil {
		t.Fatalf("ReadPlan failed: %v", err)
	}
	if !reflect.DeepEqual(got, plan) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, plan)
	}
}

func TestReadPlanVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte("version: \"0.1\"\nfps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPlan(path); err == nil {
		t.Error("expected an error for an old plan version")
	}
	if _, err := ReadPlan(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
