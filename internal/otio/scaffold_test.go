package otio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScaffold_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.toml")
	content := `
frame_rate = 30.0
outro_uri = "file:///brand/outro.mov"
outro_seconds = 12.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scaffold file: %v", err)
	}

	sc, err := LoadScaffold(path)
	if err != nil {
		t.Fatalf("LoadScaffold error = %v", err)
	}

	if sc.FrameRate != 30 {
		t.Errorf("FrameRate = %v, want 30", sc.FrameRate)
	}
	if sc.OutroURI != "file:///brand/outro.mov" {
		t.Errorf("OutroURI = %q", sc.OutroURI)
	}
	if sc.OutroSeconds != 12.5 {
		t.Errorf("OutroSeconds = %v, want 12.5", sc.OutroSeconds)
	}
	// Untouched fields keep their defaults.
	if sc.GapSeconds != DefaultScaffold().GapSeconds {
		t.Errorf("GapSeconds = %v, want default %v", sc.GapSeconds, DefaultScaffold().GapSeconds)
	}
}

func TestLoadScaffold_MissingFile(t *testing.T) {
	if _, err := LoadScaffold(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadScaffold_BadFrameRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaffold.toml")
	if err := os.WriteFile(path, []byte("frame_rate = -1.0\n"), 0o644); err != nil {
		t.Fatalf("write scaffold file: %v", err)
	}
	if _, err := LoadScaffold(path); err == nil {
		t.Fatal("expected error for non-positive frame rate")
	}
}
