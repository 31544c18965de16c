package otio

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Scaffold holds the fixed editorial furniture included in every
// exported timeline: the intro transition, the branding overlay track
// (solid-color background, filler gap, outro clip), and the frame rate
// the interchange format expresses time in. The structure of the
// scaffold is constant across exports; only these values vary.
type Scaffold struct {
	FrameRate              float64   `toml:"frame_rate"`
	IntroTransitionSeconds float64   `toml:"intro_transition_seconds"`
	BackgroundColor        []float64 `toml:"background_color"`
	BackgroundSeconds      float64   `toml:"background_seconds"`
	GapSeconds             float64   `toml:"gap_seconds"`
	OutroURI               string    `toml:"outro_uri"`
	OutroSeconds           float64   `toml:"outro_seconds"`
}

func DefaultScaffold() Scaffold {
	return Scaffold{
		FrameRate:              60,
		IntroTransitionSeconds: 0.5,
		BackgroundColor:        []float64{0, 0, 0, 1},
		BackgroundSeconds:      300,
		GapSeconds:             2,
		OutroURI:               "file:///assets/outro.mov",
		OutroSeconds:           10,
	}
}

// LoadScaffold reads a TOML overrides file on top of the defaults.
func LoadScaffold(path string) (Scaffold, error) {
	sc := DefaultScaffold()

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scaffold file: %w", err)
	}
	if err := toml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scaffold file %s: %w", path, err)
	}
	if sc.FrameRate <= 0 {
		return sc, fmt.Errorf("scaffold file %s: frame_rate must be positive", path)
	}
	return sc, nil
}
