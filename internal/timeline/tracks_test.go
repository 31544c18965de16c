package timeline

import (
	"math"
	"testing"
)

func newTestGenerator() *Generator {
	return NewGenerator(60, nil)
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTracks_EmptyInputs(t *testing.T) {
	g := newTestGenerator()

	tracks, warnings := g.Tracks(nil, []Cut{{Start: 0, End: 10}})
	if len(tracks) != 0 {
		t.Fatalf("tracks for empty clips = %d, want 0", len(tracks))
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for empty clips")
	}

	tracks, warnings = g.Tracks([]Clip{{URI: "a.mp4", Duration: 100}}, nil)
	if len(tracks) != 0 {
		t.Fatalf("tracks for empty cuts = %d, want 0", len(tracks))
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for empty cuts")
	}
}

func TestTracks_CutInsideOneClip(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{{URI: "a.mp4", Duration: 100}, {URI: "b.mp4", Duration: 100}}

	tracks, warnings := g.Tracks(clips, []Cut{{Start: 10, End: 35}})

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(tracks) != 1 {
		t.Fatalf("len(tracks) = %d, want 1", len(tracks))
	}
	tr := tracks[0]
	if tr.SourceURI != "a.mp4" {
		t.Errorf("SourceURI = %q, want a.mp4", tr.SourceURI)
	}
	if !almost(tr.SourceStart, 10*60) {
		t.Errorf("SourceStart = %v, want %v", tr.SourceStart, 10*60.0)
	}
	if !almost(tr.Duration, 25*60) {
		t.Errorf("Duration = %v, want %v", tr.Duration, 25*60.0)
	}
	// Same-clip cuts report the cut's own duration as the total.
	if !almost(tr.Total, 25*60) {
		t.Errorf("Total = %v, want %v", tr.Total, 25*60.0)
	}
}

func TestTracks_CutSpanningTwoClips(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{{URI: "a.mp4", Duration: 100}, {URI: "b.mp4", Duration: 100}}

	tracks, warnings := g.Tracks(clips, []Cut{{Start: 80, End: 130}})

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2", len(tracks))
	}

	first, second := tracks[0], tracks[1]
	if first.SourceURI != "a.mp4" || second.SourceURI != "b.mp4" {
		t.Fatalf("sources = %q, %q", first.SourceURI, second.SourceURI)
	}
	// First segment runs to A's boundary, second starts at 0 in B.
	if !almost(first.SourceStart, 80*60) || !almost(first.Duration, 20*60) {
		t.Errorf("first = %+v, want start %v duration %v", first, 80*60.0, 20*60.0)
	}
	if !almost(second.SourceStart, 0) || !almost(second.Duration, 30*60) {
		t.Errorf("second = %+v, want start 0 duration %v", second, 30*60.0)
	}
	// Segment durations concatenate to the cut's full length.
	if !almost(first.Duration+second.Duration, 50*60) {
		t.Errorf("duration sum = %v, want %v", first.Duration+second.Duration, 50*60.0)
	}
	// Totals accumulate across the cut.
	if !almost(first.Total, 20*60) || !almost(second.Total, 50*60) {
		t.Errorf("totals = %v, %v, want %v, %v", first.Total, second.Total, 20*60.0, 50*60.0)
	}
}

func TestTracks_CutBeyondLastClip(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{{URI: "a.mp4", Duration: 100}}

	tracks, warnings := g.Tracks(clips, []Cut{{Start: 150, End: 200}})

	if len(tracks) != 0 {
		t.Fatalf("len(tracks) = %d, want 0", len(tracks))
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}

func TestTracks_SkippedCutDoesNotAbortExport(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{{URI: "a.mp4", Duration: 100}}

	tracks, warnings := g.Tracks(clips, []Cut{
		{Start: 150, End: 200},
		{Start: 10, End: 20},
	})

	if len(tracks) != 1 {
		t.Fatalf("len(tracks) = %d, want 1", len(tracks))
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}

// Whole-clip cuts against [100,100,100]: the second cut selects the
// third clip exactly.
func TestTracks_WholeClipCuts(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{
		{URI: "one.mp4", Duration: 100},
		{URI: "two.mp4", Duration: 100},
		{URI: "three.mp4", Duration: 100},
	}

	tracks, warnings := g.Tracks(clips, []Cut{{Start: 0, End: 100}, {Start: 200, End: 300}})

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2", len(tracks))
	}
	if tracks[0].SourceURI != "one.mp4" || tracks[1].SourceURI != "three.mp4" {
		t.Fatalf("sources = %q, %q, want one.mp4, three.mp4", tracks[0].SourceURI, tracks[1].SourceURI)
	}
	for i, tr := range tracks {
		if !almost(tr.SourceStart, 0) {
			t.Errorf("tracks[%d].SourceStart = %v, want 0", i, tr.SourceStart)
		}
		if !almost(tr.Duration, 100*60) {
			t.Errorf("tracks[%d].Duration = %v, want %v", i, tr.Duration, 100*60.0)
		}
	}
}

func TestTracks_UnevenClips(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{
		{URI: "one.mp4", Duration: 100},
		{URI: "two.mp4", Duration: 200},
		{URI: "three.mp4", Duration: 100},
	}

	tracks, _ := g.Tracks(clips, []Cut{{Start: 0, End: 200}})
	if len(tracks) != 2 {
		t.Fatalf("cut [0,200]: len(tracks) = %d, want 2", len(tracks))
	}
	if tracks[0].SourceURI != "one.mp4" || !almost(tracks[0].Duration, 100*60) {
		t.Errorf("cut [0,200] first = %+v", tracks[0])
	}
	if tracks[1].SourceURI != "two.mp4" || !almost(tracks[1].SourceStart, 0) || !almost(tracks[1].Duration, 100*60) {
		t.Errorf("cut [0,200] second = %+v", tracks[1])
	}

	tracks, _ = g.Tracks(clips, []Cut{{Start: 150, End: 350}})
	if len(tracks) != 2 {
		t.Fatalf("cut [150,350]: len(tracks) = %d, want 2", len(tracks))
	}
	if tracks[0].SourceURI != "two.mp4" || !almost(tracks[0].SourceStart, 50*60) || !almost(tracks[0].Duration, 150*60) {
		t.Errorf("cut [150,350] first = %+v", tracks[0])
	}
	if tracks[1].SourceURI != "three.mp4" || !almost(tracks[1].SourceStart, 0) || !almost(tracks[1].Duration, 50*60) {
		t.Errorf("cut [150,350] second = %+v", tracks[1])
	}
}

func TestTracks_CutEndingOnClipBoundary(t *testing.T) {
	g := newTestGenerator()
	clips := []Clip{{URI: "a.mp4", Duration: 100}, {URI: "b.mp4", Duration: 100}}

	tracks, _ := g.Tracks(clips, []Cut{{Start: 50, End: 100}})

	// The boundary belongs to the earlier clip; no empty segment for b.
	if len(tracks) != 1 {
		t.Fatalf("len(tracks) = %d, want 1", len(tracks))
	}
	if tracks[0].SourceURI != "a.mp4" {
		t.Errorf("SourceURI = %q, want a.mp4", tracks[0].SourceURI)
	}
}

func TestNewGenerator_DefaultRate(t *testing.T) {
	g := NewGenerator(0, nil)
	if g.FrameRate() != DefaultFrameRate {
		t.Fatalf("FrameRate() = %v, want %v", g.FrameRate(), DefaultFrameRate)
	}
}
