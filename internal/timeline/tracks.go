package timeline

import (
	"fmt"
	"log/slog"
)

// DefaultFrameRate is the rate the interchange format expresses time
// values in.
const DefaultFrameRate = 60.0

// Cut is an editorially chosen time range, in concatenated-timeline
// seconds, that belongs in the finished episode.
type Cut struct {
	Start float64
	End   float64
}

// Track is one contiguous sub-segment of a single source clip. All time
// fields are frame-scaled at the generator's frame rate. Total is a
// running sum across the segments of the same cut; for a cut contained
// in one clip it equals the cut's own duration.
type Track struct {
	SourceURI   string
	SourceStart float64
	Duration    float64
	Total       float64
}

// Generator turns cuts into ordered per-clip tracks.
type Generator struct {
	frameRate float64
	logger    *slog.Logger
}

func NewGenerator(frameRate float64, logger *slog.Logger) *Generator {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Generator{frameRate: frameRate, logger: logger}
}

func (g *Generator) FrameRate() float64 {
	return g.frameRate
}

// Tracks computes the ordered track list for cuts against clips.
// A cut whose start or end lies outside every clip is skipped with a
// warning; empty inputs yield an empty list. Warnings are returned so
// callers can surface them alongside the export.
func (g *Generator) Tracks(clips []Clip, cuts []Cut) ([]Track, []string) {
	var warnings []string
	if len(clips) == 0 || len(cuts) == 0 {
		warnings = append(warnings, fmt.Sprintf("nothing to generate: %d clips, %d cuts", len(clips), len(cuts)))
		g.warn(warnings[len(warnings)-1])
		return nil, warnings
	}

	seq := BuildCutSequence(clips)
	var tracks []Track

	for i, cut := range cuts {
		start, ok := LocateStart(seq, cut.Start)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("cut %d: start %.3fs outside every clip, skipped", i, cut.Start))
			g.warn(warnings[len(warnings)-1])
			continue
		}
		end, ok := LocateEnd(seq, cut.End)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("cut %d: end %.3fs outside every clip, skipped", i, cut.End))
			g.warn(warnings[len(warnings)-1])
			continue
		}

		if start.ClipIndex == end.ClipIndex {
			d := cut.End - cut.Start
			tracks = append(tracks, g.scaled(clips[start.ClipIndex].URI, start.TimeIntoClip, d, d))
			continue
		}

		running := start.Duration
		tracks = append(tracks, g.scaled(clips[start.ClipIndex].URI, start.TimeIntoClip, start.Duration, running))
		for _, mid := range EnumerateBetween(start, end) {
			running += mid.Duration
			tracks = append(tracks, g.scaled(clips[mid.ClipIndex].URI, 0, mid.Duration, running))
		}
		running += end.Duration
		tracks = append(tracks, g.scaled(clips[end.ClipIndex].URI, 0, end.Duration, running))
	}

	return tracks, warnings
}

func (g *Generator) scaled(uri string, start, duration, total float64) Track {
	return Track{
		SourceURI:   uri,
		SourceStart: start * g.frameRate,
		Duration:    duration * g.frameRate,
		Total:       total * g.frameRate,
	}
}

func (g *Generator) warn(msg string) {
	if g.logger != nil {
		g.logger.Warn(msg)
	}
}
