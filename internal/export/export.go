// Package export turns an episode's cut list and its stream's recorded
// clips into an OpenTimelineIO document ready for file delivery.
package export

import (
	"fmt"
	"log/slog"

	"github.com/cutroom/cutroom-agent/internal/otio"
	"github.com/cutroom/cutroom-agent/internal/timeline"
)

// Cut is one editorial time range, expressed as ISO-8601 duration
// strings against the concatenated recording.
type Cut struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Episode struct {
	Title       string
	Description string
	Cuts        []Cut
}

// MediaClip is one recorded file of the stream, in recording order.
type MediaClip struct {
	URI             string
	DurationSeconds float64
}

type Config struct {
	Scaffold otio.Scaffold
	// LenientDurations restores the original tool's behavior of
	// treating malformed duration strings as zero instead of
	// skipping the cut.
	LenientDurations bool
	Logger           *slog.Logger
}

type Exporter struct {
	cfg Config
	gen *timeline.Generator
}

func NewExporter(cfg Config) *Exporter {
	if cfg.Scaffold.FrameRate <= 0 {
		cfg.Scaffold = DefaultConfig().Scaffold
	}
	return &Exporter{
		cfg: cfg,
		gen: timeline.NewGenerator(cfg.Scaffold.FrameRate, cfg.Logger),
	}
}

func DefaultConfig() Config {
	return Config{Scaffold: otio.DefaultScaffold()}
}

// Result is one finished export. Warnings carry every recoverable
// condition hit along the way (skipped cuts, empty inputs); the caller
// decides whether a thin or empty export is worth offering.
type Result struct {
	Filename   string
	Document   string
	TrackCount int
	Warnings   []string
}

// Export computes the interchange document for one episode. The only
// error path is serialization; bad cuts degrade to warnings.
func (e *Exporter) Export(ep Episode, clips []MediaClip) (*Result, error) {
	var warnings []string

	srcClips := make([]timeline.Clip, 0, len(clips))
	for _, c := range clips {
		srcClips = append(srcClips, timeline.Clip{URI: c.URI, Duration: c.DurationSeconds})
	}

	cuts := make([]timeline.Cut, 0, len(ep.Cuts))
	for i, c := range ep.Cuts {
		start, end, err := e.parseCut(c)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cut %d: %v, skipped", i, err))
			if e.cfg.Logger != nil {
				e.cfg.Logger.Warn("skipping malformed cut", "cut", i, "error", err)
			}
			continue
		}
		cuts = append(cuts, timeline.Cut{Start: start, End: end})
	}

	tracks, genWarnings := e.gen.Tracks(srcClips, cuts)
	warnings = append(warnings, genWarnings...)

	doc := otio.BuildDocument(otio.EpisodeMeta{
		Title:       ep.Title,
		Description: ep.Description,
	}, tracks, e.cfg.Scaffold)

	text, err := otio.Encode(doc, 4)
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}

	return &Result{
		Filename:   Filename(ep.Title),
		Document:   text,
		TrackCount: len(tracks),
		Warnings:   warnings,
	}, nil
}

func (e *Exporter) parseCut(c Cut) (float64, float64, error) {
	if e.cfg.LenientDurations {
		return timeline.ParseDurationLenient(c.Start), timeline.ParseDurationLenient(c.End), nil
	}
	start, err := timeline.ParseDuration(c.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	end, err := timeline.ParseDuration(c.End)
	if err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

// Filename derives the download name for an episode title.
func Filename(title string) string {
	name := SanitizeName(title, 120)
	if name == "" {
		name = "episode"
	}
	return name + ".otio"
}
