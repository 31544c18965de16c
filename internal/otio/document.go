package otio

import (
	"fmt"

	"github.com/cutroom/cutroom-agent/internal/timeline"
)

// Recordings carry three audio tracks by convention (game, mic, chat);
// the exported timeline replays the clip list once per track.
const audioTrackCount = 3

type EpisodeMeta struct {
	Title       string
	Description string
}

// BuildDocument assembles the interchange document for one episode:
// the primary video track (intro transition followed by the internal
// tracks), the fixed overlay track, then three audio tracks. Track
// order is part of the wire contract.
func BuildDocument(meta EpisodeMeta, tracks []timeline.Track, sc Scaffold) *Object {
	children := []any{
		buildVideoTrack(tracks, sc),
		buildOverlayTrack(sc),
	}
	for i := 1; i <= audioTrackCount; i++ {
		children = append(children, buildAudioTrack(tracks, sc, i))
	}

	stack := NewSchemaObject("Stack.1").
		Set("children", children).
		Set("effects", []any{}).
		Set("markers", []any{}).
		Set("metadata", NewObject()).
		Set("name", "tracks").
		Set("source_range", nil)

	return NewSchemaObject("Timeline.1").
		Set("metadata", NewObject().Set("description", meta.Description)).
		Set("name", meta.Title).
		Set("tracks", stack)
}

func buildVideoTrack(tracks []timeline.Track, sc Scaffold) *Object {
	children := []any{introTransition(sc)}
	for _, t := range tracks {
		children = append(children, mediaClip(t, sc, NewObject()))
	}
	return newTrack("Video", "Video", children)
}

func buildAudioTrack(tracks []timeline.Track, sc Scaffold, index int) *Object {
	children := make([]any, 0, len(tracks))
	for _, t := range tracks {
		meta := NewObject().Set("audio_track_index", index)
		children = append(children, mediaClip(t, sc, meta))
	}
	return newTrack(fmt.Sprintf("Audio %d", index), "Audio", children)
}

// buildOverlayTrack emits the constant branding track: solid-color
// background, filler gap, outro clip.
func buildOverlayTrack(sc Scaffold) *Object {
	bgFrames := sc.BackgroundSeconds * sc.FrameRate
	gapFrames := sc.GapSeconds * sc.FrameRate
	outroFrames := sc.OutroSeconds * sc.FrameRate

	color := make([]any, len(sc.BackgroundColor))
	for i, c := range sc.BackgroundColor {
		color[i] = Decimal(c)
	}

	background := NewSchemaObject("Clip.1").
		Set("effects", []any{}).
		Set("markers", []any{}).
		Set("metadata", NewObject()).
		Set("media_reference", NewSchemaObject("GeneratorReference.1").
			Set("available_range", timeRange(0, bgFrames, sc.FrameRate)).
			Set("generator_kind", "SolidColor").
			Set("metadata", NewObject()).
			Set("name", "Background").
			Set("parameters", NewObject().Set("color", color))).
		Set("name", "Background").
		Set("source_range", timeRange(0, bgFrames, sc.FrameRate))

	gap := NewSchemaObject("Gap.1").
		Set("effects", []any{}).
		Set("markers", []any{}).
		Set("metadata", NewObject()).
		Set("name", "Gap").
		Set("source_range", timeRange(0, gapFrames, sc.FrameRate))

	outro := NewSchemaObject("Clip.1").
		Set("effects", []any{}).
		Set("markers", []any{}).
		Set("metadata", NewObject()).
		Set("media_reference", NewSchemaObject("ExternalReference.1").
			Set("available_range", timeRange(0, outroFrames, sc.FrameRate)).
			Set("metadata", NewObject()).
			Set("name", "Outro").
			Set("target_url", sc.OutroURI)).
		Set("name", "Outro").
		Set("source_range", timeRange(0, outroFrames, sc.FrameRate))

	return newTrack("Overlay", "Video", []any{background, gap, outro})
}

func mediaClip(t timeline.Track, sc Scaffold, metadata *Object) *Object {
	ref := NewSchemaObject("ExternalReference.1").
		Set("available_range", timeRange(0, t.Total, sc.FrameRate)).
		Set("metadata", NewObject()).
		Set("name", "").
		Set("target_url", t.SourceURI)

	return NewSchemaObject("Clip.1").
		Set("effects", []any{}).
		Set("markers", []any{}).
		Set("metadata", metadata).
		Set("media_reference", ref).
		Set("name", t.SourceURI).
		Set("source_range", timeRange(t.SourceStart, t.Duration, sc.FrameRate))
}

func introTransition(sc Scaffold) *Object {
	return NewSchemaObject("Transition.1").
		Set("in_offset", rationalTime(0, sc.FrameRate)).
		Set("metadata", NewObject()).
		Set("name", "Intro").
		Set("out_offset", rationalTime(sc.IntroTransitionSeconds*sc.FrameRate, sc.FrameRate)).
		Set("transition_type", "SMPTE_Dissolve")
}

func newTrack(name, kind string, children []any) *Object {
	return NewSchemaObject("Track.1").
		Set("children", children).
		Set("effects", []any{}).
		Set("kind", kind).
		Set("markers", []any{}).
		Set("metadata", NewObject()).
		Set("name", name).
		Set("source_range", nil)
}

func rationalTime(value, rate float64) *Object {
	return NewSchemaObject("RationalTime.1").
		Set("rate", Decimal(rate)).
		Set("value", Decimal(value))
}

func timeRange(start, duration, rate float64) *Object {
	return NewSchemaObject("TimeRange.1").
		Set("duration", rationalTime(duration, rate)).
		Set("start_time", rationalTime(start, rate))
}
