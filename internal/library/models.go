// Package library stores the recorded-stream metadata the export
// engine consumes: streams, the ordered media clips each stream was
// recorded into, episodes cut from a stream, and export history.
package library

import (
	"time"

	"github.com/google/uuid"
)

type Stream struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Prefix      string    `json:"prefix,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MediaClip is one recorded file of a stream. Position orders clips
// into the concatenated recording timeline.
type MediaClip struct {
	ID              string    `json:"id"`
	StreamID        string    `json:"stream_id"`
	URI             string    `json:"uri"`
	DurationSeconds float64   `json:"duration_seconds"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
}

// Cut is one editorial time range, stored as ISO-8601 duration strings
// measured against the stream's concatenated timeline.
type Cut struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Episode struct {
	ID          string    `json:"id"`
	StreamID    string    `json:"stream_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Cuts        []Cut     `json:"cuts"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExportRecord is one finished export of an episode.
type ExportRecord struct {
	ID           string    `json:"id"`
	EpisodeID    string    `json:"episode_id"`
	Filename     string    `json:"filename"`
	TrackCount   int       `json:"track_count"`
	WarningCount int       `json:"warning_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewID() string {
	return uuid.NewString()
}
