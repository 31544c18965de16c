package api

import (
	"time"

	"github.com/cutroom/cutroom-agent/internal/library"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	UptimeS int64  `json:"uptime_s"`
}

type CreateStreamRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
}

type StreamResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type StreamsResponse struct {
	Streams []StreamResponse `json:"streams"`
}

type AddClipRequest struct {
	URI             string  `json:"uri"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type ClipResponse struct {
	ID              string  `json:"id"`
	StreamID        string  `json:"stream_id"`
	URI             string  `json:"uri"`
	DurationSeconds float64 `json:"duration_seconds"`
	Position        int     `json:"position"`
	CreatedAt       string  `json:"created_at"`
}

type ClipsResponse struct {
	Clips []ClipResponse `json:"clips"`
}

type CreateEpisodeRequest struct {
	StreamID    string        `json:"stream_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Cuts        []library.Cut `json:"cuts,omitempty"`
}

type EpisodeResponse struct {
	ID          string        `json:"id"`
	StreamID    string        `json:"stream_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Cuts        []library.Cut `json:"cuts"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

type EpisodesResponse struct {
	Episodes []EpisodeResponse `json:"episodes"`
}

type UpdateCutsRequest struct {
	Cuts []library.Cut `json:"cuts"`
}

type ExportResponse struct {
	Status     string   `json:"status"`
	Filename   string   `json:"filename"`
	TrackCount int      `json:"track_count"`
	Warnings   []string `json:"warnings,omitempty"`
	Document   string   `json:"document"`
}

type ExportRecordResponse struct {
	ID           string `json:"id"`
	EpisodeID    string `json:"episode_id"`
	Filename     string `json:"filename"`
	TrackCount   int    `json:"track_count"`
	WarningCount int    `json:"warning_count"`
	CreatedAt    string `json:"created_at"`
}

type ExportRecordsResponse struct {
	Exports []ExportRecordResponse `json:"exports"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func StreamToResponse(s *library.Stream) StreamResponse {
	return StreamResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Prefix:      s.Prefix,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ClipToResponse(c *library.MediaClip) ClipResponse {
	return ClipResponse{
		ID:              c.ID,
		StreamID:        c.StreamID,
		URI:             c.URI,
		DurationSeconds: c.DurationSeconds,
		Position:        c.Position,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func EpisodeToResponse(e *library.Episode) EpisodeResponse {
	cuts := e.Cuts
	if cuts == nil {
		cuts = []library.Cut{}
	}
	return EpisodeResponse{
		ID:          e.ID,
		StreamID:    e.StreamID,
		Title:       e.Title,
		Description: e.Description,
		Cuts:        cuts,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ExportRecordToResponse(r *library.ExportRecord) ExportRecordResponse {
	return ExportRecordResponse{
		ID:           r.ID,
		EpisodeID:    r.EpisodeID,
		Filename:     r.Filename,
		TrackCount:   r.TrackCount,
		WarningCount: r.WarningCount,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
