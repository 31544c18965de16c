package library

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type LibraryService interface {
	CreateStream(ctx context.Context, title, description, prefix string) (*Stream, error)
	GetStream(ctx context.Context, id string) (*Stream, error)
	GetStreams(ctx context.Context) ([]*Stream, error)
	RemoveStream(ctx context.Context, id string) error

	AddClip(ctx context.Context, streamID, uri string, durationSeconds float64) (*MediaClip, error)
	ClipsForStream(ctx context.Context, streamID string) ([]*MediaClip, error)

	CreateEpisode(ctx context.Context, streamID, title, description string, cuts []Cut) (*Episode, error)
	GetEpisode(ctx context.Context, id string) (*Episode, error)
	GetEpisodes(ctx context.Context, limit int) ([]*Episode, error)
	SetEpisodeCuts(ctx context.Context, id string, cuts []Cut) error

	RecordExport(ctx context.Context, episodeID, filename string, trackCount, warningCount int) (*ExportRecord, error)
	Exports(ctx context.Context, limit int) ([]*ExportRecord, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateStream(ctx context.Context, title, description, prefix string) (*Stream, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	stream := &Stream{
		ID:          NewID(),
		Title:       title,
		Description: description,
		Prefix:      prefix,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateStream(ctx, stream); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("stream created", "stream_id", stream.ID, "title", title)
	}
	return stream, nil
}

func (s *Service) GetStream(ctx context.Context, id string) (*Stream, error) {
	return s.repo.GetStream(ctx, id)
}

func (s *Service) GetStreams(ctx context.Context) ([]*Stream, error) {
	return s.repo.ListStreams(ctx)
}

func (s *Service) RemoveStream(ctx context.Context, id string) error {
	if err := s.repo.DeleteClipsByStream(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteStream(ctx, id)
}

// AddClip appends a recorded file to the end of the stream's timeline.
func (s *Service) AddClip(ctx context.Context, streamID, uri string, durationSeconds float64) (*MediaClip, error) {
	if uri == "" {
		return nil, fmt.Errorf("uri is required")
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	stream, err := s.repo.GetStream(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, fmt.Errorf("stream not found")
	}

	position, err := s.repo.CountClipsByStream(ctx, streamID)
	if err != nil {
		return nil, err
	}

	clip := &MediaClip{
		ID:              NewID(),
		StreamID:        streamID,
		URI:             uri,
		DurationSeconds: durationSeconds,
		Position:        position,
		CreatedAt:       time.Now(),
	}
	if err := s.repo.CreateClip(ctx, clip); err != nil {
		return nil, err
	}
	return clip, nil
}

func (s *Service) ClipsForStream(ctx context.Context, streamID string) ([]*MediaClip, error) {
	return s.repo.ClipsByStream(ctx, streamID)
}

func (s *Service) CreateEpisode(ctx context.Context, streamID, title, description string, cuts []Cut) (*Episode, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	stream, err := s.repo.GetStream(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, fmt.Errorf("stream not found")
	}

	now := time.Now()
	episode := &Episode{
		ID:          NewID(),
		StreamID:    streamID,
		Title:       title,
		Description: description,
		Cuts:        cuts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("episode created", "episode_id", episode.ID, "stream_id", streamID, "cuts", len(cuts))
	}
	return episode, nil
}

func (s *Service) GetEpisode(ctx context.Context, id string) (*Episode, error) {
	return s.repo.GetEpisode(ctx, id)
}

func (s *Service) GetEpisodes(ctx context.Context, limit int) ([]*Episode, error) {
	return s.repo.ListEpisodes(ctx, limit)
}

func (s *Service) SetEpisodeCuts(ctx context.Context, id string, cuts []Cut) error {
	episode, err := s.repo.GetEpisode(ctx, id)
	if err != nil {
		return err
	}
	if episode == nil {
		return fmt.Errorf("episode not found")
	}
	return s.repo.UpdateEpisodeCuts(ctx, id, cuts)
}

func (s *Service) RecordExport(ctx context.Context, episodeID, filename string, trackCount, warningCount int) (*ExportRecord, error) {
	record := &ExportRecord{
		ID:           NewID(),
		EpisodeID:    episodeID,
		Filename:     filename,
		TrackCount:   trackCount,
		WarningCount: warningCount,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateExport(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) Exports(ctx context.Context, limit int) ([]*ExportRecord, error) {
	return s.repo.ListExports(ctx, limit)
}
