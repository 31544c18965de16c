package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Repository interface {
	CreateStream(ctx context.Context, stream *Stream) error
	GetStream(ctx context.Context, id string) (*Stream, error)
	ListStreams(ctx context.Context) ([]*Stream, error)
	DeleteStream(ctx context.Context, id string) error

	CreateClip(ctx context.Context, clip *MediaClip) error
	ClipsByStream(ctx context.Context, streamID string) ([]*MediaClip, error)
	CountClipsByStream(ctx context.Context, streamID string) (int, error)
	DeleteClipsByStream(ctx context.Context, streamID string) error

	CreateEpisode(ctx context.Context, episode *Episode) error
	GetEpisode(ctx context.Context, id string) (*Episode, error)
	ListEpisodes(ctx context.Context, limit int) ([]*Episode, error)
	EpisodesByStream(ctx context.Context, streamID string) ([]*Episode, error)
	UpdateEpisodeCuts(ctx context.Context, id string, cuts []Cut) error
	DeleteEpisode(ctx context.Context, id string) error

	CreateExport(ctx context.Context, record *ExportRecord) error
	ListExports(ctx context.Context, limit int) ([]*ExportRecord, error)

	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateStream(ctx context.Context, s *Stream) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO streams (id, title, description, prefix, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, s.Title, nullString(s.Description), nullString(s.Prefix), s.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) GetStream(ctx context.Context, id string) (*Stream, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, prefix, created_at
		FROM streams WHERE id = ?
	`, id)

	var s Stream
	var description, prefix sql.NullString
	var createdAt string
	err := row.Scan(&s.ID, &s.Title, &description, &prefix, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.Description = description.String
	s.Prefix = prefix.String
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}

func (r *SQLiteRepository) ListStreams(ctx context.Context) ([]*Stream, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, prefix, created_at
		FROM streams ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streams []*Stream
	for rows.Next() {
		var s Stream
		var description, prefix sql.NullString
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Title, &description, &prefix, &createdAt); err != nil {
			return nil, err
		}
		s.Description = description.String
		s.Prefix = prefix.String
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		streams = append(streams, &s)
	}
	return streams, rows.Err()
}

func (r *SQLiteRepository) DeleteStream(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM streams WHERE id = ?", id)
	return err
}

func (r *SQLiteRepository) CreateClip(ctx context.Context, c *MediaClip) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO media_clips (id, stream_id, uri, duration_seconds, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.StreamID, c.URI, c.DurationSeconds, c.Position, c.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) ClipsByStream(ctx context.Context, streamID string) ([]*MediaClip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, stream_id, uri, duration_seconds, position, created_at
		FROM media_clips WHERE stream_id = ? ORDER BY position
	`, streamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []*MediaClip
	for rows.Next() {
		var c MediaClip
		var createdAt string
		if err := rows.Scan(&c.ID, &c.StreamID, &c.URI, &c.DurationSeconds, &c.Position, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		clips = append(clips, &c)
	}
	return clips, rows.Err()
}

func (r *SQLiteRepository) CountClipsByStream(ctx context.Context, streamID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM media_clips WHERE stream_id = ?", streamID).Scan(&count)
	return count, err
}

func (r *SQLiteRepository) DeleteClipsByStream(ctx context.Context, streamID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM media_clips WHERE stream_id = ?", streamID)
	return err
}

func (r *SQLiteRepository) CreateEpisode(ctx context.Context, e *Episode) error {
	cuts, err := marshalCuts(e.Cuts)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO episodes (id, stream_id, title, description, cuts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.StreamID, e.Title, nullString(e.Description), cuts,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) GetEpisode(ctx context.Context, id string) (*Episode, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, stream_id, title, description, cuts, created_at, updated_at
		FROM episodes WHERE id = ?
	`, id)
	return scanEpisodeRow(row.Scan)
}

func (r *SQLiteRepository) ListEpisodes(ctx context.Context, limit int) ([]*Episode, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, stream_id, title, description, cuts, created_at, updated_at
		FROM episodes ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEpisodes(rows)
}

func (r *SQLiteRepository) EpisodesByStream(ctx context.Context, streamID string) ([]*Episode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, stream_id, title, description, cuts, created_at, updated_at
		FROM episodes WHERE stream_id = ? ORDER BY created_at
	`, streamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEpisodes(rows)
}

func (r *SQLiteRepository) UpdateEpisodeCuts(ctx context.Context, id string, cuts []Cut) error {
	encoded, err := marshalCuts(cuts)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE episodes SET cuts = ?, updated_at = datetime('now') WHERE id = ?
	`, encoded, id)
	return err
}

func (r *SQLiteRepository) DeleteEpisode(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM episodes WHERE id = ?", id)
	return err
}

func (r *SQLiteRepository) CreateExport(ctx context.Context, rec *ExportRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exports (id, episode_id, filename, track_count, warning_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.EpisodeID, rec.Filename, rec.TrackCount, rec.WarningCount,
		rec.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) ListExports(ctx context.Context, limit int) ([]*ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, episode_id, filename, track_count, warning_count, created_at
		FROM exports ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*ExportRecord
	for rows.Next() {
		var rec ExportRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.EpisodeID, &rec.Filename, &rec.TrackCount, &rec.WarningCount, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *SQLiteRepository) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (r *SQLiteRepository) SetConfig(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func scanEpisodeRow(scan func(dest ...any) error) (*Episode, error) {
	var e Episode
	var description sql.NullString
	var cuts, createdAt, updatedAt string

	err := scan(&e.ID, &e.StreamID, &e.Title, &description, &cuts, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Description = description.String
	if err := json.Unmarshal([]byte(cuts), &e.Cuts); err != nil {
		return nil, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &e, nil
}

func scanEpisodes(rows *sql.Rows) ([]*Episode, error) {
	var episodes []*Episode
	for rows.Next() {
		e, err := scanEpisodeRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, e)
	}
	return episodes, rows.Err()
}

func marshalCuts(cuts []Cut) (string, error) {
	if cuts == nil {
		cuts = []Cut{}
	}
	encoded, err := json.Marshal(cuts)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
