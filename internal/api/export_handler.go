package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cutroom/cutroom-agent/internal/export"
)

func exportEpisodeHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		episode, err := cfg.Library.GetEpisode(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if episode == nil {
			WriteError(w, http.StatusNotFound, "episode not found", "NOT_FOUND")
			return
		}

		clips, err := cfg.Library.ClipsForStream(r.Context(), episode.StreamID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}

		mediaClips := make([]export.MediaClip, 0, len(clips))
		for _, c := range clips {
			mediaClips = append(mediaClips, export.MediaClip{
				URI:             c.URI,
				DurationSeconds: c.DurationSeconds,
			})
		}

		cuts := make([]export.Cut, 0, len(episode.Cuts))
		for _, c := range episode.Cuts {
			cuts = append(cuts, export.Cut{Start: c.Start, End: c.End})
		}

		result, err := cfg.Exporter.Export(export.Episode{
			Title:       episode.Title,
			Description: episode.Description,
			Cuts:        cuts,
		}, mediaClips)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to build export", "INTERNAL_ERROR")
			return
		}

		if _, err := cfg.Library.RecordExport(r.Context(), episode.ID, result.Filename, result.TrackCount, len(result.Warnings)); err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to record export", "INTERNAL_ERROR")
			return
		}

		WriteJSON(w, http.StatusOK, ExportResponse{
			Status:     "ok",
			Filename:   result.Filename,
			TrackCount: result.TrackCount,
			Warnings:   result.Warnings,
			Document:   result.Document,
		})
	}
}
