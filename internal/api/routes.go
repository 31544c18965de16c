package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Get("/health", healthHandler(cfg))

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.Repository, cfg.Logger))

		r.Get("/streams", listStreamsHandler(cfg))
		r.Post("/streams", createStreamHandler(cfg))
		r.Get("/streams/{id}", getStreamHandler(cfg))
		r.Delete("/streams/{id}", deleteStreamHandler(cfg))
		r.Get("/streams/{id}/clips", listClipsHandler(cfg))
		r.Post("/streams/{id}/clips", addClipHandler(cfg))

		r.Get("/episodes", listEpisodesHandler(cfg))
		r.Post("/episodes", createEpisodeHandler(cfg))
		r.Get("/episodes/{id}", getEpisodeHandler(cfg))
		r.Put("/episodes/{id}/cuts", updateCutsHandler(cfg))
		r.Post("/episodes/{id}/export", exportEpisodeHandler(cfg))

		r.Get("/exports", listExportsHandler(cfg))
	})

	return r
}

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(cfg.StartTime).Seconds())
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Version: cfg.Version,
			UptimeS: uptime,
		})
	}
}

func listStreamsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		streams, err := cfg.Library.GetStreams(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to list streams", "INTERNAL_ERROR")
			return
		}

		resp := StreamsResponse{Streams: make([]StreamResponse, len(streams))}
		for i, s := range streams {
			resp.Streams[i] = StreamToResponse(s)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func createStreamHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStreamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		stream, err := cfg.Library.CreateStream(r.Context(), req.Title, req.Description, req.Prefix)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		WriteJSON(w, http.StatusCreated, StreamToResponse(stream))
	}
}

func getStreamHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		stream, err := cfg.Library.GetStream(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if stream == nil {
			WriteError(w, http.StatusNotFound, "stream not found", "NOT_FOUND")
			return
		}
		WriteJSON(w, http.StatusOK, StreamToResponse(stream))
	}
}

func deleteStreamHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := cfg.Library.RemoveStream(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listClipsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		streamID := chi.URLParam(r, "id")
		clips, err := cfg.Library.ClipsForStream(r.Context(), streamID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}

		resp := ClipsResponse{Clips: make([]ClipResponse, len(clips))}
		for i, c := range clips {
			resp.Clips[i] = ClipToResponse(c)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func addClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		streamID := chi.URLParam(r, "id")

		var req AddClipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		clip, err := cfg.Library.AddClip(r.Context(), streamID, req.URI, req.DurationSeconds)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		WriteJSON(w, http.StatusCreated, ClipToResponse(clip))
	}
}

func listEpisodesHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		episodes, err := cfg.Library.GetEpisodes(r.Context(), 50)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to list episodes", "INTERNAL_ERROR")
			return
		}

		resp := EpisodesResponse{Episodes: make([]EpisodeResponse, len(episodes))}
		for i, e := range episodes {
			resp.Episodes[i] = EpisodeToResponse(e)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func createEpisodeHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEpisodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		episode, err := cfg.Library.CreateEpisode(r.Context(), req.StreamID, req.Title, req.Description, req.Cuts)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		WriteJSON(w, http.StatusCreated, EpisodeToResponse(episode))
	}
}

func getEpisodeHandler(cfg ServerConfig) http.HandlerFunc {
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
		WriteJSON(w, http.StatusOK, EpisodeToResponse(episode))
	}
}

func updateCutsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateCutsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		if err := cfg.Library.SetEpisodeCuts(r.Context(), id, req.Cuts); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		episode, err := cfg.Library.GetEpisode(r.Context(), id)
		if err != nil || episode == nil {
			WriteError(w, http.StatusInternalServerError, "failed to reload episode", "INTERNAL_ERROR")
			return
		}
		WriteJSON(w, http.StatusOK, EpisodeToResponse(episode))
	}
}

func listExportsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := cfg.Library.Exports(r.Context(), 50)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to list exports", "INTERNAL_ERROR")
			return
		}

		resp := ExportRecordsResponse{Exports: make([]ExportRecordResponse, len(records))}
		for i, rec := range records {
			resp.Exports[i] = ExportRecordToResponse(rec)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}
