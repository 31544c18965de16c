package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cutroom/cutroom-agent/internal/library"
)

func exportFixture() *fakeLibrary {
	lib := &fakeLibrary{}
	now := time.Now()
	lib.streams = append(lib.streams, &library.Stream{ID: "s1", Title: "Stream", CreatedAt: now})
	lib.clips = append(lib.clips,
		&library.MediaClip{ID: "c1", StreamID: "s1", URI: "file:///rec/0001.mp4", DurationSeconds: 100, Position: 0, CreatedAt: now},
		&library.MediaClip{ID: "c2", StreamID: "s1", URI: "file:///rec/0002.mp4", DurationSeconds: 100, Position: 1, CreatedAt: now},
	)
	lib.episodes = append(lib.episodes, &library.Episode{
		ID: "e1", StreamID: "s1", Title: "Episode One",
		Cuts: []library.Cut{
			{Start: "PT10S", End: "PT30S"},
			{Start: "PT1M20S", End: "PT2M10S"},
		},
		CreatedAt: now, UpdatedAt: now,
	})
	return lib
}

func TestExportEpisode(t *testing.T) {
	lib := exportFixture()
	router := NewRouter(testConfig(lib))

	rr := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/episodes/e1/export", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	body := decodeJSONBody(t, rr)
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
	if body["filename"] != "Episode One.otio" {
		t.Errorf("filename = %v, want Episode One.otio", body["filename"])
	}
	// Cut two spans the clip boundary at 100s, so it contributes two
	// tracks on top of the first cut's one.
	if got, _ := body["track_count"].(float64); int(got) != 3 {
		t.Errorf("track_count = %v, want 3", body["track_count"])
	}

	doc, _ := body["document"].(string)
	if !strings.Contains(doc, `"OTIO_SCHEMA": "Timeline.1"`) {
		t.Error("document missing Timeline schema tag")
	}
	if !strings.Contains(doc, "file:///rec/0001.mp4") {
		t.Error("document missing first clip target_url")
	}
	if !strings.Contains(doc, "file:///rec/0002.mp4") {
		t.Error("document missing second clip target_url")
	}
}

func TestExportEpisode_RecordsHistory(t *testing.T) {
	lib := exportFixture()
	router := NewRouter(testConfig(lib))

	rr := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/episodes/e1/export", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	if len(lib.exports) != 1 {
		t.Fatalf("export records = %d, want 1", len(lib.exports))
	}
	rec := lib.exports[0]
	if rec.EpisodeID != "e1" {
		t.Errorf("EpisodeID = %q, want e1", rec.EpisodeID)
	}
	if rec.TrackCount != 3 {
		t.Errorf("TrackCount = %d, want 3", rec.TrackCount)
	}

	rr = httptest.NewRecorder()
	req = authedRequest(http.MethodGet, "/exports", nil)
	router.ServeHTTP(rr, req)

	body := decodeJSONBody(t, rr)
	exports, ok := body["exports"].([]interface{})
	if !ok || len(exports) != 1 {
		t.Fatalf("exports = %v, want 1 entry", body["exports"])
	}
}

func TestExportEpisode_NotFound(t *testing.T) {
	router := NewRouter(testConfig(&fakeLibrary{}))

	rr := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/episodes/missing/export", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestExportEpisode_NoClips_StillSucceedsWithWarning(t *testing.T) {
	lib := &fakeLibrary{}
	now := time.Now()
	lib.streams = append(lib.streams, &library.Stream{ID: "s1", Title: "Stream", CreatedAt: now})
	lib.episodes = append(lib.episodes, &library.Episode{
		ID: "e1", StreamID: "s1", Title: "Empty",
		Cuts:      []library.Cut{{Start: "PT0S", End: "PT10S"}},
		CreatedAt: now, UpdatedAt: now,
	})
	router := NewRouter(testConfig(lib))

	rr := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/episodes/e1/export", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	body := decodeJSONBody(t, rr)
	if got, _ := body["track_count"].(float64); int(got) != 0 {
		t.Errorf("track_count = %v, want 0", body["track_count"])
	}
	warnings, _ := body["warnings"].([]interface{})
	if len(warnings) == 0 {
		t.Error("expected at least one warning for empty inputs")
	}
}

func TestExportEpisode_MalformedCutSkipped(t *testing.T) {
	lib := exportFixture()
	lib.episodes[0].Cuts = []library.Cut{
		{Start: "PT10S", End: "PT30S"},
		{Start: "garbage", End: "PT50S"},
	}
	router := NewRouter(testConfig(lib))

	rr := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/episodes/e1/export", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	body := decodeJSONBody(t, rr)
	if got, _ := body["track_count"].(float64); int(got) != 1 {
		t.Errorf("track_count = %v, want 1", body["track_count"])
	}
	warnings, _ := body["warnings"].([]interface{})
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want 1 entry", body["warnings"])
	}
}
