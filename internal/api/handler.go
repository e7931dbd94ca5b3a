package api

import (
	"encoding/json"
	"net/http"
	"time"

	"maropost_fixtures/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter exposes:
//
//	GET /health
//	GET /{collection}
//	GET /{collection}/{id}
func NewRouter(store *Store, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/{collection}", func(w http.ResponseWriter, r *http.Request) {
		collection := chi.URLParam(r, "collection")
		records, ok := store.List(collection)
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown collection " + collection})
			return
		}
		writeJSON(w, http.StatusOK, records)
	})

	r.Get("/{collection}/{id}", func(w http.ResponseWriter, r *http.Request) {
		collection := chi.URLParam(r, "collection")
		id := chi.URLParam(r, "id")
		if !validation.ValidateRecordID(id) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
			return
		}

		record, known, found := store.Get(collection, id)
		switch {
		case !known:
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown collection " + collection})
		case !found:
			hlog.FromRequest(r).Debug().Str("collection", collection).Str("id", id).Msg("record not found")
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
		default:
			writeJSON(w, http.StatusOK, record)
		}
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
