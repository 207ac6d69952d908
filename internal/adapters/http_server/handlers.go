// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/observability"
	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/output"
	"github.com/tienhung-ho/my-hotel-merger/internal/app"
	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

type Handlers struct{ Svc *app.MergeService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.listHotels)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody renders once and hashes once, returning both ETag and body.
func calcETagAndBody(hotels []domain.Hotel) (string, []byte, error) {
	body, err := output.JSON(hotels)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body, nil
}

// listHotels runs a full merge across all configured suppliers, optionally
// narrowed by ?hotels= and ?destinations= comma-separated ID lists.
func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hotelIDs := app.ParseIDFilter(q.Get("hotels"))
	destinationIDs := app.ParseIDFilter(q.Get("destinations"))

	hotels, stats, err := h.Svc.Run(r.Context(), hotelIDs, destinationIDs)
	if err != nil {
		observability.ObserveMergeRun("error", 0, 0)
		if errors.Is(err, domain.ErrNoSupplierData) {
			writeProblem(w, http.StatusBadGateway, "Upstream Unavailable", "no supplier returned any data")
			return
		}
		log.Error().Err(err).Msg("merge run failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "merge run failed")
		return
	}
	observability.ObserveMergeRun("ok", len(hotels), stats.Skipped)

	etag, body, err := calcETagAndBody(hotels)
	if err != nil {
		log.Error().Err(err).Msg("render hotels failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "render failed")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listHotels body")
	}
}
