// Package webapi exposes the TOPSIS engine as a JSON API.
package webapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/decisionlab/topsis/internal/topsis"
	"github.com/decisionlab/topsis/internal/validation"
)

// Version is set at build time or defaults to dev.
var Version = "dev"

// maxBodyBytes bounds the accepted request body size.
const maxBodyBytes = 10 << 20

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct{}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleRank validates the request body against the JSON schema, runs the
// TOPSIS pipeline and returns a score and rank per row, in request order.
func (h *Handlers) HandleRank(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body failed")
		return
	}

	if violations := validation.ValidateRankRequestBytes(body); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "request body does not match the rank request schema",
			Details: violations,
		})
		return
	}

	var req RankRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := topsis.ParseInput(req.Rows, req.Weights, req.Impacts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := topsis.Rank(in.Matrix, in.Weights, in.Impacts)
	if err != nil {
		// Validation already ran, so only data-dependent failures such as
		// an all-zero column reach this point.
		status := http.StatusInternalServerError
		if errors.Is(err, topsis.ErrDegenerateColumn) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	resp := RankResponse{Results: make([]RankedRow, len(res))}
	for i, row := range res {
		resp.Results[i] = RankedRow{ID: in.IDs[i], Score: row.Score, Rank: row.Rank}
	}
	writeJSON(w, http.StatusOK, resp)
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux) {
	h := &Handlers{}
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("POST /api/rank", h.HandleRank)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
