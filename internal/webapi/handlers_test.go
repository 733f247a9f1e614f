package webapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	RegisterRoutes(mux)
	return mux
}

func postRank(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/rank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
}

func TestHandleRank_Valid(t *testing.T) {
	mux := newTestMux(t)
	rec := postRank(t, mux, `{
		"rows": [
			["A", "1", "2", "1"],
			["B", "2", "1", "2"],
			["C", "3", "3", "3"]
		],
		"weights": "1,1,1",
		"impacts": "+,+,+"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)

	// C dominates every criterion, so it must come back with rank 1.
	require.Equal(t, "C", resp.Results[2].ID)
	require.Equal(t, 1, resp.Results[2].Rank)
	require.Greater(t, resp.Results[2].Score, resp.Results[0].Score)
	require.Greater(t, resp.Results[2].Score, resp.Results[1].Score)
}

func TestHandleRank_SchemaViolation(t *testing.T) {
	mux := newTestMux(t)
	rec := postRank(t, mux, `{"rows": [["A", 1, 2]], "weights": "1,1", "impacts": "+,-"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Details)
}

func TestHandleRank_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"count mismatch",
			`{"rows": [["A","1","2","3"]], "weights": "1,1", "impacts": "+,+,+"}`,
			"number of weights",
		},
		{
			"bad impact token",
			`{"rows": [["A","1","2","3"]], "weights": "1,1,1", "impacts": "+,*,-"}`,
			"'+' or '-'",
		},
		{
			"non-numeric cell",
			`{"rows": [["A","1","x","3"]], "weights": "1,1,1", "impacts": "+,+,+"}`,
			"numeric values only",
		},
		{
			"zero column",
			`{"rows": [["A","0","1","2"],["B","0","2","1"]], "weights": "1,1,1", "impacts": "+,+,+"}`,
			"only zeros",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postRank(t, newTestMux(t), tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Contains(t, resp.Error, tt.want)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	mux := newTestMux(t)
	handler := CORSMiddleware(mux, "https://example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/rank", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
