package webapi

// RankRequest is the JSON body for POST /api/rank. Rows carry the raw
// table cells: identifier first, criteria after. Weights and impacts use
// the same comma-separated form as the CLI arguments.
type RankRequest struct {
	Rows    [][]string `json:"rows"`
	Weights string     `json:"weights"`
	Impacts string     `json:"impacts"`
}

// RankedRow is the score and rank computed for one alternative.
type RankedRow struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// RankResponse holds one RankedRow per request row, in request order.
type RankResponse struct {
	Results []RankedRow `json:"results"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors. Details carries the individual
// schema violations when the body failed validation.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
