// Package handle implements the HTTP surface of the estimator.
package handle

import (
	"encoding/json"
	"net/http"
	"time"

	"ewaste-estimator/api/internal/estimate"
	"ewaste-estimator/api/internal/vision"
)

type Handle struct {
	engs           *vision.Engines
	table          estimate.PriceTable
	timeout        time.Duration
	maxUploadBytes int64
}

func New(engs *vision.Engines, table estimate.PriceTable, timeout time.Duration, maxUploadBytes int64) *Handle {
	return &Handle{
		engs:           engs,
		table:          table,
		timeout:        timeout,
		maxUploadBytes: maxUploadBytes,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	RawText string `json:"raw_text,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
