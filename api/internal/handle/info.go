package handle

import "net/http"

// Liveness answers GET / with a short identification string.
func (h *Handle) Liveness(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("e-waste price estimator"))
}

// EstimateInfo answers GET /estimate with usage instructions.
func (h *Handle) EstimateInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"usage":      "POST an image of an electronic device as multipart form data",
		"field":      "image",
		"extensions": []string{"png", "jpg", "jpeg", "gif", "webp"},
		"returns":    "estimated_price and detected_info",
	})
}
