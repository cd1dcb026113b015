package handle

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ewaste-estimator/api/internal/estimate"
	"ewaste-estimator/api/internal/util"
	"ewaste-estimator/api/internal/vision"

	"github.com/rs/zerolog/log"
)

// Field names accepted for the uploaded image. Historical clients used all
// three.
var imageFields = []string{"image", "image_file", "file"}

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type detectedInfo struct {
	DeviceType           string `json:"device_type"`
	ConditionCategory    string `json:"condition_category"`
	ConditionDescription string `json:"condition_description"`
	ExtractedText        string `json:"extracted_text"`
}

type estimateResponse struct {
	EstimatedPrice string       `json:"estimated_price"`
	DetectedInfo   detectedInfo `json:"detected_info"`
}

// Estimate handles /estimate. GET describes usage; POST takes a multipart
// image upload and returns a price estimate. Upload validation happens
// before any model call.
func (h *Handle) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.EstimateInfo(w, r)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST only"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := formImage(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	if strings.TrimSpace(header.Filename) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no file selected"})
		return
	}
	if ext := strings.ToLower(filepath.Ext(header.Filename)); !allowedExtensions[ext] {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid file type; upload png, jpg, jpeg, gif or webp"})
		return
	}

	image, err := io.ReadAll(file)
	if err != nil || len(image) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read uploaded file"})
		return
	}

	engine, err := h.engs.GetEngine(r.FormValue("llm_name"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r, h.timeout))
	defer cancel()

	raw, err := engine.Describe(ctx, image, util.SniffMimeHTTP(image))
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, vision.ErrNotConfigured) {
			code = http.StatusInternalServerError
		}
		log.Error().Err(err).Str("engine", engine.Name()).Msg("image analysis failed")
		writeJSON(w, code, errorResponse{Error: "analysis failed: " + err.Error()})
		return
	}

	analysis, err := estimate.ParseAnalysis(raw)
	if err != nil {
		log.Warn().Err(err).Str("engine", engine.Name()).Msg("model response did not contain valid JSON")
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "model response was not valid JSON",
			RawText: raw,
		})
		return
	}

	deviceType := strings.TrimSpace(analysis.DeviceType)
	if deviceType == "" {
		deviceType = "unknown"
	}

	category := estimate.ClassifyCondition(analysis.ConditionDescription)
	price := estimate.EstimatePrice(deviceType, category, h.table)

	log.Info().
		Str("engine", engine.Name()).
		Str("device", deviceType).
		Str("condition", string(category)).
		Str("price", price).
		Msg("estimate served")

	writeJSON(w, http.StatusOK, estimateResponse{
		EstimatedPrice: price,
		DetectedInfo: detectedInfo{
			DeviceType:           deviceType,
			ConditionCategory:    string(category),
			ConditionDescription: analysis.ConditionDescription,
			ExtractedText:        analysis.ExtractedText,
		},
	})
}

func formImage(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	for _, field := range imageFields {
		if file, header, err := r.FormFile(field); err == nil {
			return file, header, nil
		}
	}
	return nil, nil, errors.New("no image file uploaded; use multipart field 'image'")
}

func requestDeadline(r *http.Request, def time.Duration) time.Duration {
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return def
}
