package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ewaste-estimator/api/internal/config"
	"ewaste-estimator/api/internal/estimate"
	"ewaste-estimator/api/internal/handle"
	"ewaste-estimator/api/internal/httpserver"
	"ewaste-estimator/api/internal/vision"
	"ewaste-estimator/api/internal/vision/gemini"
	"ewaste-estimator/api/internal/vision/openai"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	engines := &vision.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	h := handle.New(engines, estimate.DefaultPriceTable,
		time.Duration(cfg.RequestTimeoutSec)*time.Second,
		cfg.MaxUploadMB<<20)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", h.Liveness)
	mux.HandleFunc("/estimate", h.Estimate)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := httpserver.Serve(ctx, ":"+cfg.Port, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}
