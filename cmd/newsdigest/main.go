package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"newsdigest/internal/article"
	"newsdigest/internal/config"
	"newsdigest/internal/dedup"
	"newsdigest/internal/feed"
	"newsdigest/internal/gemini"
	"newsdigest/internal/logger"
	"newsdigest/internal/metrics"
	"newsdigest/internal/pipeline"
	"newsdigest/internal/ratelimit"
	"newsdigest/internal/retry"
	"newsdigest/internal/scrape"
	"newsdigest/internal/store"
	"newsdigest/internal/summary"
)

func main() {
	// Local development convenience; absence of .env is not an error.
	_ = godotenv.Load()

	opts, err := config.Load()
	if err != nil {
		logger.Init(false)
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}
	if opts == nil {
		return // help was printed
	}

	logger.Init(opts.Debug)

	if opts.EnableMonitoring {
		go startMonitoringServer(opts.MonitoringPort)
	}

	if err := run(opts); err != nil {
		metrics.Global.SetError(err.Error())
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(opts *config.Options) error {
	ctx := context.Background()

	sources, err := config.LoadSources(opts.SourcesPath)
	if err != nil {
		return err
	}
	logger.Info("loaded sources", "count", len(sources))

	retryCfg := retry.Config{
		MaxAttempts: opts.RetryAttempts,
		Delay:       opts.RetryDelay(),
		Backoff:     true,
	}

	var gen summary.Generator
	if opts.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, opts.GeminiAPIKey, opts.GeminiModel)
		if err != nil {
			logger.Warn("Gemini unavailable, using extractive summaries", "error", err)
		} else {
			defer client.Close()
			gen = client
		}
	} else {
		logger.Info("no Gemini API key, using extractive summaries")
	}

	var sim dedup.TitleSimilarity = dedup.Trigram{}
	if opts.Similarity == "exact" {
		sim = dedup.ExactNormalized{}
	}

	processor := &pipeline.Processor{
		Fetcher:    feed.NewHTTPFetcher(opts.RequestTimeout(), opts.UserAgent, retryCfg),
		Extractor:  scrape.New(opts.RequestTimeout(), opts.UserAgent),
		Summarizer: summary.New(gen, ratelimit.New(opts.MaxGenerationCalls), retryCfg),
		Dates:      article.NewNormalizer(opts.Location()),
		Seen:       store.LoadSeenHashes(opts.DataDir),
	}

	orchestrator := &pipeline.Orchestrator{
		Processor:     processor,
		Detector:      dedup.NewDetector(sim, 0),
		MaxTotal:      opts.MaxTotalArticles,
		RecencyWindow: opts.RecencyWindow(),
	}

	articles := orchestrator.Run(ctx, sources)

	now := time.Now()
	digest := store.BuildDigest(articles, now)
	path, err := store.WriteDigest(opts.DataDir, digest, now)
	if err != nil {
		return err
	}

	logger.Info("digest written",
		"path", path,
		"articles", digest.TotalArticles,
		"breaking", digest.BreakingNewsCount)
	return nil
}

func startMonitoringServer(port string) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	logger.Info("starting monitoring server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if healthy, ok := stats["is_healthy"].(bool); ok && !healthy {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics.Global.GetStats())
}
