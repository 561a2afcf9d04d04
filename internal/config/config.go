package config

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Options holds the runtime configuration, populated from command-line
// flags with environment-variable fallbacks.
type Options struct {
	SourcesPath string `long:"sources" env:"SOURCES_PATH" default:"feeds/sources.yaml" description:"Path to the YAML source list"`
	DataDir     string `long:"data-dir" env:"DATA_DIR" default:"data" description:"Directory for digest output and prior-run state"`

	RecencyHours     int    `long:"recency-hours" env:"RECENCY_HOURS" default:"168" description:"Admit articles published within this many hours"`
	MaxTotalArticles int    `long:"max-articles" env:"MAX_TOTAL_ARTICLES" default:"50" description:"Cap on articles in the final digest"`
	Similarity       string `long:"similarity" env:"SIMILARITY_MODE" default:"trigram" choice:"trigram" choice:"exact" description:"Duplicate title detection strategy"`

	GeminiAPIKey       string `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Gemini API key (empty: extractive summaries only)"`
	GeminiModel        string `long:"gemini-model" env:"GEMINI_MODEL" default:"gemini-1.5-flash" description:"Gemini model name"`
	MaxGenerationCalls int    `long:"max-generation-calls" env:"MAX_GENERATION_CALLS" default:"25" description:"Summarization call budget per run (0 = unlimited)"`

	RequestTimeoutSeconds int    `long:"request-timeout" env:"REQUEST_TIMEOUT" default:"30" description:"HTTP timeout in seconds for feed and page fetches"`
	RetryAttempts         int    `long:"retry-attempts" env:"RETRY_ATTEMPTS" default:"3" description:"Attempts for feed fetch and generation calls"`
	RetryDelaySeconds     int    `long:"retry-delay" env:"RETRY_DELAY" default:"5" description:"Base delay in seconds between retries"`
	UserAgent             string `long:"user-agent" env:"USER_AGENT" default:"newsdigest/1.0" description:"User agent string for HTTP requests"`

	Timezone string `long:"timezone" env:"TZ" description:"Timezone for canonical timestamps (default: system local)"`

	EnableMonitoring bool   `long:"monitoring" env:"ENABLE_HTTP_MONITORING" description:"Serve /health and /metrics over HTTP"`
	MonitoringPort   string `long:"monitoring-port" env:"MONITORING_PORT" default:"8080" description:"Monitoring server port"`
	Debug            bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses flags and environment. It returns (nil, nil) when help was
// requested and already printed.
func Load() (*Options, error) {
	var opts Options

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &opts, nil
}

func (o *Options) RecencyWindow() time.Duration {
	return time.Duration(o.RecencyHours) * time.Hour
}

func (o *Options) RequestTimeout() time.Duration {
	return time.Duration(o.RequestTimeoutSeconds) * time.Second
}

func (o *Options) RetryDelay() time.Duration {
	return time.Duration(o.RetryDelaySeconds) * time.Second
}

// Location resolves the configured timezone, falling back to the system
// local zone when unset or invalid.
func (o *Options) Location() *time.Location {
	if o.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
