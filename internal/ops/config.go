package ops

import (
	"encoding/json"
	"os"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/algoexec"
	"main/internal/booking"
	"main/internal/gui"
	"main/internal/marketdata"
	"main/internal/model"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	DataDir              string             `json:"dataDir"`
	OutputDir            string             `json:"outputDir"`
	BookDepth            int                `json:"bookDepth"`
	SpreadThresholdTicks int64              `json:"spreadThresholdTicks"`
	ThrottleMillis       int64              `json:"throttleMillis"`
	Books                []string           `json:"books"`
	Postgres             *PostgresConfig    `json:"postgres"`
	WebSocket            *WebSocketConfig   `json:"websocket"`
	Features             FeatureFlagsConfig `json:"features"`
}

// PostgresConfig describes the optional historical database sink.
type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"sslMode"`
}

// WebSocketConfig describes the optional live price display endpoint.
type WebSocketConfig struct {
	Addr string `json:"addr"`
}

// FeatureFlagsConfig captures optional runtime flags.
type FeatureFlagsConfig struct {
	EnableInquiries *bool `json:"enableInquiries"`
	EnableAlgo      *bool `json:"enableAlgo"`
}

// FeatureFlags are resolved runtime flags.
type FeatureFlags struct {
	EnableInquiries bool
	EnableAlgo      bool
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	DataDir         string
	OutputDir       string
	BookDepth       int
	SpreadThreshold model.Price
	Throttle        time.Duration
	Books           []string
	Postgres        *PostgresConfig
	WebSocket       *WebSocketConfig
	Features        FeatureFlags
}

// Default returns the configuration used when no file is given.
func Default() Loaded {
	return Loaded{
		DataDir:         "data",
		OutputDir:       "output",
		BookDepth:       marketdata.DefaultBookDepth,
		SpreadThreshold: algoexec.DefaultThreshold,
		Throttle:        gui.DefaultThrottle,
		Books:           booking.DefaultBooks,
		Features:        FeatureFlags{EnableInquiries: true, EnableAlgo: true},
	}
}

// Load reads a JSON config file and resolves it against the defaults.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "read config")
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "parse config")
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	loaded := Default()

	if cfg.DataDir != "" {
		loaded.DataDir = cfg.DataDir
	}
	if cfg.OutputDir != "" {
		loaded.OutputDir = cfg.OutputDir
	}
	if cfg.BookDepth != 0 {
		if cfg.BookDepth < 0 {
			return Loaded{}, errors.New("bookDepth must be > 0")
		}
		loaded.BookDepth = cfg.BookDepth
	}
	if cfg.SpreadThresholdTicks != 0 {
		if cfg.SpreadThresholdTicks < 0 {
			return Loaded{}, errors.New("spreadThresholdTicks must be > 0")
		}
		loaded.SpreadThreshold = model.Price(cfg.SpreadThresholdTicks)
	}
	if cfg.ThrottleMillis != 0 {
		if cfg.ThrottleMillis < 0 {
			return Loaded{}, errors.New("throttleMillis must be > 0")
		}
		loaded.Throttle = time.Duration(cfg.ThrottleMillis) * time.Millisecond
	}
	if len(cfg.Books) != 0 {
		for _, book := range cfg.Books {
			if book == "" {
				return Loaded{}, errors.New("book name must not be empty")
			}
		}
		loaded.Books = cfg.Books
	}

	loaded.Postgres = cfg.Postgres
	loaded.WebSocket = cfg.WebSocket
	if cfg.Features.EnableInquiries != nil {
		loaded.Features.EnableInquiries = *cfg.Features.EnableInquiries
	}
	if cfg.Features.EnableAlgo != nil {
		loaded.Features.EnableAlgo = *cfg.Features.EnableAlgo
	}
	return loaded, nil
}
