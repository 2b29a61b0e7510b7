package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigRead  = errors.New("failed to read config file")
	errConfigValue = errors.New("invalid config value")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "folio"
	DefaultConfigName  = "folio"
	DefaultDBName      = "folio.db"
	DefaultLogName     = "folio.log"
	EnvPrefix          = "folio"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultBaseURL     = "http://localhost:8080"
	DefaultThreshold   = 3
	DefaultFPS         = 60
)

type Config struct {
	// ContactBaseURL is the origin hosting the POST /api/contact endpoint.
	ContactBaseURL string `mapstructure:"contact_base_url"`
	// ContentPath points to a yaml portfolio document. Empty uses the built in one.
	ContentPath string `mapstructure:"content_path"`
	// ThresholdRows is how far below the top of the viewport the active section line sits.
	ThresholdRows int    `mapstructure:"threshold_rows"`
	MarkdownStyle string `mapstructure:"markdown_style"`
	// FPS caps both rendering and scroll recomputation.
	FPS           int  `mapstructure:"fps"`
	HTTPTimeoutMs int  `mapstructure:"http_timeout_ms"`
	History       bool `mapstructure:"history"`
	Debug         bool `mapstructure:"debug"`
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutMs <= 0 {
		return DefaultHTTPTimeout
	}

	return time.Duration(c.HTTPTimeoutMs) * time.Millisecond
}

// FrameInterval is the minimum time between two scroll recomputations.
func (c Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	return time.Second / time.Duration(fps)
}

func (c Config) validate() error {
	if c.ThresholdRows < 0 {
		return errors.Join(errConfigValue, errors.New("threshold_rows must not be negative"))
	}

	if c.FPS < 0 || c.FPS > 120 {
		return errors.Join(errConfigValue, errors.New("fps must be between 0 and 120"))
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
