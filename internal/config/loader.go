package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader. When configFile is empty the default search paths are used. A nil
// changes channel disables watching.
func NewLoader(configFile string, changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("contact_base_url", DefaultBaseURL)
	loader.SetDefault("content_path", "")
	loader.SetDefault("threshold_rows", DefaultThreshold)
	loader.SetDefault("markdown_style", "dark")
	loader.SetDefault("fps", DefaultFPS)
	loader.SetDefault("http_timeout_ms", int(DefaultHTTPTimeout.Milliseconds()))
	loader.SetDefault("history", true)
	loader.SetDefault("debug", false)
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts broadcasting config file edits.
func (cl *Loader) Watch() {
	if cl.changes == nil {
		return
	}

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

// Read loads the config. A missing config file is not an error, defaults and environment
// variables are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
