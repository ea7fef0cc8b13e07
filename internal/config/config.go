// Package config loads optional application settings from settings.yaml in
// the TaskTrees config directory. The window state file is not a setting
// and is handled by statestore.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mj1618/tasktrees/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	configFileName = "settings"
	configFileType = "yaml"

	keyLogLevel       = "log.level"
	keyLogDevelopment = "log.development"
	keyLogFile        = "log.file"

	defaultLogLevel = "info"
)

// Settings is the application configuration.
type Settings struct {
	Log LogSettings
}

// LogSettings configures the logger.
type LogSettings struct {
	Level       string
	Development bool
	// File is the log file path. Relative paths resolve against the config
	// directory; empty means stderr.
	File string
}

// Default returns the settings used when no settings.yaml exists.
func Default() Settings {
	return Settings{Log: LogSettings{Level: defaultLogLevel}}
}

// Load reads settings.yaml from dir. A missing file is not an error; the
// defaults are returned. fsys may be nil to use the OS filesystem.
func Load(fsys afero.Fs, dir string) (Settings, error) {
	v := viper.New()
	if fsys != nil {
		v.SetFs(fsys)
	}
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogDevelopment, false)
	v.SetDefault(keyLogFile, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Default(), fmt.Errorf("read settings: %w", err)
		}
	}

	s := Settings{
		Log: LogSettings{
			Level:       v.GetString(keyLogLevel),
			Development: v.GetBool(keyLogDevelopment),
			File:        v.GetString(keyLogFile),
		},
	}
	if s.Log.File != "" && !filepath.IsAbs(s.Log.File) {
		s.Log.File = filepath.Join(dir, s.Log.File)
	}
	return s, nil
}

// LoggingConfig converts the log settings to a logging.Config.
func (s Settings) LoggingConfig() logging.Config {
	cfg := logging.Config{
		Level:       s.Log.Level,
		Development: s.Log.Development,
		OutputPaths: []string{"stderr"},
	}
	if s.Log.File != "" {
		cfg.OutputPaths = []string{s.Log.File}
	}
	return cfg
}
