// Package statestore persists the main window's geometry between sessions.
//
// The state lives in <user config dir>/TaskTrees/window_state.json. Reads are
// best-effort: a missing, unreadable or corrupt file yields the default state
// and never an error, and each field falls back independently.
package statestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mj1618/tasktrees/internal/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// AppDirName is the application's subdirectory under the user config dir.
	AppDirName = "TaskTrees"
	// FileName is the state file inside AppDirName.
	FileName = "window_state.json"
)

// ErrNoConfigDir is returned when the host has no per-user config location.
var ErrNoConfigDir = errors.New("user config directory not available")

// Store reads and writes the window state file.
type Store struct {
	fs        afero.Fs
	configDir func() (string, error)
	log       *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFs replaces the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) { s.fs = fsys }
}

// WithConfigDir replaces os.UserConfigDir as the config base resolver.
func WithConfigDir(fn func() (string, error)) Option {
	return func(s *Store) { s.configDir = fn }
}

// New creates a Store on the OS filesystem.
func New(log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		fs:        afero.NewOsFs(),
		configDir: os.UserConfigDir,
		log:       log.Named("statestore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppDir returns <user config dir>/TaskTrees without touching the filesystem.
func (s *Store) AppDir() (string, error) {
	base, err := s.configDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	if base == "" {
		return "", ErrNoConfigDir
	}
	return filepath.Join(base, AppDirName), nil
}

// ResolvePath returns the state file path, creating the application
// directory if needed. A directory that cannot be created is logged and
// otherwise ignored; only an unresolvable config dir is an error.
func (s *Store) ResolvePath() (string, error) {
	dir, err := s.AppDir()
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		s.log.Warn("failed to create state directory", zap.String("dir", dir), zap.Error(err))
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the state at path. found is false when the file is missing,
// unreadable or not valid JSON; state then holds the defaults.
func (s *Store) Load(path string) (state model.WindowState, found bool) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("no saved window state", zap.String("path", path))
		} else {
			s.log.Warn("failed to read window state", zap.String("path", path), zap.Error(err))
		}
		return model.DefaultWindowState(), false
	}

	state, err = Decode(data)
	if err != nil {
		s.log.Warn("ignoring corrupt window state", zap.String("path", path), zap.Error(err))
		return model.DefaultWindowState(), false
	}
	return state, true
}

// Save overwrites path with state. The write is direct, not atomic: a crash
// mid-write can leave a truncated file, which Load treats as absent.
func (s *Store) Save(path string, state model.WindowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode window state: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write window state: %w", err)
	}
	s.log.Debug("window state saved",
		zap.String("path", path),
		zap.Uint32("width", state.Width),
		zap.Uint32("height", state.Height),
		zap.Int32("x", state.X),
		zap.Int32("y", state.Y),
		zap.Bool("maximized", state.IsMaximized),
	)
	return nil
}

// Remove deletes the state file. A missing file is not an error.
func (s *Store) Remove(path string) error {
	if err := s.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove window state: %w", err)
	}
	return nil
}
