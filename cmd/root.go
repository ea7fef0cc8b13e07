package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/tasktrees/internal/config"
	"github.com/mj1618/tasktrees/internal/logging"
	"github.com/mj1618/tasktrees/internal/statestore"
	"github.com/mj1618/tasktrees/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "tasktrees",
	Short: "TaskTrees desktop application",
	Long: `TaskTrees desktop application.

Run without arguments to open the main window. The window's size, position
and maximized state are restored from the previous session and saved again
when the window is closed.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runApp,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
}

// appEnv bundles the collaborators shared by all commands.
type appEnv struct {
	log   *logging.Logger
	store *statestore.Store
}

// newAppEnv is swapped in tests to point the store at a temp directory.
var newAppEnv = defaultAppEnv

func defaultAppEnv() (*appEnv, error) {
	dir, err := statestore.New(nil).AppDir()
	if err != nil {
		return nil, fmt.Errorf("cannot locate the TaskTrees config directory: %w", err)
	}

	settings, settingsErr := config.Load(nil, dir)
	log, err := logging.New(settings.LoggingConfig())
	if err != nil {
		log = logging.NewDefault()
		log.Warn("invalid log settings, using defaults", zap.Error(err))
	}
	if settingsErr != nil {
		log.Warn("ignoring settings.yaml", zap.Error(settingsErr))
	}

	return &appEnv{
		log:   log,
		store: statestore.New(log.Logger),
	}, nil
}
