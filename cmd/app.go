package cmd

import (
	"context"
	"fmt"

	"github.com/mj1618/tasktrees/internal/lifecycle"
	"github.com/mj1618/tasktrees/internal/model"
	wailsplatform "github.com/mj1618/tasktrees/internal/platform/wails"
	"github.com/mj1618/tasktrees/internal/ui"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"
)

const appTitle = "TaskTrees"

// runApp opens the main window and blocks until the application exits.
func runApp(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.log.Close()

	assets, err := ui.Assets()
	if err != nil {
		return fmt.Errorf("load frontend assets: %w", err)
	}

	window := wailsplatform.NewWindow()
	ctrl := lifecycle.New(env.store, window, window, env.log.Logger)

	startupErr := make(chan error, 1)
	err = wails.Run(&options.App{
		Title:       appTitle,
		Width:       int(model.DefaultWidth),
		Height:      int(model.DefaultHeight),
		StartHidden: true,
		AssetServer: &assetserver.Options{Assets: assets},
		Logger:      wailsplatform.NewZapLogger(env.log.Logger),
		LogLevel:    wailsplatform.LogLevel(env.log.Level()),
		OnStartup: func(ctx context.Context) {
			if err := startWindow(ctx, window, ctrl, runtime.Quit, env.log.Logger); err != nil {
				startupErr <- err
			}
		},
		OnBeforeClose: window.BeforeClose,
	})
	return appResult(startupErr, err)
}

// mainWindow is the part of the Wails window that startup drives.
type mainWindow interface {
	Bind(ctx context.Context)
	Show() error
}

type restorer interface {
	Startup() error
}

// startWindow binds the window, restores its geometry and only then shows
// it. A restore failure quits the app and is returned; a show failure is
// only logged.
func startWindow(ctx context.Context, window mainWindow, ctrl restorer, quit func(context.Context), log *zap.Logger) error {
	window.Bind(ctx)
	if err := ctrl.Startup(); err != nil {
		quit(ctx)
		return err
	}
	if err := window.Show(); err != nil {
		log.Error("failed to show main window", zap.Error(err))
	}
	return nil
}

// appResult turns the outcome of wails.Run into the command's error. Wails
// may run OnStartup on another goroutine, so its failure arrives on a
// channel.
func appResult(startupErr <-chan error, runErr error) error {
	select {
	case err := <-startupErr:
		return fmt.Errorf("cannot start %s: %w", appTitle, err)
	default:
	}
	if runErr != nil {
		return fmt.Errorf("run %s: %w", appTitle, runErr)
	}
	return nil
}
