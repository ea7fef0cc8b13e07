package cmd

import (
	"fmt"

	"github.com/mj1618/tasktrees/internal/model"
	"github.com/mj1618/tasktrees/internal/output"
	"github.com/mj1618/tasktrees/internal/platform"
	"github.com/spf13/cobra"
)

// StateResult is the output of `state show`.
type StateResult struct {
	Path  string            `yaml:"path"  json:"path"`
	Found bool              `yaml:"found" json:"found"`
	State model.WindowState `yaml:"state" json:"state"`
}

// StateActionResult is the output of state commands that change the file.
type StateActionResult struct {
	OK     bool               `yaml:"ok"              json:"ok"`
	Action string             `yaml:"action"          json:"action"`
	Path   string             `yaml:"path"            json:"path"`
	State  *model.WindowState `yaml:"state,omitempty" json:"state,omitempty"`
}

func init() {
	rootCmd.AddCommand(newStateCmd())
}

func newStateCmd() *cobra.Command {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or change the saved window state",
		Long:  "Inspect or change window_state.json, the file the main window restores its geometry from.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			output.OutputFormat = f
			output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")
			return nil
		},
	}
	stateCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	stateCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")

	stateCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the window state file path",
		Args:  cobra.NoArgs,
		RunE:  runStatePath,
	})
	stateCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the window state the next launch will restore",
		Args:  cobra.NoArgs,
		RunE:  runStateShow,
	})
	stateCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete the window state so the next launch uses default geometry",
		Args:  cobra.NoArgs,
		RunE:  runStateReset,
	})

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Overwrite fields of the saved window state",
		Long: `Overwrite fields of the saved window state. Fields not given keep their
saved value, or the default if nothing is saved.

Examples:
  tasktrees state set --size 1280x800
  tasktrees state set --position=-1920,0 --maximized`,
		Args: cobra.NoArgs,
		RunE: runStateSet,
	}
	setCmd.Flags().String("size", "", "Window size as WIDTHxHEIGHT")
	setCmd.Flags().String("position", "", "Window position as x,y")
	setCmd.Flags().Bool("maximized", false, "Start maximized")
	stateCmd.AddCommand(setCmd)

	return stateCmd
}

func runStatePath(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.log.Close()

	path, err := env.store.ResolvePath()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output.Writer, path)
	return err
}

func runStateShow(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.log.Close()

	path, err := env.store.ResolvePath()
	if err != nil {
		return err
	}
	state, found := env.store.Load(path)
	return output.Print(StateResult{Path: path, Found: found, State: state})
}

func runStateReset(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.log.Close()

	path, err := env.store.ResolvePath()
	if err != nil {
		return err
	}
	if err := env.store.Remove(path); err != nil {
		return err
	}
	return output.Print(StateActionResult{OK: true, Action: "reset", Path: path})
}

func runStateSet(cmd *cobra.Command, args []string) error {
	sizeFlag, _ := cmd.Flags().GetString("size")
	posFlag, _ := cmd.Flags().GetString("position")
	maximizedChanged := cmd.Flags().Changed("maximized")

	if sizeFlag == "" && posFlag == "" && !maximizedChanged {
		return fmt.Errorf("specify --size, --position, or --maximized")
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.log.Close()

	path, err := env.store.ResolvePath()
	if err != nil {
		return err
	}
	state, _ := env.store.Load(path)

	if sizeFlag != "" {
		size, err := platform.ParseSize(sizeFlag)
		if err != nil {
			return err
		}
		state.Width, state.Height = size.Width, size.Height
	}
	if posFlag != "" {
		pos, err := platform.ParsePosition(posFlag)
		if err != nil {
			return err
		}
		state.X, state.Y = pos.X, pos.Y
	}
	if maximizedChanged {
		state.IsMaximized, _ = cmd.Flags().GetBool("maximized")
	}

	if err := env.store.Save(path, state); err != nil {
		return err
	}
	return output.Print(StateActionResult{OK: true, Action: "set", Path: path, State: &state})
}
