package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/casapps/cascolor/internal/clipboard"
	"github.com/casapps/cascolor/internal/color"
	"github.com/casapps/cascolor/internal/config"
	"github.com/casapps/cascolor/internal/gui"
	"github.com/casapps/cascolor/internal/picker"
	"github.com/casapps/cascolor/internal/tui"
	"github.com/casapps/cascolor/internal/tui/screen"
	"github.com/casapps/cascolor/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const (
	BackendBubbletea = "bubbletea"
	BackendTcell     = "tcell"

	// keepLogs is how many debug logs survive startup cleanup
	keepLogs = 5
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cascolor [--update [channel]]",
		Short: "A terminal color picker",
		Long: `cascolor is a color picker for the terminal.

Pick colors from a palette or a saturation/lightness gradient, type any
HEX, rgb() or hsl() value, and copy the result as HEX, RGB, HSL, HSV or
CMYK.

The picker runs in the terminal for remote sessions or when no display is
available. Settings live in config.yaml under the user config directory
(override with CASCOLOR_CONFIG).`,
		Version:       Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadEnvFile()

			if cmd.Flags().Changed("update") {
				channel, _ := cmd.Flags().GetString("update")
				if len(args) == 1 {
					channel = args[0]
				}
				return runUpdate(cmd, channel)
			}

			if !shouldUseTUI(os.LookupEnv) {
				return gui.Run(cmd.OutOrStdout())
			}

			backend, _ := cmd.Flags().GetString("backend")
			return runPicker(cmd, backend)
		},
	}

	cmd.Flags().String("update", "", "Check for updates on a channel (stable, beta, daily)")
	cmd.Flags().Lookup("update").NoOptDefVal = "stable"
	cmd.Flags().String("backend", BackendBubbletea, "Terminal backend (bubbletea, tcell)")
	cmd.SetVersionTemplate(versionTemplate())
	return cmd
}

func versionTemplate() string {
	zone, _ := time.Now().Zone()
	return fmt.Sprintf("cascolor version {{.Version}}\nCommit:     %s\nBuild time: %s\nTimezone:   %s\n",
		Commit, BuildTime, zone)
}

// validateArgs only allows a positional channel after --update
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.Flags().Changed("update") && len(args) == 1 {
		return nil
	}
	return fmt.Errorf("unknown option: %s (use --help for usage information)", args[0])
}

// loadEnvFile applies a .env file from the working directory if present
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(os.Stderr, "Warning: ignoring .env: %v\n", err)
		}
	}
}

// shouldUseTUI picks the terminal picker for SSH sessions and whenever no
// graphical display is advertised.
func shouldUseTUI(lookup func(string) (string, bool)) bool {
	for _, name := range []string{"SSH_CONNECTION", "SSH_CLIENT", "SSH_TTY"} {
		if _, ok := lookup(name); ok {
			return true
		}
	}
	for _, name := range []string{"DISPLAY", "WAYLAND_DISPLAY"} {
		if v, ok := lookup(name); ok && v != "" {
			return false
		}
	}
	return true
}

// initializeGlobalState prepares directories and logging, then loads the
// settings store. Failures here degrade to defaults rather than abort.
func initializeGlobalState() *config.Store {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		utils.ConfigureDebug(config.GetLogsDir())

		primary, err := AcquireLock()
		if err != nil {
			utils.Warn("instance lock unavailable: %v", err)
		}
		if primary {
			utils.CleanupLogs(keepLogs)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		utils.Warn("settings load failed: %v", err)
	}
	return config.NewStore(config.GetConfigPath(), settings)
}

func runPicker(cmd *cobra.Command, backend string) error {
	if backend != BackendBubbletea && backend != BackendTcell {
		return fmt.Errorf("unknown backend %q (expected %s or %s)", backend, BackendBubbletea, BackendTcell)
	}

	store := initializeGlobalState()
	defer ReleaseLock()

	settings := store.Settings()
	format, ok := color.ParseFormat(settings.UI.DefaultColorFormat)
	if !ok {
		utils.Warn("unknown default color format %q, using HEX", settings.UI.DefaultColorFormat)
	}

	state := picker.NewState(picker.DefaultColor, format)
	machine := &picker.Machine{Clipboard: clipboard.System{}, Preferences: store}
	dark := termenv.HasDarkBackground()

	utils.Debug("Starting %s picker %s (theme %s, format %s)", backend, Version, store.Theme(), format)

	if backend == BackendTcell {
		b, err := screen.NewTerminal(func() config.Theme {
			return store.Theme().ResolveWith(dark)
		})
		if err != nil {
			return &picker.TerminalError{Op: "open", Err: err}
		}
		return picker.Run(b, machine, state)
	}

	return tui.Run(tui.Options{
		Machine:        machine,
		State:          state,
		DarkBackground: dark,
		Version:        Version,
	})
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It exits 1 on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
