// Package main provides the devtoolbox command: an interactive toolbox of
// encoders, formatters and converters, plus a headless run mode.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Cyclone1070/devtoolbox/internal/config"
	"github.com/Cyclone1070/devtoolbox/internal/store"
	"github.com/Cyclone1070/devtoolbox/internal/toolbox"
	"github.com/Cyclone1070/devtoolbox/internal/ui"
	"github.com/Cyclone1070/devtoolbox/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Store  toolbox.StateStore

	// ProgramOptions are passed through to the terminal UI program.
	ProgramOptions []tea.ProgramOption
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every command
type rootOptions struct {
	configPath string
	noPersist  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "devtoolbox",
		Short: "Developer toolbox - encoders, formatters and converters",
		Long: `devtoolbox bundles URL and Base64 encoding, UUID generation, Unix time
conversion, JSON pretty-printing and SQL formatting in one terminal window.

Run without arguments to start the TUI, or use 'run' for a single transform.

Examples:
  devtoolbox                                # Start interactive TUI
  devtoolbox run base64 hello               # Encode to stdout
  devtoolbox run url_encoding --decode a%20b
  echo '{"a":1}' | devtoolbox run json_format
  devtoolbox run uuid`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(opts.configPath, cmd.ErrOrStderr())
			if opts.noPersist {
				cfg.Persistence.Enabled = false
			}

			logger, closeLog, err := setupLogging(cfg.Log)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}
			defer closeLog()

			ctx := cmd.Context()
			sqlStore := openStore(ctx, cfg.Persistence, logger)
			deps := Dependencies{Config: cfg, Logger: logger}
			if sqlStore != nil {
				defer sqlStore.Close()
				deps.Store = sqlStore
			}

			return runInteractive(ctx, deps)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default ~/.config/devtoolbox/config.json)")
	rootCmd.Flags().BoolVar(&opts.noPersist, "no-persist", false, "Do not restore or save the toolbox state")

	rootCmd.AddCommand(newRunCmd(opts))
	return rootCmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var decode bool

	runCmd := &cobra.Command{
		Use:   "run <tool> [text...]",
		Short: "Apply one tool to text from the arguments or stdin",
		Long: fmt.Sprintf(`Apply one tool without starting the TUI and print its output.

Tools: %s`, strings.Join(toolNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := toolbox.ParseTool(args[0])
			if err != nil {
				return err
			}

			cfg := loadConfig(opts.configPath, cmd.ErrOrStderr())

			var input string
			if tool != toolbox.ToolUUID {
				input, err = readInput(args[1:], cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			controller := toolbox.NewController(toolbox.WithTransforms(cfg.TransformOptions()))
			return runHeadless(cmd.OutOrStdout(), controller, tool, decode, input)
		},
	}
	runCmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode instead of encode (url_encoding, base64)")
	return runCmd
}

// runInteractive restores the last state, runs the TUI and saves the state
// on exit. Persistence failures are logged and never stop the UI.
func runInteractive(ctx context.Context, deps Dependencies) error {
	cfg := deps.Config
	controller := toolbox.NewController(
		toolbox.WithTransforms(cfg.TransformOptions()),
		toolbox.WithLogger(deps.Logger),
	)

	state, err := toolbox.LoadState(ctx, deps.Store, cfg.Persistence.AppID)
	if err != nil {
		deps.Logger.Warn("failed to restore state, using defaults", "error", err)
	}
	controller.Restore(state)

	userInterface := ui.NewUI(ui.Dependencies{
		Controller: controller,
		Renderer:   services.NewGlamourRenderer(cfg.UI.GlamourStyle),
		Clipboard:  services.SystemClipboard{},
		Config:     cfg.UI,
		Logger:     deps.Logger,
	}, deps.ProgramOptions...)
	runErr := userInterface.Start()

	if err := toolbox.SaveState(ctx, deps.Store, cfg.Persistence.AppID, controller.State()); err != nil {
		deps.Logger.Warn("failed to save state", "error", err)
	}
	return runErr
}

// runHeadless drives controller through a single transform and writes the
// result to w
func runHeadless(w io.Writer, controller *toolbox.Controller, tool toolbox.Tool, decode bool, input string) error {
	controller.SelectTool(tool)
	if decode && !controller.SelectDirection(toolbox.DirectionDecode) {
		return fmt.Errorf("tool %s has no decode direction", tool.Name())
	}

	switch tool {
	case toolbox.ToolUUID:
		if err := controller.Generate(); err != nil {
			return fmt.Errorf("failed to generate uuid: %w", err)
		}
	case toolbox.ToolUnixTime:
		controller.SetInput(strings.TrimSpace(input))
		times := controller.Epoch()
		_, err := fmt.Fprintf(w, "UTC: %s\nLocal: %s\n", times.UTC, times.Local)
		return err
	default:
		controller.SetInput(input)
	}

	_, err := fmt.Fprintln(w, controller.State().Output)
	return err
}

// readInput joins args with spaces, or reads stdin when there are none. A
// single trailing line break from stdin is dropped.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// loadConfig loads the config file, falling back to defaults with a warning
func loadConfig(path string, stderr io.Writer) *config.Config {
	loader := config.NewLoader()

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = loader.LoadFile(path)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}
	return cfg
}

// setupLogging sends logs to log.file. The TUI owns the terminal, so without
// a file logs are discarded.
func setupLogging(cfg config.LogConfig) (*slog.Logger, func(), error) {
	discard := slog.New(slog.DiscardHandler)
	if cfg.File == "" {
		return discard, func() {}, nil
	}

	f, err := tea.LogToFile(cfg.File, "devtoolbox")
	if err != nil {
		return discard, func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, func() { f.Close() }, nil
}

// openStore opens the state database. It returns nil when persistence is
// disabled or the database cannot be opened.
func openStore(ctx context.Context, cfg config.PersistenceConfig, logger *slog.Logger) *store.SQLiteStore {
	if !cfg.Enabled {
		return nil
	}
	if cfg.DatabasePath == "" {
		logger.Warn("persistence enabled without a database path")
		return nil
	}

	s, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Warn("failed to open state store, running without persistence",
			"path", cfg.DatabasePath, "error", err)
		return nil
	}
	return s
}

func toolNames() []string {
	names := make([]string, len(toolbox.Tools))
	for i, tool := range toolbox.Tools {
		names[i] = tool.Name()
	}
	return names
}
