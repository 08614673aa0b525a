package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/codenest/internal/config"
	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/output"
	"github.com/marcus/codenest/internal/workdir"
	"github.com/marcus/codenest/pkg/pageview"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var errNoTerminal = errors.New("codenest needs an interactive terminal (use 'codenest serve' for the web page)")

var rootCmd = &cobra.Command{
	Use:   "codenest",
	Short: "Code Nest learning landing page",
	Long: `codenest - the Code Nest landing page, in your terminal or your browser.

Run without arguments to open the page in the terminal. Scroll to reveal the
features and learning paths, and press enter on a path to explore it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.AddGroup(
		&cobra.Group{ID: "page", Title: "Page Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)

	addTerminalFlags(rootCmd.Flags())
}

func addTerminalFlags(fs *pflag.FlagSet) {
	fs.String("debug", "", "Write debug logs to this file")
	fs.Bool("no-mouse", false, "Disable mouse support")
	fs.Int("row-pixels", 0, "Pixels of scroll per terminal row (default from config)")
}

func initBaseDir() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = workdir.ResolveBaseDir(cwd)
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// isTerminal reports whether every file is attached to a terminal.
func isTerminal(files ...*os.File) bool {
	for _, f := range files {
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			return false
		}
	}
	return true
}

// terminalOptions merges the config file with command-line flags.
func terminalOptions(fs *pflag.FlagSet, cfg *config.Config) pageview.Options {
	opts := pageview.Options{
		RowPixels: cfg.Terminal.RowPixels,
		Mouse:     cfg.Terminal.MouseEnabled(),
		Copy:      pageview.CopyToClipboard,
	}
	if noMouse, _ := fs.GetBool("no-mouse"); noMouse {
		opts.Mouse = false
	}
	if fs.Changed("row-pixels") {
		if px, _ := fs.GetInt("row-pixels"); px > 0 {
			opts.RowPixels = px
		}
	}
	return opts
}

// setupLogging sends slog output to path, or discards it so nothing is
// written over the terminal page.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "codenest")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin, os.Stdout) {
		return errNoTerminal
	}

	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	catalog, err := content.Default()
	if err != nil {
		return err
	}

	debugPath, _ := cmd.Flags().GetString("debug")
	logFile, err := setupLogging(debugPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	opts := terminalOptions(cmd.Flags(), cfg)
	model := pageview.New(catalog, opts)
	defer model.Close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}

	slog.Debug("starting terminal page", "version", version, "row_pixels", opts.RowPixels, "mouse", opts.Mouse)
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
