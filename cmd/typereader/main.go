// Package main provides the CLI entrypoint for typereader.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typereader/internal/config"
	"github.com/verte-zerg/typereader/internal/logger"
	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/source"
	"github.com/verte-zerg/typereader/internal/stats"
	"github.com/verte-zerg/typereader/internal/text"
	"github.com/verte-zerg/typereader/internal/tui"
)

var (
	practiceFile          string
	practiceClipboard     bool
	practiceChunkSize     int
	practiceCaseSensitive bool
	practicePunct         bool
	practiceMistakesOK    bool
	practiceStats         bool
	practiceWatch         bool

	logFile  string
	logLevel string

	chunksSize int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultOptions()
	rootCmd := &cobra.Command{
		Use:           "typereader",
		Short:         "Read a text by typing it, chunk by chunk",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVarP(&practiceFile, "file", "f", "", "read practice text from a file")
	rootCmd.Flags().BoolVar(&practiceClipboard, "clipboard", false, "read practice text from the clipboard")
	rootCmd.Flags().IntVar(&practiceChunkSize, "chunk-size", defaults.ChunkSize, "words per chunk")
	rootCmd.Flags().BoolVar(&practiceCaseSensitive, "case-sensitive", defaults.CaseSensitive, "require matching capitalization")
	rootCmd.Flags().BoolVar(&practicePunct, "punct", defaults.PunctuationRequired, "require typing punctuation")
	rootCmd.Flags().BoolVar(&practiceMistakesOK, "mistakes-ok", defaults.MistakesAllowed, "move on after a wrong key")
	rootCmd.Flags().BoolVar(&practiceStats, "stats", defaults.ShowStats, "show live WPM and accuracy")
	rootCmd.Flags().BoolVar(&practiceWatch, "watch", false, "reload --file into the setup form when it changes")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (bare flag uses the state dir)")
	rootCmd.Flags().Lookup("log-file").NoOptDefVal = config.DefaultLogPath()
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newChunksCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "chunk-size", &practiceChunkSize, fileCfg.Practice.ChunkSize)
	applyBoolConfig(cmd, "case-sensitive", &practiceCaseSensitive, fileCfg.Practice.CaseSensitive)
	applyBoolConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctuationRequired)
	applyBoolConfig(cmd, "mistakes-ok", &practiceMistakesOK, fileCfg.Practice.MistakesAllowed)
	applyBoolConfig(cmd, "stats", &practiceStats, fileCfg.Practice.ShowStats)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	opts := model.Options{
		ChunkSize:           practiceChunkSize,
		CaseSensitive:       practiceCaseSensitive,
		PunctuationRequired: practicePunct,
		MistakesAllowed:     practiceMistakesOK,
		ShowStats:           practiceStats,
	}
	if err := validateConfig(opts); err != nil {
		return err
	}
	if practiceWatch && practiceFile == "" {
		return fmt.Errorf("--watch requires --file")
	}

	log, closeLog, err := openLogger(logFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	stdinPiped := !term.IsTerminal(int(os.Stdin.Fd()))
	src, err := resolveText(practiceFile, practiceClipboard, stdinPiped, os.Stdin)
	if err != nil {
		return err
	}
	log.Infof("starting with %d bytes of text, options %+v", len(src), opts)

	m := tui.NewModel(opts, src, log)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if stdinPiped {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	program := tea.NewProgram(m, progOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if practiceWatch {
		w, err := source.NewWatcher(practiceFile, log, func(updated string) {
			program.Send(tui.SourceMsg{Text: updated})
		})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := w.Stop(); cerr != nil {
				log.Warnf("failed to stop watcher: %v", cerr)
			}
		}()
		go func() {
			if werr := w.Start(ctx); werr != nil && ctx.Err() == nil {
				log.Errorf("watcher stopped: %v", werr)
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if summary, ok := m.Summary(); ok {
		if err := stats.RenderSummary(cmd.OutOrStdout(), summary); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// resolveText picks the practice text: file, then clipboard, then piped stdin.
// An empty result opens the setup form blank.
func resolveText(path string, clipboard, stdinPiped bool, stdin io.Reader) (string, error) {
	switch {
	case path != "":
		src, err := source.FromFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return src, nil
	case clipboard:
		return source.FromClipboard()
	case stdinPiped:
		src, err := source.FromReader(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return src, nil
	}
	return "", nil
}

func openLogger(path, levelName string) (logger.Logger, func(), error) {
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		return logger.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "typereader")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closeFn := func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}
	return logger.New(f, level), closeFn, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks [FILE]",
		Short: "Print the chunks a text is split into",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runChunksCmd,
	}
	cmd.Flags().IntVar(&chunksSize, "chunk-size", model.DefaultChunkSize, "words per chunk")
	return cmd
}

func runChunksCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "chunk-size", &chunksSize, fileCfg.Practice.ChunkSize)
	if err := validateConfig(model.Options{ChunkSize: chunksSize}); err != nil {
		return err
	}

	var src string
	if len(args) == 1 {
		src, err = source.FromFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	} else {
		src, err = source.FromReader(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	return printChunks(cmd.OutOrStdout(), src, chunksSize)
}

func printChunks(w io.Writer, src string, size int) error {
	chunks := text.Chunk(text.Normalize(src), size)
	for i, c := range chunks {
		if _, err := fmt.Fprintf(w, "%3d  %s\n", i+1, c); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(opts model.Options) error {
	if opts.ChunkSize <= 0 {
		return fmt.Errorf("--chunk-size must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
