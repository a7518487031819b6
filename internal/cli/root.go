// Package cli implements the toonify command.
//
// Input resolution: piped stdin wins; otherwise the clipboard is read;
// if that is empty the user is prompted to paste. Output format: TOON or
// plain when requested or when stdout is piped, colored boxes on a TTY.
// The compact result is copied back to the clipboard unless suppressed.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adrozdenko/toonify/internal/classify"
	"github.com/adrozdenko/toonify/internal/clipboard"
	"github.com/adrozdenko/toonify/internal/config"
	"github.com/adrozdenko/toonify/internal/extract"
	"github.com/adrozdenko/toonify/internal/pipeline"
	"github.com/adrozdenko/toonify/internal/render"
)

// Execute runs the CLI application.
func Execute(version string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})))

	root := &cobra.Command{
		Use:           "toonify",
		Short:         "Compress verbose browser errors for LLM consumption",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.Flags().BoolP("plain", "p", false, "Plain output (no colors)")
	root.Flags().BoolP("toon", "t", false, "Output in TOON format (Token-Oriented Object Notation)")
	root.Flags().Bool("no-copy", false, "Don't copy result to clipboard (copies by default)")
	root.Flags().String("theme", "", "Color theme: default, mono")

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// logLevel keeps diagnostics quiet unless TOONIFY_DEBUG is set.
func logLevel() slog.Level {
	if os.Getenv("TOONIFY_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	plain, _ := cmd.Flags().GetBool("plain")
	toon, _ := cmd.Flags().GetBool("toon")
	noCopy, _ := cmd.Flags().GetBool("no-copy")
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		cfg.Theme = theme
	}

	patterns, err := extract.NewPatterns(cfg.NoisePatterns, cfg.SourceExtensions)
	if err != nil {
		return err
	}

	input, source, err := readInput(os.Stdin)
	if err != nil {
		return err
	}
	slog.Debug("input resolved", "source", source, "bytes", len(input))

	opts := pipeline.Options{MaxFrames: cfg.MaxFrames, Patterns: patterns}
	records, err := pipeline.Process(input, classify.DefaultTable(), opts)
	if err != nil {
		if err == pipeline.ErrNoInput {
			return fmt.Errorf("no input: copy an error to clipboard or pipe it in")
		}
		return err
	}

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	// The copyable form is always plain or TOON, never ANSI.
	formatName := "plain"
	var copyable string
	if toon {
		formatName = "TOON"
		copyable = render.NewTOON().Render(records)
	} else {
		copyable = render.NewPlain().Render(records)
	}
	slog.Debug("records built", "count", len(records), "format", formatName, "tty", stdoutTTY)

	if toon || plain || !stdoutTTY {
		fmt.Fprint(cmd.OutOrStdout(), copyable)
	} else {
		theme := render.ThemeByName(cfg.Theme)
		if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
			theme = render.MonoTheme()
		}
		fmt.Fprint(cmd.OutOrStdout(), render.NewTerminal(theme).Render(records))
	}

	if !noCopy && !cfg.NoCopy && stdoutTTY {
		copyBack(copyable, formatName)
	}
	return nil
}

// copyBack writes the compact result to the clipboard; failures are
// reported but never fatal.
func copyBack(text, formatName string) {
	if !clipboard.Available() {
		fmt.Fprintln(os.Stderr, "⚠ Clipboard not available")
		return
	}
	if err := clipboard.Write(text); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		fmt.Fprintln(os.Stderr, "⚠ Failed to write to clipboard")
		return
	}
	fmt.Fprintf(os.Stderr, "📋 Copied to clipboard (%s)\n", formatName)
}

// readInput resolves the raw error text and reports where it came from:
// piped stdin, then clipboard, then interactive paste.
func readInput(stdin *os.File) (text, source string, err error) {
	if !term.IsTerminal(int(stdin.Fd())) {
		text, err = readAll(stdin)
		return text, "stdin", err
	}

	if clipboard.Available() {
		if text, err := clipboard.Read(); err == nil && strings.TrimSpace(text) != "" {
			return text, "clipboard", nil
		}
	}

	fmt.Fprintln(os.Stderr, "Clipboard empty. Paste error below, then press Ctrl+D:")
	text, err = readAll(stdin)
	return text, "paste", err
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}
