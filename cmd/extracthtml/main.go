package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/batch"
	"github.com/fwojciec/mediacsv/chardet"
	mccsv "github.com/fwojciec/mediacsv/csv"
	"github.com/fwojciec/mediacsv/fs"
	"github.com/fwojciec/mediacsv/goquery"
	mcregexp "github.com/fwojciec/mediacsv/regexp"
	mcslog "github.com/fwojciec/mediacsv/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", mediacsv.ErrorMessage(err))
		}
		os.Exit(1)
	}
}

// Usage is printed when the command is not given exactly one input file.
const Usage = "Usage: extracthtml <input_file.html>"

// ErrUsage is returned after Usage has been printed.
var ErrUsage = errors.New("expected exactly one input file")

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Inputs  []string `arg:"" optional:"" name:"input" help:"HTML export file to convert"`
	Before  int      `default:"3000" env:"MEDIACSV_WINDOW_BEFORE" help:"Characters searched before each caption"`
	After   int      `default:"1000" env:"MEDIACSV_WINDOW_AFTER" help:"Characters searched after each caption"`
	LF      bool     `name:"lf" help:"End CSV rows with LF instead of CRLF"`
	Probe   bool     `short:"p" help:"Report what the export contains without writing CSV"`
	Verbose bool     `short:"v" help:"Log debug output to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("extracthtml"),
		kong.Description("Extract media records from a saved HTML export into a sibling CSV file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if len(cli.Inputs) != 1 {
		fmt.Fprintln(stdout, Usage)
		return ErrUsage
	}
	if cli.Before < 0 || cli.After < 0 {
		return mediacsv.Errorf(mediacsv.EINVALID, "window sizes must not be negative")
	}

	// Reported paths are cleaned, so "./1.html" is shown as "1.html".
	input := filepath.Clean(cli.Inputs[0])
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return mediacsv.Errorf(mediacsv.ENOTFOUND, "File %s does not exist", input)
	}

	logger := newLogger(stderr, cli.Verbose)
	decoder := chardet.NewDecoder()
	extractor := mcslog.NewLoggingExtractor(
		mcregexp.NewExtractor(mcregexp.WithWindow(mediacsv.Window{Before: cli.Before, After: cli.After})),
		logger,
	)

	if cli.Probe {
		cmd := &ProbeCmd{
			Decoder:   decoder,
			Extractor: extractor,
			Inspector: goquery.NewInspector(),
		}
		return cmd.Run(input, stdout)
	}

	runner := &batch.Runner{
		Decoder:   decoder,
		Extractor: extractor,
		Store: mcslog.NewLoggingStore(
			fs.NewStore(mccsv.NewEncoder(mccsv.WithCRLF(!cli.LF))),
			logger,
		),
	}

	fr := runner.ProcessFile(ctx, input)
	if fr.Status != mediacsv.StatusSucceeded {
		return fr.Err
	}

	fmt.Fprintln(stdout, mediacsv.FormatSummary(fr.Count, fr.Input, fr.Output))
	return nil
}

// newLogger returns a debug logger on w when verbose, otherwise a logger
// that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
