package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/batch"
	"github.com/fwojciec/mediacsv/chardet"
	mccsv "github.com/fwojciec/mediacsv/csv"
	"github.com/fwojciec/mediacsv/fs"
	mcregexp "github.com/fwojciec/mediacsv/regexp"
	mcslog "github.com/fwojciec/mediacsv/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", mediacsv.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// NewRunID returns the identifier attached to every log line of a run.
	NewRunID func() string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{NewRunID: uuid.NewString}
}

// CLI defines the command-line interface structure for Kong.
//
// Numeric flags left at zero fall back to the config file and then to the
// built-in defaults.
type CLI struct {
	Inputs    []string `arg:"" optional:"" name:"input" help:"Export files to convert (default: numbered range)"`
	Config    string   `short:"c" env:"MEDIACSV_CONFIG" help:"YAML batch configuration file"`
	From      int      `help:"First number of the file range (default 1)"`
	To        int      `help:"Last number of the file range (default 61)"`
	Pattern   string   `help:"File name pattern of the range (default %d.html)"`
	Glob      string   `short:"g" help:"Convert files matching this pattern, ** matches any depth"`
	Dir       string   `short:"d" help:"Convert every .html file in this directory"`
	Recursive bool     `short:"r" help:"Include subdirectories when scanning --dir"`
	Before    int      `env:"MEDIACSV_WINDOW_BEFORE" help:"Characters searched before each caption (default 3000)"`
	After     int      `env:"MEDIACSV_WINDOW_AFTER" help:"Characters searched after each caption (default 1000)"`
	LF        bool     `name:"lf" help:"End CSV rows with LF instead of CRLF"`
	Verbose   bool     `short:"v" help:"Log debug output to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("batchextract"),
		kong.Description("Convert a batch of saved HTML exports to CSV files"),
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

	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose).With("run", m.NewRunID())

	inputs, err := mcslog.NewLoggingSource(newSource(cfg), logger).Inputs(ctx)
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Decoder: chardet.NewDecoder(),
		Extractor: mcslog.NewLoggingExtractor(
			mcregexp.NewExtractor(mcregexp.WithWindow(*cfg.Window)),
			logger,
		),
		Store: mcslog.NewLoggingStore(
			fs.NewStore(mccsv.NewEncoder(mccsv.WithCRLF(*cfg.CRLF))),
			logger,
		),
	}

	runner.Run(ctx, inputs, Report(stdout))
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
