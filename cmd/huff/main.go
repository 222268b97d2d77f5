// Command huff compresses and decompresses files with tree-serialized Huffman
// codes.
//
//     huff encode [-o outfile] [-format raw|cbor] infile
//         Creates outfile, or infile with its extension replaced by .huf
//
//     huff decode [-o outfile] [-format raw|cbor] infile.huf
//         Creates outfile, or infile with its extension replaced by .txt
//
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var status io.Writer = stderr
	if cfg.quiet {
		status = io.Discard
	}

	app := &app{cfg: cfg, log: logger.Sugar(), status: status}
	if err := app.Run(ctx); err != nil {
		app.log.Errorf("%s %s: %v", cfg.mode, cfg.input, err)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
