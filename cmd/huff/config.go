package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const usage = "Usage: huff [encode|decode] [-o outfile] [-format raw|cbor] [-quiet] [-v] infile"

const (
	modeEncode = "encode"
	modeDecode = "decode"

	formatRaw  = "raw"
	formatCBOR = "cbor"

	encodedExt = ".huf"
	decodedExt = ".txt"
)

var errUsage = errors.New(usage)

type config struct {
	mode    string
	input   string
	output  string
	format  string
	quiet   bool
	verbose bool
}

// parseArgs parses the command line, not including the program name.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	if len(args) == 0 {
		return cfg, errUsage
	}

	cfg.mode = args[0]
	if cfg.mode != modeEncode && cfg.mode != modeDecode {
		return cfg, fmt.Errorf("unknown command %q\n%w", cfg.mode, errUsage)
	}

	fs := flag.NewFlagSet("huff "+cfg.mode, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.output, "o", "", "output file (default: input with its extension replaced)")
	fs.StringVar(&cfg.format, "format", formatRaw, "container format: raw or cbor")
	fs.BoolVar(&cfg.quiet, "quiet", false, "do not show progress")
	fs.BoolVar(&cfg.verbose, "v", false, "log debugging details")
	if err := fs.Parse(args[1:]); err != nil {
		return cfg, fmt.Errorf("%v\n%w", err, errUsage)
	}

	if fs.NArg() != 1 {
		return cfg, fmt.Errorf("expected exactly one input file, got %d\n%w", fs.NArg(), errUsage)
	}
	cfg.input = fs.Arg(0)

	switch cfg.format {
	case formatRaw, formatCBOR:
	default:
		return cfg, fmt.Errorf("unknown format %q\n%w", cfg.format, errUsage)
	}

	if cfg.output == "" {
		ext := encodedExt
		if cfg.mode == modeDecode {
			ext = decodedExt
		}
		cfg.output = outputName(cfg.input, ext)
	}
	return cfg, nil
}

// outputName replaces the extension of the last path element of input with
// ext, or appends ext if there is none.
func outputName(input string, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
