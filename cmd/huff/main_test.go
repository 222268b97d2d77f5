package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	huffman "github.com/chronos-tachyon/treehuff"
)

func TestOutputName(t *testing.T) {
	type testRow struct {
		input  string
		ext    string
		expect string
	}

	testData := [...]testRow{
		{input: "notes.txt", ext: ".huf", expect: "notes.huf"},
		{input: "notes.huf", ext: ".txt", expect: "notes.txt"},
		{input: "archive.tar.gz", ext: ".huf", expect: "archive.tar.huf"},
		{input: "README", ext: ".huf", expect: "README.huf"},
		{input: "dir.v1/README", ext: ".huf", expect: "dir.v1/README.huf"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			assert.Equal(t, row.expect, outputName(row.input, row.ext))
		})
	}
}

func TestParseArgs(t *testing.T) {
	var stderr bytes.Buffer

	cfg, err := parseArgs([]string{"encode", "in.txt"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, config{mode: modeEncode, input: "in.txt", output: "in.huf", format: formatRaw}, cfg)

	cfg, err = parseArgs([]string{"decode", "-o", "out.bin", "-format", "cbor", "-quiet", "-v", "in.huf"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, config{
		mode:    modeDecode,
		input:   "in.huf",
		output:  "out.bin",
		format:  formatCBOR,
		quiet:   true,
		verbose: true,
	}, cfg)
}

func TestParseArgs_Errors(t *testing.T) {
	testData := [][]string{
		{},
		{"compress", "in.txt"},
		{"encode"},
		{"encode", "a", "b"},
		{"encode", "-format", "zip", "in.txt"},
		{"encode", "-bogus", "in.txt"},
	}
	for _, args := range testData {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := parseArgs(args, &stderr)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestRun_RoundTrip(t *testing.T) {
	for _, format := range []string{formatRaw, formatCBOR} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "sesam.txt")
			packed := filepath.Join(dir, "sesam.huf")
			unpacked := filepath.Join(dir, "sesam.out")
			content := []byte("sesamstrasse\nsesamstrasse\n")
			require.NoError(t, os.WriteFile(input, content, 0o644))

			var stderr bytes.Buffer
			code := run([]string{"encode", "-quiet", "-format", format, input}, &stderr)
			require.Equal(t, 0, code, stderr.String())

			code = run([]string{"decode", "-quiet", "-format", format, "-o", unpacked, packed}, &stderr)
			require.Equal(t, 0, code, stderr.String())

			out, err := os.ReadFile(unpacked)
			require.NoError(t, err)
			assert.Equal(t, content, out)
		})
	}
}

func TestRun_UsageError(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"frobnicate"}, &stderr))
	assert.Contains(t, stderr.String(), "Usage: huff")
}

func TestApp_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	var status bytes.Buffer
	a := &app{
		cfg:    config{mode: modeEncode, input: input, output: outputName(input, encodedExt), format: formatRaw},
		log:    zap.NewNop().Sugar(),
		status: &status,
	}
	err := a.Run(context.Background())
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
	assert.Contains(t, status.String(), "✘ Encoding "+input)

	_, err = os.Stat(a.cfg.output)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestApp_Canceled(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &app{
		cfg:    config{mode: modeEncode, input: input, output: outputName(input, encodedExt), format: formatRaw},
		log:    zap.NewNop().Sugar(),
		status: &bytes.Buffer{},
	}
	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
}

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, "Working", time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	s.Stop("done")

	out := buf.String()
	assert.Contains(t, out, spinnerFrames[0]+" Working")
	assert.True(t, strings.HasSuffix(out, clearLine+"done\n"), "unexpected output %q", out)
}

func TestSpinner_ContextDone(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	s := startSpinner(ctx, &buf, "Working", time.Hour)
	cancel()
	<-s.done
	s.Stop("ignored")

	assert.NotContains(t, buf.String(), "ignored")
}
