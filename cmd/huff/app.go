package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	huffman "github.com/chronos-tachyon/treehuff"
)

type app struct {
	cfg    config
	log    *zap.SugaredLogger
	status io.Writer
}

func (a *app) Run(ctx context.Context) error {
	switch a.cfg.mode {
	case modeEncode:
		return a.encode(ctx)
	case modeDecode:
		return a.decode(ctx)
	default:
		return errUsage
	}
}

func (a *app) encode(ctx context.Context) error {
	in, out := a.cfg.input, a.cfg.output

	input, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	a.log.Debugf("read %d bytes from %s", len(input), in)

	var enc huffman.Encoded
	err = a.step(ctx, "Encoding "+in, "✔ Encoded "+in, func() error {
		var err error
		enc, err = huffman.Encode(input)
		return err
	})
	if err != nil {
		return err
	}
	a.log.Debugf("tree has %d nodes for %d byte values; payload is %d bytes with %d pad bits",
		len(enc.Tree), enc.Tree.NumLeaves(), len(enc.Data), enc.Pad)

	raw, err := marshalEncoded(enc, a.cfg.format)
	if err != nil {
		return err
	}
	err = a.step(ctx, "Output: "+out, "✔ Output: "+out, func() error {
		return os.WriteFile(out, raw, 0o644)
	})
	if err != nil {
		return err
	}

	a.log.Infof("encoded %s (%d bytes) into %s (%d bytes, %s)", in, len(input), out, len(raw), a.cfg.format)
	return nil
}

func (a *app) decode(ctx context.Context) error {
	in, out := a.cfg.input, a.cfg.output

	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	a.log.Debugf("read %d bytes from %s", len(raw), in)

	enc, err := unmarshalEncoded(raw, a.cfg.format)
	if err != nil {
		return err
	}
	a.log.Debugf("tree has %d nodes; payload is %d bytes with %d pad bits", len(enc.Tree), len(enc.Data), enc.Pad)

	var output []byte
	err = a.step(ctx, "Decoding "+in, "✔ Decoded "+in, func() error {
		var err error
		output, err = huffman.Decode(enc)
		return err
	})
	if err != nil {
		return err
	}

	err = a.step(ctx, "Output: "+out, "✔ Output: "+out, func() error {
		return os.WriteFile(out, output, 0o644)
	})
	if err != nil {
		return err
	}

	a.log.Infof("decoded %s (%d bytes) into %s (%d bytes)", in, len(raw), out, len(output))
	return nil
}

// step runs fn while a spinner shows msg.  The core is not interruptible, so
// cancellation is only noticed between steps.
func (a *app) step(ctx context.Context, msg string, done string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := startSpinner(ctx, a.status, msg, spinnerInterval)
	if err := fn(); err != nil {
		s.Stop("✘ " + msg)
		return err
	}
	s.Stop(done)
	return nil
}

func marshalEncoded(enc huffman.Encoded, format string) ([]byte, error) {
	switch format {
	case formatRaw:
		return enc.MarshalBinary()
	case formatCBOR:
		return enc.MarshalCBOR()
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func unmarshalEncoded(raw []byte, format string) (huffman.Encoded, error) {
	var enc huffman.Encoded
	var err error
	switch format {
	case formatRaw:
		err = enc.UnmarshalBinary(raw)
	case formatCBOR:
		err = enc.UnmarshalCBOR(raw)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	return enc, err
}
