package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/onflow/flow-keccak/crypto/keccak"
	"github.com/onflow/flow-keccak/utils/bitutils"
	"github.com/onflow/flow-keccak/utils/logging"
)

const stdinName = "-"

// input is one thing to hash: either in-memory bits or a reader to open.
type input struct {
	name      string
	open      func() (io.ReadCloser, error)
	data      []byte
	bitLength int // -1 reads everything open returns
}

type result struct {
	name   string
	digest keccak.Digest
	ok     bool
}

func collectInputs(cfg Config, args []string, stdin io.Reader) ([]input, error) {
	if cfg.Binary != "" {
		data, n, err := bitutils.ParseBitString(cfg.Binary)
		if err != nil {
			return nil, fmt.Errorf("invalid --binary: %w", err)
		}
		return []input{{name: "binary", data: data, bitLength: n}}, nil
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	inputs := make([]input, 0, len(args))
	stdinSeen := false
	for _, name := range args {
		name := name
		in := input{name: name, bitLength: cfg.BitLength}
		if name == stdinName {
			if stdinSeen {
				return nil, fmt.Errorf("standard input (%s) can only be given once", stdinName)
			}
			stdinSeen = true
			in.open = func() (io.ReadCloser, error) { return io.NopCloser(stdin), nil }
		} else {
			in.open = func() (io.ReadCloser, error) { return os.Open(name) }
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// hashInputs hashes every input with its own context, at most cfg.Jobs at a
// time. Failures do not stop the other inputs; they are returned together.
func hashInputs(ctx context.Context, log zerolog.Logger, cfg Config, inputs []input) ([]result, error) {
	results := make([]result, len(inputs))
	errs := make([]error, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			digest, err := hashInput(cfg, in)
			if err != nil {
				log.Debug().Err(err).Str("input", in.name).Msg("could not hash input")
				errs[i] = fmt.Errorf("%s: %w", in.name, err)
				return nil
			}

			event := log.Debug().Str("input", in.name)
			if in.open == nil {
				event = event.Str("bits", bitutils.BitString(in.data, in.bitLength))
			}
			event.Str("digest", digest.Hex()).Msg("hashed input")
			results[i] = result{name: in.name, digest: digest, ok: true}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return results, merr.ErrorOrNil()
}

func hashInput(cfg Config, in input) (keccak.Digest, error) {
	c, err := newContext(cfg)
	if err != nil {
		return nil, err
	}

	switch {
	case in.open == nil:
		err = c.Update(in.data, in.bitLength)
	case in.bitLength >= 0:
		err = absorbPrefix(c, in)
	default:
		err = absorbAll(c, in)
	}
	if err != nil {
		return nil, err
	}

	digest, err := c.Final()
	if err != nil {
		return nil, err
	}
	if cfg.Bits == keccak.Arbitrary {
		return c.Squeeze(cfg.OutputBits)
	}
	return digest, nil
}

func newContext(cfg Config) (*keccak.Context, error) {
	if cfg.SHA3 {
		return keccak.InitSHA3(cfg.Bits)
	}
	return keccak.Init(cfg.Bits)
}

// absorbPrefix reads only the bytes covering the first in.bitLength bits.
func absorbPrefix(c *keccak.Context, in input) error {
	rc, err := in.open()
	if err != nil {
		return err
	}
	defer rc.Close()

	need := (in.bitLength + 7) / 8
	data, err := io.ReadAll(io.LimitReader(rc, int64(need)))
	if err != nil {
		return err
	}
	if len(data) < need {
		return fmt.Errorf("input has %s, fewer than the %d bits requested",
			logging.Bits(8*len(data)), in.bitLength)
	}
	return c.Update(data, in.bitLength)
}

func absorbAll(c *keccak.Context, in input) error {
	rc, err := in.open()
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(updateWriter{c}, rc)
	return err
}

// updateWriter feeds whole bytes into a context.
type updateWriter struct {
	c *keccak.Context
}

func (w updateWriter) Write(p []byte) (int, error) {
	err := w.c.Update(p, 8*len(p))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
