package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/onflow/flow-keccak/crypto/keccak"
)

// Config holds the resolved command configuration.
type Config struct {
	Bits       keccak.OutputLength
	SHA3       bool
	BitLength  int // -1 hashes the whole input
	Binary     string
	OutputBits int
	Jobs       int
	LogLevel   string
}

func loadConfig(v *viper.Viper) Config {
	return Config{
		Bits:       keccak.OutputLength(v.GetInt("bits")),
		SHA3:       v.GetBool("sha3"),
		BitLength:  v.GetInt("bit-length"),
		Binary:     v.GetString("binary"),
		OutputBits: v.GetInt("output-bits"),
		Jobs:       v.GetInt("jobs"),
		LogLevel:   v.GetString("log-level"),
	}
}

// Validate checks the configuration against the number of file arguments.
func (c Config) Validate(files int) error {
	_, _, err := c.Bits.Params()
	if err != nil {
		return fmt.Errorf("invalid --bits: %w", err)
	}

	if c.SHA3 && !c.Bits.Fixed() {
		return fmt.Errorf("--sha3 needs a fixed digest length, got --bits %d", int(c.Bits))
	}

	if c.Bits == keccak.Arbitrary {
		if c.OutputBits <= 0 || c.OutputBits%8 != 0 {
			return fmt.Errorf("--bits 0 needs a positive --output-bits that is a multiple of 8, got %d", c.OutputBits)
		}
	} else if c.OutputBits != 0 && c.OutputBits != int(c.Bits) {
		return fmt.Errorf("--output-bits %d does not match the %d-bit digest", c.OutputBits, int(c.Bits))
	}

	if c.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", c.Jobs)
	}

	if c.Binary != "" {
		if files > 0 {
			return fmt.Errorf("--binary cannot be combined with file arguments")
		}
		if c.BitLength >= 0 {
			return fmt.Errorf("--bit-length cannot be combined with --binary")
		}
	}

	if c.BitLength < -1 {
		return fmt.Errorf("invalid --bit-length %d", c.BitLength)
	}
	if c.BitLength >= 0 && files > 1 {
		return fmt.Errorf("--bit-length applies to a single input, got %d files", files)
	}
	return nil
}

func algorithmName(c Config) string {
	if c.SHA3 {
		return fmt.Sprintf("SHA3_%d", int(c.Bits))
	}
	return c.Bits.String()
}
