package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level
// ("debug", "info", "warn", ...).
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}

// Bits returns a log-friendly description of a bit length, such as "5 bytes + 3 bits".
func Bits(bitLength int) string {
	if bitLength%8 == 0 {
		return fmt.Sprintf("%d bytes", bitLength/8)
	}
	return fmt.Sprintf("%d bytes + %d bits", bitLength/8, bitLength%8)
}
