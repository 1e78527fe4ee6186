package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("digest", "c5d2").Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "digest=c5d2")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

func TestBits(t *testing.T) {
	assert.Equal(t, "0 bytes", Bits(0))
	assert.Equal(t, "4 bytes", Bits(32))
	assert.Equal(t, "0 bytes + 5 bits", Bits(5))
	assert.Equal(t, "2 bytes + 1 bits", Bits(17))
}
