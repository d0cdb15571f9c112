package cascade

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToleratesLineEndings(t *testing.T) {
	inputs := map[string]string{
		"LF":            "123\n456",
		"TrailingLF":    "123\n456\n",
		"CRLF":          "123\r\n456\r\n",
		"TrailingBlank": "123\n456\n\n  \n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			g, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, []string{"123", "456"}, g.Rows())
		})
	}
}

func TestParseRejectsInteriorBlankLine(t *testing.T) {
	_, err := Parse("123\n\n456\n")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Parse("\n\n")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestLoad(t *testing.T) {
	g, err := Load(strings.NewReader(strings.Join(sampleRows, "\n") + "\n"))
	require.NoError(t, err)
	assert.Equal(t, sampleRows, g.Rows())
	assert.Equal(t, strings.Join(sampleRows, "\n"), g.String())

	readErr := errors.New("disk on fire")
	_, err = Load(iotest.ErrReader(readErr))
	assert.True(t, errors.Is(err, readErr))
}
