package cascade

import (
	"fmt"
	"io"
	"strings"
)

// Parse builds a grid from a text block with one row of digits per line.
// Carriage returns and trailing blank lines are ignored.
func Parse(input string) (*Grid, error) {
	return New(splitRows(input))
}

// Load reads a text block from r and parses it.
func Load(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cascade: read input: %w", err)
	}
	return Parse(string(data))
}

func splitRows(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
