package stoplist

import (
	"fmt"
	"os"
	"strings"
)

// Parse splits a flat stopword list on line breaks and drops empty lines.
// Entries are kept verbatim: no trimming and no case folding.
func Parse(data string) []string {
	lines := strings.Split(data, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}

// LoadFile reads a flat stopword list, one word per line.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w", path, err)
	}
	return Parse(string(data)), nil
}
