// Package docs reads batches of documents for extraction.
package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Doc is one document of a batch
type Doc struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// LoadFromJSONL loads documents from a JSONL file, one object per line.
// Malformed lines are skipped with a warning; a file with no valid
// documents is an error.
func LoadFromJSONL(path string, logger *zap.Logger) ([]Doc, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []Doc
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item Doc
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			logger.Warn("skipping malformed JSON line",
				zap.String("path", path),
				zap.Int("line", i+1),
				zap.Error(err),
			)
			continue
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("%d", i+1)
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}

	return items, nil
}
