// Package corpus reads document collections in JSON-Lines form: one
// {"id": ..., "contents": ...} object per line. Records that cannot be
// parsed, or that lack an id or contents, are skipped with a warning.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prasetyo-dev/boolsearch/internal/storage"
)

// Load reads documents from r, skipping blank and malformed lines. It
// returns the accepted documents together with the number of records
// skipped.
func Load(r io.Reader) ([]storage.Document, int, error) {
	logger := slog.Default().With("component", "corpus")

	var docs []storage.Document
	skipped := 0
	lineNum := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var doc storage.Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			logger.Warn("skipping unparseable record", "line", lineNum, "error", err)
			skipped++
			continue
		}
		if doc.ID == "" || doc.Contents == "" {
			logger.Warn("skipping record with missing id or contents", "line", lineNum)
			skipped++
			continue
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("reading document source: %w", err)
	}
	return docs, skipped, nil
}

// LoadFile opens path and loads its documents.
func LoadFile(path string) ([]storage.Document, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
