package generators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// writeDataset serializes records as a two-space-indented JSON array
// and replaces the file at path in one write. HTML escaping is
// disabled so CJK text and symbols like ≥ stay verbatim UTF-8.
func writeDataset(path string, records any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to marshal dataset for %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
