package report

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteJSON renders the batch result as indented JSON.
func WriteJSON(path string, batch BatchResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}
