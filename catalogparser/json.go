package catalogparser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// readJSONFile decodes one dataset file into a slice of records
func readJSONFile[T any](path string) ([]T, error) {
	cleanPath := filepath.Clean(path)

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cleanPath, err)
	}

	var records []T
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cleanPath, err)
	}

	return records, nil
}
