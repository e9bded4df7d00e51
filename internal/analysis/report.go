package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveReport writes v as an indented JSON report file in dir and returns
// the filename. Used when no external report transport is configured.
func SaveReport(dir string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}

	filename := fmt.Sprintf("health_report_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return filename, nil
}
