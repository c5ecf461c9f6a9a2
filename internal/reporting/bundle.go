// Package reporting serializes scored benchmark results: JSON bundles,
// CSV comparison tables, and compressed archives. The scoring core
// never depends on any of this.
package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/perfkit/hwbench/internal/models"
	"github.com/perfkit/hwbench/internal/validation"
)

// WriteBundle writes a scored result to path as indented JSON, creating
// parent directories as needed.
func WriteBundle(path string, result *models.SystemResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result for %s: %w", result.SystemID, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadBundle reads a result bundle, validates it against the result
// schema, and unmarshals it. Schema violations are reported together in
// one error so the user can fix the file in a single pass.
func LoadBundle(path string) (*models.SystemResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if errs := validation.ValidateResultBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("%s is not a valid result bundle:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var result models.SystemResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &result, nil
}
