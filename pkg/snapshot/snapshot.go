// Package snapshot reads and writes form value maps.
//
// Initial-value fixtures load from YAML files and feed
// Controller.SetInitialValues; committed values export to JSON for hosts
// that persist or submit form results. Failures are reported to the global
// errors handler and returned as *errors.FormError with KindSnapshot.
package snapshot

import (
	stderrors "errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/formbind/pkg/errors"
)

// snapshotError reports a failure to the global handler and returns it.
func snapshotError(op string, err error) error {
	ferr := &errors.FormError{Op: op, Kind: errors.KindSnapshot, Err: err}
	errors.Report(ferr)
	return ferr
}

// ParseYAML decodes a name-to-value map from YAML.
func ParseYAML(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, snapshotError("snapshot.ParseYAML", fmt.Errorf("failed to parse values: %w", err))
	}
	if values == nil {
		values = make(map[string]any)
	}
	return values, nil
}

// LoadYAML reads a YAML values file. A missing file is not an error; it
// yields an empty map so forms start blank.
func LoadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return make(map[string]any), nil
		}
		return nil, snapshotError("snapshot.LoadYAML", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return ParseYAML(data)
}

// EncodeJSON serializes a value map to JSON.
func EncodeJSON(values map[string]any) ([]byte, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return nil, snapshotError("snapshot.EncodeJSON", fmt.Errorf("failed to encode values: %w", err))
	}
	return data, nil
}

// DecodeJSON deserializes a value map from JSON.
func DecodeJSON(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, snapshotError("snapshot.DecodeJSON", fmt.Errorf("failed to decode values: %w", err))
	}
	if values == nil {
		values = make(map[string]any)
	}
	return values, nil
}

// WriteFile exports a value map as JSON to path.
func WriteFile(path string, values map[string]any) error {
	data, err := EncodeJSON(values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return snapshotError("snapshot.WriteFile", fmt.Errorf("failed to write %s: %w", path, err))
	}
	return nil
}
