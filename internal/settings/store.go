package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"minerctl/pkg/logging"
)

// DefaultFile is the settings document written next to the working directory,
// matching the file name xmrig users already have from earlier tooling.
const DefaultFile = "xmrig_parameters.json"

// ErrNoSettingsFile is returned by Restore when the settings file does not
// exist. Callers treat it as a non-fatal notice and skip the load.
var ErrNoSettingsFile = errors.New("no parameter file found")

const logSubsystem = "Settings"

// Persist writes the document to path as a 4-space-indented JSON object,
// overwriting any existing file.
func Persist(doc Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings to %s: %w", path, err)
	}
	logging.Info(logSubsystem, "Saved %d parameter(s) to %s", len(doc), path)
	return nil
}

// Restore reads and parses the document at path. A missing file yields
// ErrNoSettingsFile; a file that exists but does not parse yields the wrapped
// decode error.
func Restore(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSettingsFile, path)
		}
		return nil, fmt.Errorf("reading settings from %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	logging.Info(logSubsystem, "Loaded %d parameter(s) from %s", len(doc), path)
	return doc, nil
}
