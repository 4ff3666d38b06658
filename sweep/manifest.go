package sweep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestName is the file name of the manifest inside the output directory.
const ManifestName = "manifest.json"

// Entry records the outcome of one configuration.
type Entry struct {
	Path            string  `json:"path"`
	Vertices        int     `json:"vertices"`
	Density         float64 `json:"density"`
	Edges           int     `json:"edges,omitempty"`
	AchievedDensity float64 `json:"achieved_density,omitempty"`
	Seed            int64   `json:"seed,omitempty"`
	ElapsedMS       float64 `json:"elapsed_ms,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// OK reports whether the configuration produced a file.
func (e Entry) OK() bool { return e.Error == "" }

// Manifest lists every configuration of a sweep.
type Manifest struct {
	RunID   string    `json:"run_id"`
	Created time.Time `json:"created"`
	Seed    int64     `json:"seed,omitempty"`
	Entries []Entry   `json:"entries"`
}

// Failed returns the number of configurations that produced no file.
func (m *Manifest) Failed() int {
	n := 0
	for _, e := range m.Entries {
		if !e.OK() {
			n++
		}
	}

	return n
}

// WriteManifest stores m as indented JSON in dir.
func WriteManifest(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("sweep: encode manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("sweep: write %s: %w", path, err)
	}

	return nil
}

// ReadManifest loads the manifest stored in dir.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sweep: read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("sweep: decode %s: %w", path, err)
	}

	return &m, nil
}
