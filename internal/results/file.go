package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// FileRecorder keeps outcomes in a JSON object file, one key per scenario.
// Existing keys in the file are preserved.
type FileRecorder struct {
	mu   sync.Mutex
	path string
}

func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

func (f *FileRecorder) Record(scenario string, passed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	outcomes, err := f.load()
	if err != nil {
		return err
	}
	outcomes[scenario] = Outcome(passed)

	data, err := json.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return os.WriteFile(f.path, data, 0o644)
}

// Outcomes returns every outcome currently stored in the file.
func (f *FileRecorder) Outcomes() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileRecorder) load() (map[string]string, error) {
	outcomes := map[string]string{}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return outcomes, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	if len(data) == 0 {
		return outcomes, nil
	}
	if err := json.Unmarshal(data, &outcomes); err != nil {
		return nil, fmt.Errorf("decode results %s: %w", f.path, err)
	}
	return outcomes, nil
}
