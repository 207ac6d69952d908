package supplier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tienhung-ho/my-hotel-merger/internal/domain"
)

// FixtureSource reads a supplier payload from <dir>/<name>.json, the same
// JSON list the API would serve. Used for offline runs and tests.
type FixtureSource struct {
	name string
	path string
}

func NewFixtureSource(name, dir string) *FixtureSource {
	return &FixtureSource{name: name, path: filepath.Join(dir, name+".json")}
}

func (s *FixtureSource) Name() string { return s.name }

func (s *FixtureSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", s.path, err)
	}
	var items []map[string]any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", s.path, err)
	}
	return wrapRecords(s.name, items), nil
}
