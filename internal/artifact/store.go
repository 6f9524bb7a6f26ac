// Package artifact persists generated collections as flat JSON files.
//
// Each save writes two files under the category directory: a dated
// snapshot ({YYYY-MM-DD}.json) and latest.json, a full copy rather
// than a symlink so the tree stays portable on static hosting.
// latest.json is a denormalized cache of the newest snapshot; a
// same-day rerun overwrites both.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"opensession-curator/internal/model"
)

// Store writes collections under a single output root. The generation
// process is the sole writer of the tree; readers go through HTTP.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// Save writes the dated snapshot and latest.json from one serialization
// pass, so the two files can never diverge within a call. It returns
// the dated snapshot path. Failure of either write is fatal for the
// category; partial state is left for the next successful run to
// overwrite.
func (s *Store) Save(col model.Collection, now time.Time) (string, error) {
	dir := filepath.Join(s.Root, filepath.FromSlash(col.Category().Dir()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category dir: %w", err)
	}
	b, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal collection: %w", err)
	}
	dated := filepath.Join(dir, now.UTC().Format("2006-01-02")+".json")
	if err := os.WriteFile(dated, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dated, err)
	}
	latest := filepath.Join(dir, "latest.json")
	if err := os.WriteFile(latest, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", latest, err)
	}
	return dated, nil
}
