package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-skills-analyzer/internal/schemas"
)

//go:embed lexicon.schema.json
var lexiconSchema string

// LoadFromJSON reads a skills database from a JSON file and validates it
// against the embedded schema before decoding. The file format mirrors the
// Database type: an ordered array of {"category": ..., "skills": [...]}.
func LoadFromJSON(path string) (Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	if err := schemas.ValidateJSONString(lexiconSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}

	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}

	return db, nil
}
