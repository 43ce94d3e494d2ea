package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexiconFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromJSON(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeLexiconFile(t, `[
			{"category": "programming_languages", "skills": ["Python", "Go"]},
			{"category": "frameworks", "skills": ["React"]}
		]`)

		db, err := LoadFromJSON(path)
		require.NoError(t, err)
		require.Len(t, db, 2)
		assert.Equal(t, "programming_languages", db[0].Name)
		assert.Equal(t, []string{"Python", "Go"}, db[0].Skills)

		ix := NewIndex(db)
		assert.Equal(t, "frameworks", ix.LookupCategory("react"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read lexicon file")
	})

	t.Run("schema violation", func(t *testing.T) {
		// skills must be an array of strings
		path := writeLexiconFile(t, `[{"category": "frameworks", "skills": "React"}]`)

		_, err := LoadFromJSON(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid lexicon file")
	})

	t.Run("missing category name", func(t *testing.T) {
		path := writeLexiconFile(t, `[{"skills": ["React"]}]`)

		_, err := LoadFromJSON(path)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeLexiconFile(t, `{"category":`)

		_, err := LoadFromJSON(path)
		assert.Error(t, err)
	})
}

func TestDefaultDatabase(t *testing.T) {
	db := DefaultDatabase()
	require.NotEmpty(t, db)

	ix := NewIndex(db)
	assert.Equal(t, "programming_languages", ix.LookupCategory("Python"))
	assert.Equal(t, "frameworks", ix.LookupCategory("spring boot"))
	assert.Greater(t, ix.Size(), 100)

	// The first category declared must be programming_languages so that
	// language aliases win ambiguous lookups.
	assert.Equal(t, "programming_languages", db[0].Name)
}
