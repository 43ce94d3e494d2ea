package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabase() Database {
	return Database{
		{Name: "programming_languages", Skills: []string{"Python", "Go", "C++"}},
		{Name: "frameworks", Skills: []string{"React", "Spring Boot", "Django"}},
		{Name: "databases", Skills: []string{"PostgreSQL", "Redis"}},
		// "Python" declared again later; the first declaration must win.
		{Name: "data_science", Skills: []string{"Machine Learning", "Python"}},
	}
}

func TestLookupCategory(t *testing.T) {
	ix := NewIndex(testDatabase())

	tests := []struct {
		name     string
		phrase   string
		expected string
	}{
		{"exact match", "Python", "programming_languages"},
		{"case insensitive", "python", "programming_languages"},
		{"upper case", "PYTHON", "programming_languages"},
		{"multi-word alias", "Spring Boot", "frameworks"},
		{"multi-word case insensitive", "machine learning", "data_science"},
		{"extra whitespace collapses", "  Spring   Boot  ", "frameworks"},
		{"unknown phrase", "Cooking", "other"},
		{"empty phrase", "", "other"},
		{"symbol alias", "c++", "programming_languages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ix.LookupCategory(tt.phrase))
		})
	}
}

func TestLookupCategoryFirstDeclaredWins(t *testing.T) {
	ix := NewIndex(testDatabase())

	// Python appears in both programming_languages and data_science;
	// the earlier category must win deterministically.
	assert.Equal(t, "programming_languages", ix.LookupCategory("Python"))
}

func TestDefaultDatabaseAmbiguousAliases(t *testing.T) {
	ix := NewIndex(DefaultDatabase())

	tests := []struct {
		alias    string
		expected string
	}{
		{"DynamoDB", "databases"},
		{"Firebase", "databases"},
		{"TensorFlow", "frameworks"},
		{"Java", "programming_languages"},
		{"Tableau", "data_science"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			assert.Equal(t, tt.expected, ix.LookupCategory(tt.alias))
		})
	}
}

func TestMatchPhrases(t *testing.T) {
	ix := NewIndex(testDatabase())

	t.Run("single token matches", func(t *testing.T) {
		matches := ix.MatchPhrases([]string{"We", "use", "Python", "and", "Django"})
		require.Len(t, matches, 2)
		assert.Equal(t, PhraseMatch{Start: 2, End: 3, Category: "programming_languages", Display: "Python"}, matches[0])
		assert.Equal(t, PhraseMatch{Start: 4, End: 5, Category: "frameworks", Display: "Django"}, matches[1])
	})

	t.Run("multi-word alias matches", func(t *testing.T) {
		matches := ix.MatchPhrases([]string{"spring", "boot", "experience"})
		require.Len(t, matches, 1)
		assert.Equal(t, 0, matches[0].Start)
		assert.Equal(t, 2, matches[0].End)
		assert.Equal(t, "frameworks", matches[0].Category)
	})

	t.Run("overlapping matches are all returned", func(t *testing.T) {
		db := Database{
			{Name: "frameworks", Skills: []string{"Spring", "Spring Boot"}},
		}
		matches := NewIndex(db).MatchPhrases([]string{"Spring", "Boot"})
		require.Len(t, matches, 2)
		assert.Equal(t, "Spring", matches[0].Display)
		assert.Equal(t, "Spring Boot", matches[1].Display)
	})

	t.Run("no matches", func(t *testing.T) {
		matches := ix.MatchPhrases([]string{"nothing", "relevant", "here"})
		assert.Empty(t, matches)
	})

	t.Run("empty lexicon matches nothing", func(t *testing.T) {
		matches := NewIndex(nil).MatchPhrases([]string{"Python"})
		assert.Empty(t, matches)
	})

	t.Run("empty token stream", func(t *testing.T) {
		assert.Empty(t, ix.MatchPhrases(nil))
	})
}

func TestDisplayForm(t *testing.T) {
	ix := NewIndex(testDatabase())

	assert.Equal(t, "Python", ix.DisplayForm("python"))
	assert.Equal(t, "Spring Boot", ix.DisplayForm("spring  boot"))
	assert.Equal(t, "unknown", ix.DisplayForm("unknown"))
}

func TestIndexStats(t *testing.T) {
	ix := NewIndex(testDatabase())

	assert.Equal(t, []string{"programming_languages", "frameworks", "databases", "data_science"}, ix.Categories())
	// "Python" is declared twice but indexed once.
	assert.Equal(t, 9, ix.Size())
}
