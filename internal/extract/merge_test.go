package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSetAdd(t *testing.T) {
	set := newSkillSet()
	set.add("Python", "programming_languages", confidencePattern, rankPattern)
	set.add("Python", "programming_languages", confidencePattern, rankPattern)
	set.add("Go", "programming_languages", confidencePattern, rankPattern)

	require.Len(t, set.order, 2)
	assert.Equal(t, 2, set.records["Python"].count)
	assert.Equal(t, 1, set.records["Go"].count)
	assert.Equal(t, []string{"Python", "Go"}, set.order)
}

func TestMergeSkillSets(t *testing.T) {
	t.Run("counts sum across strategies", func(t *testing.T) {
		pattern := newSkillSet()
		pattern.add("Python", "programming_languages", confidencePattern, rankPattern)
		pattern.add("Python", "programming_languages", confidencePattern, rankPattern)

		contextual := newSkillSet()
		contextual.add("Python", "programming_languages", confidenceContextual, rankContextual)

		skills := mergeSkillSets(pattern, contextual)
		require.Len(t, skills, 1)
		assert.Equal(t, "Python", skills[0].Name)
		assert.Equal(t, 3, skills[0].Count)
		assert.Equal(t, confidencePattern, skills[0].Confidence)
	})

	t.Run("confidence takes the maximum regardless of order", func(t *testing.T) {
		contextual := newSkillSet()
		contextual.add("Docker", "devops_tools", confidenceContextual, rankContextual)

		pattern := newSkillSet()
		pattern.add("Docker", "devops_tools", confidencePattern, rankPattern)

		skills := mergeSkillSets(contextual, pattern)
		require.Len(t, skills, 1)
		assert.Equal(t, confidencePattern, skills[0].Confidence)
	})

	t.Run("category follows the highest-confidence strategy", func(t *testing.T) {
		entity := newSkillSet()
		entity.add("Firebase", "cloud_platforms", confidenceEntity, rankEntity)

		pattern := newSkillSet()
		pattern.add("Firebase", "databases", confidencePattern, rankPattern)

		skills := mergeSkillSets(entity, pattern)
		require.Len(t, skills, 1)
		assert.Equal(t, "databases", skills[0].Category)
	})

	t.Run("sorted by count then confidence", func(t *testing.T) {
		pattern := newSkillSet()
		pattern.add("Go", "programming_languages", confidencePattern, rankPattern)
		pattern.add("Python", "programming_languages", confidencePattern, rankPattern)
		pattern.add("Python", "programming_languages", confidencePattern, rankPattern)

		contextual := newSkillSet()
		contextual.add("Docker", "devops_tools", confidenceContextual, rankContextual)

		skills := mergeSkillSets(pattern, contextual)
		require.Len(t, skills, 3)
		assert.Equal(t, "Python", skills[0].Name) // count 2
		assert.Equal(t, "Go", skills[1].Name)     // count 1, confidence 0.95
		assert.Equal(t, "Docker", skills[2].Name) // count 1, confidence 0.60
	})

	t.Run("ties keep discovery order", func(t *testing.T) {
		pattern := newSkillSet()
		pattern.add("Go", "programming_languages", confidencePattern, rankPattern)
		pattern.add("Rust", "programming_languages", confidencePattern, rankPattern)
		pattern.add("Python", "programming_languages", confidencePattern, rankPattern)

		skills := mergeSkillSets(pattern)
		require.Len(t, skills, 3)
		assert.Equal(t, "Go", skills[0].Name)
		assert.Equal(t, "Rust", skills[1].Name)
		assert.Equal(t, "Python", skills[2].Name)
	})

	t.Run("empty sets merge to empty", func(t *testing.T) {
		skills := mergeSkillSets(newSkillSet(), newSkillSet())
		assert.Empty(t, skills)
	})
}
