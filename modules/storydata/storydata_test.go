package storydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingLevelPageCounts(t *testing.T) {
	expected := map[string]int{
		"pre-reader":   4,
		"early-reader": 6,
		"beginner":     6,
		"intermediate": 8,
		"advanced":     10,
	}

	for value, pages := range expected {
		level := GetReadingLevel(value)
		assert.Equal(t, value, level.Value)
		assert.Equal(t, pages, level.PageCount, "level %s", value)
	}

	// 알 수 없는 값은 beginner
	assert.Equal(t, "beginner", GetReadingLevel("nonsense").Value)
	assert.Equal(t, DefaultPageCount, GetReadingLevel("nonsense").PageCount)
}

func TestCharacterIDsCoverAllDetails(t *testing.T) {
	ids := CharacterIDs()
	require.Len(t, ids, len(CharacterDetails))

	for _, id := range ids {
		_, ok := GetCharacterDetail(id)
		assert.True(t, ok, "missing detail for %s", id)
	}
}

func TestCharacterImagePrompt(t *testing.T) {
	prompt := CharacterImagePrompt("dragon")
	require.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Wearing:")

	assert.Empty(t, CharacterImagePrompt("unknown"))
}

func TestCharacterConsistencyPrompt(t *testing.T) {
	withName := CharacterConsistencyPrompt("princess", "Mina")
	assert.Contains(t, withName, "Mina")
	assert.Contains(t, withName, "exact same appearance")

	anonymous := CharacterConsistencyPrompt("princess", "")
	assert.Contains(t, anonymous, "identical in every image")
}

func TestGetThemeByID(t *testing.T) {
	theme, ok := GetThemeByID("space")
	require.True(t, ok)
	assert.NotEmpty(t, theme.Name)

	_, ok = GetThemeByID("underworld")
	assert.False(t, ok)
}
