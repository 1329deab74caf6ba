package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *ChildProfile {
	return &ChildProfile{
		ID:           "p1",
		Name:         "Mina",
		Age:          6,
		Gender:       "girl",
		Interests:    []string{"space", "animals"},
		ReadingLevel: "beginner",
	}
}

func TestGenerateConsistentCharacterIsDeterministic(t *testing.T) {
	p := sampleProfile()

	first := GenerateConsistentCharacter(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateConsistentCharacter(p))
	}
}

func TestGenerateConsistentCharacterClothingFollowsPrimaryInterest(t *testing.T) {
	p := sampleProfile()

	appearance := GenerateConsistentCharacter(p)
	assert.Contains(t, appearance.Clothing.Top, "star pattern")

	// 관심사 순서가 바뀌면 의상도 바뀜
	p.Interests = []string{"animals", "space"}
	appearance = GenerateConsistentCharacter(p)
	assert.Contains(t, appearance.Clothing.Top, "safari vest")
}

func TestGenerateConsistentCharacterDefaultClothing(t *testing.T) {
	p := sampleProfile()
	p.Interests = []string{"collecting rocks"}

	appearance := GenerateConsistentCharacter(p)
	assert.Equal(t, defaultClothing, appearance.Clothing)
}

func TestGenerateConsistentCharacterGenderVariants(t *testing.T) {
	p := sampleProfile()

	p.Gender = "boy"
	assert.Equal(t, "dark brown", GenerateConsistentCharacter(p).HairColor)

	p.Gender = "girl"
	assert.Equal(t, "medium brown", GenerateConsistentCharacter(p).HairColor)

	p.Gender = ""
	appearance := GenerateConsistentCharacter(p)
	assert.Equal(t, "auburn", appearance.HairColor)
	assert.Equal(t, "child", appearance.Gender)
}

func TestImageConsistencyPromptEmbedsSceneAndAppearance(t *testing.T) {
	p := sampleProfile()
	appearance := GenerateConsistentCharacter(p)

	prompt := ImageConsistencyPrompt(appearance, "Mina rides a rocket past the moon")

	require.Contains(t, prompt, "Mina rides a rocket past the moon")
	assert.Contains(t, prompt, appearance.Clothing.Top)
	assert.Contains(t, prompt, appearance.HairColor)
	assert.Contains(t, prompt, "MUST BE EXACT")
}

func TestPronouns(t *testing.T) {
	p := sampleProfile()

	p.Gender = "boy"
	assert.Equal(t, "he/him", p.Pronouns())

	p.Gender = "girl"
	assert.Equal(t, "she/her", p.Pronouns())

	p.Gender = "other"
	assert.Equal(t, "they/them", p.Pronouns())
}

func TestValidate(t *testing.T) {
	p := sampleProfile()
	require.NoError(t, p.Validate())

	p.Name = ""
	assert.Error(t, p.Validate())

	p = sampleProfile()
	p.Age = 2
	assert.Error(t, p.Validate())

	p = sampleProfile()
	p.Age = 13
	assert.Error(t, p.Validate())
}
