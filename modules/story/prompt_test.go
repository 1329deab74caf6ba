package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyweaver-server/modules/profile"
	"storyweaver-server/modules/storydata"
)

func profileWithLevel(level string) *profile.ChildProfile {
	return &profile.ChildProfile{
		ID:           "p1",
		Name:         "Theo",
		Age:          5,
		Gender:       "boy",
		Interests:    []string{"dinosaurs", "space"},
		ReadingLevel: level,
	}
}

func TestComposeStoryPromptPageCountFollowsReadingLevel(t *testing.T) {
	cases := []struct {
		level string
		pages int
	}{
		{"pre-reader", 4},
		{"early-reader", 6},
		{"beginner", 6},
		{"intermediate", 8},
		{"advanced", 10},
	}

	for _, tc := range cases {
		req := &StoryRequest{Character: "dragon", Genre: "space", Age: 5, Profile: profileWithLevel(tc.level)}
		composed := ComposeStoryPrompt(req)
		assert.Equal(t, tc.pages, composed.PageCount, "level %s", tc.level)
	}
}

func TestComposeStoryPromptWithoutProfileDefaultsToSixPages(t *testing.T) {
	req := &StoryRequest{Character: "knight", Genre: "medieval", Age: 7}
	composed := ComposeStoryPrompt(req)

	assert.Equal(t, storydata.DefaultPageCount, composed.PageCount)
	assert.Contains(t, composed.Text, "knight")
	assert.Contains(t, composed.Text, "Title:")
}

func TestComposeStoryPromptUnknownLevelFallsBackToBeginner(t *testing.T) {
	req := &StoryRequest{Character: "cat", Genre: "ocean", Age: 6, Profile: profileWithLevel("galactic")}
	composed := ComposeStoryPrompt(req)
	assert.Equal(t, 6, composed.PageCount)
}

func TestComposeStoryPromptPersonalization(t *testing.T) {
	req := &StoryRequest{Character: "wizard", Genre: "magical-forest", Age: 5, Profile: profileWithLevel("beginner")}
	composed := ComposeStoryPrompt(req)

	assert.Contains(t, composed.Text, "Theo")
	assert.Contains(t, composed.Text, "he/him")
	assert.Contains(t, composed.Text, "dinosaurs")
	// 파서 형식 계약이 페이지 수만큼 포함됨
	assert.Contains(t, composed.Text, "Page 6:")
	assert.Contains(t, composed.Text, "Image 6:")
	assert.NotContains(t, composed.Text, "Page 7:")
}

func TestPersonalizeImagePrompt(t *testing.T) {
	p := profileWithLevel("beginner")

	got := PersonalizeImagePrompt("The main character climbs a hill", p)
	require.Contains(t, got, "Theo")
	assert.NotContains(t, got, "main character")

	// 프로필 없으면 그대로
	assert.Equal(t, "The main character climbs a hill", PersonalizeImagePrompt("The main character climbs a hill", nil))
}
