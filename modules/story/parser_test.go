package story

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wellFormedResponse(pages int) string {
	var b strings.Builder
	b.WriteString("Title: The Brave Little Dragon\n\n")
	for i := 1; i <= pages; i++ {
		fmt.Fprintf(&b, "Page %d: Story text for page %d.\n", i, i)
	}
	b.WriteString("\n")
	for i := 1; i <= pages; i++ {
		fmt.Fprintf(&b, "Image %d: Illustration for page %d.\n", i, i)
	}
	return b.String()
}

func TestParseStoryResponseWellFormed(t *testing.T) {
	parsed, err := ParseStoryResponse(wellFormedResponse(6), 6)
	require.NoError(t, err)

	assert.Equal(t, "The Brave Little Dragon", parsed.Title)
	require.Len(t, parsed.Pages, 6)
	require.Len(t, parsed.ImagePrompts, 6)
	assert.Equal(t, "Story text for page 1.", parsed.Pages[0])
	assert.Equal(t, "Illustration for page 6.", parsed.ImagePrompts[5])
}

func TestParseStoryResponseToleratesNoise(t *testing.T) {
	content := "Sure! Here is your story:\n\n" +
		"Title:   Spaced Out Title  \n" +
		"\n\n" +
		"Page 1: First page.\n" +
		"Some commentary the model added.\n" +
		"Page 2: Second page.\n" +
		"Image 1: First picture.\n" +
		"Image 2: Second picture.\n" +
		"Hope you enjoy!\n"

	parsed, err := ParseStoryResponse(content, 2)
	require.NoError(t, err)
	assert.Equal(t, "Spaced Out Title", parsed.Title)
	assert.Equal(t, []string{"First page.", "Second page."}, parsed.Pages)
	assert.Equal(t, []string{"First picture.", "Second picture."}, parsed.ImagePrompts)
}

func TestParseStoryResponseMissingTitleUsesDefault(t *testing.T) {
	content := "Page 1: Only page.\nImage 1: Only picture.\n"

	parsed, err := ParseStoryResponse(content, 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, parsed.Title)
}

func TestParseStoryResponseReportsMismatchWithPartialResult(t *testing.T) {
	content := "Title: Short Story\n" +
		"Page 1: One.\n" +
		"Page 2: Two.\n" +
		"Image 1: Picture one.\n"

	parsed, err := ParseStoryResponse(content, 6)
	require.Error(t, err)

	var mismatch *FormatMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 6, mismatch.ExpectedPages)
	assert.Equal(t, 2, mismatch.GotPages)
	assert.Equal(t, 1, mismatch.GotImages)

	// 부분 결과는 에러와 함께 반환됨
	require.NotNil(t, parsed)
	assert.Len(t, parsed.Pages, 2)
	assert.Len(t, parsed.ImagePrompts, 1)
}

func TestParseStoryResponseEmptyContent(t *testing.T) {
	parsed, err := ParseStoryResponse("", 6)
	require.Error(t, err)
	assert.Empty(t, parsed.Pages)
}
