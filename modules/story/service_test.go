package story

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTextClient - 고정 응답/에러를 돌려주는 테스트용 클라이언트
type stubTextClient struct {
	response string
	err      error
	prompts  []string
}

func (c *stubTextClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func TestGenerateStorySuccess(t *testing.T) {
	client := &stubTextClient{response: wellFormedResponse(6)}
	service := NewServiceWithClient(client)

	parsed, err := service.GenerateStory(context.Background(), &StoryRequest{
		Character: "dragon",
		Genre:     "space",
		Age:       6,
	})
	require.NoError(t, err)
	assert.Len(t, parsed.Pages, 6)
	assert.Len(t, parsed.ImagePrompts, 6)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "dragon")
}

func TestGenerateStoryKeepsPartialResult(t *testing.T) {
	// 6페이지를 기대했지만 4페이지만 돌아온 경우 - 잘린 결과 유지
	client := &stubTextClient{response: wellFormedResponse(4)}
	service := NewServiceWithClient(client)

	parsed, err := service.GenerateStory(context.Background(), &StoryRequest{
		Character: "cat",
		Genre:     "ocean",
		Age:       5,
	})
	require.NoError(t, err)
	assert.Len(t, parsed.Pages, 4)
}

func TestGenerateStoryAlignsPartialPagesAndImages(t *testing.T) {
	// 페이지 3개에 이미지 설명이 2개만 돌아온 경우 - 페이지당 이미지 하나가 유지되도록 양쪽을 2개로 맞춤
	client := &stubTextClient{response: "Title: Lopsided\n" +
		"Page 1: One.\n" +
		"Page 2: Two.\n" +
		"Page 3: Three.\n" +
		"Image 1: Picture one.\n" +
		"Image 2: Picture two.\n"}
	service := NewServiceWithClient(client)

	parsed, err := service.GenerateStory(context.Background(), &StoryRequest{
		Character: "mouse",
		Genre:     "pirate",
		Age:       6,
	})
	require.NoError(t, err)
	assert.Len(t, parsed.Pages, 2)
	assert.Len(t, parsed.ImagePrompts, 2)
}

func TestGenerateStoryFailsWhenNoImagePrompts(t *testing.T) {
	// 페이지는 있지만 이미지 설명이 하나도 없으면 실패
	client := &stubTextClient{response: "Title: Broken\nPage 1: One.\nPage 2: Two.\n"}
	service := NewServiceWithClient(client)

	_, err := service.GenerateStory(context.Background(), &StoryRequest{
		Character: "cat",
		Genre:     "arctic",
		Age:       5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTextGenerationFailed)
}

func TestGenerateStoryFailsOnEmptyResponse(t *testing.T) {
	client := &stubTextClient{response: "I cannot write that story."}
	service := NewServiceWithClient(client)

	_, err := service.GenerateStory(context.Background(), &StoryRequest{
		Character: "knight",
		Genre:     "medieval",
		Age:       7,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTextGenerationFailed)
}

func TestGenerateStoryPropagatesClientError(t *testing.T) {
	client := &stubTextClient{err: errors.New("api down")}
	service := NewServiceWithClient(client)

	_, err := service.GenerateStory(context.Background(), &StoryRequest{
		Character: "wizard",
		Genre:     "magical-forest",
		Age:       8,
	})
	assert.Error(t, err)
}
