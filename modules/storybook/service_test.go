package storybook

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyweaver-server/modules/common/fallback"
	"storyweaver-server/modules/common/imagecache"
	"storyweaver-server/modules/common/imageclient"
	"storyweaver-server/modules/imagegen"
	"storyweaver-server/modules/profile"
	"storyweaver-server/modules/story"
)

// scriptedTextClient - 지정된 페이지 수의 형식 준수 응답을 돌려줌
type scriptedTextClient struct {
	pages int
}

func (c *scriptedTextClient) Complete(ctx context.Context, prompt string) (string, error) {
	var b strings.Builder
	b.WriteString("Title: The Starlight Voyage\n\n")
	for i := 1; i <= c.pages; i++ {
		fmt.Fprintf(&b, "Page %d: Page text %d.\n", i, i)
	}
	for i := 1; i <= c.pages; i++ {
		fmt.Fprintf(&b, "Image %d: The main character does something on page %d.\n", i, i)
	}
	return b.String(), nil
}

// flakyImageClient - 지정된 인덱스(수신 순서 아님, 프롬프트 내용 기준)만 실패
type flakyImageClient struct {
	mu         sync.Mutex
	failSubstr string
	calls      int
}

func (c *flakyImageClient) GenerateImage(ctx context.Context, prompt, style string, seed *int64) (string, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	if c.failSubstr != "" && strings.Contains(prompt, c.failSubstr) {
		return "", imageclient.ErrGenerationFailed
	}
	return "data:image/png;base64,ok", nil
}

func testPipeline(text story.TextClient, image imageclient.Client) *Service {
	policy := imagegen.GenerationPolicy{
		MaxRetries:  2,
		BackoffBase: time.Millisecond,
		BackoffCap:  2 * time.Millisecond,
		Concurrency: 2,
	}
	gateway := imagegen.NewGatewayWithClient(image, imagecache.New(time.Hour, 100), policy)
	return NewService(story.NewServiceWithClient(text), gateway)
}

func TestGenerateStorybookEndToEnd(t *testing.T) {
	service := testPipeline(&scriptedTextClient{pages: 6}, &flakyImageClient{})

	result, err := service.GenerateStorybook(context.Background(), &story.StoryRequest{
		Character: "dragon",
		Genre:     "space",
		Age:       6,
	}, nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "The Starlight Voyage", result.Title)
	require.Len(t, result.Pages, 6)
	require.Len(t, result.ImagePrompts, 6)
	require.Len(t, result.Images, 6)
	assert.Empty(t, result.Errors)
}

func TestGenerateStorybookSingleFailureGetsFallbackSlot(t *testing.T) {
	// 3번째 페이지의 이미지 프롬프트만 실패
	image := &flakyImageClient{failSubstr: "page 3"}
	service := testPipeline(&scriptedTextClient{pages: 6}, image)

	result, err := service.GenerateStorybook(context.Background(), &story.StoryRequest{
		Character: "dragon",
		Genre:     "space",
		Age:       6,
	}, nil)
	require.NoError(t, err)
	require.Len(t, result.Images, 6)

	for i, img := range result.Images {
		if i == 2 {
			assert.True(t, fallback.IsFallbackImage(img), "slot %d should be fallback", i)
		} else {
			assert.False(t, fallback.IsFallbackImage(img), "slot %d should be real", i)
		}
	}

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Index)
}

func TestGenerateStorybookPageCountFollowsProfile(t *testing.T) {
	service := testPipeline(&scriptedTextClient{pages: 10}, &flakyImageClient{})

	result, err := service.GenerateStorybook(context.Background(), &story.StoryRequest{
		Character: "wizard",
		Genre:     "magical-forest",
		Age:       9,
		Profile: &profile.ChildProfile{
			ID:           "p1",
			Name:         "Mina",
			Age:          9,
			Gender:       "girl",
			Interests:    []string{"space"},
			ReadingLevel: "advanced",
		},
	}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Pages, 10)
	assert.Len(t, result.Images, 10)
}

func TestGenerateStorybookAugmentsPromptsWithProfile(t *testing.T) {
	p := &profile.ChildProfile{
		ID:           "p1",
		Name:         "Mina",
		Age:          6,
		Gender:       "girl",
		Interests:    []string{"space"},
		ReadingLevel: "beginner",
	}

	items := buildImageItems([]string{"The main character waves hello."}, "wizard", p)
	require.Len(t, items, 1)

	// 캐릭터 외형 블록과 이름 치환이 들어감
	assert.Contains(t, items[0].Prompt, "Mina")
	assert.Contains(t, items[0].Prompt, "CHARACTER APPEARANCE")
	assert.NotContains(t, items[0].Prompt, "main character waves")

	// 결정적이므로 같은 프로필이면 같은 프롬프트 (캐시 키 안정성)
	again := buildImageItems([]string{"The main character waves hello."}, "wizard", p)
	assert.Equal(t, items[0].Prompt, again[0].Prompt)
}

func TestBuildImageItemsWithoutProfileLocksArchetype(t *testing.T) {
	items := buildImageItems([]string{"A dragon flies over mountains."}, "dragon", nil)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Prompt, "A dragon flies over mountains.")
	assert.Contains(t, items[0].Prompt, "identical in every image")

	// 알 수 없는 아키타입은 원본 그대로
	items = buildImageItems([]string{"Scene."}, "mermaid", nil)
	assert.Equal(t, "Scene.", items[0].Prompt)
}

func TestGenerateStorybookProgressReachesTotal(t *testing.T) {
	service := testPipeline(&scriptedTextClient{pages: 4}, &flakyImageClient{})

	var mu sync.Mutex
	last := 0
	onProgress := func(done, total int) {
		mu.Lock()
		if done > last {
			last = done
		}
		assert.Equal(t, 4, total)
		mu.Unlock()
	}

	_, err := service.GenerateStorybook(context.Background(), &story.StoryRequest{
		Character: "cat",
		Genre:     "ocean",
		Age:       5,
	}, onProgress)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 4, last)
}
