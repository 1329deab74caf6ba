package storybook

import (
	"context"
	"log"

	"storyweaver-server/modules/imagegen"
	"storyweaver-server/modules/profile"
	"storyweaver-server/modules/story"
	"storyweaver-server/modules/storydata"
)

// Service - 스토리 생성 → 삽화 생성 전체 파이프라인
type Service struct {
	stories *story.Service
	gateway *imagegen.Gateway
}

// NewService - 공유 게이트웨이를 받아 파이프라인 구성 (캐시 공유 목적)
func NewService(stories *story.Service, gateway *imagegen.Gateway) *Service {
	if stories == nil || gateway == nil {
		log.Println("❌ [Storybook] 서비스 의존성 누락")
		return nil
	}
	return &Service{stories: stories, gateway: gateway}
}

// GenerateStorybook - 텍스트 생성, 파싱, 캐릭터 일관성 적용, 삽화 일괄 생성
// onProgress는 nil 가능 (완료된 삽화 수 통지용)
func (s *Service) GenerateStorybook(ctx context.Context, req *story.StoryRequest, onProgress imagegen.ProgressFunc) (*StorybookResponse, error) {
	parsed, err := s.stories.GenerateStory(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Printf("📖 [Storybook] 스토리 생성 완료: %s (%d페이지), 삽화 생성 시작", parsed.Title, len(parsed.Pages))

	items := buildImageItems(parsed.ImagePrompts, req.Character, req.Profile)

	images, itemErrors, err := s.gateway.GenerateBatch(ctx, items, req.Character, onProgress)
	if err != nil {
		return nil, err
	}

	if len(itemErrors) > 0 {
		log.Printf("⚠️ [Storybook] 삽화 %d개 폴백 대체됨", len(itemErrors))
	}

	return &StorybookResponse{
		Success:      true,
		Title:        parsed.Title,
		Pages:        parsed.Pages,
		ImagePrompts: parsed.ImagePrompts,
		Images:       images,
		Character:    req.Character,
		Genre:        req.Genre,
		Age:          req.Age,
		Errors:       itemErrors,
	}, nil
}

// buildImageItems - 프로필이 있으면 외모 일관성 프롬프트로 증강
// 프로필이 없으면 아키타입 고정 문구만 덧붙임
// 증강은 결정적이므로 같은 프로필이면 캐시 키도 동일
func buildImageItems(prompts []string, character string, p *profile.ChildProfile) []imagegen.ImageItem {
	items := make([]imagegen.ImageItem, len(prompts))

	if p == nil {
		consistency := storydata.CharacterConsistencyPrompt(character, "")
		for i, prompt := range prompts {
			if consistency != "" {
				prompt = prompt + "\n\n" + consistency
			}
			items[i] = imagegen.ImageItem{Prompt: prompt, Style: imagegen.DefaultStyle}
		}
		return items
	}

	appearance := profile.GenerateConsistentCharacter(p)
	for i, prompt := range prompts {
		scene := story.PersonalizeImagePrompt(prompt, p)
		items[i] = imagegen.ImageItem{
			Prompt: profile.ImageConsistencyPrompt(appearance, scene),
			Style:  imagegen.DefaultStyle,
		}
	}
	return items
}
