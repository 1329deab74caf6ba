package charactericon

import (
	"context"
	"log"
	"time"

	"storyweaver-server/modules/common/imagecache"
	"storyweaver-server/modules/common/imageclient"
	"storyweaver-server/modules/storydata"
)

// API 쿼터 보호용 호출 간격
const interCallDelay = time.Second

// Service - 캐릭터 선택 화면용 아이콘 생성
// 삽화 배치와 달리 순차 실행이며, 실패해도 재시도/폴백 없이 빈 문자열로 둠
type Service struct {
	client imageclient.Client
	cache  *imagecache.Cache
}

func NewService(client imageclient.Client, cache *imagecache.Cache) *Service {
	if client == nil || cache == nil {
		log.Println("❌ [CharacterIcon] 서비스 의존성 누락")
		return nil
	}
	return &Service{client: client, cache: cache}
}

// GenerateIcons - 요청된 캐릭터들의 아이콘을 순서대로 생성
// ids가 비어 있으면 전체 캐릭터 대상
func (s *Service) GenerateIcons(ctx context.Context, ids []string) map[string]string {
	if len(ids) == 0 {
		ids = storydata.CharacterIDs()
	}

	icons := make(map[string]string, len(ids))
	for i, id := range ids {
		if _, ok := storydata.GetCharacterDetail(id); !ok {
			log.Printf("⚠️ [CharacterIcon] 알 수 없는 캐릭터: %s", id)
			icons[id] = ""
			continue
		}

		if i > 0 {
			select {
			case <-ctx.Done():
				icons[id] = ""
				continue
			case <-time.After(interCallDelay):
			}
		}

		icons[id] = s.generateIcon(ctx, id)
	}
	return icons
}

func (s *Service) generateIcon(ctx context.Context, id string) string {
	prompt := storydata.CharacterImagePrompt(id)
	key := imagecache.Key(prompt, iconStyle, nil)

	if cached, ok := s.cache.Get(key); ok {
		log.Printf("✅ [CharacterIcon] 캐시 히트: %s", id)
		return cached
	}

	image, err := s.client.GenerateImage(ctx, prompt, iconStyle, nil)
	if err != nil {
		log.Printf("⚠️ [CharacterIcon] 생성 실패 (%s): %v", id, err)
		return ""
	}

	s.cache.Set(key, image)
	log.Printf("✅ [CharacterIcon] 생성 완료: %s", id)
	return image
}
