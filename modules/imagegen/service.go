package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"storyweaver-server/modules/common/config"
	"storyweaver-server/modules/common/fallback"
	"storyweaver-server/modules/common/imagecache"
	"storyweaver-server/modules/common/imageclient"
	"storyweaver-server/modules/common/utils"
)

// webp 변환 품질
const shrinkQuality = 90

// ProgressFunc - 배치 진행 콜백 (완료된 항목 수 / 전체)
type ProgressFunc func(done, total int)

// Gateway - 이미지 생성 게이트웨이
// 항목별로 캐시 확인 → 생성 → 재시도 → 폴백을 수행하고, 입력 순서와 결과 순서를 항상 일치시킴
// 개별 프롬프트 실패는 배치를 중단시키지 않음 (부분 성공이 정상 동작)
type Gateway struct {
	client  imageclient.Client
	cache   *imagecache.Cache
	policy  GenerationPolicy
	limiter *rate.Limiter
}

// NewGateway - 설정에서 게이트웨이 생성
func NewGateway(ctx context.Context, cfg *config.Config) (*Gateway, error) {
	client, err := imageclient.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewGatewayWithClient(client, imagecache.New(cfg.CacheTTL, cfg.CacheCapacity), PolicyFromConfig(cfg)), nil
}

// NewGatewayWithClient - 의존성 주입 생성자 (테스트용)
func NewGatewayWithClient(client imageclient.Client, cache *imagecache.Cache, policy GenerationPolicy) *Gateway {
	if policy.MaxRetries < 1 {
		policy.MaxRetries = 1
	}
	if policy.Concurrency < 1 {
		policy.Concurrency = 1
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if policy.PerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(policy.PerSecond), 1)
	}

	return &Gateway{
		client:  client,
		cache:   cache,
		policy:  policy,
		limiter: limiter,
	}
}

// Client - 아이콘 생성 등 단건 호출 모듈이 같은 클라이언트를 공유
func (g *Gateway) Client() imageclient.Client {
	return g.client
}

// Cache - 공유 캐시 접근
func (g *Gateway) Cache() *imagecache.Cache {
	return g.cache
}

// GenerateBatch - 프롬프트 배치를 이미지 data URI 배열로 해석
// 반환 배열의 인덱스 i는 항상 입력 프롬프트 인덱스 i에 대응함
// 자격증명 교환 실패만 배치 전체 에러로 번지고, 나머지 실패는 슬롯별 폴백으로 흡수됨
func (g *Gateway) GenerateBatch(ctx context.Context, items []ImageItem, character string, onProgress ProgressFunc) ([]string, []ItemError, error) {
	if len(items) == 0 {
		return []string{}, nil, nil
	}

	log.Printf("🎨 [ImageGen] Starting batch - %d items, concurrency: %d, retries: %d",
		len(items), g.policy.Concurrency, g.policy.MaxRetries)

	results := make([]string, len(items))
	itemErrors := make([]ItemError, 0)

	var mu sync.Mutex
	done := 0

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(g.policy.Concurrency)

	for i, item := range items {
		group.Go(func() error {
			data, itemErr := g.generateOne(groupCtx, item, i, character)
			results[i] = data

			mu.Lock()
			if itemErr != nil {
				// 치명적 에러는 배치 중단
				if errors.Is(itemErr, imageclient.ErrAuthFailed) {
					mu.Unlock()
					return itemErr
				}
				itemErrors = append(itemErrors, ItemError{Index: i, Error: itemErr.Error()})
			}
			done++
			doneNow := done
			mu.Unlock()

			if onProgress != nil {
				onProgress(doneNow, len(items))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Printf("❌ [ImageGen] Batch aborted: %v", err)
		return nil, nil, err
	}

	log.Printf("✅ [ImageGen] Batch complete - %d/%d generated, %d fallbacks",
		len(items)-len(itemErrors), len(items), len(itemErrors))
	return results, itemErrors, nil
}

// generateOne - 항목 하나의 상태 머신: 캐시 확인 → 생성/재시도 → 폴백
// 반환되는 문자열은 항상 비어있지 않음 (실패 시 폴백 data URI)
// 두 번째 반환값은 폴백으로 대체된 이유 (성공/캐시 히트면 nil)
func (g *Gateway) generateOne(ctx context.Context, item ImageItem, index int, character string) (string, error) {
	key := imagecache.Key(item.Prompt, item.Style, item.Seed)

	if cached, ok := g.cache.Get(key); ok {
		log.Printf("💾 [ImageGen] Cache hit for item %d", index)
		return cached, nil
	}

	var lastErr error
	for attempt := 1; attempt <= g.policy.MaxRetries; attempt++ {
		// 외부 API 호출 속도 제한
		if err := g.limiter.Wait(ctx); err != nil {
			lastErr = err
			break
		}

		data, err := g.client.GenerateImage(ctx, item.Prompt, item.Style, item.Seed)
		if err == nil {
			data = utils.ShrinkImageDataURI(data, shrinkQuality)
			g.cache.Set(key, data)
			log.Printf("✅ [ImageGen] Item %d generated (attempt %d/%d)", index, attempt, g.policy.MaxRetries)
			return data, nil
		}
		lastErr = err

		// 자격증명 실패는 즉시 전파 (배치 전체 중단)
		if errors.Is(err, imageclient.ErrAuthFailed) {
			log.Printf("❌ [ImageGen] Item %d auth failure: %v", index, err)
			return "", err
		}

		// 콘텐츠 필터 거부는 같은 프롬프트로 재시도해도 똑같이 실패하므로 종결
		if errors.Is(err, imageclient.ErrContentFiltered) {
			log.Printf("🚫 [ImageGen] Item %d rejected by content filter, using fallback: %v", index, err)
			break
		}

		rateLimited := errors.Is(err, imageclient.ErrRateLimited)
		log.Printf("⚠️ [ImageGen] Item %d attempt %d/%d failed (rate limited: %v): %v",
			index, attempt, g.policy.MaxRetries, rateLimited, err)

		if attempt < g.policy.MaxRetries {
			delay := g.policy.BackoffDelay(attempt, rateLimited)
			log.Printf("⏳ [ImageGen] Item %d waiting %s before retry", index, delay)
			if err := sleepCtx(ctx, delay); err != nil {
				break
			}
		}
	}

	// 재시도 소진 - 폴백 이미지로 슬롯을 채움
	log.Printf("🎭 [ImageGen] Item %d exhausted retries, using fallback", index)
	if lastErr == nil {
		lastErr = fmt.Errorf("generation failed for item %d", index)
	}
	return fallback.GenerateFallbackImage(item.Prompt, index, character), lastErr
}

// sleepCtx - 컨텍스트 취소를 존중하는 sleep
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
