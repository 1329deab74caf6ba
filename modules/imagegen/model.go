package imagegen

import (
	"time"

	"storyweaver-server/modules/common/config"
)

// ImageItem - 생성할 이미지 한 장의 입력
type ImageItem struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Seed   *int64 `json:"seed,omitempty"`
}

// GenerationPolicy - 재시도/백오프/동시성 정책
// 하드코딩된 변형들 대신 하나의 설정 가능한 정책 객체로 통일함
type GenerationPolicy struct {
	MaxRetries  int           // 항목당 최대 시도 횟수
	BackoffBase time.Duration // 첫 재시도 대기시간
	BackoffCap  time.Duration // 대기시간 상한
	Concurrency int           // 동시에 날리는 요청 수
	PerSecond   float64       // 외부 API 호출 속도 상한 (req/s)
}

// PolicyFromConfig - 설정에서 정책 구성
func PolicyFromConfig(cfg *config.Config) GenerationPolicy {
	return GenerationPolicy{
		MaxRetries:  cfg.MaxRetries,
		BackoffBase: cfg.BackoffBase,
		BackoffCap:  cfg.BackoffCap,
		Concurrency: cfg.ImageConcurrency,
		PerSecond:   cfg.ImagesPerSecond,
	}
}

// BackoffDelay - 실패한 시도 번호(1부터)에 대한 대기시간
// 시도가 거듭될수록 delay는 반드시 증가하고 상한을 넘지 않음
// 레이트리밋 에러는 기본 스케줄보다 길게 기다림
func (p GenerationPolicy) BackoffDelay(attempt int, rateLimited bool) time.Duration {
	delay := p.BackoffBase
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= p.BackoffCap {
			delay = p.BackoffCap
			break
		}
	}
	if rateLimited {
		delay *= 2
	}
	if delay > p.BackoffCap {
		delay = p.BackoffCap
	}
	return delay
}

// BatchRequest - 이미지 배치 생성 요청
type BatchRequest struct {
	Prompts   []string `json:"prompts"`
	Style     string   `json:"style,omitempty"`
	Seed      *int64   `json:"seed,omitempty"`
	Character string   `json:"character,omitempty"`
}

// ItemError - 항목별 실패 내역 (폴백으로 대체된 슬롯)
type ItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResponse - 이미지 배치 생성 응답
// images는 입력 프롬프트와 같은 길이/순서를 보장함
type BatchResponse struct {
	Success      bool        `json:"success"`
	Images       []string    `json:"images,omitempty"`
	Errors       []ItemError `json:"errors,omitempty"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
	ErrorCode    string      `json:"errorCode,omitempty"`
}

// 에러 코드
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeAuthFailed     = "AUTH_FAILED"
	ErrCodeBatchFailed    = "BATCH_FAILED"
)

// DefaultStyle - 스타일 미지정 시 기본값
const DefaultStyle = "cartoon"
