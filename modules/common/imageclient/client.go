package imageclient

import (
	"context"
	"fmt"

	"storyweaver-server/modules/common/config"
)

// Client - 이미지 생성 프로바이더 추상화
// 성공 시 data URI 문자열을 반환함
type Client interface {
	// GenerateImage - 프롬프트 하나로 이미지 하나 생성
	GenerateImage(ctx context.Context, prompt, style string, seed *int64) (string, error)
}

// NewClient - 설정된 프로바이더에 맞는 클라이언트 생성
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.ImageProvider {
	case config.ProviderVertex:
		return NewVertexClient(ctx, cfg)
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown image provider: %s", cfg.ImageProvider)
	}
}

// truncateString - 로그용 문자열 자르기
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
