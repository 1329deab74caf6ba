package imageclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"storyweaver-server/modules/common/config"
)

// GeminiClient - Gemini API 이미지 생성 클라이언트 (대체 프로바이더)
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient - Genai 클라이언트 초기화
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	log.Printf("✅ [Gemini] Client initialized with model %s", cfg.GeminiImageModel)
	return &GeminiClient{
		client: client,
		model:  cfg.GeminiImageModel,
	}, nil
}

// GenerateImage - Gemini로 이미지 생성
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt, style string, seed *int64) (string, error) {
	fullPrompt := fmt.Sprintf("%s, %s style, %s", prompt, style, vertexPromptSuffix)

	genConfig := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: "1:1",
		},
	}
	if seed != nil {
		seed32 := int32(*seed)
		genConfig.Seed = &seed32
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(fullPrompt), genConfig)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	// 응답에서 첫 번째 인라인 이미지 추출
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded), nil
			}
		}
	}

	return "", fmt.Errorf("%w: no image data in response", ErrGenerationFailed)
}

// classifyGeminiError - SDK 에러 메시지의 상태코드로 분류
func classifyGeminiError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case strings.Contains(msg, "400") || strings.Contains(msg, "INVALID_ARGUMENT"):
		return fmt.Errorf("%w: %v", ErrContentFiltered, err)
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(msg, "PERMISSION_DENIED"):
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	default:
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
}
