package story

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"storyweaver-server/modules/common/config"
)

// ErrTextGenerationFailed - 텍스트 생성 API 호출 실패
var ErrTextGenerationFailed = errors.New("text generation failed")

// 샘플링 파라미터 (고정)
const (
	samplingTemperature = 0.8
	maxCompletionTokens = 2000
)

// TextClient - 채팅 완성 API 추상화 (테스트에서 스텁으로 대체)
type TextClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// groqClient - OpenAI 호환 API(Groq) 클라이언트
type groqClient struct {
	client *openai.Client
	model  string
}

// NewTextClient - Groq 텍스트 생성 클라이언트 생성
func NewTextClient(cfg *config.Config) TextClient {
	clientConfig := openai.DefaultConfig(cfg.GroqAPIKey)
	clientConfig.BaseURL = cfg.GroqBaseURL

	return &groqClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.GroqModel,
	}
}

// Complete - 프롬프트 전송 후 완성 텍스트 반환
// 이 레이어에는 재시도가 없음 (재시도는 이미지 파이프라인에만 존재)
func (c *groqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: samplingTemperature,
		MaxTokens:   maxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTextGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty response", ErrTextGenerationFailed)
	}
	return resp.Choices[0].Message.Content, nil
}

// Service - 스토리 텍스트 생성 서비스
type Service struct {
	textClient TextClient
}

// NewService - 스토리 서비스 생성
func NewService(cfg *config.Config) *Service {
	return &Service{
		textClient: NewTextClient(cfg),
	}
}

// NewServiceWithClient - 클라이언트 주입 생성자 (테스트용)
func NewServiceWithClient(client TextClient) *Service {
	return &Service{textClient: client}
}

// GenerateStory - 프롬프트 조합 → LLM 호출 → 파싱
// 페이지가 하나도 파싱되지 않으면 실패, 일부만 파싱되면 경고 후 부분 결과 사용
func (s *Service) GenerateStory(ctx context.Context, req *StoryRequest) (*ParsedStory, error) {
	composed := ComposeStoryPrompt(req)

	log.Printf("📖 [Story] Generating story - character: %s, genre: %s, age: %d, pages: %d",
		req.Character, req.Genre, req.Age, composed.PageCount)

	content, err := s.textClient.Complete(ctx, composed.Text)
	if err != nil {
		log.Printf("❌ [Story] Text generation failed: %v", err)
		return nil, err
	}

	parsed, err := ParseStoryResponse(content, composed.PageCount)
	if err != nil {
		var mismatch *FormatMismatchError
		usable := min(len(parsed.Pages), len(parsed.ImagePrompts))
		if errors.As(err, &mismatch) && usable > 0 {
			// 부분 파싱 성공 - 페이지당 이미지 하나가 유지되도록 양쪽을 맞춰 자르고 진행
			parsed.Pages = parsed.Pages[:usable]
			parsed.ImagePrompts = parsed.ImagePrompts[:usable]
			log.Printf("⚠️ [Story] %v - continuing with %d aligned pages", mismatch, usable)
			return parsed, nil
		}
		log.Printf("❌ [Story] Response did not match expected format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTextGenerationFailed, err)
	}

	log.Printf("✅ [Story] Story generated: %q (%d pages, %d image prompts)",
		parsed.Title, len(parsed.Pages), len(parsed.ImagePrompts))
	return parsed, nil
}
