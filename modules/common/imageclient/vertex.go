package imageclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"storyweaver-server/modules/common/config"
)

// Imagen 모델 엔드포인트
const vertexImageModel = "imagen-3.0-fast-generate-001"

// 프롬프트에 항상 붙는 스타일/안전 수식어
const vertexPromptSuffix = "storybook illustration, whimsical, playful, family-friendly and age-appropriate, fantasy adventure theme"

// VertexClient - Vertex AI Imagen REST 클라이언트
// 서비스 계정 자격증명을 bearer 토큰으로 교환한 뒤 :predict 엔드포인트를 직접 호출함
type VertexClient struct {
	projectID   string
	location    string
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
}

// serviceAccountInfo - 자격증명 JSON에서 확인하는 필드
type serviceAccountInfo struct {
	ProjectID string `json:"project_id"`
}

// NewVertexClient - base64 자격증명을 파싱해서 토큰 소스 생성
func NewVertexClient(ctx context.Context, cfg *config.Config) (*VertexClient, error) {
	credsJSON, err := base64.StdEncoding.DecodeString(cfg.GoogleCredentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid GOOGLE_CREDENTIALS_BASE64: %v", ErrAuthFailed, err)
	}

	// project_id 일치 확인 (불일치는 경고만)
	var info serviceAccountInfo
	if err := json.Unmarshal(credsJSON, &info); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials JSON: %v", ErrAuthFailed, err)
	}
	if info.ProjectID != "" && info.ProjectID != cfg.GoogleCloudProjectID {
		log.Printf("⚠️ [Vertex] Project ID mismatch: env=%s, credentials=%s",
			cfg.GoogleCloudProjectID, info.ProjectID)
	}

	creds, err := google.CredentialsFromJSON(ctx, credsJSON, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	log.Printf("✅ [Vertex] Client initialized for project=%s, location=%s",
		cfg.GoogleCloudProjectID, cfg.VertexAILocation)

	return &VertexClient{
		projectID:   cfg.GoogleCloudProjectID,
		location:    cfg.VertexAILocation,
		tokenSource: creds.TokenSource,
		httpClient:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// predict 요청/응답 구조
type vertexInstance struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt,omitempty"`
}

type vertexParameters struct {
	SampleCount       int    `json:"sampleCount"`
	AspectRatio       string `json:"aspectRatio"`
	SafetyFilterLevel string `json:"safetyFilterLevel"`
	PersonGeneration  string `json:"personGeneration"`
	Seed              *int64 `json:"seed,omitempty"`
}

type vertexRequest struct {
	Instances  []vertexInstance `json:"instances"`
	Parameters vertexParameters `json:"parameters"`
}

type vertexPrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	Base64Encoded      string `json:"base64Encoded"`
	ImageBytes         string `json:"imageBytes"`
}

type vertexResponse struct {
	Predictions []vertexPrediction `json:"predictions"`
}

type vertexErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateImage - Imagen :predict 호출
func (c *VertexClient) GenerateImage(ctx context.Context, prompt, style string, seed *int64) (string, error) {
	log.Printf("🎨 [Vertex] Generating image - style: %s, prompt: %s", style, truncateString(prompt, 80))

	// 자격증명 교환 - 실패하면 배치 전체에 치명적 (재시도 불가)
	token, err := c.tokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("%w: failed to obtain access token: %v", ErrAuthFailed, err)
	}

	endpoint := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		c.location, c.projectID, c.location, vertexImageModel)

	reqBody := vertexRequest{
		Instances: []vertexInstance{{
			Prompt:         fmt.Sprintf("%s, %s style, %s", prompt, style, vertexPromptSuffix),
			NegativePrompt: "scary, violent, dark themes",
		}},
		Parameters: vertexParameters{
			SampleCount:       1,
			AspectRatio:       "1:1",
			SafetyFilterLevel: "block_some",
			PersonGeneration:  "allow_all",
			Seed:              seed,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token.AccessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyVertexError(resp.StatusCode, bodyBytes)
	}

	var result vertexResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", fmt.Errorf("%w: invalid response: %v", ErrGenerationFailed, err)
	}
	if len(result.Predictions) == 0 {
		return "", fmt.Errorf("%w: no predictions in response", ErrGenerationFailed)
	}

	// 이미지 데이터 필드명이 버전에 따라 다름
	p := result.Predictions[0]
	imageData := p.BytesBase64Encoded
	if imageData == "" {
		imageData = p.Base64Encoded
	}
	if imageData == "" {
		imageData = p.ImageBytes
	}
	if imageData == "" {
		return "", fmt.Errorf("%w: no image data in prediction", ErrGenerationFailed)
	}

	if strings.HasPrefix(imageData, "data:image") {
		return imageData, nil
	}
	return "data:image/png;base64," + imageData, nil
}

// classifyVertexError - HTTP 상태코드를 에러 분류로 변환
func classifyVertexError(status int, body []byte) error {
	message := fmt.Sprintf("status %d", status)
	var errResp vertexErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrContentFiltered, message)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthFailed, message)
	default:
		return fmt.Errorf("%w: %s", ErrGenerationFailed, message)
	}
}
