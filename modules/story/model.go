package story

import "storyweaver-server/modules/profile"

// StoryRequest - 스토리 생성 요청 (요청마다 새로 만들어지며 저장하지 않음)
type StoryRequest struct {
	Character string                `json:"character"`
	Genre     string                `json:"genre"`
	Age       int                   `json:"age"`
	Profile   *profile.ChildProfile `json:"profile,omitempty"`
}

// StoryResponse - 텍스트 생성 결과
type StoryResponse struct {
	Success      bool     `json:"success"`
	Title        string   `json:"title,omitempty"`
	Pages        []string `json:"pages,omitempty"`
	ImagePrompts []string `json:"imagePrompts,omitempty"`
	Character    string   `json:"character,omitempty"`
	Genre        string   `json:"genre,omitempty"`
	Age          int      `json:"age,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	ErrorCode    string   `json:"errorCode,omitempty"`
}

// ParsedStory - 파서가 LLM 응답에서 추출한 내용
type ParsedStory struct {
	Title        string
	Pages        []string
	ImagePrompts []string
}

// 에러 코드
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeInvalidProfile   = "INVALID_PROFILE"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
	ErrCodeFormatMismatch   = "FORMAT_MISMATCH"
)

// DefaultTitle - 파싱 실패 시의 기본 제목
const DefaultTitle = "My Story"
