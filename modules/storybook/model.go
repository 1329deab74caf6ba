package storybook

import "storyweaver-server/modules/imagegen"

// StorybookResponse - 스토리 + 삽화 파이프라인의 최종 결과
// images[i]는 pages[i]의 삽화 (모든 슬롯이 채워짐 - 실패 슬롯은 폴백)
type StorybookResponse struct {
	Success      bool                 `json:"success"`
	Title        string               `json:"title,omitempty"`
	Pages        []string             `json:"pages,omitempty"`
	ImagePrompts []string             `json:"imagePrompts,omitempty"`
	Images       []string             `json:"images,omitempty"`
	Character    string               `json:"character,omitempty"`
	Genre        string               `json:"genre,omitempty"`
	Age          int                  `json:"age,omitempty"`
	Errors       []imagegen.ItemError `json:"errors,omitempty"`
	ErrorMessage string               `json:"errorMessage,omitempty"`
	ErrorCode    string               `json:"errorCode,omitempty"`
}

// 에러 코드
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInvalidProfile = "INVALID_PROFILE"
	ErrCodeStoryFailed    = "STORY_FAILED"
	ErrCodeImagesFailed   = "IMAGES_FAILED"
)
