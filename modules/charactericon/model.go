package charactericon

// IconRequest - 아이콘을 생성할 캐릭터 ID 목록 (비어 있으면 전체)
type IconRequest struct {
	Characters []string `json:"characters,omitempty"`
}

// IconResponse - 캐릭터 ID → data URI 매핑
// 생성 실패한 캐릭터는 빈 문자열 (클라이언트가 이모지 폴백 표시)
type IconResponse struct {
	Success      bool              `json:"success"`
	Icons        map[string]string `json:"icons,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	ErrorCode    string            `json:"errorCode,omitempty"`
}

const ErrCodeInvalidRequest = "INVALID_REQUEST"

// 아이콘은 스토리 삽화와 캐시 키가 겹치지 않도록 별도 스타일 사용
const iconStyle = "icon"
