package profile

import (
	"fmt"
	"strings"
	"time"
)

// ChildProfile - 브라우저 클라이언트가 소유하는 아이 프로필
// 서버는 저장하지 않고 요청 본문으로만 전달받음
type ChildProfile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	Gender            string    `json:"gender,omitempty"` // "boy" | "girl" | "other"
	Interests         []string  `json:"interests"`
	FreeFormInterests string    `json:"freeFormInterests,omitempty"`
	ReadingLevel      string    `json:"readingLevel"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}

const (
	MinAge = 3
	MaxAge = 12
)

// Validate - 프로필 불변조건 검증 (name 비어있지 않음, age 3-12)
func (p *ChildProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("profile age must be between %d and %d, got %d", MinAge, MaxAge, p.Age)
	}
	return nil
}

// Pronouns - 성별에 따른 대명사 (기본값 they/them)
func (p *ChildProfile) Pronouns() string {
	switch p.Gender {
	case "boy":
		return "he/him"
	case "girl":
		return "she/her"
	default:
		return "they/them"
	}
}

// PrimaryInterests - 플롯에 반영할 주요 관심사 (최대 2개)
func (p *ChildProfile) PrimaryInterests() []string {
	if len(p.Interests) <= 2 {
		return p.Interests
	}
	return p.Interests[:2]
}

// AllInterests - 자유 입력 포함 전체 관심사
func (p *ChildProfile) AllInterests() []string {
	all := make([]string, len(p.Interests))
	copy(all, p.Interests)
	if p.FreeFormInterests != "" {
		all = append(all, p.FreeFormInterests)
	}
	return all
}
