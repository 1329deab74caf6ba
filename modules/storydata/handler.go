package storydata

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler - 프로필/스토리 설정 화면이 쓰는 정적 선택지 테이블
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/story-options", h.HandleStoryOptions).Methods("GET")
	log.Println("✅ StoryData routes registered: /api/story-options")
}

// HandleStoryOptions - GET /api/story-options
// 캐릭터/테마/관심사/읽기수준 테이블을 한 번에 내려줌
func (h *Handler) HandleStoryOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	characters := make([]CharacterDetail, 0, len(CharacterDetails))
	for _, id := range CharacterIDs() {
		characters = append(characters, CharacterDetails[id])
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"characters":    characters,
		"themes":        StoryThemes,
		"interests":     InterestCategories,
		"readingLevels": ReadingLevels,
	})
}
