package story

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"storyweaver-server/modules/common/config"
)

type Handler struct {
	service *Service
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		service: NewService(cfg),
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate-story", h.HandleGenerateStory).Methods("POST", "OPTIONS")
	log.Println("✅ Story routes registered: /api/generate-story")
}

// HandleGenerateStory - POST /api/generate-story
// 스토리 텍스트와 이미지 설명만 생성 (이미지 생성은 별도 엔드포인트)
func (h *Handler) HandleGenerateStory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Story] Invalid request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(StoryResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Character == "" || req.Genre == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(StoryResponse{
			Success:      false,
			ErrorMessage: "character and genre are required",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Profile != nil {
		if err := req.Profile.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StoryResponse{
				Success:      false,
				ErrorMessage: err.Error(),
				ErrorCode:    ErrCodeInvalidProfile,
			})
			return
		}
	}

	parsed, err := h.service.GenerateStory(r.Context(), &req)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(StoryResponse{
			Success:      false,
			ErrorMessage: "Failed to generate story",
			ErrorCode:    ErrCodeGenerationFailed,
		})
		return
	}

	json.NewEncoder(w).Encode(StoryResponse{
		Success:      true,
		Title:        parsed.Title,
		Pages:        parsed.Pages,
		ImagePrompts: parsed.ImagePrompts,
		Character:    req.Character,
		Genre:        req.Genre,
		Age:          req.Age,
	})
}
