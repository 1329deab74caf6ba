package storybook

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"storyweaver-server/modules/common/imageclient"
	"storyweaver-server/modules/imagegen"
	"storyweaver-server/modules/story"
)

type Handler struct {
	service *Service
}

// NewHandler - 스토리 서비스와 공유 게이트웨이를 연결
func NewHandler(stories *story.Service, gateway *imagegen.Gateway) *Handler {
	service := NewService(stories, gateway)
	if service == nil {
		return nil
	}
	return &Handler{service: service}
}

// Service - worker 모듈이 같은 파이프라인을 재사용
func (h *Handler) Service() *Service {
	return h.service
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate-storybook", h.HandleGenerateStorybook).Methods("POST", "OPTIONS")
	log.Println("✅ Storybook routes registered: /api/generate-storybook")
}

// HandleGenerateStorybook - POST /api/generate-storybook
// 스토리 텍스트 + 삽화를 한 번에 생성해서 완성본 반환
func (h *Handler) HandleGenerateStorybook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req story.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Storybook] Invalid request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(StorybookResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Character == "" || req.Genre == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(StorybookResponse{
			Success:      false,
			ErrorMessage: "character and genre are required",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Profile != nil {
		if err := req.Profile.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StorybookResponse{
				Success:      false,
				ErrorMessage: err.Error(),
				ErrorCode:    ErrCodeInvalidProfile,
			})
			return
		}
	}

	result, err := h.service.GenerateStorybook(r.Context(), &req, nil)
	if err != nil {
		code := ErrCodeStoryFailed
		if errors.Is(err, imageclient.ErrAuthFailed) {
			code = ErrCodeImagesFailed
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(StorybookResponse{
			Success:      false,
			ErrorMessage: "Failed to generate storybook",
			ErrorCode:    code,
		})
		return
	}

	json.NewEncoder(w).Encode(result)
}
