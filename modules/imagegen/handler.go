package imagegen

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"storyweaver-server/modules/common/config"
	"storyweaver-server/modules/common/imageclient"
)

type Handler struct {
	gateway *Gateway
}

func NewHandler(cfg *config.Config) *Handler {
	gateway, err := NewGateway(context.Background(), cfg)
	if err != nil {
		log.Printf("❌ [ImageGen] Failed to initialize gateway: %v", err)
		return nil
	}
	return &Handler{gateway: gateway}
}

// Gateway - 다른 모듈(storybook, worker)이 같은 게이트웨이/캐시를 공유
func (h *Handler) Gateway() *Gateway {
	return h.gateway
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate-images", h.HandleGenerateImages).Methods("POST", "OPTIONS")
	log.Println("✅ ImageGen routes registered: /api/generate-images")
}

// HandleGenerateImages - POST /api/generate-images
// 프롬프트 배열을 받아 같은 순서의 이미지 data URI 배열을 반환
func (h *Handler) HandleGenerateImages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if len(req.Prompts) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "prompts are required",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	style := req.Style
	if style == "" {
		style = DefaultStyle
	}

	items := make([]ImageItem, len(req.Prompts))
	for i, prompt := range req.Prompts {
		items[i] = ImageItem{Prompt: prompt, Style: style, Seed: req.Seed}
	}

	images, itemErrors, err := h.gateway.GenerateBatch(r.Context(), items, req.Character, nil)
	if err != nil {
		status := http.StatusInternalServerError
		code := ErrCodeBatchFailed
		if errors.Is(err, imageclient.ErrAuthFailed) {
			code = ErrCodeAuthFailed
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(BatchResponse{
			Success:      false,
			ErrorMessage: "Failed to generate images",
			ErrorCode:    code,
		})
		return
	}

	json.NewEncoder(w).Encode(BatchResponse{
		Success: true,
		Images:  images,
		Errors:  itemErrors,
	})
}
