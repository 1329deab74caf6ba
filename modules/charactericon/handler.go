package charactericon

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"storyweaver-server/modules/common/imagecache"
	"storyweaver-server/modules/common/imageclient"
)

type Handler struct {
	service *Service
}

func NewHandler(client imageclient.Client, cache *imagecache.Cache) *Handler {
	service := NewService(client, cache)
	if service == nil {
		return nil
	}
	return &Handler{service: service}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/character-icons", h.HandleGenerateIcons).Methods("POST", "OPTIONS")
	log.Println("✅ CharacterIcon routes registered: /api/character-icons")
}

// HandleGenerateIcons - POST /api/character-icons
// 순차 생성이라 캐릭터 수에 비례해서 오래 걸릴 수 있음
func (h *Handler) HandleGenerateIcons(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req IconRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(IconResponse{
				Success:      false,
				ErrorMessage: "Invalid request format",
				ErrorCode:    ErrCodeInvalidRequest,
			})
			return
		}
	}

	icons := h.service.GenerateIcons(r.Context(), req.Characters)

	json.NewEncoder(w).Encode(IconResponse{
		Success: true,
		Icons:   icons,
	})
}
