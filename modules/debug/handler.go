package debug

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"storyweaver-server/modules/common/config"
	"storyweaver-server/modules/common/fallback"
	"storyweaver-server/modules/imagegen"
)

// 진단용 고정 프롬프트
const testPrompt = "A friendly cartoon sun smiling over a green meadow, children's book illustration"

// Handler - 배포 진단용 엔드포인트
// 설정 값 자체는 절대 응답에 넣지 않음 (존재 여부만)
type Handler struct {
	cfg     *config.Config
	gateway *imagegen.Gateway
}

func NewHandler(cfg *config.Config, gateway *imagegen.Gateway) *Handler {
	return &Handler{cfg: cfg, gateway: gateway}
}

// RegisterRoutes - 라우트 등록 (/api/debug 프리픽스 서브라우터에 등록)
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/config", h.HandleConfig).Methods("GET")
	r.HandleFunc("/image", h.HandleTestImage).Methods("POST", "OPTIONS")
	log.Println("✅ Debug routes registered: /api/debug/config, /api/debug/image")
}

// HandleConfig - GET /api/debug/config
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(map[string]interface{}{
		"imageProvider":       h.cfg.ImageProvider,
		"hasGroqKey":          h.cfg.GroqAPIKey != "",
		"hasGoogleProject":    h.cfg.GoogleCloudProjectID != "",
		"hasGoogleCredsB64":   h.cfg.GoogleCredentialsBase64 != "",
		"hasGeminiKey":        h.cfg.GeminiAPIKey != "",
		"hasRedis":            h.cfg.RedisHost != "",
		"hasJWTSecret":        h.cfg.JWTSecret != "",
		"vertexLocation":      h.cfg.VertexAILocation,
		"cacheCapacity":       h.cfg.CacheCapacity,
		"cacheTTL":            h.cfg.CacheTTL.String(),
		"maxRetries":          h.cfg.MaxRetries,
		"imageConcurrency":    h.cfg.ImageConcurrency,
	})
}

// HandleTestImage - POST /api/debug/image
// 고정 프롬프트 하나를 게이트웨이 전체 경로(캐시/재시도/폴백)로 통과시켜 확인
func (h *Handler) HandleTestImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if h.gateway == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "image gateway not initialized",
		})
		return
	}

	start := time.Now()
	items := []imagegen.ImageItem{{Prompt: testPrompt, Style: imagegen.DefaultStyle}}
	images, itemErrors, err := h.gateway.GenerateBatch(r.Context(), items, "", nil)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("❌ [Debug] Test image failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   err.Error(),
			"elapsed": elapsed.String(),
		})
		return
	}

	usedFallback := fallback.IsFallbackImage(images[0])
	log.Printf("✅ [Debug] Test image generated in %s (fallback: %v)", elapsed, usedFallback)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":      true,
		"elapsed":      elapsed.String(),
		"usedFallback": usedFallback,
		"errors":       itemErrors,
		"imageBytes":   len(images[0]),
	})
}
