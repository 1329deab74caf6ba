package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"storyweaver-server/modules/common/config"
)

type Handler struct {
	secret string
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{secret: cfg.JWTSecret}
}

// RegisterRoutes - 세션 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/auth/session", h.HandleSession).Methods("GET", "POST", "DELETE", "OPTIONS")
	log.Println("✅ Auth routes registered: /api/auth/session")
}

type sessionRequest struct {
	Email string `json:"email"`
}

type sessionResponse struct {
	Success      bool   `json:"success"`
	User         *User  `json:"user,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// HandleSession - 세션 조회/생성/삭제
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)

	case "GET":
		user, err := GetSession(r, h.secret)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(sessionResponse{Success: false, ErrorMessage: "Not logged in"})
			return
		}
		json.NewEncoder(w).Encode(sessionResponse{Success: true, User: user})

	case "POST":
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !strings.Contains(req.Email, "@") {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(sessionResponse{Success: false, ErrorMessage: "Valid email is required"})
			return
		}

		user, err := CreateSession(w, req.Email, h.secret, r.TLS != nil)
		if err != nil {
			log.Printf("❌ [Auth] Failed to create session: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(sessionResponse{Success: false, ErrorMessage: "Failed to create session"})
			return
		}
		log.Printf("✅ [Auth] Session created for %s", user.Email)
		json.NewEncoder(w).Encode(sessionResponse{Success: true, User: user})

	case "DELETE":
		ClearSession(w)
		json.NewEncoder(w).Encode(sessionResponse{Success: true})
	}
}

// Middleware - 보호된 라우트용 세션 검증 미들웨어
func Middleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == "OPTIONS" {
				next.ServeHTTP(w, r)
				return
			}
			if _, err := GetSession(r, secret); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(sessionResponse{Success: false, ErrorMessage: "Authentication required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
