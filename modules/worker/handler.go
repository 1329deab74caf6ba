package worker

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	redisutil "storyweaver-server/modules/common/redis"
	"storyweaver-server/modules/story"
)

// Handler - 비동기 잡 API
type Handler struct {
	rdb   *redis.Client
	store *Store
}

func NewHandler(rdb *redis.Client) *Handler {
	if rdb == nil {
		log.Println("⚠️ [Jobs] Redis connection unavailable")
		return nil
	}
	return &Handler{rdb: rdb, store: NewStore(rdb)}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs", h.HandleEnqueue).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/jobs/{jobId}", h.HandleStatus).Methods("GET")
	r.HandleFunc("/api/jobs/{jobId}/cancel", h.HandleCancel).Methods("POST", "OPTIONS")
	log.Println("✅ Job routes registered: /api/jobs, /api/jobs/{jobId}, /api/jobs/{jobId}/cancel")
}

// HandleEnqueue - POST /api/jobs
// 스토리북 요청을 큐에 넣고 jobId를 즉시 반환
func (h *Handler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req story.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Jobs] Invalid request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Character == "" || req.Genre == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: "character and genre are required",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	if req.Profile != nil {
		if err := req.Profile.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EnqueueResponse{
				Success:      false,
				ErrorMessage: err.Error(),
				ErrorCode:    ErrCodeInvalidProfile,
			})
			return
		}
	}

	job := &Job{
		JobID:   uuid.NewString(),
		Status:  StatusPending,
		Request: &req,
	}

	position, err := h.store.CreateJob(r.Context(), job)
	if err != nil {
		log.Printf("❌ [Jobs] Enqueue failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success:      false,
			ErrorMessage: "Failed to enqueue job",
			ErrorCode:    ErrCodeQueueFailed,
		})
		return
	}

	log.Printf("📥 [Jobs] Job %s enqueued (position: %d)", job.JobID, position)

	json.NewEncoder(w).Encode(EnqueueResponse{
		Success:       true,
		JobID:         job.JobID,
		Queue:         QueueKey,
		QueuePosition: position,
	})
}

// HandleStatus - GET /api/jobs/{jobId}
// 완료된 잡이면 result에 완성본 포함
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	jobID := mux.Vars(r)["jobId"]

	job, err := h.store.GetJob(r.Context(), jobID)
	if err != nil {
		status := http.StatusInternalServerError
		code := ErrCodeQueueFailed
		if errors.Is(err, ErrJobNotFound) {
			status = http.StatusNotFound
			code = ErrCodeNotFound
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to fetch job",
			ErrorCode:    code,
		})
		return
	}

	// 요청 원문은 응답에서 제외 (프로필 정보 노출 최소화)
	job.Request = nil

	json.NewEncoder(w).Encode(StatusResponse{Success: true, Job: job})
}

// HandleCancel - POST /api/jobs/{jobId}/cancel
// 큐 대기 중인 잡만 취소됨 (이미 처리 중이면 완료까지 진행)
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	jobID := mux.Vars(r)["jobId"]

	job, err := h.store.GetJob(r.Context(), jobID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Job not found",
			ErrorCode:    ErrCodeNotFound,
		})
		return
	}

	if job.Status == StatusCompleted || job.Status == StatusCancelled {
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			Job:          job,
			ErrorMessage: "Job already " + job.Status,
		})
		return
	}

	log.Printf("🛑 [Jobs] Cancel requested for job: %s", jobID)

	if err := redisutil.SetJobCancelled(h.rdb, jobID); err != nil {
		log.Printf("❌ [Jobs] Failed to set cancel flag: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to set cancel flag",
			ErrorCode:    ErrCodeQueueFailed,
		})
		return
	}

	job.Request = nil
	json.NewEncoder(w).Encode(StatusResponse{Success: true, Job: job})
}
