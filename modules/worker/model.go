package worker

import (
	"storyweaver-server/modules/story"
	"storyweaver-server/modules/storybook"
)

// Job 상태
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// Redis 키
const (
	QueueKey     = "jobs:queue"
	jobKeyPrefix = "jobs:data:"
)

// Job - Redis 해시에 저장되는 잡 상태
type Job struct {
	JobID         string                       `json:"jobId"`
	Status        string                       `json:"status"`
	Request       *story.StoryRequest          `json:"request,omitempty"`
	Result        *storybook.StorybookResponse `json:"result,omitempty"`
	Error         string                       `json:"error,omitempty"`
	ProgressDone  int                          `json:"progressDone"`
	ProgressTotal int                          `json:"progressTotal"`
	CreatedAt     string                       `json:"createdAt,omitempty"`
	UpdatedAt     string                       `json:"updatedAt,omitempty"`
}

// EnqueueResponse - POST /api/jobs 응답
type EnqueueResponse struct {
	Success       bool   `json:"success"`
	JobID         string `json:"jobId,omitempty"`
	Queue         string `json:"queue,omitempty"`
	QueuePosition int64  `json:"queuePosition,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	ErrorCode     string `json:"errorCode,omitempty"`
}

// StatusResponse - GET /api/jobs/{jobId} 응답
type StatusResponse struct {
	Success      bool   `json:"success"`
	Job          *Job   `json:"job,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
}

// 에러 코드
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInvalidProfile = "INVALID_PROFILE"
	ErrCodeNotFound       = "JOB_NOT_FOUND"
	ErrCodeQueueFailed    = "QUEUE_FAILED"
)

// ProgressUpdate - WebSocket으로 브로드캐스트되는 진행 이벤트
type ProgressUpdate struct {
	Type   string `json:"type"`
	JobID  string `json:"jobId"`
	Status string `json:"status"`
	Done   int    `json:"done"`
	Total  int    `json:"total"`
}

// ProgressNotifier - 진행 이벤트 수신자 (main의 WebSocket 허브가 연결됨)
type ProgressNotifier func(update ProgressUpdate)
