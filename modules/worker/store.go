package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// 잡 데이터 보존 기간 (이미지 캐시 TTL과 동일)
const jobTTL = 24 * time.Hour

var ErrJobNotFound = errors.New("job not found")

// Store - Redis 기반 잡 상태 저장소
// 잡 하나당 해시 하나, 필드는 status / request / result / error / progress
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func jobKey(jobID string) string {
	return jobKeyPrefix + jobID
}

// CreateJob - 잡 해시 생성 후 큐에 투입, 큐 위치 반환
func (s *Store) CreateJob(ctx context.Context, job *Job) (int64, error) {
	requestJSON, err := json.Marshal(job.Request)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fields := map[string]interface{}{
		"status":         job.Status,
		"request":        string(requestJSON),
		"progress_done":  0,
		"progress_total": 0,
		"created_at":     now,
		"updated_at":     now,
	}

	key := jobKey(job.JobID)
	if err := s.rdb.HSet(ctx, key, fields).Err(); err != nil {
		return 0, err
	}
	if err := s.rdb.Expire(ctx, key, jobTTL).Err(); err != nil {
		return 0, err
	}

	return s.rdb.LPush(ctx, QueueKey, job.JobID).Result()
}

// GetJob - 잡 상태 조회
func (s *Store) GetJob(ctx context.Context, jobID string) (*Job, error) {
	fields, err := s.rdb.HGetAll(ctx, jobKey(jobID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrJobNotFound
	}

	job := &Job{
		JobID:     jobID,
		Status:    fields["status"],
		Error:     fields["error"],
		CreatedAt: fields["created_at"],
		UpdatedAt: fields["updated_at"],
	}
	json.Unmarshal([]byte(fields["progress_done"]), &job.ProgressDone)
	json.Unmarshal([]byte(fields["progress_total"]), &job.ProgressTotal)

	if raw := fields["request"]; raw != "" {
		json.Unmarshal([]byte(raw), &job.Request)
	}
	if raw := fields["result"]; raw != "" {
		json.Unmarshal([]byte(raw), &job.Result)
	}
	return job, nil
}

// SetStatus - 상태 필드 갱신
func (s *Store) SetStatus(ctx context.Context, jobID, status string) error {
	return s.rdb.HSet(ctx, jobKey(jobID), map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}).Err()
}

// SetProgress - 삽화 생성 진행 상황 갱신
func (s *Store) SetProgress(ctx context.Context, jobID string, done, total int) error {
	return s.rdb.HSet(ctx, jobKey(jobID), map[string]interface{}{
		"progress_done":  done,
		"progress_total": total,
		"updated_at":     time.Now().UTC().Format(time.RFC3339),
	}).Err()
}

// SetResult - 완성본 저장 + 상태 completed
func (s *Store) SetResult(ctx context.Context, jobID string, result interface{}) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, jobKey(jobID), map[string]interface{}{
		"status":     StatusCompleted,
		"result":     string(resultJSON),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}).Err()
}

// SetFailed - 실패 사유 저장 + 상태 failed
func (s *Store) SetFailed(ctx context.Context, jobID string, cause error) error {
	return s.rdb.HSet(ctx, jobKey(jobID), map[string]interface{}{
		"status":     StatusFailed,
		"error":      cause.Error(),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}).Err()
}
