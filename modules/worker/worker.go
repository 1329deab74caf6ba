package worker

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	redisutil "storyweaver-server/modules/common/redis"
	"storyweaver-server/modules/storybook"
)

// Worker - Redis Queue Worker
// BRPOP으로 잡을 받아 스토리북 파이프라인을 돌리고, 진행/결과를 상태 해시와 허브에 반영
type Worker struct {
	rdb      *redis.Client
	store    *Store
	pipeline *storybook.Service
	notify   ProgressNotifier
}

// NewWorker - notify는 nil 가능 (허브 없이 상태 해시만 갱신)
func NewWorker(rdb *redis.Client, pipeline *storybook.Service, notify ProgressNotifier) *Worker {
	if rdb == nil || pipeline == nil {
		log.Println("❌ [Worker] 의존성 누락")
		return nil
	}
	if notify == nil {
		notify = func(ProgressUpdate) {}
	}
	return &Worker{
		rdb:      rdb,
		store:    NewStore(rdb),
		pipeline: pipeline,
		notify:   notify,
	}
}

// Start - Queue 감시 시작 (고루틴에서 호출)
func (w *Worker) Start(ctx context.Context) {
	log.Println("🔄 Redis Queue Worker starting...")
	log.Printf("👀 Watching queue: %s", QueueKey)

	for {
		result, err := w.rdb.BRPop(ctx, 0, QueueKey).Result()
		if err != nil {
			if ctx.Err() != nil {
				log.Println("🛑 [Worker] Context cancelled, stopping")
				return
			}
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0]은 큐 이름, result[1]이 job ID
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		go w.processJob(ctx, jobID)
	}
}

// processJob - 잡 하나 처리
// 진행 콜백은 Redis 해시 갱신과 허브 브로드캐스트 둘 다 수행
func (w *Worker) processJob(ctx context.Context, jobID string) {
	log.Printf("🚀 Processing job: %s", jobID)

	job, err := w.store.GetJob(ctx, jobID)
	if err != nil {
		log.Printf("❌ Failed to fetch job %s: %v", jobID, err)
		return
	}
	if job.Request == nil {
		log.Printf("❌ Job %s has no request payload", jobID)
		w.store.SetFailed(ctx, jobID, ErrJobNotFound)
		return
	}

	// 큐 대기 중에 취소된 잡은 실행하지 않음
	if redisutil.IsJobCancelled(w.rdb, jobID) {
		log.Printf("🛑 Job %s was cancelled before processing", jobID)
		w.store.SetStatus(ctx, jobID, StatusCancelled)
		w.notify(ProgressUpdate{Type: "job_cancelled", JobID: jobID, Status: StatusCancelled})
		return
	}

	w.store.SetStatus(ctx, jobID, StatusProcessing)
	w.notify(ProgressUpdate{Type: "job_started", JobID: jobID, Status: StatusProcessing})

	onProgress := func(done, total int) {
		w.store.SetProgress(ctx, jobID, done, total)
		w.notify(ProgressUpdate{
			Type:   "job_progress",
			JobID:  jobID,
			Status: StatusProcessing,
			Done:   done,
			Total:  total,
		})
	}

	result, err := w.pipeline.GenerateStorybook(ctx, job.Request, onProgress)
	if err != nil {
		log.Printf("❌ Job %s failed: %v", jobID, err)
		w.store.SetFailed(ctx, jobID, err)
		w.notify(ProgressUpdate{Type: "job_failed", JobID: jobID, Status: StatusFailed})
		return
	}

	if err := w.store.SetResult(ctx, jobID, result); err != nil {
		log.Printf("❌ Failed to store result for job %s: %v", jobID, err)
		w.store.SetFailed(ctx, jobID, err)
		return
	}

	total := len(result.Images)
	w.notify(ProgressUpdate{
		Type:   "job_completed",
		JobID:  jobID,
		Status: StatusCompleted,
		Done:   total,
		Total:  total,
	})
	log.Printf("✅ Job %s processing completed (%d images)", jobID, total)
}
