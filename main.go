package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"storyweaver-server/modules/charactericon"
	"storyweaver-server/modules/common/auth"
	"storyweaver-server/modules/common/config"
	redisutil "storyweaver-server/modules/common/redis"
	"storyweaver-server/modules/debug"
	"storyweaver-server/modules/imagegen"
	"storyweaver-server/modules/story"
	"storyweaver-server/modules/storybook"
	"storyweaver-server/modules/storydata"
	"storyweaver-server/modules/worker"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		// 프로덕션에서는 특정 도메인만 허용하도록 수정
		return true
	},
}

// 연결된 클라이언트 정보
type Client struct {
	conn  *websocket.Conn
	jobID string
	send  chan []byte
}

// 잡 하나의 진행 상황을 구독하는 채널
type JobChannel struct {
	jobID        string
	clients      map[*Client]bool
	mutex        sync.RWMutex
	createdAt    time.Time
	lastActivity time.Time
}

// 허브: jobID → 구독 채널
type ProgressHub struct {
	channels map[string]*JobChannel
	mutex    sync.RWMutex
	metrics  *ServerMetrics
}

// 서버 메트릭
type ServerMetrics struct {
	TotalChannels    int       `json:"totalChannels"`
	ActiveChannels   int       `json:"activeChannels"`
	TotalConnections int       `json:"totalConnections"`
	StartTime        time.Time `json:"startTime"`
	mutex            sync.RWMutex
}

var progressHub = &ProgressHub{
	channels: make(map[string]*JobChannel),
	metrics: &ServerMetrics{
		StartTime: time.Now(),
	},
}

// 채널 가져오기 또는 생성
func (h *ProgressHub) getOrCreateChannel(jobID string) *JobChannel {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	channel, exists := h.channels[jobID]
	if !exists {
		now := time.Now()
		channel = &JobChannel{
			jobID:        jobID,
			clients:      make(map[*Client]bool),
			createdAt:    now,
			lastActivity: now,
		}
		h.channels[jobID] = channel

		h.metrics.mutex.Lock()
		h.metrics.TotalChannels++
		h.metrics.ActiveChannels++
		h.metrics.mutex.Unlock()

		log.Printf("✅ Created progress channel: %s (Total: %d, Active: %d)",
			jobID, h.metrics.TotalChannels, h.metrics.ActiveChannels)
	}

	channel.lastActivity = time.Now()
	return channel
}

// Broadcast - 해당 잡을 구독 중인 모든 클라이언트에게 전송
// 구독자가 없으면 아무것도 하지 않음 (폴링 클라이언트는 GET /api/jobs/{id} 사용)
func (h *ProgressHub) Broadcast(update worker.ProgressUpdate) {
	h.mutex.RLock()
	channel, exists := h.channels[update.JobID]
	h.mutex.RUnlock()

	if !exists {
		return
	}

	messageBytes, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling progress update: %v", err)
		return
	}

	channel.mutex.Lock()
	channel.lastActivity = time.Now()
	for client := range channel.clients {
		select {
		case client.send <- messageBytes:
		default:
			close(client.send)
			delete(channel.clients, client)
		}
	}
	channel.mutex.Unlock()
}

// 클라이언트를 채널에 추가
func (c *JobChannel) addClient(client *Client) {
	c.mutex.Lock()
	c.clients[client] = true
	c.lastActivity = time.Now()
	clientCount := len(c.clients)
	c.mutex.Unlock()

	progressHub.metrics.mutex.Lock()
	progressHub.metrics.TotalConnections++
	progressHub.metrics.mutex.Unlock()

	log.Printf("👤 Client subscribed to job %s (Subscribers: %d, Total Connections: %d)",
		c.jobID, clientCount, progressHub.metrics.TotalConnections)
}

// 클라이언트를 채널에서 제거
func (c *JobChannel) removeClient(client *Client) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, exists := c.clients[client]; exists {
		close(client.send)
		delete(c.clients, client)
		c.lastActivity = time.Now()
		log.Printf("👋 Client unsubscribed from job %s (Remaining: %d)", c.jobID, len(c.clients))
	}
}

// 빈 채널 정리
func (h *ProgressHub) cleanupEmptyChannels() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	cleaned := 0
	for jobID, channel := range h.channels {
		channel.mutex.RLock()
		isEmpty := len(channel.clients) == 0
		isStale := time.Since(channel.lastActivity) > 10*time.Minute
		channel.mutex.RUnlock()

		if isEmpty && isStale {
			delete(h.channels, jobID)
			cleaned++

			h.metrics.mutex.Lock()
			h.metrics.ActiveChannels--
			h.metrics.mutex.Unlock()
		}
	}

	if cleaned > 0 {
		log.Printf("🧹 Cleaned up %d empty progress channels (Active: %d)", cleaned, h.metrics.ActiveChannels)
	}
}

// 정기적 정리 작업 시작
func (h *ProgressHub) startCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			h.cleanupEmptyChannels()
		}
	}()

	log.Printf("🔄 Started progress channel cleanup routine (5min)")
}

// WebSocket 핸들러 - /ws?job=<jobID>
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job")
	if jobID == "" {
		http.Error(w, "job parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn:  conn,
		jobID: jobID,
		send:  make(chan []byte, 256),
	}

	log.Printf("🔍 New WebSocket connection - Job: %s", jobID)

	channel := progressHub.getOrCreateChannel(jobID)
	channel.addClient(client)

	go client.writePump()
	go client.readPump(channel)
}

// 클라이언트로부터 읽기 (진행 구독은 단방향이라 수신 내용은 버림, 연결 종료 감지용)
func (c *Client) readPump(channel *JobChannel) {
	defer func() {
		channel.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// 클라이언트로 메시지 쓰기
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "storyweaver-server",
	})
}

// 서버 메트릭 조회 엔드포인트
func getMetrics(w http.ResponseWriter, r *http.Request) {
	progressHub.metrics.mutex.RLock()
	metrics := *progressHub.metrics
	progressHub.metrics.mutex.RUnlock()

	uptime := time.Since(metrics.StartTime)

	progressHub.mutex.RLock()
	channelDetails := make([]map[string]interface{}, 0, len(progressHub.channels))
	totalClients := 0

	for jobID, channel := range progressHub.channels {
		channel.mutex.RLock()
		clientCount := len(channel.clients)
		totalClients += clientCount

		channelDetails = append(channelDetails, map[string]interface{}{
			"jobId":        jobID,
			"subscribers":  clientCount,
			"createdAt":    channel.createdAt,
			"lastActivity": channel.lastActivity,
			"age":          time.Since(channel.createdAt).String(),
		})
		channel.mutex.RUnlock()
	}
	progressHub.mutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"server": map[string]interface{}{
			"uptime":           uptime.String(),
			"startTime":        metrics.StartTime,
			"totalChannels":    metrics.TotalChannels,
			"activeChannels":   metrics.ActiveChannels,
			"totalConnections": metrics.TotalConnections,
			"currentClients":   totalClients,
		},
		"channels": channelDetails,
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 정리 루틴 시작
	progressHub.startCleanupRoutine()

	// 라우터 설정
	r := mux.NewRouter()
	r.Use(enableCORS)

	// 기본 엔드포인트
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", handleWebSocket)
	r.HandleFunc("/metrics", getMetrics).Methods("GET")

	// 인증
	authHandler := auth.NewHandler(cfg)
	authHandler.RegisterRoutes(r)

	// 선택지 테이블
	storydata.NewHandler().RegisterRoutes(r)

	// 스토리 텍스트 생성
	storyHandler := story.NewHandler(cfg)
	storyHandler.RegisterRoutes(r)

	// 이미지 생성 게이트웨이
	imageHandler := imagegen.NewHandler(cfg)
	if imageHandler == nil {
		log.Fatal("❌ Failed to initialize image generation gateway")
	}
	imageHandler.RegisterRoutes(r)
	gateway := imageHandler.Gateway()

	// 스토리북 파이프라인 (게이트웨이 공유)
	storybookHandler := storybook.NewHandler(story.NewService(cfg), gateway)
	if storybookHandler == nil {
		log.Fatal("❌ Failed to initialize storybook pipeline")
	}
	storybookHandler.RegisterRoutes(r)

	// 캐릭터 아이콘 (클라이언트/캐시 공유)
	iconHandler := charactericon.NewHandler(gateway.Client(), gateway.Cache())
	if iconHandler != nil {
		iconHandler.RegisterRoutes(r)
	}

	// 진단 (로그인 세션 필요)
	debugRouter := r.PathPrefix("/api/debug").Subrouter()
	debugRouter.Use(auth.Middleware(cfg.JWTSecret))
	debugHandler := debug.NewHandler(cfg, gateway)
	debugHandler.RegisterRoutes(debugRouter)

	// Redis Queue Worker + Job API (Redis 없으면 동기 API만 동작)
	rdb := redisutil.Connect(cfg)
	if rdb != nil {
		jobHandler := worker.NewHandler(rdb)
		jobHandler.RegisterRoutes(r)

		queueWorker := worker.NewWorker(rdb, storybookHandler.Service(), progressHub.Broadcast)
		go queueWorker.Start(context.Background())
	} else {
		log.Println("⚠️ Redis unavailable - async job API disabled")
	}

	log.Printf("🚀 StoryWeaver Server starting on port %s", cfg.Port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws?job=<jobId>", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
