package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// 이미지 생성 프로바이더 식별자
const (
	ProviderVertex = "vertex"
	ProviderGemini = "gemini"
)

// Config 구조체 - 모든 환경변수를 담음
// 비즈니스 로직 안에서 os.Getenv를 직접 읽지 않고, 시작 시 한 번 로드해서 전달함
type Config struct {
	// Server
	Port string

	// Groq (텍스트 생성 - OpenAI 호환 API)
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	// Image Provider 선택 ("vertex" 또는 "gemini")
	ImageProvider string

	// Google Vertex AI (Imagen)
	GoogleCloudProjectID    string
	VertexAILocation        string
	GoogleCredentialsBase64 string

	// Gemini API (대체 이미지 프로바이더)
	GeminiAPIKey     string
	GeminiImageModel string

	// Redis (비동기 Job Queue)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Auth
	JWTSecret string

	// 이미지 캐시 정책
	CacheTTL      time.Duration
	CacheCapacity int

	// 이미지 생성 정책 (retry/throttle)
	MaxRetries       int
	BackoffBase      time.Duration
	BackoffCap       time.Duration
	ImageConcurrency int
	ImagesPerSecond  float64
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// Redis UseTLS 파싱
	useTLS := false // 기본값 (로컬 Redis)
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	globalConfig = &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Groq
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),

		// Image Provider
		ImageProvider: getEnv("IMAGE_PROVIDER", ProviderVertex),

		// Vertex AI
		GoogleCloudProjectID:    getEnv("GOOGLE_CLOUD_PROJECT_ID", ""),
		VertexAILocation:        getEnv("VERTEX_AI_LOCATION", "us-central1"),
		GoogleCredentialsBase64: getEnv("GOOGLE_CREDENTIALS_BASE64", ""),

		// Gemini
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Auth
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-key-change-in-production"),

		// 이미지 캐시 (24시간 TTL, 최대 100개)
		CacheTTL:      getEnvDuration("IMAGE_CACHE_TTL", 24*time.Hour),
		CacheCapacity: getEnvInt("IMAGE_CACHE_CAPACITY", 100),

		// 이미지 생성 정책
		MaxRetries:       getEnvInt("IMAGE_MAX_RETRIES", 3),
		BackoffBase:      getEnvDuration("IMAGE_BACKOFF_BASE", time.Second),
		BackoffCap:       getEnvDuration("IMAGE_BACKOFF_CAP", 10*time.Second),
		ImageConcurrency: getEnvInt("IMAGE_CONCURRENCY", 2),
		ImagesPerSecond:  getEnvFloat("IMAGES_PER_SECOND", 0.5),
	}

	// 필수 환경변수 검증
	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Text model: %s", globalConfig.GroqModel)
	log.Printf("   Image provider: %s", globalConfig.ImageProvider)
	log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	log.Printf("   Cache: %d entries / TTL %s", globalConfig.CacheCapacity, globalConfig.CacheTTL)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - 필수 환경변수 검증
func (c *Config) validate() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	switch c.ImageProvider {
	case ProviderVertex:
		if c.GoogleCloudProjectID == "" {
			return fmt.Errorf("GOOGLE_CLOUD_PROJECT_ID is required for vertex provider")
		}
		if c.GoogleCredentialsBase64 == "" {
			return fmt.Errorf("GOOGLE_CREDENTIALS_BASE64 is required for vertex provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for gemini provider")
		}
	default:
		return fmt.Errorf("unknown IMAGE_PROVIDER: %s", c.ImageProvider)
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt - 정수형 환경변수 파싱
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat - 실수형 환경변수 파싱
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration - Duration형 환경변수 파싱 (예: "24h", "500ms")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
