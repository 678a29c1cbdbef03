package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/smartair/travelsearch/internal/aggregator"
	"github.com/smartair/travelsearch/internal/ai"
	"github.com/smartair/travelsearch/internal/amadeus"
	"github.com/smartair/travelsearch/internal/cache"
	"github.com/smartair/travelsearch/internal/handler"
	"github.com/smartair/travelsearch/internal/ratelimit"
	"github.com/smartair/travelsearch/internal/recommend"
)

type Config struct {
	Port                string
	AmadeusBaseURL      string
	AmadeusClientID     string
	AmadeusClientSecret string
	GeminiAPIKey        string
	GeminiModel         string
	CacheEnabled        bool
	RedisHost           string
	RedisPort           string
	RedisTTL            time.Duration
	SearchWorkers       int
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewUpstreamLimiterWithDefaults()
	limiter.SetUpstreamLimit(amadeus.UpstreamName, 10, 20)
	limiter.SetUpstreamLimit(ai.UpstreamName, 1, 2)

	if cfg.AmadeusClientID == "" || cfg.AmadeusClientSecret == "" {
		log.Println("AMADEUS_CLIENT_ID / AMADEUS_CLIENT_SECRET not set; flight searches will fail auth")
	}

	tokens := amadeus.NewOAuthTokenSource(cfg.AmadeusBaseURL, cfg.AmadeusClientID, cfg.AmadeusClientSecret, nil)
	offers := amadeus.NewClient(amadeus.Config{
		BaseURL: cfg.AmadeusBaseURL,
		Tokens:  tokens,
		Limiter: limiter,
	})

	agg := aggregator.New(offers, aggregator.Config{
		Workers: cfg.SearchWorkers,
	})

	var searchCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		searchCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		searchCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		generator = ai.NewClient(ai.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Limiter: limiter,
		})
		log.Println("Generative provider configured")
	} else {
		log.Println("GEMINI_API_KEY not set; recommendations will use the curated table")
	}
	recommendations := recommend.New(generator)

	searchHandler := handler.NewSearchHandler(agg, searchCache)
	recommendHandler := handler.NewRecommendHandler(recommendations)

	api := e.Group("/api/v1")
	api.GET("/flights/search", searchHandler.Search)
	api.POST("/destinations/recommend", recommendHandler.Recommend)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:                getEnv("PORT", "8080"),
		AmadeusBaseURL:      getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", ""),
		CacheEnabled:        getEnvBool("CACHE_ENABLED", false),
		RedisHost:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		RedisTTL:            getEnvDuration("REDIS_TTL", 10*time.Minute),
		SearchWorkers:       getEnvInt("SEARCH_WORKERS", 4),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
