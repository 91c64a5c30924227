package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/placementhub/placementhub/backend/go-services/handlers"
	"github.com/placementhub/placementhub/backend/go-services/internal/applications"
	"github.com/placementhub/placementhub/backend/go-services/internal/config"
	"github.com/placementhub/placementhub/backend/go-services/internal/database"
	"github.com/placementhub/placementhub/backend/go-services/internal/identity"
	"github.com/placementhub/placementhub/backend/go-services/internal/openings"
	"github.com/placementhub/placementhub/backend/go-services/internal/sessions"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/memory"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/mongostore"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/rest"
	"github.com/placementhub/placementhub/backend/go-services/internal/tokens"
	"github.com/placementhub/placementhub/backend/go-services/pkg/logger"
	"github.com/placementhub/placementhub/backend/go-services/pkg/metrics"
	"github.com/placementhub/placementhub/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging can be controlled with LOG_LEVEL env: debug|info|warn|error
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		logger.Warnf("JWT_SECRET is not set; set a secure value in production")
	}
	logger.Infof("config loaded: store=%s mongo=%v redis=%v", cfg.Store.Backend, cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Connect to Redis early so sessions and the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v — falling back to in-memory sessions", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimit(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	entityStore, err := buildStore(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize %s store: %v", cfg.Store.Backend, err)
	}

	var sessionRepo sessions.Repository
	if redisClient != nil {
		sessionRepo = sessions.NewRedisRepository(redisClient, "")
	} else {
		sessionRepo = sessions.NewMemoryRepository()
	}
	sessionSvc := sessions.NewService(sessionRepo)
	tokenMgr := tokens.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)

	identitySvc := identity.NewService(entityStore)
	catalogSvc := openings.NewService(entityStore)
	ledgerSvc := applications.NewService(entityStore)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — report dependency state along with uptime
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"store":    entityStore != nil,
			"sessions": sessionRepo != nil,
			"redis":    redisClient != nil,
		}
		status := http.StatusOK
		if entityStore == nil {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Prometheus metrics
	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterSwagger(r)

	r.Use(middleware.Identity(tokens.NewVerifier(tokenMgr, sessionSvc)))

	api := r.Group("/api")
	handlers.NewAuthHandler(identitySvc, sessionSvc, tokenMgr, cfg.Session.TTL).Register(api)
	handlers.NewOpeningsHandler(catalogSvc).Register(api)
	handlers.NewApplicationsHandler(ledgerSvc).Register(api)
	handlers.NewSummaryHandler(catalogSvc, ledgerSvc).Register(api)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("listening on %s (env=%s)", addr, cfg.Server.Environment)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server stopped: %v", err)
	}
}

// buildStore selects the entity-store backend per config.
func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "mongo":
		db, err := database.ConnectMongo(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
		if err != nil {
			return nil, err
		}
		st := mongostore.New(db)
		if err := st.EnsureIndexes(context.Background()); err != nil {
			return nil, err
		}
		logger.Infof("using MongoDB store: db=%s", cfg.MongoDB.Database)
		return st, nil
	case "rest":
		logger.Infof("using remote REST store: %s", cfg.Store.RemoteURL)
		return rest.New(cfg.Store.RemoteURL, nil), nil
	default:
		logger.Infof("using in-memory store")
		return memory.New(), nil
	}
}
