package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	grpchealth "google.golang.org/grpc/health"

	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/sbilibin2017/gw-image-vault/internal/facades"
	"github.com/sbilibin2017/gw-image-vault/internal/health"
	"github.com/sbilibin2017/gw-image-vault/internal/jwt"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/middlewares"
	"github.com/sbilibin2017/gw-image-vault/internal/ratelimit"
	"github.com/sbilibin2017/gw-image-vault/internal/repositories"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
	"github.com/sbilibin2017/gw-image-vault/internal/services"
	"github.com/sbilibin2017/gw-image-vault/internal/validation"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the full application configuration read from the environment.
type config struct {
	appHost, appPort, logLevel string
	debug                      bool
	corsOrigins                []string

	pgHost, pgUser, pgPassword, pgDB string
	pgPort                           int
	pgMaxOpenConns, pgMaxIdleConns   int

	redisHost, redisPassword         string
	redisPort, redisDB               int
	redisPoolSize, redisMinIdleConns int

	jwtSecretKey string
	jwtExpSecond int

	imgurBaseURL, imgurClientID string

	dropboxBaseFolder                       string
	dropboxClientID, dropboxClientSecret    string
	dropboxRefreshToken, dropboxAccessToken string
	dropboxTokenURL                         string
	dropboxRefreshIntervalSecond            int

	kafkaEnabled               bool
	kafkaBrokers               []string
	kafkaImageTopic            string
	kafkaUserTopic             string
	kafkaWorkers, kafkaQueue   int
	kafkaBreakerCooldownSecond int

	cacheEnabled         bool
	cacheMaxEntries      int
	cacheWriteTTLSecond  int
	cacheAccessTTLSecond int

	rateLimitAPI, rateLimitAuth, rateLimitUpload, rateLimitOps int

	grpcHealthPort string
}

// @title gw-image-vault API
// @version 1.0.0
// @description Image hosting service storing user images on Imgur with a Dropbox fallback
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}
	getBool := func(key, defaultValue string) bool {
		if err != nil {
			return false
		}
		var b bool
		if b, err = strconv.ParseBool(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return b
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.debug = getBool("APP_DEBUG", "false")
	cfg.corsOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	cfg.pgPort = getInt("POSTGRES_PORT", "5432")
	cfg.pgMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.pgMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPort = getInt("REDIS_PORT", "6379")
	cfg.redisDB = getInt("REDIS_DB", "0")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.redisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.redisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.jwtExpSecond = getInt("JWT_EXP_SECOND", "86400")

	// Imgur config
	cfg.imgurBaseURL = getEnv("IMGUR_BASE_URL", "https://api.imgur.com/3")
	cfg.imgurClientID = getEnv("IMGUR_CLIENT_ID", "")

	// Dropbox config
	cfg.dropboxBaseFolder = getEnv("DROPBOX_BASE_FOLDER", "/images")
	cfg.dropboxClientID = getEnv("DROPBOX_CLIENT_ID", "")
	cfg.dropboxClientSecret = getEnv("DROPBOX_CLIENT_SECRET", "")
	cfg.dropboxRefreshToken = getEnv("DROPBOX_REFRESH_TOKEN", "")
	cfg.dropboxAccessToken = getEnv("DROPBOX_ACCESS_TOKEN", "")
	cfg.dropboxTokenURL = getEnv("DROPBOX_TOKEN_URL", "https://api.dropboxapi.com/oauth2/token")
	cfg.dropboxRefreshIntervalSecond = getInt("DROPBOX_REFRESH_INTERVAL_SECOND", "1200")

	// Kafka config
	cfg.kafkaEnabled = getBool("KAFKA_ENABLED", "false")
	cfg.kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", "localhost:9092"))
	cfg.kafkaImageTopic = getEnv("KAFKA_IMAGE_TOPIC", "image-events")
	cfg.kafkaUserTopic = getEnv("KAFKA_USER_TOPIC", "user-events")
	cfg.kafkaWorkers = getInt("KAFKA_WORKERS", "2")
	cfg.kafkaQueue = getInt("KAFKA_QUEUE_SIZE", "1000")
	cfg.kafkaBreakerCooldownSecond = getInt("KAFKA_BREAKER_COOLDOWN_SECOND", "300")

	// Cache config
	cfg.cacheEnabled = getBool("CACHE_ENABLED", "true")
	cfg.cacheMaxEntries = getInt("CACHE_MAX_ENTRIES", "10000")
	cfg.cacheWriteTTLSecond = getInt("CACHE_WRITE_TTL_SECOND", "1800")
	cfg.cacheAccessTTLSecond = getInt("CACHE_ACCESS_TTL_SECOND", "600")

	// Rate limits, per minute
	cfg.rateLimitAPI = getInt("RATE_LIMIT_API", "1000")
	cfg.rateLimitAuth = getInt("RATE_LIMIT_AUTH", "100")
	cfg.rateLimitUpload = getInt("RATE_LIMIT_UPLOAD", "200")
	cfg.rateLimitOps = getInt("RATE_LIMIT_OPS", "10")

	// gRPC config
	cfg.grpcHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	return cfg, err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// run initializes the logger, database, Redis, remote stores, notifier and servers.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	logOpts := []logger.Option{logger.WithInitialFields(map[string]any{
		"service": "gw-image-vault",
		"version": buildVersion,
	})}
	if cfg.debug {
		logOpts = append(logOpts, logger.WithDevelopment())
	}
	if err := logger.Initialize(cfg.logLevel, logOpts...); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)
	response.SetDebug(cfg.debug)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	// Connect to Redis. Without it every instance refreshes its own Dropbox token.
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	defer rdb.Close()
	tokenOpts := []facades.DropboxTokenOption{}
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("redis unavailable, dropbox tokens are not shared", "error", err)
	} else {
		tokenOpts = append(tokenOpts, facades.WithTokenCache(repositories.NewTokenCacheRepository(rdb)))
	}

	// Remote image hosts
	dropboxTokens := facades.NewDropboxTokenProvider(facades.DropboxTokenConfig{
		ClientID:        cfg.dropboxClientID,
		ClientSecret:    cfg.dropboxClientSecret,
		RefreshToken:    cfg.dropboxRefreshToken,
		AccessToken:     cfg.dropboxAccessToken,
		TokenURL:        cfg.dropboxTokenURL,
		RefreshInterval: seconds(cfg.dropboxRefreshIntervalSecond),
	}, tokenOpts...)
	go dropboxTokens.Run(ctx)

	dropboxClient := facades.NewDropboxClient(dropboxTokens, facades.NewDropboxFilesFactory())
	stores := []services.ImageStore{
		services.NewImgurStore(facades.NewImgurClient(cfg.imgurBaseURL, cfg.imgurClientID)),
		services.NewDropboxStore(dropboxClient, cfg.dropboxBaseFolder),
	}

	// Event notifier
	var writer services.KafkaWriter
	if cfg.kafkaEnabled {
		writer = &kafka.Writer{
			Addr:         kafka.TCP(cfg.kafkaBrokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
	}
	notifier := services.NewNotifier(writer, services.NotifierConfig{
		ImageTopic:      cfg.kafkaImageTopic,
		UserTopic:       cfg.kafkaUserTopic,
		Workers:         cfg.kafkaWorkers,
		QueueSize:       cfg.kafkaQueue,
		BreakerCooldown: seconds(cfg.kafkaBreakerCooldownSecond),
	})
	notifier.Start()

	// Cache, validation, tokens
	appCache := cache.New(cache.Config{
		Enabled:    cfg.cacheEnabled,
		MaxEntries: uint64(cfg.cacheMaxEntries),
		WriteTTL:   seconds(cfg.cacheWriteTTLSecond),
		AccessTTL:  seconds(cfg.cacheAccessTTLSecond),
	}, cache.AllNamespaces)
	defer appCache.Close()

	v := validation.New()
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(seconds(cfg.jwtExpSecond)),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, appCache, v, notifier)
	authService := services.NewAuthService(userReadRepo, tokens, appCache, v)
	imageService := services.NewImageService(imageReadRepo, imageWriteRepo, userService, stores, appCache, v, notifier)
	dropboxService := services.NewDropboxService(dropboxClient, userService, notifier, cfg.dropboxBaseFolder)

	limiter := ratelimit.New(map[ratelimit.Class]ratelimit.Quota{
		ratelimit.ClassAPI:         {Capacity: cfg.rateLimitAPI, Period: time.Minute},
		ratelimit.ClassAuth:        {Capacity: cfg.rateLimitAuth, Period: time.Minute},
		ratelimit.ClassImageUpload: {Capacity: cfg.rateLimitUpload, Period: time.Minute},
	})

	// gRPC health
	healthServer := grpchealth.NewServer()
	go health.NewProber(db, healthServer, 15*time.Second).Run(ctx)
	grpcServer := health.NewServer(healthServer)
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.appHost, cfg.grpcHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listener: %w", err)
	}

	router := newRouter(routes{
		tokens:      tokens,
		auth:        authService,
		users:       userService,
		images:      imageService,
		dropbox:     dropboxService,
		cache:       appCache,
		monitor:     services.NewPerformanceMonitor(),
		limiter:     limiter,
		tx:          middlewares.TxMiddleware(db),
		corsOrigins: cfg.corsOrigins,
		opsPerMin:   cfg.rateLimitOps,
		swaggerURL:  fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.appHost, cfg.appPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()
	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
	if err := notifier.Stop(shutdownCtx); err != nil {
		logger.Log.Errorw("notifier shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Log.Errorw("kafka writer close error", "error", err)
		}
	}

	logger.Log.Info("servers stopped gracefully")
	return serveErr
}
