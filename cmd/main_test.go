package main

import (
	"bytes"
	"context"
	"flag"
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"cmd"}, want: "config.env"},
		{name: "custom", args: []string{"cmd", "-c", "myconfig.env"}, want: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.want, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)
	assert.False(t, cfg.debug)
	assert.Equal(t, []string{"*"}, cfg.corsOrigins)

	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 6379, cfg.redisPort)

	assert.Equal(t, 86400, cfg.jwtExpSecond)
	assert.Equal(t, "https://api.imgur.com/3", cfg.imgurBaseURL)
	assert.Equal(t, "/images", cfg.dropboxBaseFolder)
	assert.Equal(t, 1200, cfg.dropboxRefreshIntervalSecond)

	assert.False(t, cfg.kafkaEnabled)
	assert.Equal(t, "image-events", cfg.kafkaImageTopic)
	assert.Equal(t, "user-events", cfg.kafkaUserTopic)
	assert.Equal(t, 300, cfg.kafkaBreakerCooldownSecond)

	assert.True(t, cfg.cacheEnabled)
	assert.Equal(t, 10000, cfg.cacheMaxEntries)
	assert.Equal(t, 1800, cfg.cacheWriteTTLSecond)
	assert.Equal(t, 600, cfg.cacheAccessTTLSecond)

	assert.Equal(t, 1000, cfg.rateLimitAPI)
	assert.Equal(t, 100, cfg.rateLimitAuth)
	assert.Equal(t, 200, cfg.rateLimitUpload)
	assert.Equal(t, 10, cfg.rateLimitOps)
	assert.Equal(t, "50051", cfg.grpcHealthPort)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("RATE_LIMIT_AUTH", "5")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.appPort)
	assert.True(t, cfg.debug)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.corsOrigins)
	assert.Equal(t, 5433, cfg.pgPort)
	assert.Equal(t, 2, cfg.redisDB)
	assert.Equal(t, "supersecret", cfg.jwtSecretKey)
	assert.Equal(t, 300, cfg.jwtExpSecond)
	assert.True(t, cfg.kafkaEnabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.kafkaBrokers)
	assert.False(t, cfg.cacheEnabled)
	assert.Equal(t, 5, cfg.rateLimitAuth)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PORT")
}

func TestParseConfig_FromFile(t *testing.T) {
	os.Clearenv()
	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nIMGUR_CLIENT_ID=abc123\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.appPort)
	assert.Equal(t, "abc123", cfg.imgurClientID)
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_Success(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")
	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	cfg.appHost = "127.0.0.1"
	cfg.appPort = freePort(t)
	cfg.grpcHealthPort = freePort(t)
	cfg.logLevel = "debug"
	cfg.pgHost, cfg.pgPort, cfg.pgDB = pgHost, pgPort.Int(), "testdb"
	cfg.redisHost, cfg.redisPort = redisHost, redisPort.Int()

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
