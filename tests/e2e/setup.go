//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"wishkeeper/cmd/bootstrap"
	"wishkeeper/cmd/bootstrap/components"
	"wishkeeper/internal/infra/db"
	"wishkeeper/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

// setupE2EEnvironment starts the shared postgres container, prepares an
// isolated database for this test and boots the full application wired
// against it.
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	info := startPostgres(t)
	pool, dbConfig := prepareDatabase(t, info)

	router, app := buildE2EApp(t, pool, dbConfig)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return pool, router
}

func startPostgres(t *testing.T) containerInfo {
	t.Helper()

	postgresContainerOnce.Do(func() {
		ctx := context.Background()
		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("postgres"),
			tcpostgres.WithUsername(testUser),
			tcpostgres.WithPassword(testPassword),
			testcontainers.WithWaitStrategy(
				wait.ForListeningPort("5432/tcp").WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "failed to start postgres container")
		postgresTestContainer = container
	})

	host, err := postgresTestContainer.Host(context.Background())
	require.NoError(t, err)
	port, err := postgresTestContainer.MappedPort(context.Background(), "5432/tcp")
	require.NoError(t, err)

	return containerInfo{Host: host, Port: port}
}

// prepareDatabase creates a throwaway database so parallel test packages
// never share state, then applies the embedded migrations.
func prepareDatabase(t *testing.T, info containerInfo) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	require.NoError(t, db.Migrate(dbConfig.BuildDSN()), "migrations failed")

	pool, _, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "database connection failed")

	t.Cleanup(pool.Close)
	return pool, dbConfig
}

func buildE2EApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, *fx.App) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	engine := gin.New()

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() config.JWTConfig { return cfg.JWT },
			func() config.ReservationConfig { return cfg.Reservation },
			func() *gin.Engine { return engine },
		),
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	return engine, app
}

// ------------------------------------------------------------
// HTTP helpers
// ------------------------------------------------------------

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
		"failed to decode response: %s", w.Body.String())
}

// registerAndLogin creates an account and returns its id and a bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, email, name string) (uuid.UUID, string) {
	t.Helper()
	const pass = "password123"

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"email": email, "name": name, "password": pass,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	var reg struct {
		ID uuid.UUID `json:"id"`
	}
	decodeBody(t, w, &reg)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": pass,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)
	require.NotEmpty(t, login.Token)

	return reg.ID, login.Token
}
