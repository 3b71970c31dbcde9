//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/events"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres"
	alertrepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/audit"
	camerarepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/camera"
	storerepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/store"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/shelfwatch-backend/internal/auth"
	"github.com/heartmarshall/shelfwatch-backend/internal/config"
	"github.com/heartmarshall/shelfwatch-backend/internal/metrics"
	alertsvc "github.com/heartmarshall/shelfwatch-backend/internal/service/alert"
	authsvc "github.com/heartmarshall/shelfwatch-backend/internal/service/auth"
	camerasvc "github.com/heartmarshall/shelfwatch-backend/internal/service/camera"
	storesvc "github.com/heartmarshall/shelfwatch-backend/internal/service/store"
	"github.com/heartmarshall/shelfwatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/shelfwatch-backend/internal/transport/rest"
)

const alertsStream = "shelfwatch:alerts"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Redis  *redis.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and an in-process Redis.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	mr := miniredis.RunT(t)
	redisCfg := config.RedisConfig{Addr: mr.Addr(), AlertsStream: alertsStream, StreamMaxLen: 1000}
	redisClient := events.NewRedisClient(redisCfg)
	t.Cleanup(func() { _ = redisClient.Close() })
	publisher := events.NewRedisPublisher(redisClient, redisCfg)

	authCfg := config.AuthConfig{
		JWTSecret:      "test-secret-at-least-32-chars-long!!",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
		PasswordCost:   4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	auditRepo := audit.New(pool)
	m := metrics.New()

	alertService := alertsvc.NewService(logger, alertrepo.New(pool), auditRepo, txm, publisher, m,
		config.AlertsConfig{MaxPageSize: 200})
	storeService := storesvc.NewService(logger, storerepo.New(pool), auditRepo, txm)
	cameraService := camerasvc.NewService(logger, camerarepo.New(pool), auditRepo, txm)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwtMgr, authCfg)

	router := rest.NewRouter(rest.Routes{
		Alerts:      rest.NewAlertHandler(alertService, logger),
		Stores:      rest.NewStoreHandler(storeService, logger),
		Cameras:     rest.NewCameraHandler(cameraService, logger),
		Auth:        rest.NewAuthHandler(authService, logger),
		Health:      rest.NewHealthHandler(pool, "test-version", rest.Dependency{Name: "redis", Pinger: publisher}),
		Metrics:     m.Handler(),
		MetricsPath: "/metrics",
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
		middleware.Logger(logger),
		middleware.Metrics(m),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Redis:  redisClient,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restJSON sends a request, asserts the status and decodes the body into T.
func restJSON[T any](t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int) T {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %v", method, path, out)
	return out
}

// registerOwner creates an account through the API and returns its token.
func registerOwner(t *testing.T, ts *testServer) string {
	t.Helper()

	suffix := uuid.NewString()[:8]
	body := restJSON[map[string]any](t, ts, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Owner " + suffix,
		"email":    fmt.Sprintf("owner-%s@example.com", suffix),
		"password": "securepassword123",
	}, http.StatusCreated)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in register response")
	return token
}

// storeWithCamera creates a store and one active camera, returning their ids.
func storeWithCamera(t *testing.T, ts *testServer, token string) (storeID, cameraID string) {
	t.Helper()

	store := restJSON[map[string]any](t, ts, "POST", "/api/stores", token, map[string]string{
		"name":    "Store " + uuid.NewString()[:8],
		"address": "1 Test Street",
	}, http.StatusCreated)

	cam := restJSON[map[string]any](t, ts, "POST", "/api/cameras", token, map[string]any{
		"storeId":  store["id"],
		"name":     "Aisle 1 - Beverages",
		"location": "Aisle 1, Left Side",
	}, http.StatusCreated)

	return store["id"].(string), cam["id"].(string)
}

func detectionBatch(cameraID, severity string) map[string]any {
	return map[string]any{
		"cameraId": cameraID,
		"type":     "EMPTY_SHELF",
		"severity": severity,
		"detections": []map[string]any{
			{"x": 120, "y": 80, "width": 200, "height": 150, "class": "empty_shelf", "confidence": 0.92},
		},
	}
}
