package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrraghuvarun/talent/config"
	"github.com/mrraghuvarun/talent/internal/adapters/filesession"
	redisadapter "github.com/mrraghuvarun/talent/internal/adapters/redis"
	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := config.AppConfig{
		API:     config.APIConfig{BaseURL: "http://127.0.0.1:1/api"},
		Session: config.SessionConfig{File: filepath.Join(t.TempDir(), "session.json")},
	}
	cfg.Sanitize()
	return cfg
}

func TestNewRuntime_FileBackend(t *testing.T) {
	cfg := testConfig(t)

	rt, err := NewRuntime(context.Background(), RuntimeDeps{Config: cfg})
	require.NoError(t, err)
	defer func() { assert.NoError(t, rt.Close()) }()

	store, ok := rt.Sessions.(*filesession.Store)
	require.True(t, ok)
	assert.Equal(t, cfg.Session.File, store.Path())
	assert.NotNil(t, rt.Auth)
}

func TestNewRuntime_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Session.Backend = config.SessionBackendRedis
	cfg.Redis = config.RedisConfig{URI: mr.Addr(), KeyPrefix: "th:"}

	rt, err := NewRuntime(context.Background(), RuntimeDeps{Config: cfg})
	require.NoError(t, err)

	_, ok := rt.Sessions.(*redisadapter.SessionStore)
	require.True(t, ok)

	ctx := context.Background()
	require.NoError(t, rt.Sessions.Save(ctx, domainauth.Session{ID: "p", Token: "t", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.True(t, mr.Exists("th:p"))
	require.NoError(t, rt.Close())
}

func TestNewRuntime_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(t)
	cfg.Session.Backend = config.SessionBackendRedis
	cfg.Redis = config.RedisConfig{URI: addr}

	_, err := NewRuntime(context.Background(), RuntimeDeps{Config: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect session redis")
}

func TestRuntime_ServicesRequiresSession(t *testing.T) {
	rt, err := NewRuntime(context.Background(), RuntimeDeps{Config: testConfig(t)})
	require.NoError(t, err)

	_, err = rt.Services(context.Background(), "default")

	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestRuntime_ServicesForSession(t *testing.T) {
	rt, err := NewRuntime(context.Background(), RuntimeDeps{Config: testConfig(t)})
	require.NoError(t, err)
	ctx := context.Background()

	viewer := domainauth.ViewerContext{UserID: "1", Email: "a@example.com", Role: domainauth.RoleAdmin}
	require.NoError(t, rt.Sessions.Save(ctx, domainauth.Session{
		ID: "default", Viewer: viewer, Token: "t", ExpiresAt: time.Now().Add(time.Hour),
	}))

	svc, err := rt.Services(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, viewer, svc.Viewer)
	assert.NotNil(t, svc.Candidates)
	assert.NotNil(t, svc.Details)
	assert.NotNil(t, svc.MagicLinks)
	require.NotNil(t, svc.FileURL)
	assert.True(t, strings.HasSuffix(svc.FileURL("uploads/cv.pdf"), "/uploads/cv.pdf"))
}

func TestRuntime_CloseWritesMetrics(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Textfile = filepath.Join(t.TempDir(), "talenthub.prom")

	rt, err := NewRuntime(context.Background(), RuntimeDeps{Config: cfg})
	require.NoError(t, err)
	rt.Metrics.ObserveMutation("invite", "success")
	require.NoError(t, rt.Close())

	data, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `talenthub_candidate_mutations_total{op="invite",outcome="success"} 1`)
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(config.LogConfig{Format: "text", Level: "debug"}, &buf)
	logger.Debug("hello", "k", "v")
	assert.True(t, strings.Contains(buf.String(), "msg=hello"))

	buf.Reset()
	logger = InitLogger(config.LogConfig{Format: "json", Level: "warn"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
