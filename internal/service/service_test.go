package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-coins/internal/service/config"
	"github.com/talx-hub/gopher-coins/internal/utils/logger"
)

func memoryConfig() *config.Config {
	return &config.Config{
		RunAddr:   "localhost:0",
		SecretKey: "secret",
		LogLevel:  "error",
	}
}

func TestOpenStorage_inMemory(t *testing.T) {
	log := logger.New(slog.LevelError)
	st, err := openStorage(context.Background(), memoryConfig(), log)
	require.NoError(t, err)
	defer st.Close(context.Background(), log)

	assert.Nil(t, st.db)
	assert.Nil(t, st.redis)
	assert.NotNil(t, st.coins)
	assert.NotNil(t, st.users)
	assert.NotNil(t, st.orders)
	assert.NotNil(t, st.pending)
	assert.NoError(t, st.CheckHealth(context.Background()))
}

func TestInitService(t *testing.T) {
	log := logger.New(slog.LevelError)
	a, err := initService(context.Background(), memoryConfig(), log)
	require.NoError(t, err)
	defer a.storage.Close(context.Background(), log)

	srv := httptest.NewServer(a.server.Handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := srv.Client().Get(srv.URL + "/api/user/balance")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestInitService_badCoinsConfig(t *testing.T) {
	cfg := memoryConfig()
	cfg.CoinsConfigPath = "/nonexistent/coins.yaml"
	_, err := initService(context.Background(), cfg, logger.New(slog.LevelError))
	assert.Error(t, err)
}
