package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diewo77/go-relief/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relief.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("DEV", "1")
	t.Setenv("MIGRATIONS", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestSeedCommand(t *testing.T) {
	path := sqliteEnv(t)
	for i := 0; i < 2; i++ {
		root := newRootCmd()
		root.SetArgs([]string{"seed", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
		root.SetOut(io.Discard)
		require.NoError(t, root.Execute())
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	var count int64
	require.NoError(t, conn.Model(&models.ReliefCenter{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
	sqlDB, _ := conn.DB()
	_ = sqlDB.Close()
}

func TestMigrateCommandReadsEnvFile(t *testing.T) {
	sqliteEnv(t)
	other := filepath.Join(t.TempDir(), "other.db")
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_PATH="+other+"\n"), 0o600))
	// godotenv does not override variables already present in the environment.
	require.NoError(t, os.Unsetenv("DB_PATH"))

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "--env-file", envFile})
	require.NoError(t, root.Execute())

	_, err := os.Stat(other)
	assert.NoError(t, err)
}

func TestBootstrapRejectsMissingSecret(t *testing.T) {
	sqliteEnv(t)
	t.Setenv("DEV", "")
	_, err := bootstrap("")
	assert.Error(t, err)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	l := logrus.New()
	l.SetOutput(io.Discard)
	srv := &http.Server{Addr: addr, Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, l) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}
