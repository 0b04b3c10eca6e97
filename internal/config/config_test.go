package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "SESSION_SECRET", "SECRET_KEY", "DB_QUERY_TIMEOUT", "DEV"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Zero(t, cfg.Database.QueryTimeout)
	assert.Equal(t, 14*24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.App.Dev)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/relief.db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_QUERY_TIMEOUT", "3")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SECRET_KEY", "legacy-secret")
	t.Setenv("MIGRATIONS", "yes")

	cfg := Load()
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/relief.db", cfg.Database.Path)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "legacy-secret", cfg.Session.Secret)
	assert.True(t, cfg.App.Migrations)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: DriverPostgres}}
	assert.Error(t, cfg.Validate(), "missing secret outside dev must fail")

	cfg.App.Dev = true
	require.NoError(t, cfg.Validate())
	assert.Equal(t, devSessionSecret, cfg.Session.Secret)

	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: 5432, User: "relief", Password: "hunter2", DBName: "relief"},
		Session:  SessionConfig{Secret: "topsecret"},
	}
	s := cfg.String()
	assert.False(t, strings.Contains(s, "hunter2"))
	assert.False(t, strings.Contains(s, "topsecret"))
	assert.Contains(t, s, "host=db")
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@h:1/n?sslmode=disable", d.URL())
}
