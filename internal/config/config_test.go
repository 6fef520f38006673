package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/fitlog/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
port = 9000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_db_name = "fitlog"
redis_host = "localhost"
allowed_origins = ["http://localhost:9000"]

[production]
host = "0.0.0.0"
port = 8080
postgres_host = "db"
postgres_db_name = "fitlog"
redis_host = "redis"
session_ttl_hours = 12
session_cookie_secure = true
password_hash_cost = 14

[dockerdev]
postgres_host = "db"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, []string{"http://localhost:9000"}, cfg.AllowedOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, pkg.DefaultPasswordHashCost, cfg.PasswordHashCost)
	assert.Equal(t, 15, cfg.LoginRateLimitPerMin)
	assert.False(t, cfg.TrustProxyHeaders)
	assert.Equal(t, 10*time.Minute, cfg.WeightSeriesCacheTTL())
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("PRODUCTION", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL())
	assert.True(t, cfg.SessionCookieSecure)
	assert.Equal(t, 14, cfg.PasswordHashCost)
}

func TestLoad_Errors(t *testing.T) {
	path := writeTestConfig(t)

	_, err := Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	// dockerdev section lacks redis host
	_, err = Load("dockerdev", path)
	assert.EqualError(t, err, "redis host must be set")

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestToml_Get_MissingSection(t *testing.T) {
	tml := &Toml{Development: &Config{}}
	_, err := tml.Get("prod")
	assert.EqualError(t, err, "no config section for env: prod")
}

func TestLoad_RepoConfigFile(t *testing.T) {
	for _, env := range []string{"development", "dockerdev", "production"} {
		t.Run(env, func(t *testing.T) {
			cfg, err := Load(env, "../../config.toml")
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.PostgresHost)
			assert.Equal(t, "fitlog", cfg.PostgresDBName)
			assert.Equal(t, "2112", cfg.PrometheusMetricsPort)
			// only production runs behind the reverse proxy
			assert.Equal(t, env == "production", cfg.TrustProxyHeaders)
		})
	}
}

func TestValidate_PasswordHashCost(t *testing.T) {
	cfg := &Config{PostgresHost: "localhost", PostgresDBName: "fitlog", RedisHost: "localhost"}
	cfg.applyDefaults()
	require.NoError(t, cfg.Validate())

	cfg.PasswordHashCost = 32
	assert.EqualError(t, cfg.Validate(), "invalid password hash cost: 32")

	cfg.PasswordHashCost = 2
	assert.EqualError(t, cfg.Validate(), "invalid password hash cost: 2")
}
