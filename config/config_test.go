package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: medbotanica
  log:
    level: debug
http:
  port: 8080
postgres:
  master:
    host: db.local
    port: "5432"
    username: app
  database: medbotanica
  connMaxLifetime: 2m
jwt:
  secret: file-secret
  expMinutes: 30
caption:
  endpoint: http://model.local/caption
  timeout: 5s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	t.Chdir(writeConfig(t, testYAML))

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "medbotanica", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 30, cfg.JWT.ExpMinutes)
	assert.Equal(t, 5*time.Second, cfg.Caption.Timeout)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db.local", cfg.Postgres.Master.Host)
	assert.Equal(t, "app", cfg.Postgres.Master.UserName)
	assert.Equal(t, "medbotanica", cfg.Postgres.Database)
	assert.Equal(t, 2*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Chdir(writeConfig(t, testYAML))
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPMINUTES", "15")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.ExpMinutes)
}

func TestLoadWithEnv_EnvOverridesNestedPostgres(t *testing.T) {
	t.Chdir(writeConfig(t, testYAML))
	t.Setenv("POSTGRES_MASTER_PASSWORD", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Postgres.Master.Password)
	assert.Equal(t, "db.local", cfg.Postgres.Master.Host)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_0_PASSWORD", "secret")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5433")
	// Index 2 has no port, so scanning stops before index 3.
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "replica-c")
	t.Setenv("POSTGRES_REPLICAS_3_HOST", "replica-d")
	t.Setenv("POSTGRES_REPLICAS_3_PORT", "5435")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "secret", replicas[0].Password)
	assert.Equal(t, "replica-b", replicas[1].Host)
	assert.Equal(t, "5433", replicas[1].Port)
	assert.Empty(t, replicas[1].UserName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 60, cfg.JWT.ExpMinutes)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Storage)
	assert.EqualValues(t, defaultMaxUploadBytes, cfg.Storage.MaxUploadBytes)
	assert.Contains(t, cfg.Storage.AllowedContentTypes, "image/png")
	require.NotNil(t, cfg.Caption)
	assert.Equal(t, defaultCaptionTimeout, cfg.Caption.Timeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.Algorithm = "HS512"
	cfg.JWT.ExpMinutes = 5
	cfg.Storage = &StorageConfig{BucketURL: "mem://", MaxUploadBytes: 1024}

	applyDefaults(cfg)

	assert.Equal(t, "HS512", cfg.JWT.Algorithm)
	assert.Equal(t, 5, cfg.JWT.ExpMinutes)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.EqualValues(t, 1024, cfg.Storage.MaxUploadBytes)
}
