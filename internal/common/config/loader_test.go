package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
workers:
  submit-application:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "acadgrant", cfg.App.Name)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "plaintext", cfg.Auth.Provider)
	assert.Equal(t, WalletEthereum, cfg.Wallet.Provider)
	assert.Equal(t, 0, cfg.Wallet.ConfirmTimeout)
	assert.Equal(t, ":8080", cfg.Server.Address)

	w := GetWorkerConfig(cfg, "submit-application")
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 30000, w.Timeout)
	assert.Equal(t, 3, w.MaxRetries)
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis.internal:6379")
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
store:
  backend: redis
database:
  redis:
    address: ${TEST_REDIS_ADDR}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", cfg.Database.Redis.Address)
}

func TestLoadFromFile_SecretOverride(t *testing.T) {
	t.Setenv("WALLET_PRIVATE_KEY", "0xabc123")
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc123", cfg.Wallet.PrivateKey)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing broker",
			body:    "store:\n  backend: memory\n",
			wantErr: "camunda.broker_address is required",
		},
		{
			name:    "unknown backend",
			body:    "camunda:\n  broker_address: x:1\nstore:\n  backend: etcd\n",
			wantErr: `store.backend "etcd" is not supported`,
		},
		{
			name:    "redis without address",
			body:    "camunda:\n  broker_address: x:1\nstore:\n  backend: redis\n",
			wantErr: "database.redis.address is required",
		},
		{
			name:    "postgres without host",
			body:    "camunda:\n  broker_address: x:1\nstore:\n  backend: postgres\n",
			wantErr: "database.postgres.host is required",
		},
		{
			name:    "unknown auth provider",
			body:    "camunda:\n  broker_address: x:1\nauth:\n  provider: ldap\n",
			wantErr: `auth.provider "ldap" is not supported`,
		},
		{
			name:    "negative confirm timeout",
			body:    "camunda:\n  broker_address: x:1\nwallet:\n  confirm_timeout: -1\n",
			wantErr: "wallet.confirm_timeout must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsWorkerEnabled(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"decide-application": {Enabled: false},
	}}

	assert.False(t, IsWorkerEnabled(cfg, "decide-application"))
	assert.True(t, IsWorkerEnabled(cfg, "submit-application"))
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
