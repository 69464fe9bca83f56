package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "ngo_funding", cfg.Database.DBName)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.False(t, cfg.MasChain.Production)
	assert.Equal(t, "https://service.maschain.com", cfg.MasChain.BaseURL)
	assert.Equal(t, "https://service-testnet.maschain.com", cfg.MasChain.SandboxBaseURL)
	assert.Equal(t, "MYS", cfg.MasChain.EKYCCountryCode)
	assert.Equal(t, "ID_CARD", cfg.MasChain.EKYCIDType)

	assert.Equal(t, "0xD7B189A02f6Bc6f041346474B981C856479bFaC0", cfg.Chain.ContractAddress)
	assert.Equal(t, 2*time.Second, cfg.Chain.ConfirmInterval)
	assert.Equal(t, 2*time.Minute, cfg.Chain.ConfirmTimeout)

	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
maschain:
  production: true
  client_id: "prod-id"
  client_secret: "prod-secret"
chain:
  rpc_url: "https://sepolia.example/rpc"
  confirm_interval: "5s"
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.MasChain.Production)
	assert.Equal(t, "https://sepolia.example/rpc", cfg.Chain.RPCURL)
	assert.Equal(t, 5*time.Second, cfg.Chain.ConfirmInterval)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NFG_MASCHAIN_SANDBOX_CLIENT_ID", "env-id")
	t.Setenv("NFG_SERVER_PORT", "9999")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-id", cfg.MasChain.SandboxClientID)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestMasChainConfig_ModeSelection(t *testing.T) {
	cfg := MasChainConfig{
		Production:          false,
		BaseURL:             "https://service.maschain.com",
		SandboxBaseURL:      "https://service-testnet.maschain.com",
		ClientID:            "prod-id",
		ClientSecret:        "prod-secret",
		SandboxClientID:     "sandbox-id",
		SandboxClientSecret: "sandbox-secret",
	}

	assert.Equal(t, "https://service-testnet.maschain.com", cfg.APIBaseURL())
	id, secret := cfg.Credentials()
	assert.Equal(t, "sandbox-id", id)
	assert.Equal(t, "sandbox-secret", secret)

	cfg.Production = true
	assert.Equal(t, "https://service.maschain.com", cfg.APIBaseURL())
	id, secret = cfg.Credentials()
	assert.Equal(t, "prod-id", id)
	assert.Equal(t, "prod-secret", secret)
}

func TestMasChainConfig_Validate(t *testing.T) {
	cfg := MasChainConfig{Production: false}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sandbox")

	cfg.SandboxClientID = "id"
	cfg.SandboxClientSecret = "secret"
	assert.NoError(t, cfg.Validate())

	// Switching to production with only sandbox credentials must fail.
	cfg.Production = true
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production")
}
