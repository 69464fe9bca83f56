package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MasChain MasChainConfig `mapstructure:"maschain"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MasChainConfig holds credentials and endpoints for the MasChain
// wallet-custody / e-KYC identity provider. Production selects the
// production base URL and credential pair; otherwise the sandbox
// (testnet) pair is used.
type MasChainConfig struct {
	Production          bool   `mapstructure:"production"`
	BaseURL             string `mapstructure:"base_url"`
	SandboxBaseURL      string `mapstructure:"sandbox_base_url"`
	ClientID            string `mapstructure:"client_id"`
	ClientSecret        string `mapstructure:"client_secret"`
	SandboxClientID     string `mapstructure:"sandbox_client_id"`
	SandboxClientSecret string `mapstructure:"sandbox_client_secret"`

	EKYCCountryCode string `mapstructure:"ekyc_country_code"`
	EKYCIDType      string `mapstructure:"ekyc_id_type"`
	EKYCRedirectURL string `mapstructure:"ekyc_redirect_url"`
}

// APIBaseURL returns the base URL for the selected mode.
func (m MasChainConfig) APIBaseURL() string {
	if m.Production {
		return m.BaseURL
	}
	return m.SandboxBaseURL
}

// Credentials returns the client id/secret pair for the selected mode.
func (m MasChainConfig) Credentials() (id, secret string) {
	if m.Production {
		return m.ClientID, m.ClientSecret
	}
	return m.SandboxClientID, m.SandboxClientSecret
}

// Validate rejects a missing credential pair for the selected mode.
// This is a startup-time misconfiguration, not a per-request error.
func (m MasChainConfig) Validate() error {
	id, secret := m.Credentials()
	if id == "" || secret == "" {
		mode := "sandbox"
		if m.Production {
			mode = "production"
		}
		return fmt.Errorf("maschain %s credentials are not configured", mode)
	}
	return nil
}

// ChainConfig holds the JSON-RPC endpoint and contract settings for
// on-chain campaign submission.
type ChainConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	ContractAddress string        `mapstructure:"contract_address"`
	PrivateKey      string        `mapstructure:"private_key"` // hex, no 0x prefix
	ConfirmInterval time.Duration `mapstructure:"confirm_interval"`
	ConfirmTimeout  time.Duration `mapstructure:"confirm_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: NFG_ (NGO Funding Gateway).
// Nested keys use underscore: NFG_DATABASE_HOST, NFG_MASCHAIN_CLIENT_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "ngo_funding")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("maschain.production", false)
	v.SetDefault("maschain.base_url", "https://service.maschain.com")
	v.SetDefault("maschain.sandbox_base_url", "https://service-testnet.maschain.com")
	v.SetDefault("maschain.client_id", "")
	v.SetDefault("maschain.client_secret", "")
	v.SetDefault("maschain.sandbox_client_id", "")
	v.SetDefault("maschain.sandbox_client_secret", "")
	v.SetDefault("maschain.ekyc_country_code", "MYS")
	v.SetDefault("maschain.ekyc_id_type", "ID_CARD")
	v.SetDefault("maschain.ekyc_redirect_url", "https://localhost:5173/kyc/callback")
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.contract_address", "0xD7B189A02f6Bc6f041346474B981C856479bFaC0")
	v.SetDefault("chain.private_key", "")
	v.SetDefault("chain.confirm_interval", "2s")
	v.SetDefault("chain.confirm_timeout", "2m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: NFG_MASCHAIN_CLIENT_ID -> maschain.client_id
	v.SetEnvPrefix("NFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
