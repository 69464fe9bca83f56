package postgres

import (
	"context"
	"fmt"
)

// schemaStatements create the session tables. Every statement is
// idempotent so initialization can run on each startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ngo_sessions (
		name TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		national_id TEXT NOT NULL,
		provider_wallet_address TEXT NOT NULL,
		chain_wallet_address TEXT,
		verification_token TEXT UNIQUE,
		is_kyc_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ngo_sessions_wallet
		ON ngo_sessions (provider_wallet_address)`,
	`CREATE TABLE IF NOT EXISTS kyc_sessions (
		verification_token TEXT PRIMARY KEY,
		wallet_address TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_kyc_sessions_wallet
		ON kyc_sessions (wallet_address)`,
}

// InitSchema creates the session tables if they do not exist yet.
func InitSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}
	}
	return nil
}
