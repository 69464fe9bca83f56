package ports

import (
	"context"

	"ngo-funding-gateway/internal/core/domain"
)

// NGOSessionRepository defines persistence operations for NGO sessions.
type NGOSessionRepository interface {
	// Create inserts a new session. Returns domain.ErrDuplicateName when
	// the name primary key is already taken.
	Create(ctx context.Context, session *domain.NGOSession) error
	GetByName(ctx context.Context, name string) (*domain.NGOSession, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.NGOSession, error)
	// AttachVerificationToken records the token issued at e-KYC start on
	// the session row. No-op when no session matches the wallet.
	AttachVerificationToken(ctx context.Context, walletAddress, token string) error
	// MarkKycVerified flips the verified flag to true. The flag is
	// monotonic: nothing in this flow ever resets it. No-op when no
	// session matches the wallet.
	MarkKycVerified(ctx context.Context, walletAddress string) error
}

// KYCSessionRepository defines persistence for token -> wallet mappings.
type KYCSessionRepository interface {
	// Upsert inserts or replaces the mapping keyed by verification token.
	// The replace-on-conflict behavior is a documented contract: starting
	// verification again always leaves exactly the latest mapping live.
	Upsert(ctx context.Context, token, walletAddress string) error
	// FindByWallet returns the most recently created mapping for the
	// wallet, or nil when verification was never started.
	FindByWallet(ctx context.Context, walletAddress string) (*domain.KYCSession, error)
}
