package postgres

import (
	"context"
	"errors"
	"fmt"

	"ngo-funding-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// KYCSessionRepo implements ports.KYCSessionRepository.
type KYCSessionRepo struct {
	pool Pool
}

// NewKYCSessionRepo creates a new KYCSessionRepo.
func NewKYCSessionRepo(pool Pool) *KYCSessionRepo {
	return &KYCSessionRepo{pool: pool}
}

// Upsert inserts or replaces the token -> wallet mapping. The conflict
// target is the verification token primary key; restarting verification
// refreshes created_at so FindByWallet always sees the latest session.
func (r *KYCSessionRepo) Upsert(ctx context.Context, token, walletAddress string) error {
	query := `INSERT INTO kyc_sessions (verification_token, wallet_address, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (verification_token)
		DO UPDATE SET wallet_address = EXCLUDED.wallet_address, created_at = NOW()`

	_, err := r.pool.Exec(ctx, query, token, walletAddress)
	if err != nil {
		return fmt.Errorf("upsert kyc session: %w", err)
	}
	return nil
}

// FindByWallet returns the newest mapping for the wallet, or nil when
// verification was never started for it.
func (r *KYCSessionRepo) FindByWallet(ctx context.Context, walletAddress string) (*domain.KYCSession, error) {
	query := `SELECT verification_token, wallet_address, created_at
		FROM kyc_sessions WHERE wallet_address = $1
		ORDER BY created_at DESC LIMIT 1`

	s := &domain.KYCSession{}
	err := r.pool.QueryRow(ctx, query, walletAddress).Scan(
		&s.VerificationToken, &s.WalletAddress, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find kyc session by wallet: %w", err)
	}
	return s, nil
}
