package postgres

import (
	"context"
	"errors"
	"fmt"

	"ngo-funding-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// NGOSessionRepo implements ports.NGOSessionRepository.
type NGOSessionRepo struct {
	pool Pool
}

// NewNGOSessionRepo creates a new NGOSessionRepo.
func NewNGOSessionRepo(pool Pool) *NGOSessionRepo {
	return &NGOSessionRepo{pool: pool}
}

// Create inserts a new NGO session. A name collision surfaces as
// domain.ErrDuplicateName; concurrent creators race at this constraint
// and the loser gets the duplicate error.
func (r *NGOSessionRepo) Create(ctx context.Context, s *domain.NGOSession) error {
	query := `INSERT INTO ngo_sessions (name, email, national_id, provider_wallet_address, chain_wallet_address, verification_token, is_kyc_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		s.Name, s.Email, s.NationalID, s.ProviderWalletAddress,
		s.ChainWalletAddress, s.VerificationToken, s.IsKycVerified,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert ngo session: %w", err)
	}
	return nil
}

// GetByName fetches a session by its name primary key.
func (r *NGOSessionRepo) GetByName(ctx context.Context, name string) (*domain.NGOSession, error) {
	query := `SELECT name, email, national_id, provider_wallet_address, chain_wallet_address, verification_token, is_kyc_verified, created_at, updated_at
		FROM ngo_sessions WHERE name = $1`

	s := &domain.NGOSession{}
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&s.Name, &s.Email, &s.NationalID, &s.ProviderWalletAddress,
		&s.ChainWalletAddress, &s.VerificationToken, &s.IsKycVerified,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ngo session by name: %w", err)
	}
	return s, nil
}

// GetByWalletAddress fetches a session by its provider wallet address.
func (r *NGOSessionRepo) GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.NGOSession, error) {
	query := `SELECT name, email, national_id, provider_wallet_address, chain_wallet_address, verification_token, is_kyc_verified, created_at, updated_at
		FROM ngo_sessions WHERE provider_wallet_address = $1`

	s := &domain.NGOSession{}
	err := r.pool.QueryRow(ctx, query, walletAddress).Scan(
		&s.Name, &s.Email, &s.NationalID, &s.ProviderWalletAddress,
		&s.ChainWalletAddress, &s.VerificationToken, &s.IsKycVerified,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ngo session by wallet: %w", err)
	}
	return s, nil
}

// AttachVerificationToken records the e-KYC token on the session row.
// A wallet without a session row is a no-op, matching MarkKycVerified.
func (r *NGOSessionRepo) AttachVerificationToken(ctx context.Context, walletAddress, token string) error {
	query := `UPDATE ngo_sessions SET verification_token = $1, updated_at = NOW() WHERE provider_wallet_address = $2`

	_, err := r.pool.Exec(ctx, query, token, walletAddress)
	if err != nil {
		return fmt.Errorf("attach verification token: %w", err)
	}
	return nil
}

// MarkKycVerified flips the verified flag for the matching session.
// Zero rows affected is not an error: the flag flip is a best-effort
// side effect of a successful poll.
func (r *NGOSessionRepo) MarkKycVerified(ctx context.Context, walletAddress string) error {
	query := `UPDATE ngo_sessions SET is_kyc_verified = TRUE, updated_at = NOW() WHERE provider_wallet_address = $1`

	_, err := r.pool.Exec(ctx, query, walletAddress)
	if err != nil {
		return fmt.Errorf("mark kyc verified: %w", err)
	}
	return nil
}
