package ports

import (
	"context"
	"math/big"

	"ngo-funding-gateway/internal/core/domain"
)

// VerificationSession is the provider's answer to a new e-KYC request.
type VerificationSession struct {
	Token string // opaque, server-side only
	URL   string // hosted verification page the user is redirected to
}

// IdentityProvider is the outbound port to the wallet-custody / e-KYC
// provider. Implementations hold no state beyond configuration.
type IdentityProvider interface {
	// CreateWallet provisions a custodial wallet and returns its address.
	CreateWallet(ctx context.Context, name, email, nationalID string) (string, error)
	// StartVerification opens a new e-KYC session with the fixed document
	// parameters from configuration.
	StartVerification(ctx context.Context) (*VerificationSession, error)
	// VerificationStatus reports whether the session identified by token
	// has completed successfully. A not-yet-verified session is a valid
	// pending state, not an error.
	VerificationStatus(ctx context.Context, token string) (bool, error)
}

// VerifiedFlagCache is a fast-path cache for the monotonic KYC flag.
// Once a wallet is verified it never becomes unverified, so a cache hit
// lets pollers skip the provider round trip entirely.
type VerifiedFlagCache interface {
	IsVerified(ctx context.Context, walletAddress string) (bool, error)
	SetVerified(ctx context.Context, walletAddress string) error
}

// --- Service Ports (Business Logic) ---

// CreateWalletRequest holds validated input for NGO wallet creation.
type CreateWalletRequest struct {
	NGOName    string
	AdminEmail string
	AdminIC    string
}

// KYCService orchestrates wallet creation and the e-KYC flow:
// create wallet -> start verification -> poll until verified.
type KYCService interface {
	// CreateWallet provisions a provider wallet and persists the NGO
	// session, returning the new wallet address.
	CreateWallet(ctx context.Context, req CreateWalletRequest) (string, error)
	// StartVerification opens an e-KYC session for the wallet and returns
	// the verification URL to redirect the user to. The token stays
	// server-side.
	StartVerification(ctx context.Context, walletAddress string) (string, error)
	// PollStatus reports whether the wallet's verification has succeeded.
	// A wallet that never started verification polls as unverified
	// without touching the provider.
	PollStatus(ctx context.Context, walletAddress string) (bool, error)
}

// CampaignService submits crowdfunding contract calls and reports their
// lifecycle.
type CampaignService interface {
	// CreateCampaign broadcasts a createCampaign call and returns the
	// transaction hash as soon as it is assigned.
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (string, error)
	// Donate broadcasts a payable donateToCampaign call.
	Donate(ctx context.Context, campaignID *big.Int, amountWei *big.Int) (string, error)
	// TxStatus reports pending/confirmed/failed for a broadcast hash.
	TxStatus(ctx context.Context, txHash string) (domain.TxStatus, error)
}
