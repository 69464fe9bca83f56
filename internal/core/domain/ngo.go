package domain

import (
	"errors"
	"time"
)

// ErrDuplicateName is returned by the store when an NGO session with the
// same name already exists (unique-key violation on the primary key).
var ErrDuplicateName = errors.New("ngo session name already exists")

// NGOSession links an organization's registration to its provider-issued
// wallet and verification state. Name is the stable primary key.
type NGOSession struct {
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	NationalID            string    `json:"-"` // admin identity document number, never exposed
	ProviderWalletAddress string    `json:"provider_wallet_address"`
	ChainWalletAddress    *string   `json:"chain_wallet_address,omitempty"` // set by a connected wallet, not by this flow
	VerificationToken     *string   `json:"-"`                              // server-side only
	IsKycVerified         bool      `json:"is_kyc_verified"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// KYCSession maps a provider-issued verification token to the
// provider wallet it was started for. Replaced wholesale whenever
// verification is restarted for that wallet.
type KYCSession struct {
	VerificationToken string    `json:"-"`
	WalletAddress     string    `json:"wallet_address"`
	CreatedAt         time.Time `json:"created_at"`
}
