package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ngo-funding-gateway/internal/adapter/provider/maschain"
	"ngo-funding-gateway/internal/core/domain"
	"ngo-funding-gateway/internal/core/ports"
	"ngo-funding-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

type kycService struct {
	provider ports.IdentityProvider
	ngoRepo  ports.NGOSessionRepository
	kycRepo  ports.KYCSessionRepository
	cache    ports.VerifiedFlagCache
	log      zerolog.Logger
}

// NewKYCService creates the wallet-creation and e-KYC orchestration service.
func NewKYCService(
	provider ports.IdentityProvider,
	ngoRepo ports.NGOSessionRepository,
	kycRepo ports.KYCSessionRepository,
	cache ports.VerifiedFlagCache,
	log zerolog.Logger,
) ports.KYCService {
	return &kycService{
		provider: provider,
		ngoRepo:  ngoRepo,
		kycRepo:  kycRepo,
		cache:    cache,
		log:      log,
	}
}

func (s *kycService) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (string, error) {
	name := strings.TrimSpace(req.NGOName)
	email := strings.TrimSpace(req.AdminEmail)
	ic := strings.TrimSpace(req.AdminIC)
	if name == "" || email == "" || ic == "" {
		return "", apperror.Validation("ngoName, adminEmail and adminIc are required")
	}

	// Refuse before touching the provider so a duplicate name cannot
	// strand a freshly provisioned wallet.
	existing, err := s.ngoRepo.GetByName(ctx, name)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	if existing != nil {
		return "", apperror.ErrDuplicateNGOName(name)
	}

	walletAddress, err := s.provider.CreateWallet(ctx, name, email, ic)
	if err != nil {
		return "", providerError("wallet creation failed", err)
	}

	now := time.Now().UTC()
	session := &domain.NGOSession{
		Name:                  name,
		Email:                 email,
		NationalID:            ic,
		ProviderWalletAddress: walletAddress,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.ngoRepo.Create(ctx, session); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return "", apperror.ErrDuplicateNGOName(name)
		}
		return "", apperror.InternalError(err)
	}

	s.log.Info().Str("ngo", name).Str("wallet", walletAddress).Msg("ngo wallet created")
	return walletAddress, nil
}

func (s *kycService) StartVerification(ctx context.Context, walletAddress string) (string, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return "", apperror.Validation("walletAddress is required")
	}

	verification, err := s.provider.StartVerification(ctx)
	if err != nil {
		return "", providerError("starting verification failed", err)
	}

	// Replace-on-conflict: restarting verification leaves exactly the
	// latest token live for the wallet.
	if err := s.kycRepo.Upsert(ctx, verification.Token, walletAddress); err != nil {
		return "", apperror.InternalError(err)
	}
	if err := s.ngoRepo.AttachVerificationToken(ctx, walletAddress, verification.Token); err != nil {
		return "", apperror.InternalError(err)
	}

	s.log.Info().Str("wallet", walletAddress).Msg("verification session started")
	return verification.URL, nil
}

func (s *kycService) PollStatus(ctx context.Context, walletAddress string) (bool, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return false, apperror.Validation("walletAddress is required")
	}

	// Verified is monotonic, so a cache hit is final. A cache failure
	// only degrades to the provider round trip.
	verified, err := s.cache.IsVerified(ctx, walletAddress)
	if err != nil {
		s.log.Warn().Err(err).Msg("verified-flag cache unavailable, falling back to provider")
	} else if verified {
		return true, nil
	}

	kycSession, err := s.kycRepo.FindByWallet(ctx, walletAddress)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	if kycSession == nil {
		// Verification never started; unverified without a provider call.
		return false, nil
	}

	ok, err := s.provider.VerificationStatus(ctx, kycSession.VerificationToken)
	if err != nil {
		return false, providerError("verification status check failed", err)
	}
	if !ok {
		return false, nil
	}

	if err := s.ngoRepo.MarkKycVerified(ctx, walletAddress); err != nil {
		return false, apperror.InternalError(err)
	}
	if err := s.cache.SetVerified(ctx, walletAddress); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache verified flag")
	}

	s.log.Info().Str("wallet", walletAddress).Msg("kyc verification confirmed")
	return true, nil
}

// providerError maps an identity-provider failure onto the PRV error
// code, carrying the raw provider body as diagnostic details when the
// failure preserved one.
func providerError(message string, err error) *apperror.AppError {
	appErr := apperror.Provider(message, err)
	var pe *maschain.ProviderError
	if errors.As(err, &pe) && len(pe.Body) > 0 {
		appErr.WithDetails(pe.Body)
	}
	return appErr
}
