package service

import (
	"context"
	"math/big"
	"strings"
	"time"

	"ngo-funding-gateway/internal/core/domain"
	"ngo-funding-gateway/internal/core/ports"
	"ngo-funding-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

type campaignService struct {
	gateway ports.ChainGateway
	log     zerolog.Logger
}

// NewCampaignService creates the on-chain campaign submission service.
func NewCampaignService(gateway ports.ChainGateway, log zerolog.Logger) ports.CampaignService {
	return &campaignService{gateway: gateway, log: log}
}

func (s *campaignService) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (string, error) {
	if !common.IsHexAddress(draft.Owner) {
		return "", apperror.Validation("owner must be a valid hex address")
	}
	if strings.TrimSpace(draft.Title) == "" {
		return "", apperror.Validation("title is required")
	}
	if draft.GoalAmount == nil || draft.GoalAmount.Sign() <= 0 {
		return "", apperror.Validation("goal_amount must be positive")
	}
	if draft.Deadline == nil || draft.Deadline.Cmp(big.NewInt(time.Now().Unix())) <= 0 {
		return "", apperror.Validation("deadline must be in the future")
	}

	txHash, err := s.gateway.SubmitCreateCampaign(ctx, draft)
	if err != nil {
		return "", apperror.ErrChainSubmission(err)
	}

	s.log.Info().Str("tx_hash", txHash).Str("owner", draft.Owner).Msg("campaign creation submitted")
	return txHash, nil
}

func (s *campaignService) Donate(ctx context.Context, campaignID, amountWei *big.Int) (string, error) {
	if campaignID == nil || campaignID.Sign() < 0 {
		return "", apperror.Validation("campaign id must be a non-negative integer")
	}
	if amountWei == nil || amountWei.Sign() <= 0 {
		return "", apperror.Validation("donation amount must be positive")
	}

	txHash, err := s.gateway.SubmitDonation(ctx, campaignID, amountWei)
	if err != nil {
		return "", apperror.ErrChainSubmission(err)
	}

	s.log.Info().Str("tx_hash", txHash).Str("campaign_id", campaignID.String()).Msg("donation submitted")
	return txHash, nil
}

func (s *campaignService) TxStatus(ctx context.Context, txHash string) (domain.TxStatus, error) {
	txHash = strings.TrimSpace(txHash)
	if len(txHash) != 66 || !strings.HasPrefix(txHash, "0x") {
		return "", apperror.Validation("txHash must be a 32-byte hex hash")
	}

	status, err := s.gateway.TxStatus(ctx, txHash)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	return status, nil
}
