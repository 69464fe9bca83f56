package ports

import (
	"context"
	"math/big"

	"ngo-funding-gateway/internal/core/domain"
)

// ChainGateway is the outbound port to the crowdfunding contract.
// The chain adapter implements it over JSON-RPC.
type ChainGateway interface {
	SubmitCreateCampaign(ctx context.Context, draft domain.CampaignDraft) (string, error)
	SubmitDonation(ctx context.Context, campaignID, amountWei *big.Int) (string, error)
	TxStatus(ctx context.Context, txHash string) (domain.TxStatus, error)
}
