package dto

import (
	"fmt"
	"math/big"

	"ngo-funding-gateway/internal/core/domain"
)

// CreateWalletRequest is the request body for NGO wallet creation.
type CreateWalletRequest struct {
	NGOName    string `json:"ngoName" binding:"required,min=1,max=100"`
	AdminEmail string `json:"adminEmail" binding:"required,email"`
	AdminIC    string `json:"adminIc" binding:"required,min=1,max=30"`
}

// CreateWalletResponse is the response body for successful wallet creation.
type CreateWalletResponse struct {
	WalletAddress string `json:"walletAddress"`
}

// StartKYCRequest is the request body for opening an e-KYC session.
type StartKYCRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// StartKYCResponse carries the hosted verification page URL. The
// provider token deliberately never appears here.
type StartKYCResponse struct {
	VerificationURL string `json:"verificationUrl"`
}

// KYCStatusResponse is the poll result for a wallet.
type KYCStatusResponse struct {
	WalletAddress string `json:"walletAddress"`
	IsKycVerified bool   `json:"isKycVerified"`
}

// ProviderURLResponse exposes the resolved provider base URL for
// environment diagnosis.
type ProviderURLResponse struct {
	MaschainAPIURL string `json:"maschainApiUrl"`
}

// TeamMemberDTO is one campaign team member entry.
type TeamMemberDTO struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

// InvestmentTierDTO is one donation reward tier entry.
type InvestmentTierDTO struct {
	TierTitle     string `json:"tierTitle" binding:"required"`
	MinimumAmount string `json:"minimumAmount"` // wei, base-10
	Description   string `json:"description"`
}

// CreateCampaignRequest is the request body for submitting a campaign
// to the crowdfunding contract. Amounts travel as base-10 wei strings
// because they exceed int64 range.
type CreateCampaignRequest struct {
	Owner            string              `json:"owner" binding:"required"`
	Title            string              `json:"title" binding:"required,max=200"`
	ShortDescription string              `json:"shortDescription"`
	Category         uint8               `json:"category"`
	LongDescription  string              `json:"longDescription"`
	GoalAmount       string              `json:"goalAmount" binding:"required"`
	Deadline         int64               `json:"deadline" binding:"required"` // Unix seconds
	Image            string              `json:"image"`
	TeamMembers      []TeamMemberDTO     `json:"teamMembers"`
	InvestmentTiers  []InvestmentTierDTO `json:"investmentTiers"`
}

// ToDraft converts the request into a domain draft, parsing the wei
// string fields.
func (r *CreateCampaignRequest) ToDraft() (domain.CampaignDraft, error) {
	goal, err := parseWei(r.GoalAmount)
	if err != nil {
		return domain.CampaignDraft{}, fmt.Errorf("goalAmount: %w", err)
	}

	members := make([]domain.TeamMember, len(r.TeamMembers))
	for i, m := range r.TeamMembers {
		members[i] = domain.TeamMember{Name: m.Name, Role: m.Role, Bio: m.Bio}
	}

	tiers := make([]domain.InvestmentTier, len(r.InvestmentTiers))
	for i, t := range r.InvestmentTiers {
		min := big.NewInt(0)
		if t.MinimumAmount != "" {
			if min, err = parseWei(t.MinimumAmount); err != nil {
				return domain.CampaignDraft{}, fmt.Errorf("investmentTiers[%d].minimumAmount: %w", i, err)
			}
		}
		tiers[i] = domain.InvestmentTier{TierTitle: t.TierTitle, MinimumAmount: min, Description: t.Description}
	}

	return domain.CampaignDraft{
		Owner:            r.Owner,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Category:         domain.CampaignCategory(r.Category),
		LongDescription:  r.LongDescription,
		GoalAmount:       goal,
		Deadline:         big.NewInt(r.Deadline),
		ImageRef:         r.Image,
		TeamMembers:      members,
		InvestmentTiers:  tiers,
	}, nil
}

// DonateRequest is the request body for an on-chain donation.
type DonateRequest struct {
	AmountWei string `json:"amountWei" binding:"required"`
}

// ParseAmount parses the wei string field.
func (r *DonateRequest) ParseAmount() (*big.Int, error) {
	amount, err := parseWei(r.AmountWei)
	if err != nil {
		return nil, fmt.Errorf("amountWei: %w", err)
	}
	return amount, nil
}

// TxSubmittedResponse is returned as soon as the node assigns a hash.
type TxSubmittedResponse struct {
	TxHash string `json:"txHash"`
	Status string `json:"status"`
}

// TxStatusResponse reports the lifecycle position of a broadcast hash.
type TxStatusResponse struct {
	TxHash string `json:"txHash"`
	Status string `json:"status"`
}

func parseWei(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a base-10 integer", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%q is negative", s)
	}
	return v, nil
}
