package domain

import "math/big"

// CampaignCategory mirrors the contract's uint8 category enum.
type CampaignCategory uint8

const (
	CategoryEducation CampaignCategory = iota
	CategoryHealthcare
	CategoryEnvironment
	CategoryDisasterRelief
	CategoryCommunity
)

// TeamMember is one entry of the campaign team tuple array.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

// InvestmentTier is one donation reward tier.
type InvestmentTier struct {
	TierTitle     string   `json:"tier_title"`
	MinimumAmount *big.Int `json:"minimum_amount"`
	Description   string   `json:"description"`
}

// CampaignDraft holds the validated form state for a createCampaign call.
// GoalAmount and tier minimums are in the campaign token's smallest unit;
// Deadline is a Unix timestamp.
type CampaignDraft struct {
	Owner            string           `json:"owner"`
	Title            string           `json:"title"`
	ShortDescription string           `json:"short_description"`
	Category         CampaignCategory `json:"category"`
	LongDescription  string           `json:"long_description"`
	GoalAmount       *big.Int         `json:"goal_amount"`
	Deadline         *big.Int         `json:"deadline"`
	ImageRef         string           `json:"image_ref"`
	TeamMembers      []TeamMember     `json:"team_members"`
	InvestmentTiers  []InvestmentTier `json:"investment_tiers"`
}

// TxStatus is the lifecycle position of a broadcast transaction as
// observable from the chain.
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusFailed    TxStatus = "failed"
)
