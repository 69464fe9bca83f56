package chain

import (
	"fmt"
	"math/big"
	"strings"

	"ngo-funding-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// crowdFundingABI is the external interface of the deployed CrowdFunding
// contract. Only the two state-mutating entry points this gateway
// invokes are declared.
const crowdFundingABI = `[
  {
    "inputs": [
      {"internalType": "address", "name": "_campaignOwner", "type": "address"},
      {"internalType": "string", "name": "_title", "type": "string"},
      {"internalType": "string", "name": "_description", "type": "string"},
      {"internalType": "uint8", "name": "_category", "type": "uint8"},
      {"internalType": "string", "name": "_projectDescription", "type": "string"},
      {"internalType": "uint256", "name": "_goalAmount", "type": "uint256"},
      {"internalType": "uint256", "name": "_deadline", "type": "uint256"},
      {"internalType": "string", "name": "_image", "type": "string"},
      {"components": [
        {"internalType": "string", "name": "name", "type": "string"},
        {"internalType": "string", "name": "role", "type": "string"},
        {"internalType": "string", "name": "bio", "type": "string"}
      ], "internalType": "struct CrowdFunding.TeamMember[]", "name": "_teamMembers", "type": "tuple[]"},
      {"components": [
        {"internalType": "string", "name": "tierTitle", "type": "string"},
        {"internalType": "uint256", "name": "minimumAmount", "type": "uint256"},
        {"internalType": "string", "name": "description", "type": "string"}
      ], "internalType": "struct CrowdFunding.InvestmentTier[]", "name": "_investmentTiers", "type": "tuple[]"}
    ],
    "name": "createCampaign",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "_id", "type": "uint256"}],
    "name": "donateToCampaign",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]`

var contractABI = mustParseABI(crowdFundingABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded contract ABI: %v", err))
	}
	return parsed
}

// teamMemberArg matches the TeamMember tuple component layout.
type teamMemberArg struct {
	Name string
	Role string
	Bio  string
}

// investmentTierArg matches the InvestmentTier tuple component layout.
type investmentTierArg struct {
	TierTitle     string
	MinimumAmount *big.Int
	Description   string
}

// PackCreateCampaign ABI-encodes a createCampaign call from a draft.
func PackCreateCampaign(draft domain.CampaignDraft) ([]byte, error) {
	if !common.IsHexAddress(draft.Owner) {
		return nil, fmt.Errorf("invalid campaign owner address: %q", draft.Owner)
	}

	members := make([]teamMemberArg, len(draft.TeamMembers))
	for i, m := range draft.TeamMembers {
		members[i] = teamMemberArg{Name: m.Name, Role: m.Role, Bio: m.Bio}
	}

	tiers := make([]investmentTierArg, len(draft.InvestmentTiers))
	for i, t := range draft.InvestmentTiers {
		min := t.MinimumAmount
		if min == nil {
			min = big.NewInt(0)
		}
		tiers[i] = investmentTierArg{TierTitle: t.TierTitle, MinimumAmount: min, Description: t.Description}
	}

	data, err := contractABI.Pack("createCampaign",
		common.HexToAddress(draft.Owner),
		draft.Title,
		draft.ShortDescription,
		uint8(draft.Category),
		draft.LongDescription,
		draft.GoalAmount,
		draft.Deadline,
		draft.ImageRef,
		members,
		tiers,
	)
	if err != nil {
		return nil, fmt.Errorf("packing createCampaign: %w", err)
	}
	return data, nil
}

// PackDonate ABI-encodes a donateToCampaign call. The donation amount
// travels as the transaction value, not as calldata.
func PackDonate(campaignID *big.Int) ([]byte, error) {
	data, err := contractABI.Pack("donateToCampaign", campaignID)
	if err != nil {
		return nil, fmt.Errorf("packing donateToCampaign: %w", err)
	}
	return data, nil
}
