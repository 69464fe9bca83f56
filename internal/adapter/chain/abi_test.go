package chain

import (
	"math/big"
	"testing"

	"ngo-funding-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Owner:            "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Title:            "Clean Water for Kelantan",
		ShortDescription: "Wells for flood-hit villages",
		Category:         domain.CategoryDisasterRelief,
		LongDescription:  "Long-form project description",
		GoalAmount:       big.NewInt(1_000_000),
		Deadline:         big.NewInt(1_900_000_000),
		ImageRef:         "ipfs://Qm...",
		TeamMembers: []domain.TeamMember{
			{Name: "Aisha", Role: "Project Lead", Bio: "10 years in WASH programs"},
		},
		InvestmentTiers: []domain.InvestmentTier{
			{TierTitle: "Supporter", MinimumAmount: big.NewInt(1000), Description: "Thank-you note"},
		},
	}
}

func TestPackCreateCampaign(t *testing.T) {
	data, err := PackCreateCampaign(validDraft())
	require.NoError(t, err)

	method, err := contractABI.MethodById(data[:4])
	require.NoError(t, err)
	assert.Equal(t, "createCampaign", method.Name)

	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, "Clean Water for Kelantan", args[1])
	assert.Equal(t, uint8(domain.CategoryDisasterRelief), args[3])
	assert.Equal(t, big.NewInt(1_000_000), args[5])
	assert.Equal(t, big.NewInt(1_900_000_000), args[6])
}

func TestPackCreateCampaign_InvalidOwner(t *testing.T) {
	draft := validDraft()
	draft.Owner = "not-an-address"

	_, err := PackCreateCampaign(draft)
	assert.Error(t, err)
}

func TestPackCreateCampaign_NilTierMinimumDefaultsToZero(t *testing.T) {
	draft := validDraft()
	draft.InvestmentTiers = []domain.InvestmentTier{{TierTitle: "Free", MinimumAmount: nil}}

	_, err := PackCreateCampaign(draft)
	assert.NoError(t, err)
}

func TestPackCreateCampaign_EmptyTupleArrays(t *testing.T) {
	draft := validDraft()
	draft.TeamMembers = nil
	draft.InvestmentTiers = nil

	data, err := PackCreateCampaign(draft)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPackDonate(t *testing.T) {
	data, err := PackDonate(big.NewInt(3))
	require.NoError(t, err)

	method, err := contractABI.MethodById(data[:4])
	require.NoError(t, err)
	assert.Equal(t, "donateToCampaign", method.Name)

	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(3), args[0])
}
