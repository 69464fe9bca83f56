// Command createcampaign submits a createCampaign transaction to the
// crowdfunding contract and waits for it to confirm.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"ngo-funding-gateway/config"
	"ngo-funding-gateway/internal/adapter/chain"
	"ngo-funding-gateway/internal/core/domain"
	"ngo-funding-gateway/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

func main() {
	var (
		configPath   = flag.String("config", "", "path to config file (optional, env vars suffice)")
		owner        = flag.String("owner", "", "campaign owner address (0x...)")
		title        = flag.String("title", "", "campaign title")
		shortDesc    = flag.String("desc", "", "short description")
		category     = flag.Uint("category", 0, "category enum value")
		longDesc     = flag.String("long-desc", "", "full project description")
		goalEth      = flag.String("goal", "", "goal amount in ETH, e.g. 1.5")
		deadlineDays = flag.Int("deadline-days", 30, "days from now until the campaign deadline")
		image        = flag.String("image", "", "image reference (URL or CID)")
		teamJSON     = flag.String("team", "[]", `team members as JSON, e.g. [{"name":"A","role":"founder","bio":""}]`)
		tiersJSON    = flag.String("tiers", "[]", `investment tiers as JSON, e.g. [{"tier_title":"Bronze","minimum_amount":1000,"description":""}]`)
	)
	flag.Parse()

	if *owner == "" || *title == "" || *goalEth == "" {
		fmt.Fprintln(os.Stderr, "usage: createcampaign -owner 0x... -title ... -goal 1.5 [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if !common.IsHexAddress(*owner) {
		fatal("invalid owner address %q", *owner)
	}

	goal, err := ethToWei(*goalEth)
	if err != nil {
		fatal("invalid goal: %v", err)
	}

	var team []domain.TeamMember
	if err := json.Unmarshal([]byte(*teamJSON), &team); err != nil {
		fatal("invalid -team JSON: %v", err)
	}
	var tiers []domain.InvestmentTier
	if err := json.Unmarshal([]byte(*tiersJSON), &tiers); err != nil {
		fatal("invalid -tiers JSON: %v", err)
	}

	draft := domain.CampaignDraft{
		Owner:            *owner,
		Title:            *title,
		ShortDescription: *shortDesc,
		Category:         domain.CampaignCategory(*category),
		LongDescription:  *longDesc,
		GoalAmount:       goal,
		Deadline:         big.NewInt(time.Now().AddDate(0, 0, *deadlineDays).Unix()),
		ImageRef:         *image,
		TeamMembers:      team,
		InvestmentTiers:  tiers,
	}

	data, err := chain.PackCreateCampaign(draft)
	if err != nil {
		fatal("%v", err)
	}

	runSubmission(*configPath, data, nil)
}

func ethToWei(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if d.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	wei := d.Mul(decimal.New(1, 18))
	if !wei.IsInteger() {
		return nil, fmt.Errorf("amount has sub-wei precision")
	}
	return wei.BigInt(), nil
}

// runSubmission drives one transaction through the full lifecycle,
// printing the hash as soon as it is known.
func runSubmission(configPath string, data []byte, value *big.Int) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal("loading config: %v", err)
	}
	log := logger.New(cfg.Log.Level, true)

	ctx := context.Background()
	gateway, err := chain.Dial(ctx, cfg.Chain, log)
	if err != nil {
		fatal("%v", err)
	}

	sub := gateway.NewSubmitter()
	sub.OnTxHash(func(hash common.Hash) {
		fmt.Printf("transaction broadcast: %s\n", hash.Hex())
	})

	if _, err := sub.Submit(ctx, data, value); err != nil {
		snap := sub.Snapshot()
		fatal("submission failed (%s): %v", snap.Reason, err)
	}

	receipt, err := sub.Wait(ctx)
	if err != nil {
		snap := sub.Snapshot()
		fatal("confirmation failed (%s): %v", snap.Reason, err)
	}

	fmt.Printf("confirmed in block %d (gas used %d)\n", receipt.BlockNumber.Uint64(), receipt.GasUsed)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
