// Command donate sends a donation to an existing campaign and waits
// for the transaction to confirm.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"

	"ngo-funding-gateway/config"
	"ngo-funding-gateway/internal/adapter/chain"
	"ngo-funding-gateway/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (optional, env vars suffice)")
		campaignID = flag.Int64("campaign", -1, "campaign id")
		amountEth  = flag.String("amount", "", "donation amount in ETH, e.g. 0.01")
	)
	flag.Parse()

	if *campaignID < 0 || *amountEth == "" {
		fmt.Fprintln(os.Stderr, "usage: donate -campaign 0 -amount 0.01")
		flag.PrintDefaults()
		os.Exit(2)
	}

	amount, err := decimal.NewFromString(*amountEth)
	if err != nil || amount.Sign() <= 0 {
		fatal("invalid amount %q", *amountEth)
	}
	wei := amount.Mul(decimal.New(1, 18))
	if !wei.IsInteger() {
		fatal("amount %q has sub-wei precision", *amountEth)
	}

	data, err := chain.PackDonate(big.NewInt(*campaignID))
	if err != nil {
		fatal("%v", err)
	}

	cfg, err := config.Load(*configPath)
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

	if _, err := sub.Submit(ctx, data, wei.BigInt()); err != nil {
		fatal("submission failed (%s): %v", sub.Snapshot().Reason, err)
	}

	receipt, err := sub.Wait(ctx)
	if err != nil {
		fatal("confirmation failed (%s): %v", sub.Snapshot().Reason, err)
	}

	fmt.Printf("donation confirmed in block %d\n", receipt.BlockNumber.Uint64())
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
