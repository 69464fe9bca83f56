package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"ngo-funding-gateway/config"
	"ngo-funding-gateway/internal/core/domain"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// RPCClient is the subset of the JSON-RPC surface the gateway uses,
// declared as an interface so tests can stand in for a live node.
type RPCClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Gateway submits crowdfunding contract calls over JSON-RPC and reports
// transaction lifecycle. One Gateway serves many submissions; each
// submission runs through its own Submitter state machine.
type Gateway struct {
	rpc      RPCClient
	chainID  *big.Int
	contract common.Address
	signer   Signer

	confirmInterval time.Duration
	confirmTimeout  time.Duration

	log zerolog.Logger
}

// NewGateway wires a gateway from its parts. Used directly by tests;
// production callers go through Dial.
func NewGateway(rpc RPCClient, chainID *big.Int, contract common.Address, signer Signer, cfg config.ChainConfig, log zerolog.Logger) *Gateway {
	return &Gateway{
		rpc:             rpc,
		chainID:         chainID,
		contract:        contract,
		signer:          signer,
		confirmInterval: cfg.ConfirmInterval,
		confirmTimeout:  cfg.ConfirmTimeout,
		log:             log,
	}
}

// Dial connects to the configured JSON-RPC endpoint, resolves the chain
// ID, and builds a gateway with a local private-key signer.
func Dial(ctx context.Context, cfg config.ChainConfig, log zerolog.Logger) (*Gateway, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("chain rpc_url is not configured")
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %q", cfg.ContractAddress)
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing rpc endpoint: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving chain id: %w", err)
	}

	signer, err := NewPrivateKeySigner(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("contract", cfg.ContractAddress).
		Str("chain_id", chainID.String()).
		Str("signer", signer.Address().Hex()).
		Msg("chain gateway connected")

	return NewGateway(client, chainID, common.HexToAddress(cfg.ContractAddress), signer, cfg, log), nil
}

// NewSubmitter starts a fresh submission lifecycle against this gateway.
func (g *Gateway) NewSubmitter() *Submitter {
	return &Submitter{
		rpc:             g.rpc,
		chainID:         g.chainID,
		contract:        g.contract,
		signer:          g.signer,
		confirmInterval: g.confirmInterval,
		confirmTimeout:  g.confirmTimeout,
		log:             g.log,
	}
}

// SubmitCreateCampaign broadcasts a createCampaign call and returns the
// transaction hash as soon as the node accepts it.
func (g *Gateway) SubmitCreateCampaign(ctx context.Context, draft domain.CampaignDraft) (string, error) {
	data, err := PackCreateCampaign(draft)
	if err != nil {
		return "", err
	}
	hash, err := g.NewSubmitter().Submit(ctx, data, nil)
	if err != nil {
		return "", err
	}
	return hash.Hex(), nil
}

// SubmitDonation broadcasts a payable donateToCampaign call carrying
// amountWei as the transaction value.
func (g *Gateway) SubmitDonation(ctx context.Context, campaignID, amountWei *big.Int) (string, error) {
	data, err := PackDonate(campaignID)
	if err != nil {
		return "", err
	}
	hash, err := g.NewSubmitter().Submit(ctx, data, amountWei)
	if err != nil {
		return "", err
	}
	return hash.Hex(), nil
}

// TxStatus reports the lifecycle position of a broadcast transaction.
// A receipt that does not exist yet is the pending state, not an error.
func (g *Gateway) TxStatus(ctx context.Context, txHash string) (domain.TxStatus, error) {
	receipt, err := g.rpc.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return domain.TxStatusPending, nil
		}
		return "", fmt.Errorf("fetching receipt: %w", err)
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		return domain.TxStatusConfirmed, nil
	}
	return domain.TxStatusFailed, nil
}
