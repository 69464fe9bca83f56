package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

// State is the lifecycle position of one submission.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StatePending    State = "pending"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// FailureReason classifies why a submission ended in StateFailed.
type FailureReason string

const (
	// ReasonUserRejected: the signer declined. Not an on-chain event.
	ReasonUserRejected FailureReason = "user_rejected"
	// ReasonReverted: the transaction was mined and reverted.
	ReasonReverted FailureReason = "reverted"
	// ReasonRPC: nonce/gas/broadcast plumbing failed before or after
	// signing, or confirmation polling gave up.
	ReasonRPC FailureReason = "rpc"
)

// gas estimation fallbacks
const (
	defaultGasLimit  = 500000
	gasBufferPercent = 20
)

// ErrSubmissionInFlight is returned by Submit when the submitter is not
// in a startable state.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Snapshot is a point-in-time copy of a submission's observable state.
type Snapshot struct {
	State   State
	TxHash  string
	Reason  FailureReason
	Message string
}

// Submitter drives a single transaction through its lifecycle:
//
//	Idle -> Submitting -> Pending -> Confirmed | Failed
//
// Submitting covers everything up to broadcast acceptance; Pending
// starts the moment the node hands back a hash. Only one submission may
// be in flight at a time; Reset rearms a terminal submitter.
type Submitter struct {
	rpc      RPCClient
	chainID  *big.Int
	contract common.Address
	signer   Signer

	confirmInterval time.Duration
	confirmTimeout  time.Duration

	log zerolog.Logger

	mu       sync.Mutex
	state    State
	txHash   common.Hash
	reason   FailureReason
	message  string
	onTxHash func(hash common.Hash)
}

// OnTxHash registers a callback fired as soon as the broadcast hash is
// known, before confirmation. Must be set before Submit.
func (s *Submitter) OnTxHash(fn func(hash common.Hash)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTxHash = fn
}

// Snapshot returns the current observable state.
func (s *Submitter) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{State: s.state, Reason: s.reason, Message: s.message}
	if snap.State == "" {
		snap.State = StateIdle
	}
	if (s.txHash != common.Hash{}) {
		snap.TxHash = s.txHash.Hex()
	}
	return snap
}

// Reset rearms the submitter after a terminal state. Calling Reset
// mid-flight is an error.
func (s *Submitter) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StatePending {
		return ErrSubmissionInFlight
	}
	s.state = StateIdle
	s.txHash = common.Hash{}
	s.reason = ""
	s.message = ""
	return nil
}

// Submit signs and broadcasts one contract call and returns the hash as
// soon as the node accepts it. Confirmation is a separate step (Wait or
// the gateway's TxStatus); callers that only need the hash stop here.
func (s *Submitter) Submit(ctx context.Context, data []byte, value *big.Int) (common.Hash, error) {
	s.mu.Lock()
	if s.state != StateIdle && s.state != "" {
		s.mu.Unlock()
		return common.Hash{}, ErrSubmissionInFlight
	}
	s.state = StateSubmitting
	fire := s.onTxHash
	s.mu.Unlock()

	hash, err := s.broadcast(ctx, data, value)
	if err != nil {
		reason := ReasonRPC
		if errors.Is(err, ErrRejected) {
			reason = ReasonUserRejected
		}
		s.fail(reason, err)
		return common.Hash{}, err
	}

	s.mu.Lock()
	s.state = StatePending
	s.txHash = hash
	s.mu.Unlock()

	s.log.Info().Str("tx_hash", hash.Hex()).Msg("transaction broadcast")
	if fire != nil {
		fire(hash)
	}
	return hash, nil
}

func (s *Submitter) broadcast(ctx context.Context, data []byte, value *big.Int) (common.Hash, error) {
	from := s.signer.Address()

	nonce, err := s.rpc.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetching nonce: %w", err)
	}

	gasPrice, err := s.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetching gas price: %w", err)
	}

	if value == nil {
		value = big.NewInt(0)
	}

	gasLimit, err := s.rpc.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &s.contract,
		Value: value,
		Data:  data,
	})
	if err != nil {
		// Nodes refuse estimates for some payable calls; fall back to a
		// fixed limit rather than failing the submission.
		s.log.Warn().Err(err).Msg("gas estimation failed, using default limit")
		gasLimit = defaultGasLimit
	} else {
		gasLimit += gasLimit * gasBufferPercent / 100
	}

	tx := types.NewTransaction(nonce, s.contract, value, gasLimit, gasPrice, data)

	signed, err := s.signer.SignTx(tx, s.chainID)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return common.Hash{}, err
		}
		return common.Hash{}, fmt.Errorf("signing transaction: %w", err)
	}

	if err := s.rpc.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("broadcasting transaction: %w", err)
	}
	return signed.Hash(), nil
}

// Wait polls for the receipt of the pending transaction until it lands
// or the confirmation timeout elapses. It moves the submitter to its
// terminal state and returns the receipt on success.
func (s *Submitter) Wait(ctx context.Context) (*types.Receipt, error) {
	s.mu.Lock()
	if s.state != StatePending {
		s.mu.Unlock()
		return nil, fmt.Errorf("no pending transaction (state %s)", s.state)
	}
	hash := s.txHash
	s.mu.Unlock()

	interval := s.confirmInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	timeout := s.confirmTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		receipt, err := s.rpc.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status == types.ReceiptStatusSuccessful {
				s.mu.Lock()
				s.state = StateConfirmed
				s.mu.Unlock()
				s.log.Info().Str("tx_hash", hash.Hex()).Uint64("block", receipt.BlockNumber.Uint64()).Msg("transaction confirmed")
				return receipt, nil
			}
			err = fmt.Errorf("transaction %s reverted", hash.Hex())
			s.fail(ReasonReverted, err)
			return receipt, err
		case errors.Is(err, ethereum.NotFound):
			// still in the mempool
		default:
			err = fmt.Errorf("fetching receipt: %w", err)
			s.fail(ReasonRPC, err)
			return nil, err
		}

		select {
		case <-ctx.Done():
			err := fmt.Errorf("confirmation timed out for %s: %w", hash.Hex(), ctx.Err())
			s.fail(ReasonRPC, err)
			return nil, err
		case <-ticker.C:
		}
	}
}

func (s *Submitter) fail(reason FailureReason, err error) {
	s.mu.Lock()
	s.state = StateFailed
	s.reason = reason
	s.message = err.Error()
	s.mu.Unlock()
	s.log.Error().Err(err).Str("reason", string(reason)).Msg("transaction submission failed")
}
