package integration

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"ngo-funding-gateway/internal/core/domain"
	"ngo-funding-gateway/internal/core/ports"
)

// --- In-Memory NGO Session Repo ---

type inMemoryNGORepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.NGOSession // keyed by name
}

func newInMemoryNGORepo() *inMemoryNGORepo {
	return &inMemoryNGORepo{sessions: make(map[string]*domain.NGOSession)}
}

func (r *inMemoryNGORepo) Create(ctx context.Context, s *domain.NGOSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.Name]; ok {
		return domain.ErrDuplicateName
	}
	clone := *s
	r.sessions[s.Name] = &clone
	return nil
}

func (r *inMemoryNGORepo) GetByName(ctx context.Context, name string) (*domain.NGOSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[name]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *inMemoryNGORepo) GetByWalletAddress(ctx context.Context, walletAddress string) (*domain.NGOSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.ProviderWalletAddress == walletAddress {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryNGORepo) AttachVerificationToken(ctx context.Context, walletAddress, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ProviderWalletAddress == walletAddress {
			tok := token
			s.VerificationToken = &tok
			s.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *inMemoryNGORepo) MarkKycVerified(ctx context.Context, walletAddress string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ProviderWalletAddress == walletAddress {
			s.IsKycVerified = true
			s.UpdatedAt = time.Now()
		}
	}
	return nil
}

// --- In-Memory KYC Session Repo ---

type inMemoryKYCRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.KYCSession // keyed by token
}

func newInMemoryKYCRepo() *inMemoryKYCRepo {
	return &inMemoryKYCRepo{sessions: make(map[string]*domain.KYCSession)}
}

func (r *inMemoryKYCRepo) Upsert(ctx context.Context, token, walletAddress string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = &domain.KYCSession{
		VerificationToken: token,
		WalletAddress:     walletAddress,
		CreatedAt:         time.Now(),
	}
	return nil
}

func (r *inMemoryKYCRepo) FindByWallet(ctx context.Context, walletAddress string) (*domain.KYCSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []*domain.KYCSession
	for _, s := range r.sessions {
		if s.WalletAddress == walletAddress {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	clone := *matches[0]
	return &clone, nil
}

// --- Stub Identity Provider ---

// stubProvider simulates the wallet-custody / e-KYC provider. Tokens
// are issued sequentially; marking a token verified flips subsequent
// status polls.
type stubProvider struct {
	mu          sync.Mutex
	walletSeq   int
	tokenSeq    int
	verified    map[string]bool
	statusCalls int
	failNext    bool
}

func newStubProvider() *stubProvider {
	return &stubProvider{verified: make(map[string]bool)}
}

func (p *stubProvider) CreateWallet(ctx context.Context, name, email, nationalID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext {
		p.failNext = false
		return "", fmt.Errorf("provider unavailable")
	}
	p.walletSeq++
	return fmt.Sprintf("0xWALLET%04d", p.walletSeq), nil
}

func (p *stubProvider) StartVerification(ctx context.Context) (*ports.VerificationSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext {
		p.failNext = false
		return nil, fmt.Errorf("provider unavailable")
	}
	p.tokenSeq++
	token := fmt.Sprintf("TOK%04d", p.tokenSeq)
	return &ports.VerificationSession{Token: token, URL: "https://verify.example/" + token}, nil
}

func (p *stubProvider) VerificationStatus(ctx context.Context, token string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusCalls++
	return p.verified[token], nil
}

func (p *stubProvider) markVerified(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verified[token] = true
}

func (p *stubProvider) statusCallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.statusCalls
}

// --- Stub Chain Gateway ---

type stubChainGateway struct {
	mu       sync.Mutex
	submits  int
	statuses map[string]domain.TxStatus
}

func newStubChainGateway() *stubChainGateway {
	return &stubChainGateway{statuses: make(map[string]domain.TxStatus)}
}

func (g *stubChainGateway) nextHash() string {
	g.submits++
	hash := fmt.Sprintf("0x%064d", g.submits)
	g.statuses[hash] = domain.TxStatusPending
	return hash
}

func (g *stubChainGateway) SubmitCreateCampaign(ctx context.Context, draft domain.CampaignDraft) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextHash(), nil
}

func (g *stubChainGateway) SubmitDonation(ctx context.Context, campaignID, amountWei *big.Int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextHash(), nil
}

func (g *stubChainGateway) TxStatus(ctx context.Context, txHash string) (domain.TxStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status, ok := g.statuses[txHash]
	if !ok {
		return domain.TxStatusPending, nil
	}
	return status, nil
}

func (g *stubChainGateway) confirm(txHash string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses[txHash] = domain.TxStatusConfirmed
}
