// Package maschain implements the outbound client for the MasChain
// wallet-custody and MasVerse e-KYC REST APIs.
package maschain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ngo-funding-gateway/config"
	"ngo-funding-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	walletCreatePath      = "/api/wallet/create-user"
	ekycVerificationsPath = "/api/ekyc/verifications"

	// ekycType is the fixed verification flow identifier the provider
	// expects for document-based individual verification.
	ekycType = "00"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProviderError reports a non-success response or an unexpected payload
// shape. Transport failures and malformed payloads are deliberately the
// same failure kind at this layer; callers attach Body as diagnostics.
type ProviderError struct {
	Operation  string
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("maschain %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("maschain %s: unexpected response (status %d)", e.Operation, e.StatusCode)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Client issues the three provider calls. It holds no state beyond
// configuration resolved once at startup.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string

	ekycCountryCode string
	ekycIDType      string
	ekycRedirectURL string

	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a provider client for the mode selected in cfg. A nil
// httpClient falls back to a default with a 30s timeout.
func New(cfg config.MasChainConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	id, secret := cfg.Credentials()
	return &Client{
		baseURL:         cfg.APIBaseURL(),
		clientID:        id,
		clientSecret:    secret,
		ekycCountryCode: cfg.EKYCCountryCode,
		ekycIDType:      cfg.EKYCIDType,
		ekycRedirectURL: cfg.EKYCRedirectURL,
		httpClient:      httpClient,
		log:             log,
	}
}

// BaseURL exposes the resolved API base URL (diagnostic endpoint).
func (c *Client) BaseURL() string { return c.baseURL }

// CreateWallet provisions a custodial wallet for the organization.
func (c *Client) CreateWallet(ctx context.Context, name, email, nationalID string) (string, error) {
	payload := map[string]string{
		"name":  name,
		"email": email,
		"ic":    nationalID,
	}

	status, body, err := c.do(ctx, http.MethodPost, walletCreatePath, payload)
	if err != nil {
		return "", &ProviderError{Operation: "create wallet", Err: err}
	}

	var parsed struct {
		Result struct {
			Wallet struct {
				WalletAddress string `json:"wallet_address"`
			} `json:"wallet"`
		} `json:"result"`
	}
	// A non-2xx status and a missing wallet_address are the same failure
	// kind here: the provider did not hand us a wallet.
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil || status < 200 || status >= 300 || parsed.Result.Wallet.WalletAddress == "" {
		return "", &ProviderError{Operation: "create wallet", StatusCode: status, Body: body}
	}

	c.log.Debug().Str("wallet", parsed.Result.Wallet.WalletAddress).Msg("provider wallet created")
	return parsed.Result.Wallet.WalletAddress, nil
}

// StartVerification opens a new e-KYC session with the fixed document
// parameters from configuration.
func (c *Client) StartVerification(ctx context.Context) (*ports.VerificationSession, error) {
	payload := map[string]string{
		"type":         ekycType,
		"id_country":   c.ekycCountryCode,
		"id_type":      c.ekycIDType,
		"redirect_url": c.ekycRedirectURL,
	}

	status, body, err := c.do(ctx, http.MethodPost, ekycVerificationsPath, payload)
	if err != nil {
		return nil, &ProviderError{Operation: "start verification", Err: err}
	}

	var parsed struct {
		Status int `json:"status"`
		Result struct {
			Token string `json:"token"`
			URL   string `json:"url"`
		} `json:"result"`
	}
	// The provider signals success through the body's status field.
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil || parsed.Status != http.StatusOK || parsed.Result.Token == "" || parsed.Result.URL == "" {
		return nil, &ProviderError{Operation: "start verification", StatusCode: status, Body: body}
	}

	return &ports.VerificationSession{
		Token: parsed.Result.Token,
		URL:   parsed.Result.URL,
	}, nil
}

// VerificationStatus polls the per-token status endpoint. Anything other
// than is_success == 1 (including an absent field) is the valid pending
// state; only transport and decode failures are errors.
func (c *Client) VerificationStatus(ctx context.Context, token string) (bool, error) {
	status, body, err := c.do(ctx, http.MethodGet, ekycVerificationsPath+"/"+token, nil)
	if err != nil {
		return false, &ProviderError{Operation: "verification status", Err: err}
	}

	var parsed struct {
		Result struct {
			IsSuccess int `json:"is_success"`
		} `json:"result"`
	}
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil {
		return false, &ProviderError{Operation: "verification status", StatusCode: status, Body: body}
	}

	return parsed.Result.IsSuccess == 1, nil
}

// do sends one request with credential headers and returns the raw body.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("client_id", c.clientID)
	req.Header.Set("client_secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response: %w", err)
	}

	return resp.StatusCode, body, nil
}
