package maschain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ngo-funding-gateway/config"

	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://service-testnet.maschain.com"

func decodeJSONBody(req *http.Request, v any) error {
	defer req.Body.Close()
	return json.NewDecoder(req.Body).Decode(v)
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	cfg := config.MasChainConfig{
		Production:          false,
		BaseURL:             "https://service.maschain.com",
		SandboxBaseURL:      testBaseURL,
		SandboxClientID:     "test-id",
		SandboxClientSecret: "test-secret",
		EKYCCountryCode:     "MYS",
		EKYCIDType:          "ID_CARD",
		EKYCRedirectURL:     "https://localhost:5173/kyc/callback",
	}
	return New(cfg, httpClient, zerolog.Nop())
}

func TestClient_SandboxModeSelectsSandboxURL(t *testing.T) {
	c := newTestClient(t)
	assert.Equal(t, testBaseURL, c.BaseURL())
}

func TestClient_CreateWallet(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/wallet/create-user",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "test-id", req.Header.Get("client_id"))
			assert.Equal(t, "test-secret", req.Header.Get("client_secret"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"result": map[string]any{
					"wallet": map[string]any{"wallet_address": "0xABC"},
				},
			})
		})

	addr, err := c.CreateWallet(context.Background(), "Clean Water Initiative", "admin@cleanwater.org", "900101-14-5678")
	require.NoError(t, err)
	assert.Equal(t, "0xABC", addr)
}

func TestClient_CreateWallet_ProviderRejects(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/wallet/create-user",
		httpmock.NewJsonResponderOrPanic(http.StatusUnprocessableEntity, map[string]any{
			"message": "validation failed",
		}))

	_, err := c.CreateWallet(context.Background(), "X", "x@y.z", "1")
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusUnprocessableEntity, pe.StatusCode)
	assert.NotEmpty(t, pe.Body)
}

func TestClient_CreateWallet_MissingAddressIsFailure(t *testing.T) {
	c := newTestClient(t)

	// 200 with an empty result is still a failure: no wallet was issued.
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/wallet/create-user",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"result": map[string]any{}}))

	_, err := c.CreateWallet(context.Background(), "X", "x@y.z", "1")
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
}

func TestClient_StartVerification(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/ekyc/verifications",
		func(req *http.Request) (*http.Response, error) {
			var body map[string]string
			require.NoError(t, decodeJSONBody(req, &body))
			assert.Equal(t, "00", body["type"])
			assert.Equal(t, "MYS", body["id_country"])
			assert.Equal(t, "ID_CARD", body["id_type"])
			assert.NotEmpty(t, body["redirect_url"])
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"status": 200,
				"result": map[string]any{"token": "TOK1", "url": "https://verify/TOK1"},
			})
		})

	session, err := c.StartVerification(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TOK1", session.Token)
	assert.Equal(t, "https://verify/TOK1", session.URL)
}

func TestClient_StartVerification_BodyStatusNot200(t *testing.T) {
	c := newTestClient(t)

	// HTTP 200 transport status with a failing body-level status.
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/ekyc/verifications",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
			"status": 500,
			"result": map[string]any{},
		}))

	_, err := c.StartVerification(context.Background())
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
}

func TestClient_VerificationStatus(t *testing.T) {
	c := newTestClient(t)

	t.Run("verified", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/ekyc/verifications/TOK1",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"result": map[string]any{"is_success": 1},
			}))

		ok, err := c.VerificationStatus(context.Background(), "TOK1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("still pending", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/ekyc/verifications/TOK2",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"result": map[string]any{"is_success": 0},
			}))

		ok, err := c.VerificationStatus(context.Background(), "TOK2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("absent field is pending, not an error", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/ekyc/verifications/TOK3",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"result": map[string]any{}}))

		ok, err := c.VerificationStatus(context.Background(), "TOK3")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/ekyc/verifications/TOK4",
			httpmock.NewErrorResponder(errors.New("connection refused")))

		_, err := c.VerificationStatus(context.Background(), "TOK4")
		assert.Error(t, err)
	})
}
