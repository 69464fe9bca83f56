package handler

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"ngo-funding-gateway/internal/adapter/http/dto"
	"ngo-funding-gateway/internal/core/domain"
	"ngo-funding-gateway/internal/core/ports"
	"ngo-funding-gateway/internal/core/ports/mocks"
	"ngo-funding-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, w *httptest.ResponseRecorder, path string, payload any) *gin.Context {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data envelope: %s", w.Body.String())
	return data
}

// --- KYC Handler Tests ---

func TestCreateWallet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := mocks.NewMockKYCService(ctrl)
	h := NewKYCHandler(mockKYC, "https://service-testnet.maschain.com")

	mockKYC.EXPECT().CreateWallet(gomock.Any(), ports.CreateWalletRequest{
		NGOName:    "Clean Water Initiative",
		AdminEmail: "admin@cleanwater.org",
		AdminIC:    "900101-14-5678",
	}).Return("0xABC", nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/wallet/create", dto.CreateWalletRequest{
		NGOName:    "Clean Water Initiative",
		AdminEmail: "admin@cleanwater.org",
		AdminIC:    "900101-14-5678",
	})

	h.CreateWallet(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0xABC", dataField(t, w)["walletAddress"])
}

func TestCreateWallet_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewKYCHandler(mocks.NewMockKYCService(ctrl), "")

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/wallet/create", map[string]string{"ngoName": "X"})

	h.CreateWallet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWallet_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := mocks.NewMockKYCService(ctrl)
	h := NewKYCHandler(mockKYC, "")

	mockKYC.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).
		Return("", apperror.ErrDuplicateNGOName("Clean Water Initiative"))

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/wallet/create", dto.CreateWalletRequest{
		NGOName:    "Clean Water Initiative",
		AdminEmail: "admin@cleanwater.org",
		AdminIC:    "900101-14-5678",
	})

	h.CreateWallet(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STO_001", resp["error_code"])
}

func TestStartVerification_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := mocks.NewMockKYCService(ctrl)
	h := NewKYCHandler(mockKYC, "")

	mockKYC.EXPECT().StartVerification(gomock.Any(), "0xABC").Return("https://verify/TOK1", nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/kyc/start", dto.StartKYCRequest{WalletAddress: "0xABC"})

	h.StartVerification(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "https://verify/TOK1", data["verificationUrl"])
	_, hasToken := data["token"]
	assert.False(t, hasToken, "provider token never leaves the server")
}

func TestStatus_Verified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := mocks.NewMockKYCService(ctrl)
	h := NewKYCHandler(mockKYC, "")

	mockKYC.EXPECT().PollStatus(gomock.Any(), "0xABC").Return(true, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/kyc/status/0xABC", nil)
	c.Params = gin.Params{{Key: "walletAddress", Value: "0xABC"}}

	h.Status(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["isKycVerified"])
	assert.Equal(t, "0xABC", data["walletAddress"])
}

func TestStatus_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := mocks.NewMockKYCService(ctrl)
	h := NewKYCHandler(mockKYC, "")

	mockKYC.EXPECT().PollStatus(gomock.Any(), "0xABC").
		Return(false, apperror.Provider("verification status check failed", nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/kyc/status/0xABC", nil)
	c.Params = gin.Params{{Key: "walletAddress", Value: "0xABC"}}

	h.Status(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PRV_001", resp["error_code"])
}

func TestProviderURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewKYCHandler(mocks.NewMockKYCService(ctrl), "https://service-testnet.maschain.com")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/test/maschain-url", nil)

	h.ProviderURL(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://service-testnet.maschain.com", dataField(t, w)["maschainApiUrl"])
}

// --- Chain Handler Tests ---

const testTxHash = "0x1111111111111111111111111111111111111111111111111111111111111111"

func validCampaignReq() dto.CreateCampaignRequest {
	return dto.CreateCampaignRequest{
		Owner:      "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Title:      "Clean Water for Kelantan",
		GoalAmount: "1000000000000000000",
		Deadline:   1_900_000_000,
	}
}

func TestChainCreateCampaign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockCampaignService(ctrl)
	h := NewChainHandler(mockSvc)

	mockSvc.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, draft domain.CampaignDraft) (string, error) {
			assert.Equal(t, "1000000000000000000", draft.GoalAmount.String())
			return testTxHash, nil
		})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/chain/campaigns", validCampaignReq())

	h.CreateCampaign(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, testTxHash, data["txHash"])
	assert.Equal(t, "pending", data["status"])
}

func TestChainCreateCampaign_BadGoalAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewChainHandler(mocks.NewMockCampaignService(ctrl))

	req := validCampaignReq()
	req.GoalAmount = "1.5e18"

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/chain/campaigns", req)

	h.CreateCampaign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChainDonate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockCampaignService(ctrl)
	h := NewChainHandler(mockSvc)

	mockSvc.EXPECT().Donate(gomock.Any(), big.NewInt(3), big.NewInt(500)).Return(testTxHash, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/chain/campaigns/3/donate", dto.DonateRequest{AmountWei: "500"})
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	h.Donate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestChainDonate_BadCampaignID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewChainHandler(mocks.NewMockCampaignService(ctrl))

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/chain/campaigns/abc/donate", dto.DonateRequest{AmountWei: "500"})
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Donate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChainTxStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockCampaignService(ctrl)
	h := NewChainHandler(mockSvc)

	mockSvc.EXPECT().TxStatus(gomock.Any(), testTxHash).Return(domain.TxStatusConfirmed, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/chain/tx/"+testTxHash, nil)
	c.Params = gin.Params{{Key: "hash", Value: testTxHash}}

	h.TxStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", dataField(t, w)["status"])
}
