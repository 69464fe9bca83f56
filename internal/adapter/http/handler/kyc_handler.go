package handler

import (
	"ngo-funding-gateway/internal/adapter/http/dto"
	"ngo-funding-gateway/internal/core/ports"
	"ngo-funding-gateway/pkg/apperror"
	"ngo-funding-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// KYCHandler handles wallet-creation and e-KYC endpoints.
type KYCHandler struct {
	kycSvc          ports.KYCService
	providerBaseURL string
}

// NewKYCHandler creates a new KYCHandler. providerBaseURL is the
// resolved identity-provider base URL, exposed on the diagnostic route.
func NewKYCHandler(kycSvc ports.KYCService, providerBaseURL string) *KYCHandler {
	return &KYCHandler{kycSvc: kycSvc, providerBaseURL: providerBaseURL}
}

// CreateWallet handles POST /api/wallet/create.
func (h *KYCHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletAddress, err := h.kycSvc.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		NGOName:    req.NGOName,
		AdminEmail: req.AdminEmail,
		AdminIC:    req.AdminIC,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateWalletResponse{WalletAddress: walletAddress})
}

// StartVerification handles POST /api/kyc/start.
func (h *KYCHandler) StartVerification(c *gin.Context) {
	var req dto.StartKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	url, err := h.kycSvc.StartVerification(c.Request.Context(), req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StartKYCResponse{VerificationURL: url})
}

// Status handles GET /api/kyc/status/:walletAddress.
func (h *KYCHandler) Status(c *gin.Context) {
	walletAddress := c.Param("walletAddress")

	verified, err := h.kycSvc.PollStatus(c.Request.Context(), walletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.KYCStatusResponse{
		WalletAddress: walletAddress,
		IsKycVerified: verified,
	})
}

// ProviderURL handles GET /api/test/maschain-url. It reports which
// provider environment the server resolved at startup.
func (h *KYCHandler) ProviderURL(c *gin.Context) {
	response.OK(c, dto.ProviderURLResponse{MaschainAPIURL: h.providerBaseURL})
}
