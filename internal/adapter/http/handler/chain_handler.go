package handler

import (
	"math/big"

	"ngo-funding-gateway/internal/adapter/http/dto"
	"ngo-funding-gateway/internal/core/domain"
	"ngo-funding-gateway/internal/core/ports"
	"ngo-funding-gateway/pkg/apperror"
	"ngo-funding-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChainHandler handles on-chain campaign submission endpoints.
type ChainHandler struct {
	campaignSvc ports.CampaignService
}

// NewChainHandler creates a new ChainHandler.
func NewChainHandler(campaignSvc ports.CampaignService) *ChainHandler {
	return &ChainHandler{campaignSvc: campaignSvc}
}

// CreateCampaign handles POST /api/chain/campaigns. It responds as soon
// as the transaction hash is assigned; confirmation is polled separately.
func (h *ChainHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txHash, err := h.campaignSvc.CreateCampaign(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TxSubmittedResponse{
		TxHash: txHash,
		Status: string(domain.TxStatusPending),
	})
}

// Donate handles POST /api/chain/campaigns/:id/donate.
func (h *ChainHandler) Donate(c *gin.Context) {
	campaignID, ok := new(big.Int).SetString(c.Param("id"), 10)
	if !ok {
		response.Error(c, apperror.Validation("campaign id must be a base-10 integer"))
		return
	}

	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := req.ParseAmount()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txHash, err := h.campaignSvc.Donate(c.Request.Context(), campaignID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TxSubmittedResponse{
		TxHash: txHash,
		Status: string(domain.TxStatusPending),
	})
}

// TxStatus handles GET /api/chain/tx/:hash.
func (h *ChainHandler) TxStatus(c *gin.Context) {
	hash := c.Param("hash")

	status, err := h.campaignSvc.TxStatus(c.Request.Context(), hash)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TxStatusResponse{
		TxHash: hash,
		Status: string(status),
	})
}
