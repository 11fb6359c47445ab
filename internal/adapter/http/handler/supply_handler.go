package handler

import (
	"stakeledger/internal/adapter/http/dto"
	"stakeledger/internal/adapter/http/middleware"
	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"
	"stakeledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SupplyHandler handles minting and supply endpoints.
type SupplyHandler struct {
	supplySvc ports.SupplyService
}

// NewSupplyHandler creates a new SupplyHandler.
func NewSupplyHandler(supplySvc ports.SupplyService) *SupplyHandler {
	return &SupplyHandler{supplySvc: supplySvc}
}

// Mint handles POST /api/v1/supply/mint.
func (h *SupplyHandler) Mint(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	if err := h.supplySvc.Mint(c.Request.Context(), caller, domain.Address(req.To), amount); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"to": req.To, "amount": req.Amount})
}

// UpdateMaxSupply handles PUT /api/v1/supply/max.
func (h *SupplyHandler) UpdateMaxSupply(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MaxSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	newMax, err := dto.ParseAmount(req.MaxSupply)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	if err := h.supplySvc.UpdateMaxSupply(c.Request.Context(), caller, newMax); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"max_supply": req.MaxSupply})
}

// Overview handles GET /api/v1/supply.
func (h *SupplyHandler) Overview(c *gin.Context) {
	ov, err := h.supplySvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OverviewResponse{
		TotalSupply:   ov.TotalSupply.Dec(),
		MaxSupply:     ov.MaxSupply.Dec(),
		TotalStaked:   ov.TotalStaked.Dec(),
		SchemaVersion: ov.SchemaVersion,
	})
}
