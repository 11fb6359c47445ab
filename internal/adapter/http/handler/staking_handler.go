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

// StakingHandler handles the stake lifecycle endpoints.
type StakingHandler struct {
	stakingSvc ports.StakingService
}

// NewStakingHandler creates a new StakingHandler.
func NewStakingHandler(stakingSvc ports.StakingService) *StakingHandler {
	return &StakingHandler{stakingSvc: stakingSvc}
}

// Stake handles POST /api/v1/staking/stake.
func (h *StakingHandler) Stake(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	receipt, err := h.stakingSvc.Stake(c.Request.Context(), caller, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toReceiptResponse(receipt))
}

// Unstake handles POST /api/v1/staking/unstake.
func (h *StakingHandler) Unstake(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	receipt, err := h.stakingSvc.Unstake(c.Request.Context(), caller, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toReceiptResponse(receipt))
}

// ClaimRewards handles POST /api/v1/staking/claim.
func (h *StakingHandler) ClaimRewards(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	receipt, err := h.stakingSvc.ClaimRewards(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toReceiptResponse(receipt))
}

// Position handles GET /api/v1/staking/position — the caller's own stake.
func (h *StakingHandler) Position(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	h.position(c, caller)
}

// PositionOf handles GET /api/v1/accounts/:address — any account's position.
// Balances and stakes are public reads.
func (h *StakingHandler) PositionOf(c *gin.Context) {
	addr := domain.Address(c.Param("address"))
	h.position(c, addr)
}

func (h *StakingHandler) position(c *gin.Context, addr domain.Address) {
	info, err := h.stakingSvc.Position(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PositionResponse{
		Address:        info.Address.String(),
		Balance:        info.Balance.Dec(),
		StakedAmount:   info.StakedAmount.Dec(),
		StakeStartedAt: info.StakeStartedAt,
		BankedReward:   info.BankedReward.Dec(),
		PendingReward:  info.PendingReward.Dec(),
	})
}

func toReceiptResponse(r *ports.StakeReceipt) dto.StakeReceiptResponse {
	return dto.StakeReceiptResponse{
		Account:        r.Account.String(),
		Amount:         r.Amount.Dec(),
		StakedAmount:   r.StakedAmount.Dec(),
		RewardComputed: r.RewardComputed.Dec(),
		RewardMinted:   r.RewardMinted,
	}
}
