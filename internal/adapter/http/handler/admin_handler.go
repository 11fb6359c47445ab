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

// AdminHandler handles the administrator-only endpoints. Authorization is
// enforced in the services against stored roles, not here.
type AdminHandler struct {
	adminSvc   ports.AdminService
	upgradeSvc ports.UpgradeService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService, upgradeSvc ports.UpgradeService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, upgradeSvc: upgradeSvc}
}

// SetRewardRate handles PUT /api/v1/admin/reward-rate.
func (h *AdminHandler) SetRewardRate(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RewardRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.SetRewardRate(c.Request.Context(), caller, *req.RateBps); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"rate_bps": *req.RateBps})
}

// SetMinStakingDuration handles PUT /api/v1/admin/min-staking-duration.
func (h *AdminHandler) SetMinStakingDuration(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MinDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.SetMinStakingDuration(c.Request.Context(), caller, *req.Seconds); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"seconds": *req.Seconds})
}

// AddMinter handles POST /api/v1/admin/minters.
func (h *AdminHandler) AddMinter(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.adminSvc.AddMinter(c.Request.Context(), caller, domain.Address(req.Address)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"address": req.Address})
}

// RemoveMinter handles DELETE /api/v1/admin/minters/:address.
func (h *AdminHandler) RemoveMinter(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	addr := domain.Address(c.Param("address"))
	if err := h.adminSvc.RemoveMinter(c.Request.Context(), caller, addr); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"address": addr.String()})
}

// ListMinters handles GET /api/v1/admin/minters.
func (h *AdminHandler) ListMinters(c *gin.Context) {
	minters, err := h.adminSvc.ListMinters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]string, 0, len(minters))
	for _, m := range minters {
		out = append(out, m.String())
	}
	response.OK(c, dto.MintersResponse{Minters: out})
}

// TransferAdministrator handles PUT /api/v1/admin/administrator.
func (h *AdminHandler) TransferAdministrator(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AdminTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.adminSvc.TransferAdministrator(c.Request.Context(), caller, domain.Address(req.NewAdministrator)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"administrator": req.NewAdministrator})
}

// SetPaused handles PUT /api/v1/admin/pause.
func (h *AdminHandler) SetPaused(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.SetPaused(c.Request.Context(), caller, *req.OperationsAllowed); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"operations_allowed": *req.OperationsAllowed})
}

// AuthorizeUpgrade handles POST /api/v1/admin/upgrade.
func (h *AdminHandler) AuthorizeUpgrade(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.upgradeSvc.AuthorizeAndSwap(c.Request.Context(), caller, req.NewLogicHandle); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"new_logic_handle": req.NewLogicHandle})
}

// SchemaVersion handles GET /api/v1/admin/schema-version.
func (h *AdminHandler) SchemaVersion(c *gin.Context) {
	version, err := h.upgradeSvc.CurrentVersion(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SchemaVersionResponse{Version: version})
}
