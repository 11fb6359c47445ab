package handler

import (
	"crypto/subtle"
	"net/http"

	"stakeledger/internal/adapter/http/dto"
	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"
	"stakeledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler exchanges the bootstrap API key for caller tokens.
type AuthHandler struct {
	apiKey   string
	tokenSvc ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(apiKey string, tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{apiKey: apiKey, tokenSvc: tokenSvc}
}

// IssueToken handles POST /api/v1/auth/token. The token only authenticates
// the address; whether that address holds any role is checked against storage
// on each call.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		response.Error(c, apperror.ErrInvalidAPIKey())
		return
	}

	addr := domain.Address(req.Address)
	if addr.IsZero() {
		response.Error(c, apperror.ErrInvalidIdentity())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(addr)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
