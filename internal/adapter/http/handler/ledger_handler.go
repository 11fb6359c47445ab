package handler

import (
	"strconv"
	"time"

	"stakeledger/internal/adapter/http/dto"
	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// LedgerHandler serves the operation event log.
type LedgerHandler struct {
	eventRepo ports.EventRepository
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(eventRepo ports.EventRepository) *LedgerHandler {
	return &LedgerHandler{eventRepo: eventRepo}
}

// ListEvents handles GET /api/v1/events with optional kind and account
// filters plus pagination.
func (h *LedgerHandler) ListEvents(c *gin.Context) {
	params := ports.EventListParams{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "page_size", defaultPageSize),
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		params.PageSize = defaultPageSize
	}
	if kind := c.Query("kind"); kind != "" {
		k := domain.EventKind(kind)
		params.Kind = &k
	}
	if account := c.Query("account"); account != "" {
		a := domain.Address(account)
		params.Account = &a
	}

	events, total, err := h.eventRepo.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, dto.EventResponse{
			ID:        ev.ID.String(),
			Kind:      string(ev.Kind),
			Account:   ev.Account.String(),
			Fields:    ev.Fields,
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		})
	}

	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	response.OK(c, dto.EventListResponse{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
