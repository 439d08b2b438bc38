package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/auth"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/merchant"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/report"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/logger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type Handler struct {
	AuthService     *auth.Service
	CustomerService *customer.Service
	MerchantService *merchant.Service
	LedgerService   *ledger.Service
	ReportService   *report.Service
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
