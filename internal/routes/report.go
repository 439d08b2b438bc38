package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OverallReport godoc
// @Summary      Overall business report
// @Description  Aggregated sales, purchase and net position figures
// @Tags         Reports
// @Produce      json
// @Success      200 {object} report.OverallReport
// @Failure      401 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /api/reports/overall [get]
func (h *Handler) OverallReport(c *gin.Context) {
	overall, err := h.ReportService.Overall(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overall)
}

func (h *Handler) CustomerReport(c *gin.Context) {
	summary, err := h.ReportService.CustomerSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) SupplierReport(c *gin.Context) {
	summary, err := h.ReportService.SupplierSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
