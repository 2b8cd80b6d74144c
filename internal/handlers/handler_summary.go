package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/gin-gonic/gin"
)

type summaryHandler struct {
	ledgerService portssvc.LedgerCalculatorSvc
	now           func() time.Time
}

// RegisterSummaryRoutes mounts the dashboard endpoint on rg.
func RegisterSummaryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerCalculatorSvc) {
	h := &summaryHandler{ledgerService: ledgerService, now: time.Now}
	rg.GET("/summary", h.monthlySummary)
}

// monthlySummary godoc
// @Summary Monthly dashboard
// @Description Expense, pending payment and wage totals for one calendar month.
// @Tags summary
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) monthlySummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be in YYYY-MM format"})
		return
	}

	month := h.now()
	if params.Month != "" {
		// already validated by the yearmonth tag
		month, _ = time.Parse(dto.MonthLayout, params.Month)
	}

	summary, err := h.ledgerService.MonthlySummary(c.Request.Context(), month.Year(), int(month.Month()))
	if err != nil {
		writeServiceError(c, err, "compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}
