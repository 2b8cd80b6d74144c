package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/SscSPs/hisab_kitab/internal/middleware"
	"github.com/gin-gonic/gin"
)

type billHandler struct {
	billService portssvc.BillSvcFacade
}

// RegisterBillRoutes mounts the bills book on rg.
func RegisterBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := &billHandler{billService: billService}
	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:billID", h.getBill)
		bills.DELETE("/:billID", h.deleteBill)
	}
}

// createBill godoc
// @Summary Save a bill reference
// @Description Stores the path or URL of a scanned bill (png, jpg, jpeg or pdf). The same reference cannot be saved twice.
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill reference"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bill creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "save bill")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Tags bills
// @Produce json
// @Param month query int false "Month (1-12), requires year"
// @Param year query int false "Year, requires month"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), params.ToBillFilter())
	if err != nil {
		writeServiceError(c, err, "list bills")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}

// getBill godoc
// @Summary Get a bill
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{billID} [get]
func (h *billHandler) getBill(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("billID"))
	if err != nil {
		writeServiceError(c, err, "retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete a bill reference
// @Tags bills
// @Param billID path string true "Bill ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{billID} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), c.Param("billID"), userID); err != nil {
		writeServiceError(c, err, "delete bill")
		return
	}

	c.Status(http.StatusNoContent)
}
