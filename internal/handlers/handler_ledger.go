package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_kitab/internal/core/ports/services"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/SscSPs/hisab_kitab/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves one record kind. A handler is registered per kind.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	kind          domain.RecordKind
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, kind domain.RecordKind) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, kind: kind}
}

// RegisterLedgerRoutes mounts /purchases, /invoices, /transactions, /wages and /payments on rg.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	for _, kind := range domain.AllRecordKinds {
		h := newLedgerHandler(ledgerService, kind)
		records := rg.Group("/" + kind.Path())
		{
			records.POST("/preview", h.previewSplit)
			records.POST("", h.createRecord)
			records.GET("", h.listRecords)
			records.GET("/:recordID", h.getRecord)
			records.PUT("/:recordID", h.updateRecord)
			records.DELETE("/:recordID", h.deleteRecord)
		}
	}
}

func (h *ledgerHandler) logger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
}

// previewSplit godoc
// @Summary Preview the totals of a record
// @Description Parses price, quantity and tax rate and returns the split that would be stored, without saving anything.
// @Tags records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(purchases, invoices, transactions, wages, payments)
// @Param preview body dto.SplitPreviewRequest true "Numeric form fields"
// @Success 200 {object} dto.SplitPreviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/preview [post]
func (h *ledgerHandler) previewSplit(c *gin.Context) {
	var req dto.SplitPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	li, split, err := h.ledgerService.PreviewSplit(c.Request.Context(), h.kind, req.ToLedgerRecordRequest())
	if err != nil {
		writeServiceError(c, err, "compute totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToSplitPreviewResponse(h.kind, li, split))
}

// createRecord godoc
// @Summary Create a record
// @Description Creates a purchase, invoice, transaction, wage or payment and stores its computed totals.
// @Tags records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(purchases, invoices, transactions, wages, payments)
// @Param record body dto.LedgerRecordRequest true "Record form"
// @Success 201 {object} dto.LedgerRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind} [post]
func (h *ledgerHandler) createRecord(c *gin.Context) {
	logger := h.logger(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.LedgerRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for record creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.ledgerService.CreateRecord(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		writeServiceError(c, err, "create record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerRecordResponse(record))
}

// listRecords godoc
// @Summary List records
// @Description Lists records of one kind, oldest first, with totals over exactly the returned rows.
// @Tags records
// @Produce json
// @Param kind path string true "Record kind" Enums(purchases, invoices, transactions, wages, payments)
// @Param month query int false "Month (1-12), requires year"
// @Param year query int false "Year, requires month"
// @Param name query string false "Case-insensitive name substring"
// @Param status query string false "Payment status (payments only)" Enums(PAID, UNPAID)
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind} [get]
func (h *ledgerHandler) listRecords(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, agg, err := h.ledgerService.ListRecords(c.Request.Context(), params.ToRecordFilter(h.kind))
	if err != nil {
		writeServiceError(c, err, "list records")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records, agg))
}

// getRecord godoc
// @Summary Get a record
// @Tags records
// @Produce json
// @Param kind path string true "Record kind" Enums(purchases, invoices, transactions, wages, payments)
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.LedgerRecordResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{recordID} [get]
func (h *ledgerHandler) getRecord(c *gin.Context) {
	record, err := h.ledgerService.GetRecord(c.Request.Context(), h.kind, c.Param("recordID"))
	if err != nil {
		writeServiceError(c, err, "retrieve record")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerRecordResponse(record))
}

// updateRecord godoc
// @Summary Update a record
// @Description Replaces the form fields of a record and recomputes its stored totals.
// @Tags records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(purchases, invoices, transactions, wages, payments)
// @Param recordID path string true "Record ID"
// @Param record body dto.LedgerRecordRequest true "Record form"
// @Success 200 {object} dto.LedgerRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{recordID} [put]
func (h *ledgerHandler) updateRecord(c *gin.Context) {
	logger := h.logger(c)
	recordID := c.Param("recordID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.LedgerRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	record, err := h.ledgerService.UpdateRecord(c.Request.Context(), h.kind, recordID, req, userID)
	if err != nil {
		writeServiceError(c, err, "update record")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a record
// @Tags records
// @Param kind path string true "Record kind" Enums(purchases, invoices, transactions, wages, payments)
// @Param recordID path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{recordID} [delete]
func (h *ledgerHandler) deleteRecord(c *gin.Context) {
	logger := h.logger(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerService.DeleteRecord(c.Request.Context(), h.kind, c.Param("recordID"), userID); err != nil {
		writeServiceError(c, err, "delete record")
		return
	}

	c.Status(http.StatusNoContent)
}
