package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/utils"
)

// DateLayout is the wire format of record dates.
const DateLayout = "2006-01-02"

// NumericInput is raw numeric form text. It accepts a JSON string ("1,250.50", "18%") or a
// bare JSON number and is parsed by the service, which reports malformed values per field.
type NumericInput string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericInput(s)
		return nil
	}
	*n = NumericInput(b)
	return nil
}

// LedgerRecordRequest is the form payload shared by every record kind.
// Which numeric fields are honoured depends on the kind; see domain.RecordKind.
type LedgerRecordRequest struct {
	Name          string       `json:"name" binding:"required"`
	Description   string       `json:"description"`
	Purpose       string       `json:"purpose"`
	Date          string       `json:"date" binding:"required,datetime=2006-01-02"`
	UnitPrice     NumericInput `json:"unitPrice" swaggertype:"string" example:"1,250.50"`
	Quantity      NumericInput `json:"quantity" swaggertype:"string" example:"2"`
	TaxRate       NumericInput `json:"taxRate" swaggertype:"string" example:"18%"`
	PaymentMethod string       `json:"paymentMethod"`
	GSTNumber     string       `json:"gstNumber"`
	PaymentStatus string       `json:"paymentStatus" binding:"omitempty,payment_status"`
}

// ListRecordsParams are the query parameters for listing one kind of record.
type ListRecordsParams struct {
	Month  int    `form:"month" binding:"required_with=Year,omitempty,min=1,max=12"`
	Year   int    `form:"year" binding:"required_with=Month,omitempty,min=1900,max=9999"`
	Name   string `form:"name"`
	Status string `form:"status" binding:"omitempty,payment_status"`
}

// ToRecordFilter converts query parameters into a domain filter for kind.
func (p ListRecordsParams) ToRecordFilter(kind domain.RecordKind) domain.RecordFilter {
	return domain.RecordFilter{
		Kind:          kind,
		Month:         p.Month,
		Year:          p.Year,
		NameContains:  strings.TrimSpace(p.Name),
		PaymentStatus: domain.PaymentStatus(strings.ToUpper(p.Status)),
	}
}

// SplitPreviewRequest carries only the numeric form fields needed to preview totals.
type SplitPreviewRequest struct {
	UnitPrice NumericInput `json:"unitPrice" swaggertype:"string" example:"100"`
	Quantity  NumericInput `json:"quantity" swaggertype:"string" example:"2"`
	TaxRate   NumericInput `json:"taxRate" swaggertype:"string" example:"18"`
}

// ToLedgerRecordRequest lifts the preview fields into a full form request.
func (p SplitPreviewRequest) ToLedgerRecordRequest() LedgerRecordRequest {
	return LedgerRecordRequest{UnitPrice: p.UnitPrice, Quantity: p.Quantity, TaxRate: p.TaxRate}
}

// MonthLayout is the wire format of a calendar month.
const MonthLayout = "2006-01"

// SummaryParams selects the dashboard month. An empty month means the current one.
type SummaryParams struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

// LedgerRecordResponse defines the data returned for a record. Money is rendered with two
// decimals; the unit price keeps up to four.
type LedgerRecordResponse struct {
	RecordID      string    `json:"recordID"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Purpose       string    `json:"purpose,omitempty"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	GSTNumber     string    `json:"gstNumber,omitempty"`
	PaymentStatus string    `json:"paymentStatus,omitempty"`
	UnitPrice     string    `json:"unitPrice"`
	Quantity      string    `json:"quantity"`
	TaxRate       string    `json:"taxRate"`
	Subtotal      string    `json:"subtotal"`
	TaxComponent  string    `json:"taxComponent"`
	CGST          string    `json:"cgst,omitempty"`
	SGST          string    `json:"sgst,omitempty"`
	GrandTotal    string    `json:"grandTotal"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// AggregateResponse is the rendered AggregateView shown under a table.
type AggregateResponse struct {
	Count      int    `json:"count"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// ListRecordsResponse wraps a filtered listing and its totals.
type ListRecordsResponse struct {
	Records   []LedgerRecordResponse `json:"records"`
	Aggregate AggregateResponse      `json:"aggregate"`
}

// SplitPreviewResponse shows the totals a form would store without saving it.
type SplitPreviewResponse struct {
	UnitPrice    string `json:"unitPrice"`
	Quantity     string `json:"quantity"`
	TaxRate      string `json:"taxRate"`
	Subtotal     string `json:"subtotal"`
	TaxComponent string `json:"taxComponent"`
	CGST         string `json:"cgst,omitempty"`
	SGST         string `json:"sgst,omitempty"`
	GrandTotal   string `json:"grandTotal"`
}

// MonthlySummaryResponse backs the home dashboard cards.
type MonthlySummaryResponse struct {
	Month           string            `json:"month"`
	TotalExpense    string            `json:"totalExpense"`
	PendingPayments string            `json:"pendingPayments"`
	WorkerWages     string            `json:"workerWages"`
	WorkerCount     int               `json:"workerCount"`
	Purchases       AggregateResponse `json:"purchases"`
	Invoices        AggregateResponse `json:"invoices"`
}

// ToLedgerRecordResponse converts a domain.LedgerRecord to its response DTO.
func ToLedgerRecordResponse(r *domain.LedgerRecord) LedgerRecordResponse {
	resp := LedgerRecordResponse{
		RecordID:      r.RecordID,
		Kind:          string(r.Kind),
		Name:          r.Name,
		Description:   r.Description,
		Purpose:       r.Purpose,
		Date:          r.RecordDate.Format(DateLayout),
		PaymentMethod: r.PaymentMethod,
		GSTNumber:     r.GSTNumber,
		PaymentStatus: string(r.PaymentStatus),
		UnitPrice:     utils.FormatUnitPrice(r.UnitPrice),
		Quantity:      r.Quantity.String(),
		TaxRate:       utils.FormatRate(r.TaxRatePercent),
		Subtotal:      utils.FormatMoney(r.Subtotal),
		TaxComponent:  utils.FormatMoney(r.TaxComponent),
		GrandTotal:    utils.FormatMoney(r.GrandTotal),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
	if r.Kind == domain.KindInvoice {
		resp.CGST = utils.FormatMoney(r.CGST)
		resp.SGST = utils.FormatMoney(r.SGST)
	}
	return resp
}

// ToAggregateResponse renders an AggregateView.
func ToAggregateResponse(v domain.AggregateView) AggregateResponse {
	return AggregateResponse{
		Count:      v.Count,
		Total:      utils.FormatMoney(v.SumSubtotal),
		GrandTotal: utils.FormatMoney(v.SumGrandTotal),
	}
}

// ToListRecordsResponse converts records and their aggregate to ListRecordsResponse.
func ToListRecordsResponse(records []domain.LedgerRecord, agg domain.AggregateView) ListRecordsResponse {
	responses := make([]LedgerRecordResponse, len(records))
	for i := range records {
		responses[i] = ToLedgerRecordResponse(&records[i])
	}
	return ListRecordsResponse{
		Records:   responses,
		Aggregate: ToAggregateResponse(agg),
	}
}

// ToSplitPreviewResponse renders a preview for kind.
func ToSplitPreviewResponse(kind domain.RecordKind, li domain.LineItem, split domain.TaxSplit) SplitPreviewResponse {
	resp := SplitPreviewResponse{
		UnitPrice:    utils.FormatUnitPrice(li.UnitPrice),
		Quantity:     li.Quantity.String(),
		TaxRate:      utils.FormatRate(li.TaxRatePercent),
		Subtotal:     utils.FormatMoney(split.Subtotal),
		TaxComponent: utils.FormatMoney(split.TaxComponent),
		GrandTotal:   utils.FormatMoney(split.GrandTotal),
	}
	if kind == domain.KindInvoice {
		resp.CGST = utils.FormatMoney(split.CGST)
		resp.SGST = utils.FormatMoney(split.SGST)
	}
	return resp
}

// ToMonthlySummaryResponse renders the dashboard figures.
func ToMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:           s.Month,
		TotalExpense:    utils.FormatMoney(s.TotalExpense),
		PendingPayments: utils.FormatMoney(s.PendingPayments),
		WorkerWages:     utils.FormatMoney(s.WorkerWages),
		WorkerCount:     s.WorkerCount,
		Purchases:       ToAggregateResponse(s.Purchases),
		Invoices:        ToAggregateResponse(s.Invoices),
	}
}
