package dto

import (
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
)

// CreateBillRequest stores a reference to a scanned bill. Date defaults to today.
type CreateBillRequest struct {
	FilePath    string `json:"filePath" binding:"required,max=512" example:"bills/2024-03/sharma-traders.jpg"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// ListBillsParams are the query parameters for the bills book.
type ListBillsParams struct {
	Month int `form:"month" binding:"required_with=Year,omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"required_with=Month,omitempty,min=1900,max=9999"`
}

// ToBillFilter converts query parameters into a domain filter.
func (p ListBillsParams) ToBillFilter() domain.BillFilter {
	return domain.BillFilter{Month: p.Month, Year: p.Year}
}

// BillResponse defines the bill fields returned by the API.
type BillResponse struct {
	BillID        string    `json:"billID"`
	FilePath      string    `json:"filePath"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListBillsResponse wraps the bills book.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
	Count int            `json:"count"`
}

// ToBillResponse converts a domain.Bill to its response DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:        b.BillID,
		FilePath:      b.FilePath,
		Date:          b.BillDate.Format(DateLayout),
		Description:   b.Description,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
}

// ToListBillsResponse converts bills to ListBillsResponse.
func ToListBillsResponse(bills []domain.Bill) ListBillsResponse {
	responses := make([]BillResponse, len(bills))
	for i := range bills {
		responses[i] = ToBillResponse(&bills[i])
	}
	return ListBillsResponse{Bills: responses, Count: len(responses)}
}
