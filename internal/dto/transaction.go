package dto

import (
	"time"

	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount accepts both JSON numbers and numeric strings.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required,dpositive"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID  string                 `json:"categoryId" binding:"required"`
	Date        DateTime               `json:"date" binding:"required"`
	Description string                 `json:"description"`
}

// UpdateTransactionRequest merges over an existing transaction. Pointer
// fields distinguish "absent" from an explicit zero value.
type UpdateTransactionRequest struct {
	ID          string                  `json:"id" binding:"required"`
	Amount      *decimal.Decimal        `json:"amount" binding:"omitempty,dpositive"`
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	CategoryID  *string                 `json:"categoryId"`
	Date        *DateTime               `json:"date"`
	Description *string                 `json:"description"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// The date range is inclusive on both ends.
type ListTransactionsParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TransactionResponse mirrors domain.Transaction with its category embedded.
type TransactionResponse struct {
	TransactionID string                 `json:"id"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	CategoryID    string                 `json:"categoryId"`
	Date          time.Time              `json:"date"`
	Description   string                 `json:"description,omitempty"`
	Category      *CategoryResponse      `json:"category,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		CategoryID:    txn.CategoryID,
		Date:          txn.Date,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
	if txn.Category != nil {
		cat := ToCategoryResponse(txn.Category)
		resp.Category = &cat
	}
	return resp
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
