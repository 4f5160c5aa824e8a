package contracts

import "time"

type TransactionCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Amount      *float64   `json:"amount" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
	Type        string     `json:"type" binding:"required"`
}

type TransactionUpdateRequest struct {
	Title       *string    `json:"title"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
}

type TransactionDeleteResponse struct {
	Id string `json:"id"`
}
