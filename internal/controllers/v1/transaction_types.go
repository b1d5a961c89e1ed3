package v1

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/backend/internal/models"
)

type TransactionEditable struct {
	Kind models.TransactionKind `json:"kind" example:"expense"` // Which collection the transaction belongs to, "expense" or "income"

	Date time.Time `json:"date" example:"2024-03-02T00:00:00Z"` // Date of the transaction. Defaults to the current time, only the calendar date is used

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction

	Category string `json:"category" example:"Groceries"`            // Category of the transaction
	Info     string `json:"info" example:"Lunch" default:""`         // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Kind:     editable.Kind,
		Date:     editable.Date,
		Amount:   editable.Amount,
		Category: editable.Category,
		Info:     editable.Info,
	}
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Kind:     model.Kind,
			Date:     model.Date,
			Amount:   model.Amount,
			Category: model.Category,
			Info:     model.Info,
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                              // The Transaction data, if the request was successful
	Error *string      `json:"error" example:"the category of a transaction must be set"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // One page of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}
