package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionKind selects one of the two disjoint collections of a ledger.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// Kinds returns all valid transaction kinds.
func Kinds() []TransactionKind {
	return []TransactionKind{KindExpense, KindIncome}
}

// Valid reports whether the kind is one of the known kinds.
func (k TransactionKind) Valid() bool {
	return slices.Contains(Kinds(), k)
}

// Transaction represents a single expense or income record in a user's ledger.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	User     User            `json:"-"`
	Kind     TransactionKind `json:"kind" gorm:"index" example:"expense"`
	Date     time.Time       `json:"date" example:"2024-03-02T00:00:00Z"` // Only the calendar date is relevant, time of day is ignored by all consumers
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Category string          `json:"category" example:"Groceries"`
	Info     string          `json:"info" example:"Lunch"`
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - validates kind, amount and category
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if !t.Kind.Valid() {
		return ErrKindInvalid
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		return ErrCategoryRequired
	}

	t.Info = strings.TrimSpace(t.Info)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}
