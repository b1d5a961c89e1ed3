package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service answers the ledger queries and mutations for the API. All state it
// needs is passed in explicitly, there is no package level state.
//
// Every operation is scoped to a single user's ledger and starts by resolving
// the user, so an unknown user ID fails with models.ErrUserNotFound before
// anything else happens.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service reading from and writing to db.
func NewService(db *gorm.DB) Service {
	return Service{db: db}
}

// transactions loads a user's full collection of the given kind.
func (s Service) transactions(userID uuid.UUID, kind models.TransactionKind) ([]models.Transaction, error) {
	if !kind.Valid() {
		return nil, models.ErrKindInvalid
	}

	if _, err := models.FindUser(s.db, userID); err != nil {
		return nil, err
	}

	var records []models.Transaction
	err := s.db.
		Where(&models.Transaction{UserID: userID, Kind: kind}).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ListByPage returns one page of the user's transactions of the given kind,
// sorted by date descending.
func (s Service) ListByPage(userID uuid.UUID, kind models.TransactionKind, page int) (Page, error) {
	records, err := s.transactions(userID, kind)
	if err != nil {
		return Page{}, err
	}

	return paginate(records, page), nil
}

// ListByDateRange works like ListByPage, but only considers transactions
// dated between start and end, inclusive on both ends. The page totals
// reflect the filtered set.
func (s Service) ListByDateRange(userID uuid.UUID, kind models.TransactionKind, start, end time.Time, page int) (Page, error) {
	records, err := s.transactions(userID, kind)
	if err != nil {
		return Page{}, err
	}

	return paginate(filterDateRange(records, start, end), page), nil
}

// YearlyStats returns the twelve monthly buckets for the year.
func (s Service) YearlyStats(userID uuid.UUID, kind models.TransactionKind, year int) ([]MonthlyBucket, error) {
	records, err := s.transactions(userID, kind)
	if err != nil {
		return nil, err
	}

	return YearlyMonthlyStats(records, year), nil
}

// MonthlyCategoryStats returns the per-category sums for the month.
func (s Service) MonthlyCategoryStats(userID uuid.UUID, kind models.TransactionKind, month types.Month) (map[string]decimal.Decimal, error) {
	records, err := s.transactions(userID, kind)
	if err != nil {
		return nil, err
	}

	return MonthlyCategoryTotals(records, month), nil
}

// Add appends a transaction to the user's ledger and returns the stored
// record with its assigned ID. Validation of amount and category happens
// at this boundary, invalid records never reach the store.
func (s Service) Add(userID uuid.UUID, kind models.TransactionKind, date time.Time, amount decimal.Decimal, category, info string) (models.Transaction, error) {
	if !kind.Valid() {
		return models.Transaction{}, models.ErrKindInvalid
	}

	if _, err := models.FindUser(s.db, userID); err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		UserID:   userID,
		Kind:     kind,
		Date:     date,
		Amount:   amount,
		Category: category,
		Info:     info,
	}

	err := s.db.Create(&transaction).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// Remove deletes a transaction from the user's ledger. Removing an ID that
// is not in the ledger returns models.ErrResourceNotFound so that callers
// can tell "already gone" from "deleted". The ledger is unchanged in that
// case.
func (s Service) Remove(userID uuid.UUID, kind models.TransactionKind, id uuid.UUID) error {
	if !kind.Valid() {
		return models.ErrKindInvalid
	}

	if _, err := models.FindUser(s.db, userID); err != nil {
		return err
	}

	var transaction models.Transaction
	err := s.db.
		Where(&models.Transaction{UserID: userID, Kind: kind}).
		First(&transaction, "id = ?", id).Error
	if err != nil {
		return err
	}

	return s.db.Delete(&transaction).Error
}
