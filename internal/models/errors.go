package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrUserNotFound is returned when a user ID does not resolve to a ledger.
	ErrUserNotFound = fmt.Errorf("%w user matching your query", ErrResourceNotFound)
)

// Validation errors for mutations. They are enforced in the
// model hooks so that no invalid record can reach the database.
var (
	ErrAmountNegative   = errors.New("the amount of a transaction must not be negative")
	ErrCategoryRequired = errors.New("the category of a transaction must be set")
	ErrKindInvalid      = errors.New("the transaction kind must be 'expense' or 'income'")
	ErrEmailTaken       = errors.New("this email address is already registered")
	ErrRuleMatchEmpty   = errors.New("the match pattern of a category rule must be set")
	ErrRuleCategory     = errors.New("the category of a category rule must be set")
)
