package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRule maps merchant names from parsed receipts to a category.
// The Match field supports globbing, e.g. "*Coffee*". Rules with a lower
// Priority value win when multiple rules match.
type CategoryRule struct {
	DefaultModel
	UserID   uuid.UUID `json:"userId" gorm:"index" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	User     User      `json:"-"`
	Priority uint      `json:"priority" example:"1"`           // Lower numbers are checked first
	Match    string    `json:"match" example:"*Supermarket*"`  // Glob pattern matched against the merchant name
	Category string    `json:"category" example:"Groceries"`   // Category to suggest when the pattern matches
}

// BeforeSave validates the rule and trims whitespace from string fields.
func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrRuleMatchEmpty
	}

	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return ErrRuleCategory
	}

	return nil
}
