package receipt

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/pennywise-app/backend/internal/models"
)

// FallbackCategory is suggested when nothing else can be derived from
// the merchant name.
const FallbackCategory = "Other"

// SuggestCategory returns the category the merchant maps to according
// to the user's rules. Rules are checked in priority order, the first
// matching glob wins. Without a match, the title-cased merchant name is
// suggested so that the user at least gets a plausible label.
func SuggestCategory(db *gorm.DB, userID uuid.UUID, merchant string) (string, error) {
	var rules []models.CategoryRule
	err := db.
		Where(&models.CategoryRule{UserID: userID}).
		Order("priority ASC").
		Find(&rules).Error
	if err != nil {
		return "", err
	}

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), strings.ToLower(merchant)) {
			return rule.Category, nil
		}
	}

	return fallbackLabel(merchant), nil
}

func fallbackLabel(merchant string) string {
	merchant = strings.TrimSpace(merchant)
	if merchant == "" {
		return FallbackCategory
	}

	return cases.Title(language.English).String(strings.ToLower(merchant))
}
