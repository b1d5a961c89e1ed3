package v1

import (
	"github.com/pennywise-app/backend/internal/models"
)

type CategoryRuleEditable struct {
	Priority uint   `json:"priority" example:"1" default:"0"`      // Lower numbers are checked first
	Match    string `json:"match" example:"*Supermarket*"`         // Glob pattern matched against the merchant name
	Category string `json:"category" example:"Groceries"`          // Category to suggest when the pattern matches
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

// CategoryRule is the representation of a CategoryRule in API v1.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
}

// newCategoryRule returns the API v1 representation of the resource
func newCategoryRule(model models.CategoryRule) CategoryRule {
	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
	}
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                              // The CategoryRule data, if the request was successful
	Error *string       `json:"error" example:"the match pattern of a category rule must be set"` // The error, if any occurred
}

type CategoryRuleListResponse struct {
	Data  []CategoryRule `json:"data"`                                                          // List of category rules, ordered by priority
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
