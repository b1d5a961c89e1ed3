package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryRuleCreate() {
	user := suite.createTestUser("till@example.com")

	rule := models.CategoryRule{
		UserID:   user.ID,
		Priority: 1,
		Match:    "  *Supermarket*  ",
		Category: "  Groceries  ",
	}

	err := models.DB.Create(&rule).Error
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "*Supermarket*", rule.Match)
	assert.Equal(suite.T(), "Groceries", rule.Category)
}

func (suite *TestSuiteStandard) TestCategoryRuleValidation() {
	user := suite.createTestUser("till@example.com")

	tests := []struct {
		name string
		rule models.CategoryRule
		err  error
	}{
		{"no match", models.CategoryRule{UserID: user.ID, Category: "Groceries"}, models.ErrRuleMatchEmpty},
		{"blank match", models.CategoryRule{UserID: user.ID, Match: "  ", Category: "Groceries"}, models.ErrRuleMatchEmpty},
		{"no category", models.CategoryRule{UserID: user.ID, Match: "*"}, models.ErrRuleCategory},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.rule).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
