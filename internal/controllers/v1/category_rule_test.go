package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pennywise-app/backend/internal/controllers/v1"
	"github.com/pennywise-app/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryRulesCreate() {
	_, session := suite.createTestUserSession("till@example.com")

	response := suite.createTestCategoryRule(session, v1.CategoryRuleEditable{
		Priority: 1,
		Match:    "*Supermarket*",
		Category: "Groceries",
	})

	require.NotNil(suite.T(), response.Data)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
	assert.Equal(suite.T(), "*Supermarket*", response.Data.Match)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCategoryRulesCreateInvalid() {
	_, session := suite.createTestUserSession("till@example.com")

	tests := []struct {
		name string
		body any
	}{
		{"no match", v1.CategoryRuleEditable{Category: "Groceries"}},
		{"blank match", v1.CategoryRuleEditable{Match: "  ", Category: "Groceries"}},
		{"no category", v1.CategoryRuleEditable{Match: "*"}},
		{"broken body", `{ "match": `},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", tt.body, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestCategoryRulesGet verifies that rules are returned ordered by
// priority and scoped to the user.
func (suite *TestSuiteStandard) TestCategoryRulesGet() {
	_, session := suite.createTestUserSession("till@example.com")
	_, otherSession := suite.createTestUserSession("ada@example.com")

	suite.createTestCategoryRule(session, v1.CategoryRuleEditable{Priority: 5, Match: "*", Category: "Misc"})
	suite.createTestCategoryRule(session, v1.CategoryRuleEditable{Priority: 1, Match: "rewe*", Category: "Groceries"})
	suite.createTestCategoryRule(otherSession, v1.CategoryRuleEditable{Priority: 1, Match: "*", Category: "Not Yours"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-rules", "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Category)
	assert.Equal(suite.T(), "Misc", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestCategoryRulesDelete() {
	_, session := suite.createTestUserSession("till@example.com")

	rule := suite.createTestCategoryRule(session, v1.CategoryRuleEditable{Priority: 1, Match: "*", Category: "Misc"})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/category-rules/%s", rule.Data.ID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-rules", "", session)
	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCategoryRulesDeleteNotFound() {
	_, session := suite.createTestUserSession("till@example.com")
	_, otherSession := suite.createTestUserSession("ada@example.com")

	rule := suite.createTestCategoryRule(session, v1.CategoryRuleEditable{Priority: 1, Match: "*", Category: "Misc"})

	tests := []struct {
		name    string
		id      string
		session map[string]string
		status  int
	}{
		{"unknown ID", uuid.New().String(), session, http.StatusNotFound},
		{"invalid UUID", "NotAUUID", session, http.StatusBadRequest},
		{"other user's rule", rule.Data.ID.String(), otherSession, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, "http://example.com/v1/category-rules/"+tt.id, "", tt.session)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/category-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/category-rules/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, DELETE", r.Header().Get("allow"))
}
