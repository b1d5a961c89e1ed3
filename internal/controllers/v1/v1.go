// Package v1 implements the v1 API of Pennywise.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/backend/internal/auth"
	"github.com/pennywise-app/backend/internal/receipt"
)

// Options configures the collaborators of the API.
type Options struct {
	// Tokens issues and validates the session cookies.
	Tokens auth.Tokens

	// Extractor parses uploaded receipt images. When it is nil, the
	// receipts endpoint reports that extraction is not configured.
	Extractor receipt.Extractor
}

var (
	tokens    auth.Tokens
	extractor receipt.Extractor
)

// Register registers all v1 routes with the RouterGroup that is passed.
// Everything except registration and login requires a session.
func Register(r *gin.RouterGroup, options Options) {
	tokens = options.Tokens
	extractor = options.Extractor

	RegisterAuthRoutes(r.Group("/auth"))

	session := r.Group("", authenticate)
	RegisterTransactionRoutes(session.Group("/transactions"))
	RegisterStatsRoutes(session.Group("/stats"))
	RegisterReceiptRoutes(session.Group("/receipts"))
	RegisterCategoryRuleRoutes(session.Group("/category-rules"))
}
