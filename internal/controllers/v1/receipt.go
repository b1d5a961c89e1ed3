package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/receipt"
)

// RegisterReceiptRoutes registers the routes for receipt extraction
// with the RouterGroup that is passed.
func RegisterReceiptRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", CreateReceiptExtraction)
}

// ReceiptExtraction is the pre-fill data parsed from an uploaded
// receipt. Nothing is written to the ledger, the client decides what to
// do with the suggestion.
type ReceiptExtraction struct {
	Amount   decimal.Decimal `json:"amount" example:"14.03"`       // The total amount on the receipt
	Merchant string          `json:"merchant" example:"REWE"`      // The merchant name on the receipt
	Category string          `json:"category" example:"Groceries"` // Suggested category based on the user's rules
}

type ReceiptExtractionResponse struct {
	Data  *ReceiptExtraction `json:"data"`                                                 // The extraction, if the request was successful
	Error *string            `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
}

// @Summary		Parse receipt
// @Description	Parses an uploaded receipt image into the total amount and merchant name and suggests a category. The result is a suggestion only, no transaction is created.
// @Tags			Receipts
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ReceiptExtractionResponse
// @Failure		400		{object}	ReceiptExtractionResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	ReceiptExtractionResponse
// @Failure		503		{object}	ReceiptExtractionResponse
// @Param			file	formData	file	true	"Receipt image"
// @Router			/v1/receipts [post]
func CreateReceiptExtraction(c *gin.Context) {
	if extractor == nil {
		e := errReceiptsNotConfigured.Error()
		c.JSON(status(errReceiptsNotConfigured), ReceiptExtractionResponse{Error: &e})
		return
	}

	formFile, err := c.FormFile("file")
	if err != nil {
		e := errNoFilePost.Error()
		c.JSON(status(errNoFilePost), ReceiptExtractionResponse{Error: &e})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(status(models.ErrGeneral), ReceiptExtractionResponse{Error: &e})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(status(models.ErrGeneral), ReceiptExtractionResponse{Error: &e})
		return
	}

	mimeType := formFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	extraction, err := extractor.Extract(c.Request.Context(), image, mimeType)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceiptExtractionResponse{Error: &e})
		return
	}

	category, err := receipt.SuggestCategory(models.DB, currentUser(c), extraction.Merchant)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceiptExtractionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ReceiptExtractionResponse{Data: &ReceiptExtraction{
		Amount:   extraction.Amount,
		Merchant: extraction.Merchant,
		Category: category,
	}})
}
