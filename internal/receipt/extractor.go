// Package receipt parses receipt images into a best-effort amount and
// merchant name to pre-fill the transaction form. The result is a
// suggestion for the user, it is never written to the ledger directly.
package receipt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

var (
	ErrNoExtraction = errors.New("no amount and merchant could be extracted from the receipt")
	ErrInvalidReply = errors.New("the extraction service did not return valid JSON")
)

// Extraction is the best-effort guess parsed from a receipt.
type Extraction struct {
	Amount   decimal.Decimal `json:"amount" example:"14.03"`  // The total amount on the receipt
	Merchant string          `json:"merchant" example:"REWE"` // The merchant name on the receipt
}

// An Extractor parses a receipt image.
type Extractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error)
}

const prompt = `Extract the final total amount and the store/merchant/restaurant name from this receipt.
Respond ONLY in strict JSON format like:
{ "amount": "732.49", "merchant": "Swiggy" }`

// GeminiExtractor extracts receipt data with the Gemini generative
// language API.
type GeminiExtractor struct {
	models *generativelanguage.ModelsService
	model  string
}

// NewGeminiExtractor returns a GeminiExtractor authenticating with the
// API key.
func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	service, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize the generative language client: %w", err)
	}

	return &GeminiExtractor{
		models: service.Models,
		model:  "models/gemini-1.5-flash",
	}, nil
}

// Extract sends the image to the model and parses its reply.
func (e *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error) {
	request := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Parts: []*generativelanguage.Part{
				{InlineData: &generativelanguage.Blob{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: prompt},
			},
		}},
	}

	response, err := e.models.GenerateContent(e.model, request).Context(ctx).Do()
	if err != nil {
		return Extraction{}, fmt.Errorf("the extraction service request failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return Extraction{}, ErrNoExtraction
	}

	var reply strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		reply.WriteString(part.Text)
	}

	return parseReply(reply.String())
}

// parseReply parses the model reply into an Extraction. Models like to
// wrap their JSON into markdown fences or prose, so everything outside
// the outermost braces is ignored.
func parseReply(reply string) (Extraction, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return Extraction{}, fmt.Errorf("%w: %q", ErrInvalidReply, reply)
	}

	var extraction Extraction
	err := json.Unmarshal([]byte(reply[start:end+1]), &extraction)
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %q", ErrInvalidReply, reply)
	}

	if extraction.Amount.IsZero() && extraction.Merchant == "" {
		return Extraction{}, ErrNoExtraction
	}

	return extraction, nil
}
