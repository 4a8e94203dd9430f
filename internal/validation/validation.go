// Package validation sanitizes engine inputs at the boundary. The receipt
// relay and manual entry go through the same checks: the generative model's
// extraction is never trusted over them.
package validation

import (
	"errors"
	"fmt"

	"github.com/rpanganiban/diskwento-system/internal/model"
)

// ErrInvalidReceipt is returned when relay output cannot be turned into a
// usable engine input.
var ErrInvalidReceipt = errors.New("invalid receipt data")

// Categories the relay is allowed to classify a receipt into.
var knownCategories = map[string]bool{
	"dining":    true,
	"medicine":  true,
	"grocery":   true,
	"utility":   true,
	"transport": true,
}

// IsKnownCategory reports whether the category names a supported
// discount rule set.
func IsKnownCategory(category string) bool {
	return knownCategories[category]
}

// SanitizeReceipt validates and clamps relay-extracted receipt data.
// Non-positive totals are rejected, unknown categories are rejected,
// negative optional amounts are dropped, and an exclusive split with an
// amount outside (0, total) degrades to prorated.
func SanitizeReceipt(raw model.ReceiptData) (*model.ReceiptData, error) {
	if !IsKnownCategory(raw.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidReceipt, raw.Category)
	}
	if raw.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidReceipt)
	}

	out := model.ReceiptData{
		Category:    raw.Category,
		TotalAmount: raw.TotalAmount,
	}

	if raw.ServiceCharge != nil && *raw.ServiceCharge > 0 {
		v := *raw.ServiceCharge
		out.ServiceCharge = &v
	}

	out.SplitMethod = "prorated"
	if raw.SplitMethod == "exclusive" && raw.ExclusiveAmount != nil {
		if v := *raw.ExclusiveAmount; v > 0 && v < raw.TotalAmount {
			out.SplitMethod = "exclusive"
			out.ExclusiveAmount = &v
		}
	}

	return &out, nil
}
