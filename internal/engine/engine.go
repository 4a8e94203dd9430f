// Package engine implements the statutory discount computations for
// Senior Citizens and PWDs under RA 9994 and RA 10754. Every function is
// pure: identical inputs always produce identical outputs, and no rounding
// happens inside the engine. Display rounding is the caller's concern.
package engine

import "errors"

// DefaultVATRate is the Philippine value-added tax rate.
const DefaultVATRate = 0.12

const (
	// SeniorPWDRate is the statutory 20% discount rate.
	SeniorPWDRate = 0.20
	// UtilityRate is the 5% discount on eligible electricity and water bills.
	UtilityRate = 0.05
	// BNPCRate is the 5% special discount on basic necessities and prime commodities.
	BNPCRate = 0.05
)

// ErrInvalidAmount is returned when a bill or fare amount is zero, negative
// or otherwise unusable. No partial breakdown is produced in that case.
var ErrInvalidAmount = errors.New("amount must be positive")

// RemoveVAT decomposes a VAT-inclusive amount into its base and VAT parts.
// base + vat always equals the input amount.
func RemoveVAT(amountInclusive, vatRate float64) (base, vat float64) {
	base = amountInclusive / (1 + vatRate)
	vat = amountInclusive - base
	return base, vat
}

// ApplyPercent returns the given fraction of an amount. Callers pass rates
// as fractions (0.20, not 20).
func ApplyPercent(amount, rate float64) float64 {
	return amount * rate
}

// ChargeSource tells whether a service charge came from the rate/base model
// or was read off a physical receipt.
type ChargeSource string

const (
	ChargeSourceAuto   ChargeSource = "auto"
	ChargeSourceManual ChargeSource = "manual"
)

// Breakdown is the result of a discount computation. It is a superset of
// the per-category outputs; fields that do not apply to a category are left
// at their zero value and omitted from JSON.
//
// Invariants: AmountPayable = max(BaseAmount + VATAmount + ServiceCharge -
// TotalDeduction, 0) and TotalSaved = TotalDeduction.
type Breakdown struct {
	BaseAmount    float64 `json:"base_amount"`
	VATAmount     float64 `json:"vat_amount"`
	ServiceCharge float64 `json:"service_charge,omitempty"`

	VATExemption           float64 `json:"vat_exemption"`
	PercentDiscount        float64 `json:"percent_discount"`
	ServiceChargeExemption float64 `json:"service_charge_exemption,omitempty"`

	TotalDeduction float64 `json:"total_deduction"`
	AmountPayable  float64 `json:"amount_payable"`
	TotalSaved     float64 `json:"total_saved"`

	// Dining only: the split method that actually ran, which may differ
	// from the requested one when an exclusive split degenerates.
	MethodUsed          SplitMethod  `json:"method_used,omitempty"`
	ServiceChargeSource ChargeSource `json:"service_charge_source,omitempty"`
	// Mixed transactions only.
	ExclusiveAmount float64 `json:"exclusive_amount,omitempty"`
	SharedAmount    float64 `json:"shared_amount,omitempty"`

	// Grocery only: the portion of the bill the 5% discount applied to.
	DiscountableAmount float64 `json:"discountable_amount,omitempty"`
	// Transport (air/sea) only: taxes and fees passed through undiscounted.
	TaxesAndFees float64 `json:"taxes_and_fees,omitempty"`

	// Utility only.
	Eligible         bool   `json:"eligible,omitempty"`
	IneligibleReason string `json:"ineligible_reason,omitempty"`
}

// nonNegative clamps subtraction results at zero. Money never goes negative.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
