package engine

import "math"

// AuditStatus classifies how an establishment's charge compares to the
// legally required one.
type AuditStatus string

const (
	AuditCorrect      AuditStatus = "CORRECT"
	AuditGenerous     AuditStatus = "GENEROUS"
	AuditShortchanged AuditStatus = "SHORTCHANGED"
)

// AuditTolerance absorbs manual rounding on handwritten receipts, in pesos.
const AuditTolerance = 5.0

// AuditResult compares the amount actually paid against the expected
// payable for one eligible person in a party of the given size. Hint is a
// best-effort guess at the establishment's error mode; the deterministic
// fields are authoritative, the hint is not.
type AuditResult struct {
	Status            AuditStatus `json:"status"`
	ExpectedPayable   float64     `json:"expected_payable"`
	ExpectedDeduction float64     `json:"expected_deduction"`
	Difference        float64     `json:"difference"`
	Hint              string      `json:"hint,omitempty"`
}

// Audit reverse-checks a receipt: it recomputes the prorated breakdown for
// a single eligible diner in a party of `people` and classifies the actual
// payment against a ±5 peso tolerance band.
func Audit(bill, paid float64, people int) (*AuditResult, error) {
	if bill <= 0 || paid < 0 {
		return nil, ErrInvalidAmount
	}
	if people < 1 {
		people = 1
	}

	base, vat := RemoveVAT(bill, DefaultVATRate)
	vatExemption := vat / float64(people)
	discount := ApplyPercent(base/float64(people), SeniorPWDRate)
	expectedDeduction := vatExemption + discount
	expected := bill - expectedDeduction

	diff := paid - expected
	res := &AuditResult{
		ExpectedPayable:   expected,
		ExpectedDeduction: expectedDeduction,
		Difference:        diff,
	}

	switch {
	case math.Abs(diff) <= AuditTolerance:
		res.Status = AuditCorrect
	case diff < -AuditTolerance:
		res.Status = AuditGenerous
		res.Hint = "paid less than the standard computation; the establishment may have waived service charges or applied a flat discount in your favor"
	default:
		res.Status = AuditShortchanged
		res.Hint = shortchangeHint(bill, paid, vatExemption, expectedDeduction)
	}
	return res, nil
}

// shortchangeHint guesses why the customer overpaid. Heuristics only:
// a flat peso discount in multiples of 50, a VAT-only computation with no
// 20% discount, or a discount under half of the expected deduction.
func shortchangeHint(bill, paid, vatExemption, expectedDeduction float64) string {
	actualDiscount := bill - paid

	if actualDiscount > 0 && math.Mod(actualDiscount, 50) < 1e-9 {
		return "flat peso discount detected; the law requires a percentage-based discount (20% plus VAT exemption)"
	}
	if math.Abs(paid-(bill-vatExemption)) < AuditTolerance {
		return "VAT appears removed but the 20% discount was not applied"
	}
	if actualDiscount < expectedDeduction*0.5 {
		return "discount is less than half of the expected amount; it may have been applied to a single item instead of the full share"
	}
	return "overpayment may come from undiscounted service charges or a computation error"
}
