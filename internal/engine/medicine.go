package engine

// Medicine computes the discount on a medicine purchase: full VAT exemption
// plus 20% off the VAT-exclusive price. The whole purchase belongs to the
// beneficiary, so nothing is prorated.
func Medicine(amount float64) (*Breakdown, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	base, vat := RemoveVAT(amount, DefaultVATRate)
	discount := ApplyPercent(base, SeniorPWDRate)
	deduction := vat + discount

	return &Breakdown{
		BaseAmount:      base,
		VATAmount:       vat,
		VATExemption:    vat,
		PercentDiscount: discount,
		TotalDeduction:  deduction,
		AmountPayable:   nonNegative(base - discount),
		TotalSaved:      deduction,
	}, nil
}
