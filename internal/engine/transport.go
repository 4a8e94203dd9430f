package engine

// AirSeaFare computes the discount on a domestic air or sea ticket. Only
// the base fare is discounted; it is VAT-inclusive, so the VAT is removed
// first. Taxes, terminal fees and surcharges pass through undiscounted.
func AirSeaFare(baseFare, taxesAndFees float64) (*Breakdown, error) {
	if baseFare <= 0 || taxesAndFees < 0 {
		return nil, ErrInvalidAmount
	}

	base, vat := RemoveVAT(baseFare, DefaultVATRate)
	discount := ApplyPercent(base, SeniorPWDRate)
	deduction := vat + discount

	return &Breakdown{
		BaseAmount:      base,
		VATAmount:       vat,
		VATExemption:    vat,
		PercentDiscount: discount,
		TaxesAndFees:    taxesAndFees,
		TotalDeduction:  deduction,
		AmountPayable:   nonNegative(base-discount) + taxesAndFees,
		TotalSaved:      deduction,
	}, nil
}

// LandFare computes the flat 20% discount on a land transport fare.
// Land fares are treated as already VAT-settled, so there is no VAT
// decomposition.
func LandFare(fare float64) (*Breakdown, error) {
	if fare <= 0 {
		return nil, ErrInvalidAmount
	}

	discount := ApplyPercent(fare, SeniorPWDRate)
	return &Breakdown{
		BaseAmount:      fare,
		PercentDiscount: discount,
		TotalDeduction:  discount,
		AmountPayable:   nonNegative(fare - discount),
		TotalSaved:      discount,
	}, nil
}
