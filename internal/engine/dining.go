package engine

// SplitMethod selects how a shared restaurant bill is attributed to the
// eligible diners. Prorated divides the bill by headcount, Exclusive carves
// out the portion consumed only by PWDs/seniors, MEMC applies the
// most-expensive-meal-combination rule from BIR RR 7-2010.
type SplitMethod string

const (
	SplitProrated  SplitMethod = "prorated"
	SplitExclusive SplitMethod = "exclusive"
	SplitMEMC      SplitMethod = "memc"
	// SplitMixed is never requested directly; it is reported when an
	// exclusive split leaves a shared remainder that gets prorated.
	SplitMixed SplitMethod = "mixed"
)

// ChargeBase selects the amount a service charge rate is applied to.
type ChargeBase string

const (
	ChargeBaseGross        ChargeBase = "gross"
	ChargeBaseNet          ChargeBase = "net"
	ChargeBasePostDiscount ChargeBase = "post"
)

// Party describes who is at the table. Negative counts are treated as an
// input slip and coerced to zero rather than rejected.
type Party struct {
	Eligible int `json:"eligible"`
	Regular  int `json:"regular"`
}

// normalize coerces negative counts to zero and returns the eligible count
// capped at the party size, plus the proration divisor. An empty party is
// treated as a single eligible diner so the divisor is never zero.
func (p Party) normalize() (eligible, total int) {
	e, r := p.Eligible, p.Regular
	if e < 0 {
		e = 0
	}
	if r < 0 {
		r = 0
	}
	total = e + r
	if total == 0 {
		return 1, 1
	}
	if e > total {
		e = total
	}
	return e, total
}

// ServiceChargePolicy describes an establishment-added service charge.
// A manual amount read from a physical receipt is ground truth and
// supersedes the rate/base model entirely.
type ServiceChargePolicy struct {
	Enabled      bool       `json:"enabled"`
	Rate         float64    `json:"rate"` // percent, 0-100
	Base         ChargeBase `json:"base,omitempty"`
	Excluded     float64    `json:"excluded,omitempty"`
	ManualAmount *float64   `json:"manual_amount,omitempty"`
}

// DiningInput is a VAT-inclusive restaurant bill plus everything needed to
// attribute its discountable portion.
type DiningInput struct {
	Bill          float64             `json:"bill"`
	Party         Party               `json:"party"`
	ServiceCharge ServiceChargePolicy `json:"service_charge"`
	Method        SplitMethod         `json:"method,omitempty"`

	// ExclusiveAmount is the part of the bill consumed only by eligible
	// diners. Meaningful only for SplitExclusive and only when strictly
	// between 0 and Bill; otherwise the computation falls back to prorated.
	ExclusiveAmount float64 `json:"exclusive_amount,omitempty"`
	// MEMCPrice is the price of the most expensive meal combination.
	// Meaningful only for SplitMEMC.
	MEMCPrice float64 `json:"memc_price,omitempty"`
}

// Dining computes the full discount breakdown for a restaurant bill.
func Dining(in DiningInput) (*Breakdown, error) {
	if in.Bill <= 0 {
		return nil, ErrInvalidAmount
	}

	eligible, total := in.Party.normalize()
	baseAmount, vatAmount := RemoveVAT(in.Bill, DefaultVATRate)

	exclusive := 0.0
	if in.Method == SplitExclusive {
		exclusive = in.ExclusiveAmount
	}
	mixed := exclusive > 0 && exclusive < in.Bill

	var (
		vatExemption    float64
		percentDiscount float64
		methodUsed      = SplitProrated
	)

	switch {
	case mixed:
		methodUsed = SplitMixed

		// The exclusive portion is 100% attributable to eligible diners.
		exclBase, exclVAT := RemoveVAT(exclusive, DefaultVATRate)
		exclDiscount := ApplyPercent(exclBase, SeniorPWDRate)

		// The remainder is shared and prorated by headcount.
		sharedBase, sharedVAT := RemoveVAT(in.Bill-exclusive, DefaultVATRate)
		sharedVATExemption := sharedVAT / float64(total) * float64(eligible)
		sharedDiscount := ApplyPercent(sharedBase/float64(total)*float64(eligible), SeniorPWDRate)

		vatExemption = exclVAT + sharedVATExemption
		percentDiscount = exclDiscount + sharedDiscount

	case in.Method == SplitMEMC && in.MEMCPrice > 0:
		methodUsed = SplitMEMC
		memcBase, memcVAT := RemoveVAT(in.MEMCPrice, DefaultVATRate)
		vatExemption = memcVAT * float64(eligible)
		percentDiscount = ApplyPercent(memcBase, SeniorPWDRate) * float64(eligible)

	default:
		vatExemption = vatAmount / float64(total) * float64(eligible)
		percentDiscount = ApplyPercent(baseAmount/float64(total)*float64(eligible), SeniorPWDRate)
	}

	charge, source := computeServiceCharge(in, baseAmount, vatExemption+percentDiscount)
	exemption := serviceChargeExemption(in, charge, exclusive, mixed, eligible, total)

	deduction := vatExemption + percentDiscount + exemption

	b := &Breakdown{
		BaseAmount:             baseAmount,
		VATAmount:              vatAmount,
		ServiceCharge:          charge,
		VATExemption:           vatExemption,
		PercentDiscount:        percentDiscount,
		ServiceChargeExemption: exemption,
		TotalDeduction:         deduction,
		AmountPayable:          nonNegative(baseAmount + vatAmount + charge - deduction),
		TotalSaved:             deduction,
		MethodUsed:             methodUsed,
		ServiceChargeSource:    source,
	}
	if mixed {
		b.ExclusiveAmount = exclusive
		b.SharedAmount = in.Bill - exclusive
	}
	return b, nil
}

// computeServiceCharge applies the policy to the bill. The charge base is
// gross (the bill), net of VAT, or the bill after the discount deductions,
// minus any excluded amount, floored at zero.
func computeServiceCharge(in DiningInput, baseAmount, discountImpact float64) (float64, ChargeSource) {
	p := in.ServiceCharge
	if p.ManualAmount != nil {
		return nonNegative(*p.ManualAmount), ChargeSourceManual
	}
	if !p.Enabled {
		return 0, ""
	}

	chargeBase := in.Bill
	switch p.Base {
	case ChargeBaseNet:
		chargeBase = baseAmount
	case ChargeBasePostDiscount:
		chargeBase = nonNegative(in.Bill - discountImpact)
	}
	chargeBase = nonNegative(chargeBase - nonNegative(p.Excluded))

	return ApplyPercent(chargeBase, p.Rate/100), ChargeSourceAuto
}

// serviceChargeExemption mirrors the discount split: the exclusive portion
// is fully exempt, the shared remainder is prorated by headcount. The
// exemption never exceeds the charge itself.
func serviceChargeExemption(in DiningInput, charge, exclusive float64, mixed bool, eligible, total int) float64 {
	if !in.ServiceCharge.Enabled && in.ServiceCharge.ManualAmount == nil {
		return 0
	}
	if charge == 0 {
		return 0
	}

	var exemption float64
	if mixed {
		rate := in.ServiceCharge.Rate / 100
		exclExemption := ApplyPercent(exclusive, rate)
		sharedCharge := ApplyPercent(in.Bill-exclusive, rate)
		exemption = exclExemption + sharedCharge/float64(total)*float64(eligible)
	} else {
		exemption = charge / float64(total) * float64(eligible)
	}

	if exemption > charge {
		exemption = charge
	}
	return exemption
}

// Takeout applies the MEMC rule to a takeout order: the discount base is
// the most expensive meal combination, one per eligible person, regardless
// of what the group actually ordered.
func Takeout(bill, memcPrice float64, eligible int) (*Breakdown, error) {
	if bill <= 0 || memcPrice <= 0 {
		return nil, ErrInvalidAmount
	}
	if eligible < 1 {
		eligible = 1
	}

	memcBase, memcVAT := RemoveVAT(memcPrice, DefaultVATRate)
	vatExemption := memcVAT * float64(eligible)
	percentDiscount := ApplyPercent(memcBase, SeniorPWDRate) * float64(eligible)
	deduction := vatExemption + percentDiscount

	baseAmount, vatAmount := RemoveVAT(bill, DefaultVATRate)
	return &Breakdown{
		BaseAmount:      baseAmount,
		VATAmount:       vatAmount,
		VATExemption:    vatExemption,
		PercentDiscount: percentDiscount,
		TotalDeduction:  deduction,
		AmountPayable:   nonNegative(bill - deduction),
		TotalSaved:      deduction,
		MethodUsed:      SplitMEMC,
	}, nil
}

// ServiceChargeRates reverse-engineers the rate a service charge was
// computed at, against both the gross subtotal and its net-of-VAT base.
// Rates are returned as percentages.
func ServiceChargeRates(subtotal, charge float64) (onGross, onNet float64, err error) {
	if subtotal <= 0 || charge < 0 {
		return 0, 0, ErrInvalidAmount
	}
	base, _ := RemoveVAT(subtotal, DefaultVATRate)
	return charge / subtotal * 100, charge / base * 100, nil
}
