package engine

// UtilityKind selects the metered utility being billed.
type UtilityKind string

const (
	UtilityElectricity UtilityKind = "electricity"
	UtilityWater       UtilityKind = "water"
)

// Consumption ceilings for the 5% utility discount (RA 9994 / RA 10754).
// Consumption exactly at the ceiling is still eligible; there is no partial
// discount above it.
const (
	MaxElectricityKWh = 100
	MaxWaterCubicM    = 30
)

// Utility checks eligibility for the 5% utility discount and applies it.
// Ineligible readings get a zero discount and a reason naming the ceiling
// that was exceeded.
func Utility(kind UtilityKind, consumption, bill float64) (*Breakdown, error) {
	if bill <= 0 || consumption < 0 {
		return nil, ErrInvalidAmount
	}

	var reason string
	switch kind {
	case UtilityElectricity:
		if consumption > MaxElectricityKWh {
			reason = "consumption exceeds 100 kWh limit"
		}
	case UtilityWater:
		if consumption > MaxWaterCubicM {
			reason = "consumption exceeds 30 cu.m. limit"
		}
	default:
		return nil, ErrInvalidAmount
	}

	if reason != "" {
		return &Breakdown{
			BaseAmount:       bill,
			AmountPayable:    bill,
			Eligible:         false,
			IneligibleReason: reason,
		}, nil
	}

	discount := ApplyPercent(bill, UtilityRate)
	return &Breakdown{
		BaseAmount:      bill,
		PercentDiscount: discount,
		TotalDeduction:  discount,
		AmountPayable:   nonNegative(bill - discount),
		TotalSaved:      discount,
		Eligible:        true,
	}, nil
}
