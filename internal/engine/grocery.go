package engine

// DefaultWeeklyCap is the BNPC purchase amount eligible for the 5% discount
// per week per booklet (DTI-DA-DOE JAO 17-02).
const DefaultWeeklyCap = 1300

// Grocery computes the 5% BNPC discount. Groceries keep their VAT; only the
// portion of the bill within the remaining weekly allowance is discounted.
// Tracking the allowance across weeks is the caller's bookkeeping.
func Grocery(bill, remainingCap float64) (*Breakdown, error) {
	if bill <= 0 {
		return nil, ErrInvalidAmount
	}

	discountable := min(bill, nonNegative(remainingCap))
	discount := ApplyPercent(discountable, BNPCRate)

	return &Breakdown{
		BaseAmount:         bill,
		PercentDiscount:    discount,
		DiscountableAmount: discountable,
		TotalDeduction:     discount,
		AmountPayable:      nonNegative(bill - discount),
		TotalSaved:         discount,
	}, nil
}

// GroceryItem is a single cart line. Only BNPC items count toward the
// discountable total.
type GroceryItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	BNPC  bool    `json:"bnpc"`
}

// GroceryCart computes the discount for a full cart: BNPC items are summed,
// capped at the weekly allowance times the number of booklets presented,
// and discounted at 5%. Non-BNPC items pass through at full price.
func GroceryCart(items []GroceryItem, weeklyCap float64, booklets int) (*Breakdown, error) {
	if len(items) == 0 {
		return nil, ErrInvalidAmount
	}
	if weeklyCap <= 0 {
		weeklyCap = DefaultWeeklyCap
	}
	if booklets < 1 {
		booklets = 1
	}

	var bnpcTotal, cartTotal float64
	for _, it := range items {
		if it.Price < 0 {
			return nil, ErrInvalidAmount
		}
		cartTotal += it.Price
		if it.BNPC {
			bnpcTotal += it.Price
		}
	}
	if cartTotal <= 0 {
		return nil, ErrInvalidAmount
	}

	discountable := min(bnpcTotal, weeklyCap*float64(booklets))
	discount := ApplyPercent(discountable, BNPCRate)

	return &Breakdown{
		BaseAmount:         cartTotal,
		PercentDiscount:    discount,
		DiscountableAmount: discountable,
		TotalDeduction:     discount,
		AmountPayable:      nonNegative(cartTotal - discount),
		TotalSaved:         discount,
	}, nil
}
