package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrocery_CapLimitsDiscount(t *testing.T) {
	b, err := Grocery(1500, 1300)
	require.NoError(t, err)

	assert.InDelta(t, 1300, b.DiscountableAmount, 1e-9)
	assert.InDelta(t, 65, b.PercentDiscount, 1e-9)
	assert.InDelta(t, 1435, b.AmountPayable, 1e-9)
}

func TestGrocery_BillWithinCap(t *testing.T) {
	b, err := Grocery(800, 1300)
	require.NoError(t, err)

	// discount5 == billAmount * 0.05 exactly when the bill fits the cap.
	assert.InDelta(t, 800*0.05, b.PercentDiscount, 1e-9)
	assert.InDelta(t, 760, b.AmountPayable, 1e-9)
}

func TestGrocery_ExhaustedCap(t *testing.T) {
	b, err := Grocery(500, 0)
	require.NoError(t, err)
	assert.Zero(t, b.PercentDiscount)
	assert.InDelta(t, 500, b.AmountPayable, 1e-9)

	// A negative remaining cap is the same as an exhausted one.
	b, err = Grocery(500, -100)
	require.NoError(t, err)
	assert.Zero(t, b.PercentDiscount)
}

func TestGrocery_RejectsNonPositiveBill(t *testing.T) {
	_, err := Grocery(0, 1300)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGroceryCart_OnlyBNPCDiscounted(t *testing.T) {
	b, err := GroceryCart([]GroceryItem{
		{Name: "rice", Price: 500, BNPC: true},
		{Name: "canned goods", Price: 300, BNPC: true},
		{Name: "shampoo", Price: 200},
	}, DefaultWeeklyCap, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1000, b.BaseAmount, 1e-9)
	assert.InDelta(t, 800, b.DiscountableAmount, 1e-9)
	assert.InDelta(t, 40, b.PercentDiscount, 1e-9)
	assert.InDelta(t, 960, b.AmountPayable, 1e-9)
}

func TestGroceryCart_BookletsMultiplyCap(t *testing.T) {
	items := []GroceryItem{{Name: "rice", Price: 2000, BNPC: true}}

	one, err := GroceryCart(items, 1300, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1300, one.DiscountableAmount, 1e-9)

	two, err := GroceryCart(items, 1300, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2000, two.DiscountableAmount, 1e-9)
}

func TestGroceryCart_RejectsEmptyOrNegative(t *testing.T) {
	_, err := GroceryCart(nil, 1300, 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = GroceryCart([]GroceryItem{{Name: "x", Price: -5, BNPC: true}}, 1300, 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
