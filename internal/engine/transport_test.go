package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirSeaFare_TaxesPassThrough(t *testing.T) {
	b, err := AirSeaFare(1120, 500)
	require.NoError(t, err)

	assert.InDelta(t, 1000, b.BaseAmount, 1e-9)
	assert.InDelta(t, 120, b.VATExemption, 1e-9)
	assert.InDelta(t, 200, b.PercentDiscount, 1e-9)
	assert.InDelta(t, 500, b.TaxesAndFees, 1e-9)
	// (base - discount) + taxes: taxes are never discounted.
	assert.InDelta(t, 1300, b.AmountPayable, 1e-9)
	assert.InDelta(t, 320, b.TotalSaved, 1e-9)
}

func TestAirSeaFare_RejectsBadInputs(t *testing.T) {
	_, err := AirSeaFare(0, 100)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = AirSeaFare(1120, -1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLandFare_FlatTwentyPercent(t *testing.T) {
	b, err := LandFare(100)
	require.NoError(t, err)

	assert.InDelta(t, 20, b.PercentDiscount, 1e-9)
	assert.InDelta(t, 80, b.AmountPayable, 1e-9)
	// No VAT decomposition for land fares.
	assert.Zero(t, b.VATAmount)
	assert.Zero(t, b.VATExemption)
}

func TestLandFare_RejectsNonPositiveFare(t *testing.T) {
	_, err := LandFare(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
