package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_Shortchanged(t *testing.T) {
	res, err := Audit(430, 380, 1)
	require.NoError(t, err)

	assert.InDelta(t, 307.14, res.ExpectedPayable, 0.01)
	assert.InDelta(t, 72.86, res.Difference, 0.01)
	assert.Equal(t, AuditShortchanged, res.Status)
	assert.NotEmpty(t, res.Hint)
}

func TestAudit_Correct(t *testing.T) {
	// Pay exactly the expected amount and something within the band.
	exact, err := Audit(430, 307.14, 1)
	require.NoError(t, err)
	assert.Equal(t, AuditCorrect, exact.Status)
	assert.Empty(t, exact.Hint)

	nearby, err := Audit(430, 311, 1)
	require.NoError(t, err)
	assert.Equal(t, AuditCorrect, nearby.Status)
}

func TestAudit_Generous(t *testing.T) {
	res, err := Audit(430, 250, 1)
	require.NoError(t, err)
	assert.Equal(t, AuditGenerous, res.Status)
	assert.Negative(t, res.Difference)
}

func TestAudit_FlatDiscountHint(t *testing.T) {
	// 430 - 380 = 50, a suspicious flat multiple of 50.
	res, err := Audit(430, 380, 1)
	require.NoError(t, err)
	assert.Contains(t, res.Hint, "flat")
}

func TestAudit_VATOnlyHint(t *testing.T) {
	// Establishment removed the VAT share but skipped the 20% discount.
	_, vat := RemoveVAT(1000, DefaultVATRate)
	res, err := Audit(1000, 1000-vat, 1)
	require.NoError(t, err)

	assert.Equal(t, AuditShortchanged, res.Status)
	assert.Contains(t, res.Hint, "20% discount")
}

func TestAudit_ProratesByHeadcount(t *testing.T) {
	// Larger party -> smaller expected deduction for the one eligible diner.
	solo, err := Audit(1120, 1120, 1)
	require.NoError(t, err)
	group, err := Audit(1120, 1120, 4)
	require.NoError(t, err)

	assert.Greater(t, group.ExpectedPayable, solo.ExpectedPayable)
	assert.InDelta(t, 320, solo.ExpectedDeduction, 1e-9)
	assert.InDelta(t, 80, group.ExpectedDeduction, 1e-9)
}

func TestAudit_RejectsBadInputs(t *testing.T) {
	_, err := Audit(0, 100, 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Audit(430, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAudit_ZeroPeopleTreatedAsOne(t *testing.T) {
	a, err := Audit(430, 380, 0)
	require.NoError(t, err)
	b, err := Audit(430, 380, 1)
	require.NoError(t, err)
	assert.Equal(t, *b, *a)
}
