package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

func TestNewDiscountCalculator_RejectsBadRates(t *testing.T) {
	for _, rate := range []float64{0, -0.1, 1.01} {
		_, err := NewDiscountCalculator(rate)
		assert.Error(t, err, "rate %v", rate)
	}
}

func TestComputeDepositAndFull(t *testing.T) {
	calc, err := NewDiscountCalculator(0.30)
	require.NoError(t, err)

	tests := []struct {
		name        string
		total       int64
		wantDeposit int64
	}{
		{name: "exact", total: 1000, wantDeposit: 300},
		{name: "rounds up", total: 1001, wantDeposit: 301},
		{name: "one unit", total: 1, wantDeposit: 1},
		{name: "zero", total: 0, wantDeposit: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deposit, full, err := calc.ComputeDepositAndFull(tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeposit, deposit)
			assert.Equal(t, tt.total, full)
		})
	}

	_, _, err = calc.ComputeDepositAndFull(-1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestApplyDiscount_Bounds(t *testing.T) {
	calc, err := NewDiscountCalculator(DefaultDepositRate)
	require.NoError(t, err)

	tests := []struct {
		name     string
		discount int64
		want     int64
		wantErr  bool
	}{
		{name: "partial", discount: 300, want: 700},
		{name: "full amount", discount: 1000, want: 0},
		{name: "zero", discount: 0, wantErr: true},
		{name: "negative", discount: -5, wantErr: true},
		{name: "exceeds total", discount: 1001, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ApplyDiscount(1000, tt.discount)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize_DepositOnDiscountedAmount(t *testing.T) {
	calc, err := NewDiscountCalculator(DefaultDepositRate)
	require.NoError(t, err)

	s, err := calc.Summarize(1000, 300, "deposit")
	require.NoError(t, err)
	assert.Equal(t, int64(700), s.PaymentAmount)
	assert.Equal(t, int64(210), s.DepositAmount)
	assert.Equal(t, int64(700), s.FullAmount)
	assert.Equal(t, int64(210), s.AmountDueNow)

	s, err = calc.Summarize(1000, 0, "full")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), s.AmountDueNow)
}
