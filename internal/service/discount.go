package service

import (
	"fmt"
	"math"

	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

// DefaultDepositRate is the share of the total collected as a deposit.
const DefaultDepositRate = 0.30

const basisPoints = 10000

// DiscountCalculator does payment arithmetic on minor units. Rates are held
// as basis points so results are exact.
type DiscountCalculator struct {
	depositBP int64
}

// NewDiscountCalculator creates a calculator for the given deposit rate in (0, 1].
func NewDiscountCalculator(depositRate float64) (*DiscountCalculator, error) {
	if depositRate <= 0 || depositRate > 1 || math.IsNaN(depositRate) {
		return nil, fmt.Errorf("deposit rate must be in (0, 1], got %v", depositRate)
	}
	return &DiscountCalculator{depositBP: int64(math.Round(depositRate * basisPoints))}, nil
}

// ComputeDepositAndFull returns the deposit (rounded up to the next minor
// unit) and the full amount for a total.
func (c *DiscountCalculator) ComputeDepositAndFull(totalPrice int64) (deposit, full int64, err error) {
	if totalPrice < 0 {
		return 0, 0, errors.InvalidInput("total_price", "must not be negative")
	}
	if totalPrice > math.MaxInt64/basisPoints {
		return 0, 0, errors.InvalidInput("total_price", "is too large")
	}
	deposit = (totalPrice*c.depositBP + basisPoints - 1) / basisPoints
	return deposit, totalPrice, nil
}

// ApplyDiscount returns the amount payable after discount.
func (c *DiscountCalculator) ApplyDiscount(totalPrice, discountAmount int64) (int64, error) {
	if discountAmount <= 0 {
		return 0, errors.InvalidInput("amount", "discount must be positive")
	}
	if discountAmount > totalPrice {
		return 0, errors.InvalidInput("amount",
			fmt.Sprintf("discount (%d) exceeds total price (%d)", discountAmount, totalPrice))
	}
	return max(0, totalPrice-discountAmount), nil
}

// PaymentSummary is the amount breakdown shown to a guest.
type PaymentSummary struct {
	TotalPrice     int64  `json:"total_price"`
	DiscountAmount int64  `json:"discount_amount"`
	PaymentAmount  int64  `json:"payment_amount"`
	DepositAmount  int64  `json:"deposit_amount"`
	FullAmount     int64  `json:"full_amount"`
	PaymentType    string `json:"payment_type"`
	AmountDueNow   int64  `json:"amount_due_now"`
}

// Summarize computes the breakdown for a booking's current amounts. The
// deposit is taken from the discounted amount.
func (c *DiscountCalculator) Summarize(totalPrice, discountAmount int64, paymentType string) (*PaymentSummary, error) {
	net := max(0, totalPrice-discountAmount)
	deposit, full, err := c.ComputeDepositAndFull(net)
	if err != nil {
		return nil, err
	}
	due := full
	if paymentType == "deposit" {
		due = deposit
	}
	return &PaymentSummary{
		TotalPrice:     totalPrice,
		DiscountAmount: discountAmount,
		PaymentAmount:  net,
		DepositAmount:  deposit,
		FullAmount:     full,
		PaymentType:    paymentType,
		AmountDueNow:   due,
	}, nil
}
