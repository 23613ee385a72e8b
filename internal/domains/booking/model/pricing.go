package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountPolicy is the single home of the discount tiers.
type DiscountPolicy struct {
	StandardRate  decimal.Decimal
	PremiumRate   decimal.Decimal
	HighThreshold decimal.Decimal
}

func DefaultDiscountPolicy() DiscountPolicy {
	return DiscountPolicy{
		StandardRate:  decimal.RequireFromString("0.10"),
		PremiumRate:   decimal.RequireFromString("0.15"),
		HighThreshold: decimal.NewFromInt(3000), //nolint:mnd
	}
}

// NewDiscountPolicy parses the tiers from their decimal string form.
func NewDiscountPolicy(standardRate, premiumRate, highThreshold string) (DiscountPolicy, error) {
	standard, err := decimal.NewFromString(standardRate)
	if err != nil {
		return DiscountPolicy{}, fmt.Errorf("invalid standard discount rate: %w", err)
	}

	premium, err := decimal.NewFromString(premiumRate)
	if err != nil {
		return DiscountPolicy{}, fmt.Errorf("invalid premium discount rate: %w", err)
	}

	threshold, err := decimal.NewFromString(highThreshold)
	if err != nil {
		return DiscountPolicy{}, fmt.Errorf("invalid discount threshold: %w", err)
	}

	if standard.IsNegative() || premium.IsNegative() || standard.GreaterThan(decimal.NewFromInt(1)) || premium.GreaterThan(decimal.NewFromInt(1)) {
		return DiscountPolicy{}, fmt.Errorf("discount rates must be between 0 and 1, got %s and %s", standard, premium)
	}

	return DiscountPolicy{StandardRate: standard, PremiumRate: premium, HighThreshold: threshold}, nil
}

// Rate picks the discount tier. Nothing is discounted when the menu is decided at the
// restaurant or the subtotal is zero.
func (p DiscountPolicy) Rate(mode Mode, subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case mode == ModeAtRestaurant, !subtotal.IsPositive():
		return decimal.Zero
	case subtotal.GreaterThanOrEqual(p.HighThreshold):
		return p.PremiumRate
	default:
		return p.StandardRate
	}
}

type Pricing struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountRate   decimal.Decimal `json:"discount_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// Price computes the pricing of a selection. It reads the selection only.
func (p DiscountPolicy) Price(selection MenuSelection) Pricing {
	subtotal := selection.Subtotal()
	rate := p.Rate(selection.Mode(), subtotal)
	discount := subtotal.Mul(rate)

	return Pricing{
		Subtotal:       subtotal,
		DiscountRate:   rate,
		DiscountAmount: discount,
		Total:          subtotal.Sub(discount),
	}
}
