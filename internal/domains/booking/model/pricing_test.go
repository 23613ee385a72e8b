package model_test

import (
	"testing"

	"tavola/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(value int64) model.Package {
	return model.Package{ID: "pkg-" + decimal.NewFromInt(value).String(), Price: decimal.NewFromInt(value)}
}

func TestDiscountPolicy_Price(t *testing.T) {
	policy := model.DefaultDiscountPolicy()

	tests := []struct {
		name      string
		selection model.MenuSelection
		subtotal  string
		rate      string
		total     string
	}{
		{
			name:      "nothing selected",
			selection: model.MenuSelection{},
			subtotal:  "0",
			rate:      "0",
			total:     "0",
		},
		{
			name: "mixed under the threshold",
			selection: model.MenuSelection{}.
				SelectFixedPackage(tastingMenu).
				SetALaCarteItems([]model.ItemLine{{Item: bruschetta, Quantity: 2}}),
			subtotal: "700",
			rate:     "0.1",
			total:    "630",
		},
		{
			name:      "exactly on the threshold",
			selection: model.MenuSelection{}.SelectFixedPackage(price(3000)),
			subtotal:  "3000",
			rate:      "0.15",
			total:     "2550",
		},
		{
			name:      "just under the threshold",
			selection: model.MenuSelection{}.SelectFixedPackage(price(2999)),
			subtotal:  "2999",
			rate:      "0.1",
			total:     "2699.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing := policy.Price(tt.selection)

			assert.True(t, pricing.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)), "subtotal %s", pricing.Subtotal)
			assert.True(t, pricing.DiscountRate.Equal(decimal.RequireFromString(tt.rate)), "rate %s", pricing.DiscountRate)
			assert.True(t, pricing.Total.Equal(decimal.RequireFromString(tt.total)), "total %s", pricing.Total)
			assert.True(t, pricing.Total.Equal(pricing.Subtotal.Sub(pricing.DiscountAmount)))
		})
	}
}

func TestDiscountPolicy_RateIsMonotonic(t *testing.T) {
	policy := model.DefaultDiscountPolicy()
	previous := decimal.Zero

	for subtotal := int64(0); subtotal <= 6000; subtotal += 50 {
		rate := policy.Rate(model.ModeFixedOnly, decimal.NewFromInt(subtotal))

		assert.True(t, rate.GreaterThanOrEqual(previous), "rate dropped at %d", subtotal)
		assert.True(t, policy.Rate(model.ModeAtRestaurant, decimal.NewFromInt(subtotal)).IsZero())

		previous = rate
	}
}

func TestDiscountPolicy_PriceIsPure(t *testing.T) {
	policy := model.DefaultDiscountPolicy()
	selection := model.MenuSelection{}.SelectFixedPackage(chefsMenu)

	first := policy.Price(selection)
	second := policy.Price(selection)

	assert.Equal(t, first, second)
	assert.Len(t, selection.FixedLines(), 1)
}

func TestNewDiscountPolicy(t *testing.T) {
	policy, err := model.NewDiscountPolicy("0.10", "0.15", "3000")
	require.NoError(t, err)
	assert.True(t, policy.HighThreshold.Equal(model.DefaultDiscountPolicy().HighThreshold))

	_, err = model.NewDiscountPolicy("ten", "0.15", "3000")
	require.Error(t, err)

	_, err = model.NewDiscountPolicy("0.10", "1.5", "3000")
	require.Error(t, err)
}
