// Package pricing computes the per-request cart summary. Nothing here is
// persisted; totals are derived from snapshot prices on every read.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/unicart/unicart/internal/transport"
)

var (
	freeShippingThreshold = decimal.NewFromInt(50)
	shippingFee           = decimal.RequireFromString("9.99")
	taxRate               = decimal.RequireFromString("0.08")
)

type Line struct {
	Price    float64
	Quantity int
}

// Summarize applies the fixed storefront rules: shipping is free from $50,
// flat 9.99 below it, tax is 8% of the subtotal rounded to cents.
func Summarize(lines []Line) transport.CartSummary {
	subtotal := decimal.Zero
	for _, l := range lines {
		price := decimal.NewFromFloat(l.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)

	shipping := shippingFee
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return transport.CartSummary{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
