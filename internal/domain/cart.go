package domain

import "time"

// CartItem is one cart line for a customer, keyed by product. Name, price and
// image are a snapshot taken when the product was added.
type CartItem struct {
	UserID     string    `json:"-"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Totals is the order-ready summary of a cart.
type Totals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// TaxRatePercent is the flat tax applied on top of the cart subtotal.
const TaxRatePercent = 5

// ComputeTotals derives subtotal, tax and total from cart lines. Tax rounds
// half-up to the nearest cent. An empty cart yields all zeros.
func ComputeTotals(items []CartItem) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.PriceCents * int64(it.Quantity)
	}
	tax := (subtotal*TaxRatePercent + 50) / 100
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}
