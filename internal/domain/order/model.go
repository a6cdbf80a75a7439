package order

import (
	"time"

	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/shopspring/decimal"
)

// Order represents the domain model for an order. Orders belong to a
// user and own line items of two kinds.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Item is a single-price order line item.
type Item struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// Amount returns the item's monetary amount.
func (i *Item) Amount() decimal.Decimal {
	return i.Price
}

// Placement is a two-component order line item; its amount is the sum of
// the placement and article prices.
type Placement struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	PlacementPrice decimal.Decimal `json:"placement_price"`
	ArticlePrice   decimal.Decimal `json:"article_price"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Amount returns the placement's monetary amount.
func (p *Placement) Amount() decimal.Decimal {
	return p.PlacementPrice.Add(p.ArticlePrice)
}

// Validate validates the order
func (o *Order) Validate() error {
	if o.ID == "" {
		return ierr.NewError("id is required").Mark(ierr.ErrValidation)
	}
	if o.UserID == "" {
		return ierr.NewError("user_id is required").Mark(ierr.ErrValidation)
	}
	return nil
}
