package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	StoreID     int             `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	IsApproved  bool            `json:"isApproved"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Update holds editable fields. Nil fields are left unchanged.
type Update struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	Image       *string
}

type Filter struct {
	StoreID      int
	ApprovedOnly bool
	Search       string
	Limit        int
}

// Popular is a product with the number of units ordered across all orders.
type Popular struct {
	Product
	OrderedQuantity int `json:"orderedQuantity"`
}
