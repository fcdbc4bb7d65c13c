package cart

import "github.com/shopspring/decimal"

// Item is a cart line joined with the live product it refers to.
type Item struct {
	ProductID int             `json:"productId"`
	StoreID   int             `json:"storeId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type Cart struct {
	ID     int             `json:"id"`
	UserID int             `json:"userId"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// New builds a cart and computes line and grand totals from live prices.
func New(id, userID int, items []Item) *Cart {
	if items == nil {
		items = make([]Item, 0)
	}

	total := decimal.Zero
	for i := range items {
		items[i].LineTotal = items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Quantity))).Round(2)
		total = total.Add(items[i].LineTotal)
	}

	return &Cart{
		ID:     id,
		UserID: userID,
		Items:  items,
		Total:  total.Round(2),
	}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// StoreID is the store of the cart's products, 0 for an empty cart.
func (c *Cart) StoreID() int {
	if c.IsEmpty() {
		return 0
	}

	return c.Items[0].StoreID
}

// SingleStore reports whether every line belongs to the same store.
func (c *Cart) SingleStore() bool {
	for _, item := range c.Items {
		if item.StoreID != c.StoreID() {
			return false
		}
	}

	return true
}
