package search

import (
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
)

// Result holds approved products and stores whose names contain the query, ignoring case.
type Result struct {
	Query    string
	Products []product.Product
	Stores   []store.Store
}
