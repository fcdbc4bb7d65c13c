package searchhandler

import (
	producthandler "github.com/xw1nchester/hisba-backend/internal/market/product/handler"
	storehandler "github.com/xw1nchester/hisba-backend/internal/market/store/handler"
	"github.com/xw1nchester/hisba-backend/internal/search"
)

type SearchResponse struct {
	Query string `json:"query"`
	producthandler.ProductsResponse
	storehandler.StoresResponse
}

func NewSearchResponse(result search.Result, staticURL string) SearchResponse {
	return SearchResponse{
		Query:            result.Query,
		ProductsResponse: producthandler.NewProductsResponse(result.Products, staticURL),
		StoresResponse:   storehandler.NewStoresResponse(result.Stores, staticURL),
	}
}
