package reporthandler

import (
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	producthandler "github.com/xw1nchester/hisba-backend/internal/market/product/handler"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	storehandler "github.com/xw1nchester/hisba-backend/internal/market/store/handler"
	"github.com/xw1nchester/hisba-backend/internal/report"
)

type DashboardResponse struct {
	Dashboard report.Dashboard `json:"dashboard"`
}

type SalesResponse struct {
	Sales []report.StoreSales `json:"sales"`
}

type UserActivityResponse struct {
	Users []report.UserActivity `json:"users"`
}

type TopStoresResponse struct {
	Stores []store.Store `json:"stores"`
}

type MostOrderedResponse struct {
	Products []product.Popular `json:"products"`
}

type OverviewResponse struct {
	report.Overview
}

func NewOverviewResponse(o report.Overview, staticURL string) OverviewResponse {
	o.TopStores = withCoverURLs(o.TopStores, staticURL)
	o.MostOrdered = withImageURLs(o.MostOrdered, staticURL)

	return OverviewResponse{Overview: o}
}

func withCoverURLs(stores []store.Store, staticURL string) []store.Store {
	return storehandler.NewStoresResponse(stores, staticURL).Stores
}

func withImageURLs(products []product.Popular, staticURL string) []product.Popular {
	return producthandler.NewPopularProductsResponse(products, staticURL).Products
}
