package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
)

type Dashboard struct {
	Users                int             `json:"users"`
	Stores               int             `json:"stores"`
	Products             int             `json:"products"`
	Orders               int             `json:"orders"`
	PendingStoreRequests int             `json:"pendingStoreRequests"`
	TotalSales           decimal.Decimal `json:"totalSales"`
}

type StoreSales struct {
	StoreID   int             `json:"storeId"`
	StoreName string          `json:"storeName"`
	Orders    int             `json:"orders"`
	Sales     decimal.Decimal `json:"sales"`
}

type UserActivity struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Orders   int    `json:"orders"`
}

type RecentOrder struct {
	ID                int             `json:"id"`
	UserID            int             `json:"userId"`
	StoreID           int             `json:"storeId"`
	TotalWithDelivery decimal.Decimal `json:"totalWithDelivery"`
	IsStoreApproved   bool            `json:"isStoreApproved"`
	IsAdminApproved   bool            `json:"isAdminApproved"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type RecentUser struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentStoreRequest struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	StoreName string    `json:"storeName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Recent struct {
	Orders        []RecentOrder        `json:"orders"`
	Users         []RecentUser         `json:"users"`
	StoreRequests []RecentStoreRequest `json:"storeRequests"`
}

// Overview is the admin landing report.
type Overview struct {
	Dashboard   Dashboard         `json:"dashboard"`
	TopStores   []store.Store     `json:"topStores"`
	MostOrdered []product.Popular `json:"mostOrderedProducts"`
}
