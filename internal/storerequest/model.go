package storerequest

import (
	"time"

	"github.com/xw1nchester/hisba-backend/internal/market/store"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusDuplicate Status = "Duplicate"
	StatusRejected  Status = "Rejected"
)

// Final reports whether no further review can change the status.
func (s Status) Final() bool {
	return s == StatusApproved || s == StatusDuplicate
}

// Active reports whether the request blocks a new one from the same user.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

type Request struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	StoreName    string     `json:"storeName"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	StoreType    store.Type `json:"storeType"`
	Status       Status     `json:"status"`
	RejectReason string     `json:"rejectReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ReviewedAt   *time.Time `json:"reviewedAt"`
}

// Store is the approved store provisioned from the request.
func (r Request) Store() store.Store {
	return store.Store{
		UserID:     r.UserID,
		Name:       r.StoreName,
		Address:    r.Address,
		Phone:      r.Phone,
		StoreType:  r.StoreType,
		IsApproved: true,
	}
}
