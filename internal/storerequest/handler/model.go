package storerequesthandler

import (
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/storerequest"
)

type CreateRequest struct {
	StoreName   string `json:"storeName" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Address     string `json:"address" validate:"required"`
	Phone       string `json:"phone" validate:"required,max=20"`
	StoreType   string `json:"storeType" validate:"required,oneof=Farm Manufacturing"`
}

func (cr CreateRequest) ToDomain() storerequest.Request {
	return storerequest.Request{
		StoreName:   cr.StoreName,
		Description: cr.Description,
		Address:     cr.Address,
		Phone:       cr.Phone,
		StoreType:   store.Type(cr.StoreType),
	}
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type StoreRequestResponse struct {
	Request storerequest.Request `json:"request"`
}

type StoreRequestsResponse struct {
	Requests []storerequest.Request `json:"requests"`
}

type StatusResponse struct {
	Status storerequest.Status `json:"status"`
}
