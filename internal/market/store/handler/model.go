package storehandler

import (
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/pkg/types"
	"github.com/xw1nchester/hisba-backend/pkg/utils"
)

type CreateStoreRequest struct {
	UserID     types.IntOrString `json:"userId" validate:"required,gt=0"`
	Name       string            `json:"name" validate:"required,max=255"`
	Address    string            `json:"address"`
	Phone      string            `json:"phone" validate:"omitempty,max=20"`
	StoreType  string            `json:"storeType" validate:"omitempty,oneof=Farm Manufacturing"`
	CoverImage string            `json:"coverImage" validate:"omitempty,max=255"`
	IsApproved bool              `json:"isApproved"`
}

func (sr CreateStoreRequest) ToDomain() store.Store {
	return store.Store{
		UserID:     int(sr.UserID),
		Name:       sr.Name,
		Address:    sr.Address,
		Phone:      sr.Phone,
		StoreType:  store.Type(sr.StoreType),
		CoverImage: sr.CoverImage,
		IsApproved: sr.IsApproved,
	}
}

type UpdateStoreRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	StoreType  *string `json:"storeType" validate:"omitempty,oneof=Farm Manufacturing"`
	CoverImage *string `json:"coverImage" validate:"omitempty,max=255"`
}

func (ur UpdateStoreRequest) ToDomain() store.Update {
	update := store.Update{
		Name:       ur.Name,
		Address:    ur.Address,
		Phone:      ur.Phone,
		CoverImage: ur.CoverImage,
	}

	if ur.StoreType != nil {
		storeType := store.Type(*ur.StoreType)
		update.StoreType = &storeType
	}

	return update
}

type StoreResponse struct {
	Store store.Store `json:"store"`
}

func NewStoreResponse(s store.Store, staticURL string) StoreResponse {
	s.CoverImage = utils.MediaURL(staticURL, s.CoverImage)
	return StoreResponse{Store: s}
}

type StoresResponse struct {
	Stores []store.Store `json:"stores"`
}

func NewStoresResponse(stores []store.Store, staticURL string) StoresResponse {
	for i := range stores {
		stores[i].CoverImage = utils.MediaURL(staticURL, stores[i].CoverImage)
	}
	return StoresResponse{Stores: stores}
}
