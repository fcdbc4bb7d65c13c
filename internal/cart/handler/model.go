package carthandler

import (
	"github.com/xw1nchester/hisba-backend/internal/cart"
	"github.com/xw1nchester/hisba-backend/pkg/types"
	"github.com/xw1nchester/hisba-backend/pkg/utils"
)

const defaultQuantity = 1

type AddItemRequest struct {
	ProductID types.IntOrString  `json:"productId" validate:"required,gt=0"`
	Quantity  *types.IntOrString `json:"quantity" validate:"omitempty,gt=0"`
}

func (ar AddItemRequest) QuantityOrDefault() int {
	if ar.Quantity == nil {
		return defaultQuantity
	}

	return int(*ar.Quantity)
}

type SetQuantityRequest struct {
	Quantity types.IntOrString `json:"quantity" validate:"required,gt=0"`
}

type CartResponse struct {
	Cart cart.Cart `json:"cart"`
}

func NewCartResponse(c cart.Cart, staticURL string) CartResponse {
	for i := range c.Items {
		c.Items[i].Image = utils.MediaURL(staticURL, c.Items[i].Image)
	}
	return CartResponse{Cart: c}
}
