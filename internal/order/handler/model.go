package orderhandler

import (
	"github.com/shopspring/decimal"
	"github.com/xw1nchester/hisba-backend/internal/order"
	"github.com/xw1nchester/hisba-backend/pkg/types"
)

type DeliveryRequest struct {
	Address       string `json:"address" validate:"required"`
	Phone         string `json:"phone" validate:"required,max=20"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cash visa"`
	VisaNumber    string `json:"visaNumber" validate:"required_if=PaymentMethod visa,omitempty,max=16"`
	VisaCVC       string `json:"visaCvc" validate:"required_if=PaymentMethod visa,omitempty,max=4"`
	VisaExpiry    string `json:"visaExpiry" validate:"required_if=PaymentMethod visa,omitempty,max=7"`
}

func (dr DeliveryRequest) ToDomain() order.Delivery {
	return order.Delivery{
		Address: dr.Address,
		Phone:   dr.Phone,
		Payment: order.Payment{
			Method:     order.PaymentMethod(dr.PaymentMethod),
			VisaNumber: dr.VisaNumber,
			VisaCVC:    dr.VisaCVC,
			VisaExpiry: dr.VisaExpiry,
		},
	}
}

type OrderItemRequest struct {
	ProductID types.IntOrString `json:"productId" validate:"required,gt=0"`
	Quantity  types.IntOrString `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal   `json:"price"`
}

type CreateOrderRequest struct {
	DeliveryRequest
	UserID      types.IntOrString  `json:"userId" validate:"omitempty,gt=0"`
	StoreID     types.IntOrString  `json:"storeId" validate:"required,gt=0"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryFee decimal.Decimal    `json:"deliveryFee"`
}

func (cr CreateOrderRequest) ToDomain() order.DirectInput {
	items := make([]order.DirectItem, 0, len(cr.Items))
	for _, item := range cr.Items {
		items = append(items, order.DirectItem{
			ProductID: int(item.ProductID),
			Quantity:  int(item.Quantity),
			Price:     item.Price,
		})
	}

	return order.DirectInput{
		UserID:      int(cr.UserID),
		StoreID:     int(cr.StoreID),
		Items:       items,
		DeliveryFee: cr.DeliveryFee,
		Delivery:    cr.DeliveryRequest.ToDomain(),
	}
}

type OrderResponse struct {
	Order order.Order `json:"order"`
}

type OrdersResponse struct {
	Orders []order.Order `json:"orders"`
}
