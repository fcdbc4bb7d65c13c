package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentVisa PaymentMethod = "visa"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusStoreApproved Status = "store_approved"
	StatusAdminApproved Status = "admin_approved"
	StatusApproved      Status = "approved"
)

var (
	ErrInvalidPaymentMethod = errors.New("payment method must be cash or visa")
	ErrIncompleteVisa       = errors.New("visa payment requires card number, expiry and cvc")
)

// StatusOf derives the display status from the two approval flags.
func StatusOf(storeApproved, adminApproved bool) Status {
	switch {
	case storeApproved && adminApproved:
		return StatusApproved
	case storeApproved:
		return StatusStoreApproved
	case adminApproved:
		return StatusAdminApproved
	default:
		return StatusPending
	}
}

type Payment struct {
	Method     PaymentMethod
	VisaNumber string
	VisaCVC    string
	VisaExpiry string
}

// Normalize checks the card fields against the method. Card fields sent with a cash payment are dropped.
func (p Payment) Normalize() (Payment, error) {
	switch p.Method {
	case PaymentCash:
		return Payment{Method: PaymentCash}, nil
	case PaymentVisa:
		if p.VisaNumber == "" || p.VisaCVC == "" || p.VisaExpiry == "" {
			return Payment{}, ErrIncompleteVisa
		}
		return p, nil
	default:
		return Payment{}, ErrInvalidPaymentMethod
	}
}

type Item struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"orderId"`
	ProductID  int             `json:"productId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func NewItem(productID, quantity int, price decimal.Decimal) Item {
	item := Item{ProductID: productID}
	item.Set(quantity, price)
	return item
}

// Set updates quantity and unit price and recomputes TotalPrice.
func (i *Item) Set(quantity int, price decimal.Decimal) {
	i.Quantity = quantity
	i.Price = price.Round(2)
	i.TotalPrice = i.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

type Order struct {
	ID                int             `json:"id"`
	UserID            int             `json:"userId"`
	StoreID           int             `json:"storeId"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	DeliveryFee       decimal.Decimal `json:"deliveryFee"`
	TotalWithDelivery decimal.Decimal `json:"totalWithDelivery"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	Address           string          `json:"address"`
	Phone             string          `json:"phone"`
	VisaNumber        *string         `json:"-"`
	VisaCVC           *string         `json:"-"`
	VisaExpiry        *string         `json:"-"`
	IsStoreApproved   bool            `json:"isStoreApproved"`
	IsAdminApproved   bool            `json:"isAdminApproved"`
	Status            Status          `json:"status"`
	Items             []Item          `json:"items"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Delivery is where and how an order is delivered and paid.
type Delivery struct {
	Address string
	Phone   string
	Payment Payment
}

// Build assembles a new unapproved order and computes its totals from items.
// payment must already be normalized.
func Build(userID, storeID int, items []Item, fee decimal.Decimal, delivery Delivery) Order {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}

	fee = fee.Round(2)
	total = total.Round(2)

	o := Order{
		UserID:            userID,
		StoreID:           storeID,
		TotalAmount:       total,
		DeliveryFee:       fee,
		TotalWithDelivery: total.Add(fee),
		PaymentMethod:     delivery.Payment.Method,
		Address:           delivery.Address,
		Phone:             delivery.Phone,
		Status:            StatusPending,
		Items:             items,
	}

	if delivery.Payment.Method == PaymentVisa {
		o.VisaNumber = &delivery.Payment.VisaNumber
		o.VisaCVC = &delivery.Payment.VisaCVC
		o.VisaExpiry = &delivery.Payment.VisaExpiry
	}

	return o
}

// DirectItem is a line of a directly created order with a client supplied unit price.
type DirectItem struct {
	ProductID int
	Quantity  int
	Price     decimal.Decimal
}

type DirectInput struct {
	// UserID is the buyer. Zero means the caller.
	UserID      int
	StoreID     int
	Items       []DirectItem
	DeliveryFee decimal.Decimal
	Delivery    Delivery
}

type Filter struct {
	UserID  int
	StoreID int
	Limit   int
}
