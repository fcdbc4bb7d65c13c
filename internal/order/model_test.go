package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusPending, StatusOf(false, false))
	assert.Equal(t, StatusStoreApproved, StatusOf(true, false))
	assert.Equal(t, StatusAdminApproved, StatusOf(false, true))
	assert.Equal(t, StatusApproved, StatusOf(true, true))
}

func TestItemSet(t *testing.T) {
	item := NewItem(5, 2, decimal.RequireFromString("10.00"))
	assert.Equal(t, "20.00", item.TotalPrice.StringFixed(2))

	item.Set(3, decimal.RequireFromString("1.335"))
	assert.Equal(t, "1.34", item.Price.StringFixed(2))
	assert.Equal(t, "4.02", item.TotalPrice.StringFixed(2))
}

func TestPaymentNormalize(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		want    Payment
		wantErr error
	}{
		{
			name:    "cash drops card fields",
			payment: Payment{Method: PaymentCash, VisaNumber: "4111111111111111", VisaCVC: "123"},
			want:    Payment{Method: PaymentCash},
		},
		{
			name:    "complete visa",
			payment: Payment{Method: PaymentVisa, VisaNumber: "4111111111111111", VisaCVC: "123", VisaExpiry: "12/2030"},
			want:    Payment{Method: PaymentVisa, VisaNumber: "4111111111111111", VisaCVC: "123", VisaExpiry: "12/2030"},
		},
		{
			name:    "visa without cvc",
			payment: Payment{Method: PaymentVisa, VisaNumber: "4111111111111111", VisaExpiry: "12/2030"},
			wantErr: ErrIncompleteVisa,
		},
		{
			name:    "unknown method",
			payment: Payment{Method: "cheque"},
			wantErr: ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.payment.Normalize()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	items := []Item{
		NewItem(5, 2, decimal.RequireFromString("10.00")),
		NewItem(6, 1, decimal.RequireFromString("3.50")),
	}

	o := Build(6, 3, items, decimal.RequireFromString("5"), Delivery{
		Address: "Main st. 1",
		Phone:   "+100",
		Payment: Payment{Method: PaymentCash},
	})

	assert.Equal(t, "23.50", o.TotalAmount.StringFixed(2))
	assert.Equal(t, "5.00", o.DeliveryFee.StringFixed(2))
	assert.Equal(t, "28.50", o.TotalWithDelivery.StringFixed(2))
	assert.Equal(t, StatusPending, o.Status)
	assert.False(t, o.IsStoreApproved)
	assert.False(t, o.IsAdminApproved)
	assert.Nil(t, o.VisaNumber)
}

func TestBuildVisaKeepsCard(t *testing.T) {
	o := Build(6, 3, nil, decimal.Zero, Delivery{
		Payment: Payment{Method: PaymentVisa, VisaNumber: "4111111111111111", VisaCVC: "123", VisaExpiry: "12/2030"},
	})

	require.NotNil(t, o.VisaNumber)
	assert.Equal(t, "4111111111111111", *o.VisaNumber)
	assert.True(t, o.TotalWithDelivery.IsZero())
}
