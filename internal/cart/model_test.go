package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	c := New(1, 2, []Item{
		{ProductID: 10, StoreID: 3, Price: decimal.RequireFromString("10.00"), Quantity: 2},
		{ProductID: 11, StoreID: 3, Price: decimal.RequireFromString("0.35"), Quantity: 3},
	})

	assert.Equal(t, "20.00", c.Items[0].LineTotal.StringFixed(2))
	assert.Equal(t, "1.05", c.Items[1].LineTotal.StringFixed(2))
	assert.Equal(t, "21.05", c.Total.StringFixed(2))
	assert.Equal(t, 3, c.StoreID())
	assert.True(t, c.SingleStore())
}

func TestNewEmpty(t *testing.T) {
	c := New(1, 2, nil)

	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Items)
	assert.True(t, c.Total.IsZero())
	assert.Equal(t, 0, c.StoreID())
	assert.True(t, c.SingleStore())
}

func TestSingleStore(t *testing.T) {
	c := New(1, 2, []Item{
		{ProductID: 10, StoreID: 3, Price: decimal.NewFromInt(1), Quantity: 1},
		{ProductID: 20, StoreID: 4, Price: decimal.NewFromInt(1), Quantity: 1},
	})

	assert.False(t, c.SingleStore())
}
