package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal(t *testing.T) {
	items := []entities.LineItem{
		{ProductID: "P1", Quantity: 2, UnitPrice: decimal.RequireFromString("100.50")},
		{ProductID: "P2", Quantity: 1, UnitPrice: decimal.RequireFromString("250")},
	}

	assert.True(t, entities.CalculateTotal(items).Equal(decimal.RequireFromString("451")))
	assert.True(t, entities.CalculateTotal(nil).IsZero())
}

func TestPaymentMethod(t *testing.T) {
	testCases := []struct {
		method     entities.PaymentMethod
		valid      bool
		mobileCash bool
	}{
		{method: entities.PaymentMethodMpesa, valid: true, mobileCash: true},
		{method: entities.PaymentMethodEmola, valid: true, mobileCash: true},
		{method: entities.PaymentMethodCard, valid: true},
		{method: entities.PaymentMethodCashOnDelivery, valid: true},
		{method: "paypal"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.method), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.method.Valid())
			assert.Equal(t, tc.mobileCash, tc.method.IsMobileMoney())
		})
	}
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:            "order-1",
		TrackingID:    "PF-1",
		Items:         []entities.LineItem{{ProductID: "P1", Quantity: 3, UnitPrice: decimal.NewFromInt(100)}},
		TotalAmount:   decimal.NewFromInt(300),
		PaymentMethod: entities.PaymentMethodEmola,
		PaymentStatus: entities.PaymentStatusPending,
		OrderStatus:   entities.OrderStatusProcessing,
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, 3, got.TotalQuantity())
	assert.True(t, got.TotalAmount.Equal(order.TotalAmount))

	assert.ErrorIs(t, got.Unmarshal([]byte("garbage")), entities.ErrInvalidOrder)
}

func TestProviderError(t *testing.T) {
	err := &entities.ProviderError{StatusCode: 400, Code: "INS-2051", Description: "Invalid MSISDN"}

	assert.ErrorIs(t, err, entities.ErrProviderCommunication)
	assert.Equal(t, "payment provider error INS-2051: Invalid MSISDN", err.Error())
	assert.Equal(t, "payment provider responded with status 503", (&entities.ProviderError{StatusCode: 503}).Error())
}
