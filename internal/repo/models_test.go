package repo

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	row := Order{
		ID:                  "order-1",
		TrackingID:          "PF-0123456789",
		CustomerName:        "Ana",
		CustomerPhone:       "841234567",
		TotalAmount:         decimal.RequireFromString("200.00"),
		PaymentMethod:       "mpesa",
		PaymentStatus:       "pending",
		OrderStatus:         "processing",
		ThirdPartyReference: "PERF0123456789AB",
		ConversationID:      sql.NullString{String: "conv-1", Valid: true},
		ResponseCode:        sql.NullString{String: "INS-0", Valid: true},
		CreatedAt:           created,
		UpdatedAt:           created,
	}
	items := []Item{
		{OrderID: "order-1", Position: 0, ProductID: "P1", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
	}

	got := OrderToEntity(row, items)

	assert.Equal(t, "order-1", got.ID)
	assert.Equal(t, entities.PaymentMethodMpesa, got.PaymentMethod)
	assert.Equal(t, entities.PaymentStatusPending, got.PaymentStatus)
	assert.Equal(t, entities.OrderStatusProcessing, got.OrderStatus)
	assert.Empty(t, got.Customer.Address)
	assert.Equal(t, entities.ProviderCorrelation{
		ThirdPartyReference: "PERF0123456789AB",
		ConversationID:      "conv-1",
		ResponseCode:        "INS-0",
	}, got.Provider)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "P1", got.Items[0].ProductID)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(200)))
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, nullString("x"))
	assert.Equal(t, "", nullStringToString(sql.NullString{}))
}

func TestLockForUpdate_OutsideTx(t *testing.T) {
	q := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id").From("products").Where(sq.Eq{"id": "P1"})

	query, args := lockForUpdate(context.Background(), q).MustSql()

	assert.Equal(t, "SELECT id FROM products WHERE id = $1", query)
	assert.Equal(t, []any{"P1"}, args)
}
