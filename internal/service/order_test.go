package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, store *memStore) entities.Order {
	t.Helper()

	order := entities.Order{
		ID:            "order-1",
		TrackingID:    "PF-1",
		Customer:      customer,
		Items:         []entities.LineItem{{ProductID: "P1", Quantity: 2, UnitPrice: price(100)}},
		TotalAmount:   price(200),
		PaymentMethod: entities.PaymentMethodMpesa,
		PaymentStatus: entities.PaymentStatusPending,
		OrderStatus:   entities.OrderStatusProcessing,
		Provider:      entities.ProviderCorrelation{ThirdPartyReference: "PERF1"},
	}
	require.NoError(t, store.CreateOrder(context.Background(), order))
	return order
}

func TestOrderService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name      string
		orderID   string
		status    entities.OrderStatus
		wantErr   error
		wantNotes int
	}{
		{name: "shipped", orderID: "order-1", status: entities.OrderStatusShipped, wantNotes: 1},
		{name: "cancelled by admin", orderID: "order-1", status: entities.OrderStatusCancelled, wantNotes: 1},
		{name: "unknown order", orderID: "missing", status: entities.OrderStatusShipped, wantErr: entities.ErrOrderNotFound},
		{name: "unknown status", orderID: "order-1", status: "lost", wantErr: entities.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(entities.Product{ID: "P1", Price: price(100), Stock: 3})
			seeded := seedOrder(t, store)
			notifier := &fakeNotifier{}
			cache := newMapCache()
			svc := service.NewOrderService(discardLogger(), store, store, cache, notifier, time.Second)

			got, err := svc.UpdateStatus(context.Background(), tc.orderID, tc.status)

			assert.Len(t, notifier.messages(), tc.wantNotes)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, entities.OrderStatusProcessing, store.order(seeded.ID).OrderStatus)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.status, got.OrderStatus)
			stored := store.order(seeded.ID)
			assert.Equal(t, tc.status, stored.OrderStatus)
			assert.Equal(t, entities.PaymentStatusPending, stored.PaymentStatus)
			assert.Equal(t, 3, store.stock("P1"))
			assert.Equal(t, 0, store.restoreCalls)
			assert.Contains(t, cache.deleted, seeded.TrackingID)
			assert.Contains(t, notifier.messages()[0].Text, string(tc.status))
		})
	}
}

func TestOrderService_TrackOrder(t *testing.T) {
	store := newMemStore()
	seeded := seedOrder(t, store)
	cache := newMapCache()
	svc := service.NewOrderService(discardLogger(), store, store, cache, &fakeNotifier{}, time.Second)

	got, err := svc.TrackOrder(context.Background(), seeded.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)

	_, cached := cache.Get(seeded.TrackingID)
	assert.True(t, cached)

	// served from cache even after the store forgets the order
	delete(store.orders, seeded.ID)
	got, err = svc.TrackOrder(context.Background(), seeded.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.True(t, got.TotalAmount.Equal(price(200)))

	_, err = svc.TrackOrder(context.Background(), "PF-missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_TrackOrderBrokenCacheEntry(t *testing.T) {
	store := newMemStore()
	cache := newMapCache()
	cache.Set("PF-1", []byte("broken"))
	svc := service.NewOrderService(discardLogger(), store, store, cache, &fakeNotifier{}, time.Second)

	_, err := svc.TrackOrder(context.Background(), "PF-1")
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}
