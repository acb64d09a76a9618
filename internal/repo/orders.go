package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.TrackingID, o.Customer.Name, o.Customer.Phone, nullString(o.Customer.Address),
			o.TotalAmount, string(o.PaymentMethod), string(o.PaymentStatus), string(o.OrderStatus),
			o.Provider.ThirdPartyReference, nullString(o.Provider.ConversationID),
			nullString(o.Provider.ResponseCode), nullString(o.Provider.ResponseDescription),
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "quantity", "unit_price")
	for i, it := range o.Items {
		q = q.Values(o.ID, i, it.ProductID, it.Quantity, it.UnitPrice)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

// UpdateOrder persists the mutable part of the order: statuses and provider fields.
func (r *orderRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"payment_status":       string(o.PaymentStatus),
			"order_status":         string(o.OrderStatus),
			"conversation_id":      nullString(o.Provider.ConversationID),
			"response_code":        nullString(o.Provider.ResponseCode),
			"response_description": nullString(o.Provider.ResponseDescription),
			"updated_at":           time.Now().UTC(),
		}).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *orderRepo) GetOrderByReference(ctx context.Context, ref string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"third_party_reference": ref})
}

func (r *orderRepo) GetOrderByTrackingID(ctx context.Context, trackingID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"tracking_id": trackingID})
}

func (r *orderRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(where)
	query, args := lockForUpdate(ctx, q).MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "position", "product_id", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}
