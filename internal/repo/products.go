package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{postgresRepo: newPostgresRepo(db)}
}

// FindProduct locks the product row when called inside a transaction, so
// concurrent checkouts of the same product observe stock one after another.
func (r *productRepo) FindProduct(ctx context.Context, id string) (entities.Product, error) {
	q := r.qb.Select("id", "name", "price", "stock").
		From("products").
		Where(sq.Eq{"id": id})
	query, args := lockForUpdate(ctx, q).MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *productRepo) ReserveStock(ctx context.Context, id string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) RestoreStock(ctx context.Context, id string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
