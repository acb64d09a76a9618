package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    string          `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
	Stock int             `db:"stock"`
}

type Order struct {
	ID                  string          `db:"id"`
	TrackingID          string          `db:"tracking_id"`
	CustomerName        string          `db:"customer_name"`
	CustomerPhone       string          `db:"customer_phone"`
	CustomerAddress     sql.NullString  `db:"customer_address"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	PaymentMethod       string          `db:"payment_method"`
	PaymentStatus       string          `db:"payment_status"`
	OrderStatus         string          `db:"order_status"`
	ThirdPartyReference string          `db:"third_party_reference"`
	ConversationID      sql.NullString  `db:"conversation_id"`
	ResponseCode        sql.NullString  `db:"response_code"`
	ResponseDescription sql.NullString  `db:"response_description"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

type Item struct {
	OrderID   string          `db:"order_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

var orderColumns = []string{
	"id", "tracking_id", "customer_name", "customer_phone", "customer_address",
	"total_amount", "payment_method", "payment_status", "order_status",
	"third_party_reference", "conversation_id", "response_code", "response_description",
	"created_at", "updated_at",
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:         o.ID,
		TrackingID: o.TrackingID,
		Customer: entities.CustomerInfo{
			Name:    o.CustomerName,
			Phone:   o.CustomerPhone,
			Address: nullStringToString(o.CustomerAddress),
		},
		TotalAmount:   o.TotalAmount,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		OrderStatus:   entities.OrderStatus(o.OrderStatus),
		Provider: entities.ProviderCorrelation{
			ThirdPartyReference: o.ThirdPartyReference,
			ConversationID:      nullStringToString(o.ConversationID),
			ResponseCode:        nullStringToString(o.ResponseCode),
			ResponseDescription: nullStringToString(o.ResponseDescription),
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
