package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodMpesa          PaymentMethod = "mpesa"
	PaymentMethodEmola          PaymentMethod = "emola"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodEmola, PaymentMethodCard, PaymentMethodCashOnDelivery:
		return true
	}
	return false
}

// IsMobileMoney reports whether the method is settled through the payment provider callback.
func (m PaymentMethod) IsMobileMoney() bool {
	return m == PaymentMethodMpesa || m == PaymentMethodEmola
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

type LineItem struct {
	ProductID string
	Quantity  int
	// цена фиксируется в момент заказа и больше не пересчитывается из каталога
	UnitPrice decimal.Decimal
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ProviderCorrelation is filled progressively: the reference at creation,
// the conversation id with the initiation acknowledgment, the response fields
// with the acknowledgment and then with the callback.
type ProviderCorrelation struct {
	ThirdPartyReference string
	ConversationID      string
	ResponseCode        string
	ResponseDescription string
}

type Order struct {
	ID            string
	TrackingID    string
	Customer      CustomerInfo
	Items         []LineItem
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
	Provider      ProviderCorrelation
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CalculateTotal returns the sum of unit price times quantity across all line items.
func CalculateTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o *Order) TotalQuantity() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(LineItem{})
}
