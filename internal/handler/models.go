package handler

import (
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/internal/service"
)

// CheckoutRequest тело запроса на оформление заказа
type CheckoutRequest struct {
	Customer      Customer   `json:"customer" validate:"required"`
	Items         []CartItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=mpesa emola card cash_on_delivery" enums:"mpesa,emola,card,cash_on_delivery"`
}

// Customer данные покупателя
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// CartItem позиция корзины
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CheckoutResponse результат оформления заказа
type CheckoutResponse struct {
	OrderID       string       `json:"order_id"`
	TrackingID    string       `json:"tracking_id"`
	PaymentStatus string       `json:"payment_status"`
	Payment       *PaymentInfo `json:"payment,omitempty"`
}

// PaymentInfo подтверждение провайдера мобильных платежей
type PaymentInfo struct {
	ConversationID      string `json:"conversation_id"`
	ResponseCode        string `json:"response_code"`
	ResponseDescription string `json:"response_description"`
}

// PaymentCallback результат платежа от провайдера
type PaymentCallback struct {
	ThirdPartyReference string `json:"thirdPartyReference" validate:"required"`
	ResultCode          string `json:"resultCode" validate:"required"`
	ResultDescription   string `json:"resultDescription"`
}

// CallbackResponse ответ провайдеру
type CallbackResponse struct {
	Message string `json:"message" example:"ok"`
}

// UpdateStatusRequest смена статуса заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing shipped delivered cancelled" enums:"processing,shipped,delivered,cancelled"`
}

// Order представление заказа для покупателя и администратора
type Order struct {
	OrderID       string     `json:"order_id"`
	TrackingID    string     `json:"tracking_id"`
	Customer      Customer   `json:"customer"`
	Items         []LineItem `json:"items"`
	TotalAmount   string     `json:"total_amount" example:"3500.00"`
	PaymentMethod string     `json:"payment_method"`
	PaymentStatus string     `json:"payment_status"`
	OrderStatus   string     `json:"order_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LineItem позиция заказа
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price" example:"1750.00"`
}

func CheckoutRequestToInput(r CheckoutRequest) service.CheckoutInput {
	lines := make([]service.CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, service.CartLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	return service.CheckoutInput{
		Customer: entities.CustomerInfo{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
		},
		Lines:         lines,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
	}
}

func CheckoutResultToJSON(res service.CheckoutResult) CheckoutResponse {
	out := CheckoutResponse{
		OrderID:       res.OrderID,
		TrackingID:    res.TrackingID,
		PaymentStatus: string(res.PaymentStatus),
	}
	if res.Payment != nil {
		out.Payment = &PaymentInfo{
			ConversationID:      res.Payment.ConversationID,
			ResponseCode:        res.Payment.ResponseCode,
			ResponseDescription: res.Payment.ResponseDescription,
		}
	}
	return out
}

func PaymentCallbackToEntity(cb PaymentCallback) entities.PaymentCallback {
	return entities.PaymentCallback{
		ThirdPartyReference: cb.ThirdPartyReference,
		ResultCode:          cb.ResultCode,
		ResultDescription:   cb.ResultDescription,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}

	return Order{
		OrderID:    o.ID,
		TrackingID: o.TrackingID,
		Customer: Customer{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Items:         items,
		TotalAmount:   o.TotalAmount.StringFixed(2),
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		OrderStatus:   string(o.OrderStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
