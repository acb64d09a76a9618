package service

import (
	"fmt"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
)

const currency = "MZN"

var methodLabels = map[entities.PaymentMethod]string{
	entities.PaymentMethodMpesa:          "M-Pesa",
	entities.PaymentMethodEmola:          "e-Mola",
	entities.PaymentMethodCard:           "card",
	entities.PaymentMethodCashOnDelivery: "cash on delivery",
}

func orderCreatedMessage(o entities.Order) string {
	msg := fmt.Sprintf("Hello, %s! Your order %s (%d items) was received. Total: %s %s. Payment: %s.",
		o.Customer.Name, o.TrackingID, o.TotalQuantity(), o.TotalAmount.StringFixed(2), currency, methodLabels[o.PaymentMethod])
	if o.PaymentMethod.IsMobileMoney() {
		msg += " Please confirm the payment request on your phone."
	}
	return msg
}

func paymentConfirmedMessage(o entities.Order) string {
	return fmt.Sprintf("Payment of %s %s for order %s confirmed. Thank you for shopping with us!",
		o.TotalAmount.StringFixed(2), currency, o.TrackingID)
}

func paymentFailedMessage(o entities.Order) string {
	reason := o.Provider.ResponseDescription
	if reason == "" {
		reason = "the payment was not completed"
	}
	return fmt.Sprintf("Payment for order %s failed (%s). The order was cancelled.", o.TrackingID, reason)
}

func statusChangedMessage(o entities.Order) string {
	return fmt.Sprintf("Your order %s is now %s.", o.TrackingID, o.OrderStatus)
}
