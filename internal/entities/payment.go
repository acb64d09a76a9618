package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	Method    PaymentMethod
	Reference string
	Amount    decimal.Decimal
	Phone     string
}

// PaymentAck is the provider's synchronous acknowledgment of an initiation request.
type PaymentAck struct {
	ConversationID      string
	ResponseCode        string
	ResponseDescription string
}

// PaymentCallback is the asynchronous final result delivered by the provider.
type PaymentCallback struct {
	ThirdPartyReference string
	ResultCode          string
	ResultDescription   string
}

// ProviderError carries the provider's error payload verbatim.
type ProviderError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Code == "" && e.Description == "" {
		return fmt.Sprintf("payment provider responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("payment provider error %s: %s", e.Code, e.Description)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderCommunication
}
