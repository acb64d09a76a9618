package entities

import "errors"

var (
	ErrValidation            = errors.New("invalid input")
	ErrProductNotFound       = errors.New("product not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidPhoneNumber    = errors.New("invalid phone number")
	ErrProviderCommunication = errors.New("payment provider communication failed")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrder          = errors.New("invalid order data")
)
