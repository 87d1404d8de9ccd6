package checkout

import "errors"

// Error kind internal. Semuanya di-collapse jadi ErrCheckoutFailed di
// boundary service; caller tidak pernah lihat kind spesifik, cuma log.
var (
	ErrInsufficientStock    = errors.New("insufficient product stock")
	ErrProductNotFound      = errors.New("product not found")
	ErrCustomerUpdateFailed = errors.New("customer update failed")
	ErrShippingDetailFailed = errors.New("shipping detail creation failed")
	ErrOrderNumberExhausted = errors.New("daily order number sequence exhausted")
)

// ErrCheckoutFailed satu-satunya error yang keluar dari Service.Checkout.
var ErrCheckoutFailed = errors.New("an error occurred during checkout, please retry")
