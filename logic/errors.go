package logic

import "fmt"

// StatusCode represents the category of a rejected shop operation.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusUnknownProduct
	StatusNotInCart
	StatusEmptyCart
	StatusDocumentFailed
)

// Error message constants for the shop domain.
const (
	ErrMsgUnknownProduct   = "Product is not in the catalog"
	ErrMsgNotInCart        = "Item not in cart"
	ErrMsgCartEmpty        = "Cart is empty"
	ErrMsgQuantityPositive = "Quantity must be positive"
	ErrMsgDocumentFailed   = "Order document could not be generated"
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusUnknownProduct:
		return "UNKNOWN_PRODUCT"
	case StatusNotInCart:
		return "NOT_IN_CART"
	case StatusEmptyCart:
		return "EMPTY_CART"
	case StatusDocumentFailed:
		return "DOCUMENT_FAILED"
	default:
		return "UNKNOWN"
	}
}

// ShopError is returned when an operation is rejected by shop logic.
//
// Every code except StatusDocumentFailed is a benign, user-facing outcome
// that the resolver turns into reply text. StatusDocumentFailed aborts the
// current checkout attempt and must leave the cart untouched.
type ShopError struct {
	Code    StatusCode
	Message string
	Cause   error
}

func (e *ShopError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ShopError) Unwrap() error {
	return e.Cause
}

// NewInvalidArgument creates a ShopError for invalid input.
func NewInvalidArgument(message string) *ShopError {
	return &ShopError{Code: StatusInvalidArgument, Message: message}
}

// NewUnknownProduct creates a ShopError for a name absent from the catalog.
func NewUnknownProduct(name string) *ShopError {
	return &ShopError{Code: StatusUnknownProduct, Message: fmt.Sprintf("%s: %q", ErrMsgUnknownProduct, name)}
}

// NewNotInCart creates a ShopError for a removal of an absent product.
func NewNotInCart(name string) *ShopError {
	return &ShopError{Code: StatusNotInCart, Message: fmt.Sprintf("%s: %q", ErrMsgNotInCart, name)}
}

// NewEmptyCart creates a ShopError for checkout on an empty cart.
func NewEmptyCart() *ShopError {
	return &ShopError{Code: StatusEmptyCart, Message: ErrMsgCartEmpty}
}

// NewDocumentFailed wraps a document renderer failure.
func NewDocumentFailed(cause error) *ShopError {
	return &ShopError{Code: StatusDocumentFailed, Message: ErrMsgDocumentFailed, Cause: cause}
}
