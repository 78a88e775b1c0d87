package errs

import "errors"

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrInvalidProductID  = errors.New("Invalid product")
	ErrProductNotFound   = errors.New("Product not found")
	ErrEventNotSupported = errors.New("Unsupported inbound event")
)
