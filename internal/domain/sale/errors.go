package sale

import (
	"errors"
	"fmt"
)

// Field names a form control a validation failure belongs to, so the
// console can render the message next to the offending input.
type Field string

const (
	FieldProduct  Field = "product"
	FieldQuantity Field = "quantity"
	FieldItems    Field = "items"
)

// ValidationError is raised synchronously by draft mutations and by
// Validate. Stock violations carry the quantity still available.
type ValidationError struct {
	Field     Field
	Message   string
	Available *int
}

func (e *ValidationError) Error() string {
	if e.Available != nil {
		return fmt.Sprintf("%s: %s (available: %d)", e.Field, e.Message, *e.Available)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func errProductRequired() *ValidationError {
	return &ValidationError{Field: FieldProduct, Message: "product required"}
}

func errQuantityNotPositive() *ValidationError {
	return &ValidationError{Field: FieldQuantity, Message: "quantity must be positive"}
}

func errInsufficientStock(available int) *ValidationError {
	return &ValidationError{Field: FieldQuantity, Message: "insufficient stock", Available: &available}
}

func errItemsRequired() *ValidationError {
	return &ValidationError{Field: FieldItems, Message: "items required"}
}
