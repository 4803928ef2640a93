package api

import (
	"errors"

	"safestore/internal/domain/brand"
	"safestore/internal/domain/customer"
	"safestore/internal/domain/line"
	"safestore/internal/domain/product"
	"safestore/internal/domain/supplier"
)

var domainValidationErrors = []error{
	product.ErrEmptyName,
	product.ErrNegativePrice,
	product.ErrNegativeStock,
	product.ErrBrandRequired,
	product.ErrLineRequired,
	brand.ErrEmptyName,
	line.ErrEmptyName,
	supplier.ErrEmptyName,
	supplier.ErrInvalidEmail,
	customer.ErrEmptyName,
	customer.ErrEmptyLastName,
	customer.ErrInvalidEmail,
	customer.ErrInvalidDocument,
}

// isDomainValidation reports whether err is an entity precondition
// failure, which maps to 422 instead of 500.
func isDomainValidation(err error) bool {
	for _, sentinel := range domainValidationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
