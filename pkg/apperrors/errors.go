package apperrors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyStack     = errors.New("product list is empty")
	ErrUnknownProduct = errors.New("unknown product id")
	ErrInvalidProduct = errors.New("invalid product data")
	ErrInvalidClock   = errors.New("invalid clock time")
	ErrNoProvider     = errors.New("no AI provider configured")
)
