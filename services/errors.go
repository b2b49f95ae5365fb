package services

import "errors"

// Business-rule errors; controllers map these to HTTP statuses.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrOrderClosed         = errors.New("order has expired or been checked out")
	ErrAlreadyCheckedOut   = errors.New("order already checked out")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidPrice        = errors.New("price must not be negative")
)
