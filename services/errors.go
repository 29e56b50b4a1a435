package services

import "errors"

// Sentinel errors the controllers translate into HTTP responses.
var (
	ErrMissingFields      = errors.New("customer name and meal choice are required")
	ErrDessertUnavailable = errors.New("dessert is out of stock")
	ErrDuplicateOption    = errors.New("option already exists")
	ErrDuplicateDessert   = errors.New("dessert already exists")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidStock       = errors.New("starting stock is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
