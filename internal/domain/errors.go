package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden indicates the acting user does not own the entity.
	ErrForbidden = errors.New("forbidden")
	// ErrEmptyCart indicates checkout was attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAddressRequired indicates the profile has no delivery address.
	ErrAddressRequired = errors.New("delivery address required")
	// ErrInvalidTransition indicates a rejected order status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)
