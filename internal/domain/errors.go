package domain

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden") // unauthorized, forbidden or inactive upstream
)
