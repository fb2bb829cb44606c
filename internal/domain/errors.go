package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrCapacityExceeded    = errors.New("not enough capacity for the requested dates")
	ErrAmendmentNotAllowed = errors.New("cannot amend a cancelled booking")
)

var (
	ErrValidation = errors.New("validation error")
)
