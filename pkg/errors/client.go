// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// Validation represents a client-side input validation failure. It is
// always raised before any network call is made.
type Validation struct {
	base
}

// Error returns the error message for Validation.
func (v Validation) Error() string {
	return v.error()
}

// Unwrap returns the wrapped cause, if any.
func (v Validation) Unwrap() error {
	return v.unwrap()
}

// NewValidation creates a new Validation error with the provided message.
func NewValidation(message string, err ...error) Validation {
	return Validation{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// NotFound indicates that a referenced service id is unknown to the
// controller.
type NotFound struct {
	base
}

// Error returns the error message for NotFound.
func (n NotFound) Error() string {
	return n.error()
}

// Unwrap returns the wrapped cause, if any.
func (n NotFound) Unwrap() error {
	return n.unwrap()
}

// NewNotFound creates a new NotFound error with the provided message.
func NewNotFound(message string, err ...error) NotFound {
	return NotFound{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
