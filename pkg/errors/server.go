// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package errors

import (
	"errors"
	"fmt"
)

// Service represents a request that the SDX controller rejected. It carries
// the HTTP status code and the controller's message verbatim so callers can
// decide how to handle it.
type Service struct {
	base
	statusCode int
}

// Error returns the error message for Service, including the status code.
func (s Service) Error() string {
	return fmt.Sprintf("%s (status_code=%d)", s.error(), s.statusCode)
}

// Unwrap returns the wrapped cause, if any.
func (s Service) Unwrap() error {
	return s.unwrap()
}

// StatusCode returns the HTTP status code the controller answered with.
func (s Service) StatusCode() int {
	return s.statusCode
}

// NewService creates a new Service error with the controller's status code
// and message.
func NewService(statusCode int, message string, err ...error) Service {
	return Service{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
		statusCode: statusCode,
	}
}

// Unexpected represents an unexpected error in the application, including
// transport-level failures that never produced a controller response.
type Unexpected struct {
	base
}

// Error returns the error message for Unexpected.
func (u Unexpected) Error() string {
	return u.error()
}

// Unwrap returns the wrapped cause, if any.
func (u Unexpected) Unwrap() error {
	return u.unwrap()
}

// NewUnexpected creates a new Unexpected error with the provided message.
func NewUnexpected(message string, err ...error) Unexpected {
	return Unexpected{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
