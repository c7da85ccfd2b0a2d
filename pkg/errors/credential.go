// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// CredentialNotFound indicates the token file does not exist or cannot be
// read.
type CredentialNotFound struct {
	base
}

// Error returns the error message for CredentialNotFound.
func (c CredentialNotFound) Error() string {
	return c.error()
}

// Unwrap returns the wrapped cause, if any.
func (c CredentialNotFound) Unwrap() error {
	return c.unwrap()
}

// NewCredentialNotFound creates a new CredentialNotFound error.
func NewCredentialNotFound(message string, err ...error) CredentialNotFound {
	return CredentialNotFound{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// CredentialMalformed indicates the token file content is not parseable as
// a credential.
type CredentialMalformed struct {
	base
}

// Error returns the error message for CredentialMalformed.
func (c CredentialMalformed) Error() string {
	return c.error()
}

// Unwrap returns the wrapped cause, if any.
func (c CredentialMalformed) Unwrap() error {
	return c.unwrap()
}

// NewCredentialMalformed creates a new CredentialMalformed error.
func NewCredentialMalformed(message string, err ...error) CredentialMalformed {
	return CredentialMalformed{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// CredentialExpired indicates the token's expiry claim is in the past.
type CredentialExpired struct {
	base
}

// Error returns the error message for CredentialExpired.
func (c CredentialExpired) Error() string {
	return c.error()
}

// Unwrap returns the wrapped cause, if any.
func (c CredentialExpired) Unwrap() error {
	return c.unwrap()
}

// NewCredentialExpired creates a new CredentialExpired error.
func NewCredentialExpired(message string, err ...error) CredentialExpired {
	return CredentialExpired{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// CredentialInvalid indicates the token failed signature, issuer, audience
// or claim checks.
type CredentialInvalid struct {
	base
}

// Error returns the error message for CredentialInvalid.
func (c CredentialInvalid) Error() string {
	return c.error()
}

// Unwrap returns the wrapped cause, if any.
func (c CredentialInvalid) Unwrap() error {
	return c.unwrap()
}

// NewCredentialInvalid creates a new CredentialInvalid error.
func NewCredentialInvalid(message string, err ...error) CredentialInvalid {
	return CredentialInvalid{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
