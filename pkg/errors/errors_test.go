// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assertion := assert.New(t)

	cause := fmt.Errorf("connection refused")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation without cause",
			err:  NewValidation("endpoints must contain at least 2 entries"),
			want: "endpoints must contain at least 2 entries",
		},
		{
			name: "validation with cause",
			err:  NewValidation("request failed", cause),
			want: "request failed: connection refused",
		},
		{
			name: "not found",
			err:  NewNotFound("service id is unknown to the controller"),
			want: "service id is unknown to the controller",
		},
		{
			name: "service carries status code",
			err:  NewService(409, "L2VPN Service already exists"),
			want: "L2VPN Service already exists (status_code=409)",
		},
		{
			name: "credential expired",
			err:  NewCredentialExpired("token is expired"),
			want: "token is expired",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertion.Equal(tc.want, tc.err.Error())
		})
	}
}

func TestErrorDiscrimination(t *testing.T) {
	assertion := assert.New(t)

	var (
		validation Validation
		notFound   NotFound
		service    Service
		expired    CredentialExpired
	)

	err := error(NewService(412, "No path available between endpoints"))
	assertion.True(stderrors.As(err, &service))
	assertion.Equal(412, service.StatusCode())
	assertion.False(stderrors.As(err, &notFound))
	assertion.False(stderrors.As(err, &validation))

	err = NewCredentialExpired("token is expired")
	assertion.True(stderrors.As(err, &expired))
	assertion.False(stderrors.As(err, &validation))
}

func TestErrorUnwrap(t *testing.T) {
	assertion := assert.New(t)

	cause := fmt.Errorf("no such file")
	err := NewCredentialNotFound("token file is not readable", cause)

	assertion.True(stderrors.Is(err, cause))
}
