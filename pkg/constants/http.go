// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package constants

// RequestIDHeader is the header name for the request ID attached to every
// outbound controller call.
const RequestIDHeader = "X-REQUEST-ID"

// AuthorizationHeader carries the bearer credential on every call.
const AuthorizationHeader = "Authorization"

// ContentTypeJSON is the media type for all SDX controller payloads.
const ContentTypeJSON = "application/json"
