// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package tokenauth

import "time"

const (
	// defaultTokenPath is where the FABRIC credential manager drops the
	// token file on a JupyterHub host.
	defaultTokenPath = "/home/fabric/.tokens.json"

	defaultIssuer    = "https://cilogon.org"
	defaultClockSkew = 5 * time.Second
	defaultCacheTTL  = 5 * time.Minute
)

// Config holds the configuration parameters for credential handling. All
// values are explicit; environment lookups belong to the caller.
type Config struct {
	// Path is the location of the token JSON file
	Path string

	// JWKSURL enables signature validation against the issuer's JSON Web
	// Key Set when non-empty; expiry-only validation is performed
	// otherwise
	JWKSURL string

	// Issuer is the expected token issuer
	Issuer string

	// Audience is the expected token audience; required when JWKSURL is
	// set
	Audience string

	// ClockSkew is the leeway allowed when checking time-based claims
	ClockSkew time.Duration

	// CacheTTL bounds how long fetched JWKS keys are reused
	CacheTTL time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Path:      defaultTokenPath,
		Issuer:    defaultIssuer,
		ClockSkew: defaultClockSkew,
		CacheTTL:  defaultCacheTTL,
	}
}
