// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package model

import "time"

// Session is the controller-side user session established from the bearer
// credential's claims.
type Session struct {
	UserID    string `json:"user_id"`
	Ownership string `json:"ownership"`
	Email     string `json:"email"`
	Source    string `json:"source,omitempty"`
}

// Claims is the decoded, unverified claim set of the bearer credential.
type Claims struct {
	Subject    string
	Issuer     string
	Audience   []string
	Expiry     time.Time
	Email      string
	EPPN       string
	GivenName  string
	FamilyName string
	KeyID      string
}
