// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package tokenauth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	jose "github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

// cilogonSubjectPrefix is the only subject form the controller derives
// ownership handles from.
const cilogonSubjectPrefix = "http://cilogon.org/"

// signatureAlgorithms are the algorithms accepted when parsing the token.
// CILogon issues RS256; the others cover issuer migrations.
var signatureAlgorithms = []jose.SignatureAlgorithm{jose.RS256, jose.PS256, jose.ES256}

// tokenFile is the on-disk credential shape written by the FABRIC
// credential manager.
type tokenFile struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// customClaims are the identity attributes CILogon adds beyond the
// registered claim set.
type customClaims struct {
	Email      string `json:"email"`
	EPPN       string `json:"eppn"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// Authenticator loads a bearer credential from local storage, decodes its
// claims, and validates it for use by the SDX client. The stored token is
// never mutated; a credential is either valid or invalid.
type Authenticator struct {
	config    Config
	validator *validator.Validator

	token  string
	claims model.Claims
	std    jwt.Claims
}

// NewAuthenticator creates an Authenticator. When the config carries a JWKS
// URL the signature validation stack is set up eagerly so misconfiguration
// surfaces at construction, not on the first call.
func NewAuthenticator(config Config) (*Authenticator, error) {
	if config.Path == "" {
		config.Path = defaultTokenPath
	}
	if config.Issuer == "" {
		config.Issuer = defaultIssuer
	}
	if config.ClockSkew == 0 {
		config.ClockSkew = defaultClockSkew
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = defaultCacheTTL
	}

	a := &Authenticator{config: config}

	if config.JWKSURL != "" {
		if config.Audience == "" {
			return nil, fmt.Errorf("audience is required when a JWKS URL is configured")
		}

		jwksURL, err := url.Parse(config.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("invalid JWKS URL: %w", err)
		}
		issuerURL, err := url.Parse(config.Issuer)
		if err != nil {
			return nil, fmt.Errorf("invalid issuer: %w", err)
		}

		provider := jwks.NewCachingProvider(issuerURL, config.CacheTTL, jwks.WithCustomJWKSURI(jwksURL))

		jwtValidator, err := validator.New(
			provider.KeyFunc,
			validator.RS256,
			issuerURL.String(),
			[]string{config.Audience},
			validator.WithAllowedClockSkew(config.ClockSkew),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to set up the JWT validator: %w", err)
		}
		a.validator = jwtValidator
	}

	return a, nil
}

// Load reads and decodes the credential from the configured path. It fails
// with CredentialNotFound when the file is missing or unreadable and with
// CredentialMalformed when the content is not a parseable credential.
func (a *Authenticator) Load(ctx context.Context) error {
	raw, err := os.ReadFile(a.config.Path)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read token file",
			"path", a.config.Path,
			"error", err,
		)
		return errors.NewCredentialNotFound(fmt.Sprintf("token file %s is not readable", a.config.Path), err)
	}

	var file tokenFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return errors.NewCredentialMalformed("failed to decode token JSON file", err)
	}
	if file.IDToken == "" {
		return errors.NewCredentialMalformed("token file is missing the id_token field")
	}

	parsed, err := jwt.ParseSigned(file.IDToken, signatureAlgorithms)
	if err != nil {
		return errors.NewCredentialMalformed("failed to decode JWT token", err)
	}

	var std jwt.Claims
	var custom customClaims
	if err := parsed.UnsafeClaimsWithoutVerification(&std, &custom); err != nil {
		return errors.NewCredentialMalformed("failed to decode JWT claims", err)
	}

	claims := model.Claims{
		Subject:    std.Subject,
		Issuer:     std.Issuer,
		Audience:   std.Audience,
		Email:      custom.Email,
		EPPN:       custom.EPPN,
		GivenName:  custom.GivenName,
		FamilyName: custom.FamilyName,
	}
	if std.Expiry != nil {
		claims.Expiry = std.Expiry.Time()
	}
	if len(parsed.Headers) > 0 {
		claims.KeyID = parsed.Headers[0].KeyID
	}

	a.token = file.IDToken
	a.claims = claims
	a.std = std

	slog.DebugContext(ctx, "loaded bearer credential",
		"path", a.config.Path,
		"sub", claims.Subject,
		"iss", claims.Issuer,
	)
	return nil
}

// Bearer returns the raw signed token.
func (a *Authenticator) Bearer() string {
	return a.token
}

// Claims returns the decoded, unverified claim set.
func (a *Authenticator) Claims() model.Claims {
	return a.claims
}

// Decode parses the token's claims without verifying the signature and
// returns them as a claim-name to value mapping. Side-effect free.
func (a *Authenticator) Decode() (map[string]any, error) {
	if a.token == "" {
		return nil, errors.NewCredentialMalformed("no credential loaded")
	}

	parsed, err := jwt.ParseSigned(a.token, signatureAlgorithms)
	if err != nil {
		return nil, errors.NewCredentialMalformed("failed to decode JWT token", err)
	}

	out := map[string]any{}
	if err := parsed.UnsafeClaimsWithoutVerification(&out); err != nil {
		return nil, errors.NewCredentialMalformed("failed to decode JWT claims", err)
	}
	return out, nil
}

// Validate checks the credential's time-based claims and, when a JWKS URL
// is configured, its signature, issuer and audience. The stored token is
// not mutated.
func (a *Authenticator) Validate(ctx context.Context) error {
	if a.token == "" {
		return errors.NewCredentialInvalid("no credential loaded")
	}

	err := a.std.ValidateWithLeeway(jwt.Expected{Time: time.Now()}, a.config.ClockSkew)
	switch {
	case err == nil:
	case stderrors.Is(err, jwt.ErrExpired):
		return errors.NewCredentialExpired("token is expired", err)
	default:
		return errors.NewCredentialInvalid("token claims are not valid", err)
	}

	if a.validator == nil {
		return nil
	}

	if _, err := a.validator.ValidateToken(ctx, a.token); err != nil {
		slog.ErrorContext(ctx, "failed to validate JWT token",
			"error", err,
		)
		if strings.Contains(err.Error(), "expired") {
			return errors.NewCredentialExpired("token is expired", err)
		}
		return errors.NewCredentialInvalid("token failed signature validation", err)
	}
	return nil
}

// Ownership derives the controller ownership handle from the subject
// claim: the first 16 characters of the base64url-encoded SHA-256 of the
// CILogon subject URL.
func (a *Authenticator) Ownership() (string, error) {
	if !strings.HasPrefix(a.claims.Subject, cilogonSubjectPrefix) {
		return "", errors.NewCredentialInvalid("invalid sub claim: must be a CILogon-issued sub string")
	}

	sum := sha256.Sum256([]byte(a.claims.Subject))
	return base64.URLEncoding.EncodeToString(sum[:])[:16], nil
}
