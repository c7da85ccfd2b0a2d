// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

// Package sdxlib provisions and manages L2VPNs on an AtlanticWave-SDX
// controller, authenticating with the bearer credential issued to FABRIC
// users.
package sdxlib

import (
	"context"
	"log/slog"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/infrastructure/sdx"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/infrastructure/tokenauth"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/service"
)

// Domain types re-exported for callers outside the module.
type (
	Endpoint      = model.Endpoint
	Notification  = model.Notification
	Scheduling    = model.Scheduling
	QoSMetric     = model.QoSMetric
	QoSMetrics    = model.QoSMetrics
	L2VPN         = model.L2VPN
	CreateRequest = model.CreateRequest
	UpdateRequest = model.UpdateRequest
	ListFilter    = model.ListFilter
	Topology      = model.Topology
	AvailablePort = model.AvailablePort
	Session       = model.Session
	Claims        = model.Claims
)

// ControllerConfig configures the SDX controller endpoint.
type ControllerConfig = sdx.Config

// CredentialConfig configures where the bearer credential is loaded from and
// how it is validated.
type CredentialConfig = tokenauth.Config

// Config combines everything needed to talk to a controller.
type Config struct {
	Controller ControllerConfig
	Credential CredentialConfig
}

// DefaultConfig returns a Config with the standard FABRIC defaults; the
// controller base URL must still be provided.
func DefaultConfig() Config {
	return Config{
		Controller: sdx.DefaultConfig(),
		Credential: tokenauth.DefaultConfig(),
	}
}

// Client is the high-level entry point, wiring the credential store, the
// controller adapter and the service layer together.
type Client struct {
	auth       *tokenauth.Authenticator
	controller *sdx.Client
	lifecycle  *service.Lifecycle
	inventory  *service.PortInventory
}

// New loads the bearer credential and returns a ready-to-use client. The
// credential is read once; construct a new client to pick up a refreshed
// token file.
func New(ctx context.Context, config Config) (*Client, error) {
	auth, err := tokenauth.NewAuthenticator(config.Credential)
	if err != nil {
		return nil, err
	}
	if err := auth.Load(ctx); err != nil {
		return nil, err
	}

	controller := sdx.NewClient(config.Controller, auth)

	slog.DebugContext(ctx, "sdxlib client ready",
		"base_url", config.Controller.BaseURL,
		"sub", auth.Claims().Subject,
	)

	return &Client{
		auth:       auth,
		controller: controller,
		lifecycle:  service.NewLifecycle(controller),
		inventory:  service.NewPortInventory(controller),
	}, nil
}

// CreateL2VPN validates the request locally and provisions the service,
// returning the server-assigned id.
func (c *Client) CreateL2VPN(ctx context.Context, req CreateRequest) (string, error) {
	return c.lifecycle.Create(ctx, req)
}

// GetL2VPN returns one service by id.
func (c *Client) GetL2VPN(ctx context.Context, serviceID string) (*L2VPN, error) {
	return c.lifecycle.Get(ctx, serviceID)
}

// ListL2VPNs returns the caller's services keyed by id, honoring the filter.
func (c *Client) ListL2VPNs(ctx context.Context, filter ListFilter) (map[string]L2VPN, error) {
	return c.lifecycle.List(ctx, filter)
}

// UpdateL2VPN patches the mutable attributes of a service.
func (c *Client) UpdateL2VPN(ctx context.Context, serviceID string, req UpdateRequest) error {
	return c.lifecycle.Update(ctx, serviceID, req)
}

// DeleteL2VPN removes a service by id.
func (c *Client) DeleteL2VPN(ctx context.Context, serviceID string) error {
	return c.lifecycle.Delete(ctx, serviceID)
}

// GetTopology fetches the controller's network view.
func (c *Client) GetTopology(ctx context.Context) (*Topology, error) {
	return c.controller.GetTopology(ctx)
}

// AvailablePorts lists the facility ports that still have free VLANs,
// optionally filtered by a label substring.
func (c *Client) AvailablePorts(ctx context.Context, search string) ([]AvailablePort, error) {
	return c.inventory.AvailablePorts(ctx, search)
}

// Login establishes a controller-side session; subsequent creates carry the
// session's ownership handle.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	return c.controller.Login(ctx)
}

// ValidateCredential checks the loaded credential's time-based claims and,
// when configured, its signature.
func (c *Client) ValidateCredential(ctx context.Context) error {
	return c.auth.Validate(ctx)
}

// CredentialClaims returns the decoded, unverified claim set of the loaded
// credential.
func (c *Client) CredentialClaims() Claims {
	return c.auth.Claims()
}

// DecodeCredential returns every claim of the loaded credential as a
// claim-name to value mapping.
func (c *Client) DecodeCredential() (map[string]any, error) {
	return c.auth.Decode()
}

// Ownership derives the controller ownership handle from the credential's
// subject claim.
func (c *Client) Ownership() (string, error) {
	return c.auth.Ownership()
}
