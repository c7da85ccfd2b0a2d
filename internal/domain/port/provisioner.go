// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
)

// Provisioner defines the L2VPN lifecycle operations against a controller.
// This abstraction keeps the service layer independent of the REST adapter
// so tests can swap in an in-memory implementation.
type Provisioner interface {
	// CreateL2VPN submits a create request and returns the server-assigned
	// service id
	CreateL2VPN(ctx context.Context, req model.CreateRequest) (string, error)

	// GetL2VPN returns one service by id
	GetL2VPN(ctx context.Context, serviceID string) (*model.L2VPN, error)

	// ListL2VPNs returns all services owned by the caller's credential,
	// keyed by service id
	ListL2VPNs(ctx context.Context, archived bool) (map[string]model.L2VPN, error)

	// UpdateL2VPN patches the mutable attributes of a service
	UpdateL2VPN(ctx context.Context, serviceID string, req model.UpdateRequest) error

	// DeleteL2VPN removes a service by id
	DeleteL2VPN(ctx context.Context, serviceID string) error
}

// TopologySource provides the controller's network view.
type TopologySource interface {
	// GetTopology fetches the current topology document
	GetTopology(ctx context.Context) (*model.Topology, error)
}

// CredentialSource produces a validated bearer credential for controller
// calls.
type CredentialSource interface {
	// Bearer returns the raw signed token
	Bearer() string

	// Claims returns the decoded, unverified claim set
	Claims() model.Claims

	// Validate checks expiry and, when configured, signature and issuer
	Validate(ctx context.Context) error

	// Ownership derives the controller ownership handle from the subject
	// claim
	Ownership() (string, error)
}
