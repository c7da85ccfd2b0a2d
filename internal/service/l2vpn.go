// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/port"
)

// Lifecycle handles L2VPN lifecycle operations. It validates all input
// locally before anything reaches the wire and depends on abstractions
// rather than concrete implementations.
type Lifecycle struct {
	provisioner port.Provisioner

	// replay short-circuits duplicate create requests: the controller
	// treats a (name, ports) pair as one service, so resubmitting the
	// same request returns the already-assigned id
	mu     sync.Mutex
	replay map[string]string
}

// NewLifecycle creates a new Lifecycle service instance
func NewLifecycle(provisioner port.Provisioner) *Lifecycle {
	return &Lifecycle{
		provisioner: provisioner,
		replay:      map[string]string{},
	}
}

// Create validates the request and submits it, returning the
// server-assigned service id. Validation failures never issue a network
// request.
func (s *Lifecycle) Create(ctx context.Context, req model.CreateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		slog.With("error", err).ErrorContext(ctx, "create request validation failed")
		return "", err
	}

	key := replayKey(req)

	s.mu.Lock()
	if serviceID, ok := s.replay[key]; ok {
		s.mu.Unlock()
		slog.DebugContext(ctx, "returning cached service id for duplicate create",
			"service_id", serviceID,
		)
		return serviceID, nil
	}
	s.mu.Unlock()

	serviceID, err := s.provisioner.CreateL2VPN(ctx, req)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.replay[key] = serviceID
	s.mu.Unlock()

	slog.DebugContext(ctx, "created L2VPN",
		"service_id", serviceID,
		"name", req.Name,
	)
	return serviceID, nil
}

// Get returns one service by id.
func (s *Lifecycle) Get(ctx context.Context, serviceID string) (*model.L2VPN, error) {
	return s.provisioner.GetL2VPN(ctx, serviceID)
}

// List returns the caller's services, optionally from the archived listing
// and filtered by a case-insensitive id/name substring.
func (s *Lifecycle) List(ctx context.Context, filter model.ListFilter) (map[string]model.L2VPN, error) {
	services, err := s.provisioner.ListL2VPNs(ctx, filter.Archived)
	if err != nil {
		return nil, err
	}

	if filter.Search == "" {
		return services, nil
	}

	search := strings.ToLower(filter.Search)
	filtered := map[string]model.L2VPN{}
	for id, svc := range services {
		if strings.Contains(strings.ToLower(id), search) ||
			strings.Contains(strings.ToLower(svc.Name), search) {
			filtered[id] = svc
		}
	}
	return filtered, nil
}

// Update validates and submits an update of the mutable attributes.
func (s *Lifecycle) Update(ctx context.Context, serviceID string, req model.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		slog.With("error", err).ErrorContext(ctx, "update request validation failed",
			"service_id", serviceID,
		)
		return err
	}

	if req.State != nil {
		state := strings.ToLower(*req.State)
		req.State = &state
	}

	return s.provisioner.UpdateL2VPN(ctx, serviceID, req)
}

// Delete removes a service by id. Deleting an unknown id surfaces the
// controller's NotFound so callers can distinguish "nothing to delete"
// from "deleted".
func (s *Lifecycle) Delete(ctx context.Context, serviceID string) error {
	if err := s.provisioner.DeleteL2VPN(ctx, serviceID); err != nil {
		return err
	}

	// A deleted id must not be replayed from the create cache.
	s.mu.Lock()
	for key, id := range s.replay {
		if id == serviceID {
			delete(s.replay, key)
		}
	}
	s.mu.Unlock()

	slog.DebugContext(ctx, "deleted L2VPN",
		"service_id", serviceID,
	)
	return nil
}

// replayKey identifies a create request by its name and ordered port ids,
// mirroring what the controller treats as the same service.
func replayKey(req model.CreateRequest) string {
	parts := make([]string, 0, len(req.Endpoints)+1)
	parts = append(parts, req.Name)
	for _, ep := range req.Endpoints {
		parts = append(parts, ep.PortID)
	}
	return strings.Join(parts, "|")
}
