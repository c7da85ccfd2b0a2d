// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"

	"github.com/google/uuid"
)

// MockProvisioner is an in-memory implementation of port.Provisioner with
// controller-like semantics. This demonstrates how the clean architecture
// allows easy swapping of implementations.
type MockProvisioner struct {
	mu       sync.Mutex
	services map[string]model.L2VPN
	archived map[string]model.L2VPN

	// CreateCalls counts how many create requests reached the provisioner,
	// so tests can prove local validation never hit the network
	CreateCalls int
}

// NewMockProvisioner creates an empty in-memory provisioner
func NewMockProvisioner() *MockProvisioner {
	return &MockProvisioner{
		services: map[string]model.L2VPN{},
		archived: map[string]model.L2VPN{},
	}
}

// CreateL2VPN stores the service under a fresh uuid and returns the id
func (m *MockProvisioner) CreateL2VPN(ctx context.Context, req model.CreateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++

	serviceID := uuid.New().String()
	m.services[serviceID] = model.L2VPN{
		ServiceID:     serviceID,
		Name:          req.Name,
		Endpoints:     req.Endpoints,
		Description:   req.Description,
		Notifications: req.Notifications,
		Scheduling:    req.Scheduling,
		QoSMetrics:    req.QoSMetrics,
		Status:        "up",
		State:         model.StateEnabled,
		CreationDate:  time.Now().UTC().Format(time.RFC3339),
	}

	slog.DebugContext(ctx, "mock provisioner created service",
		"service_id", serviceID,
		"name", req.Name,
	)
	return serviceID, nil
}

// GetL2VPN returns a stored service or NotFound
func (m *MockProvisioner) GetL2VPN(ctx context.Context, serviceID string) (*model.L2VPN, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, ok := m.services[serviceID]
	if !ok {
		return nil, errors.NewNotFound("service id is unknown to the controller")
	}
	return &svc, nil
}

// ListL2VPNs returns the stored services keyed by id
func (m *MockProvisioner) ListL2VPNs(ctx context.Context, archived bool) (map[string]model.L2VPN, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	source := m.services
	if archived {
		source = m.archived
	}

	out := make(map[string]model.L2VPN, len(source))
	for id, svc := range source {
		out[id] = svc
	}
	return out, nil
}

// UpdateL2VPN patches a stored service or returns NotFound
func (m *MockProvisioner) UpdateL2VPN(ctx context.Context, serviceID string, req model.UpdateRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, ok := m.services[serviceID]
	if !ok {
		return errors.NewNotFound("service id is unknown to the controller")
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.State != nil {
		svc.State = *req.State
	}
	svc.LastModified = time.Now().UTC().Format(time.RFC3339)

	m.services[serviceID] = svc
	return nil
}

// DeleteL2VPN archives a stored service or returns NotFound. A second
// delete of the same id reports NotFound, matching the controller.
func (m *MockProvisioner) DeleteL2VPN(ctx context.Context, serviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, ok := m.services[serviceID]
	if !ok {
		return errors.NewNotFound("service id is unknown to the controller")
	}

	svc.ArchivedDate = time.Now().UTC().Format(time.RFC3339)
	m.archived[serviceID] = svc
	delete(m.services, serviceID)
	return nil
}
