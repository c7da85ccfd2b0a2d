// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/infrastructure/mock"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func testCreateRequest() model.CreateRequest {
	return model.CreateRequest{
		Name: "Test L2VPN",
		Endpoints: []model.Endpoint{
			{PortID: "urn:sdx:port:a:1", VLAN: "100"},
			{PortID: "urn:sdx:port:b:2", VLAN: "100"},
		},
	}
}

func TestLifecycleCreateValidationNeverReachesProvisioner(t *testing.T) {
	assertion := assert.New(t)
	ctx := context.Background()

	provisioner := mock.NewMockProvisioner()
	lifecycle := NewLifecycle(provisioner)

	tests := []struct {
		name string
		req  model.CreateRequest
	}{
		{
			name: "empty name",
			req: model.CreateRequest{
				Endpoints: testCreateRequest().Endpoints,
			},
		},
		{
			name: "single endpoint",
			req: model.CreateRequest{
				Name:      "Test",
				Endpoints: testCreateRequest().Endpoints[:1],
			},
		},
		{
			name: "vlan out of range",
			req: model.CreateRequest{
				Name: "Test",
				Endpoints: []model.Endpoint{
					{PortID: "urn:sdx:port:a:1", VLAN: "9999"},
					{PortID: "urn:sdx:port:b:2", VLAN: "100"},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lifecycle.Create(ctx, tc.req)

			assertion.Error(err)
			var validation errors.Validation
			assertion.ErrorAs(err, &validation)
			assertion.Zero(provisioner.CreateCalls)
		})
	}
}

func TestLifecycleCreateListDelete(t *testing.T) {
	assertion := assert.New(t)
	ctx := context.Background()

	provisioner := mock.NewMockProvisioner()
	lifecycle := NewLifecycle(provisioner)

	serviceID, err := lifecycle.Create(ctx, testCreateRequest())
	assertion.NoError(err)
	assertion.NotEmpty(serviceID)

	services, err := lifecycle.List(ctx, model.ListFilter{})
	assertion.NoError(err)
	assertion.Contains(services, serviceID)
	assertion.Equal("Test L2VPN", services[serviceID].Name)

	svc, err := lifecycle.Get(ctx, serviceID)
	assertion.NoError(err)
	assertion.Equal(serviceID, svc.ServiceID)
	assertion.Equal(testCreateRequest().Endpoints, svc.Endpoints)
	assertion.Equal(model.StateEnabled, svc.State)

	err = lifecycle.Delete(ctx, serviceID)
	assertion.NoError(err)

	var notFound errors.NotFound

	_, err = lifecycle.Get(ctx, serviceID)
	assertion.Error(err)
	assertion.ErrorAs(err, &notFound)

	err = lifecycle.Delete(ctx, serviceID)
	assertion.Error(err)
	assertion.ErrorAs(err, &notFound)

	archived, err := lifecycle.List(ctx, model.ListFilter{Archived: true})
	assertion.NoError(err)
	assertion.Contains(archived, serviceID)
	assertion.NotEmpty(archived[serviceID].ArchivedDate)
}

func TestLifecycleCreateReplaysDuplicateRequest(t *testing.T) {
	assertion := assert.New(t)
	ctx := context.Background()

	provisioner := mock.NewMockProvisioner()
	lifecycle := NewLifecycle(provisioner)

	first, err := lifecycle.Create(ctx, testCreateRequest())
	assertion.NoError(err)

	second, err := lifecycle.Create(ctx, testCreateRequest())
	assertion.NoError(err)

	assertion.Equal(first, second)
	assertion.Equal(1, provisioner.CreateCalls)

	// A different name is a different service.
	other := testCreateRequest()
	other.Name = "Another L2VPN"
	third, err := lifecycle.Create(ctx, other)
	assertion.NoError(err)
	assertion.NotEqual(first, third)
	assertion.Equal(2, provisioner.CreateCalls)
}

func TestLifecycleDeletePurgesReplayCache(t *testing.T) {
	assertion := assert.New(t)
	ctx := context.Background()

	provisioner := mock.NewMockProvisioner()
	lifecycle := NewLifecycle(provisioner)

	first, err := lifecycle.Create(ctx, testCreateRequest())
	assertion.NoError(err)

	assertion.NoError(lifecycle.Delete(ctx, first))

	// The same request after a delete provisions a fresh service.
	second, err := lifecycle.Create(ctx, testCreateRequest())
	assertion.NoError(err)
	assertion.NotEqual(first, second)
	assertion.Equal(2, provisioner.CreateCalls)
}

func TestLifecycleListSearch(t *testing.T) {
	assertion := assert.New(t)
	ctx := context.Background()

	provisioner := mock.NewMockProvisioner()
	lifecycle := NewLifecycle(provisioner)

	req := testCreateRequest()
	req.Name = "Production VLAN"
	prodID, err := lifecycle.Create(ctx, req)
	assertion.NoError(err)

	req = testCreateRequest()
	req.Name = "Staging VLAN"
	req.Endpoints[0].PortID = "urn:sdx:port:c:3"
	stagingID, err := lifecycle.Create(ctx, req)
	assertion.NoError(err)

	services, err := lifecycle.List(ctx, model.ListFilter{Search: "production"})
	assertion.NoError(err)
	assertion.Len(services, 1)
	assertion.Contains(services, prodID)

	services, err = lifecycle.List(ctx, model.ListFilter{Search: "vlan"})
	assertion.NoError(err)
	assertion.Len(services, 2)
	assertion.Contains(services, stagingID)

	services, err = lifecycle.List(ctx, model.ListFilter{Search: "no-such-service"})
	assertion.NoError(err)
	assertion.Empty(services)
}

func TestLifecycleUpdate(t *testing.T) {
	assertion := assert.New(t)
	ctx := context.Background()

	provisioner := mock.NewMockProvisioner()
	lifecycle := NewLifecycle(provisioner)

	serviceID, err := lifecycle.Create(ctx, testCreateRequest())
	assertion.NoError(err)

	name := "Renamed L2VPN"
	state := "Disabled"
	err = lifecycle.Update(ctx, serviceID, model.UpdateRequest{
		Name:  &name,
		State: &state,
	})
	assertion.NoError(err)

	svc, err := lifecycle.Get(ctx, serviceID)
	assertion.NoError(err)
	assertion.Equal("Renamed L2VPN", svc.Name)
	assertion.Equal(model.StateDisabled, svc.State)
	assertion.NotEmpty(svc.LastModified)

	// Empty update is rejected before it reaches the provisioner.
	err = lifecycle.Update(ctx, serviceID, model.UpdateRequest{})
	assertion.Error(err)
	var validation errors.Validation
	assertion.ErrorAs(err, &validation)

	var notFound errors.NotFound
	err = lifecycle.Update(ctx, "missing-id", model.UpdateRequest{Name: &name})
	assertion.Error(err)
	assertion.ErrorAs(err, &notFound)
}
