// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
)

// MockTopologySource serves a canned topology document for tests.
type MockTopologySource struct {
	Topology model.Topology
	Err      error
}

// NewMockTopologySource creates a topology source with a small two-domain
// sample topology
func NewMockTopologySource() *MockTopologySource {
	return &MockTopologySource{
		Topology: model.Topology{
			Name: "AtlanticWave-SDX",
			Ports: []model.Port{
				{
					ID:        "urn:sdx:port:ampath.net:Ampath3:50",
					Name:      "Ampath3-50",
					Domain:    "ampath.net",
					Node:      "urn:sdx:node:ampath.net:Ampath3",
					VLANRange: "100-110",
				},
				{
					ID:     "urn:sdx:port:tenet.ac.za:Tenet03:50",
					Name:   "Tenet03-50",
					Domain: "tenet.ac.za",
					Node:   "urn:sdx:node:tenet.ac.za:Tenet03",
				},
			},
			Services: []model.TopologyService{
				{
					Type: "l2vpn",
					Endpoints: []model.ServiceEndpoint{
						{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: 100},
						{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: 100},
					},
				},
			},
		},
	}
}

// GetTopology implements port.TopologySource with the canned document
func (m *MockTopologySource) GetTopology(ctx context.Context) (*model.Topology, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	topology := m.Topology
	return &topology, nil
}
