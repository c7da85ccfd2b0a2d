// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package model

// Port is a facility network handoff point advertised by the topology.
type Port struct {
	// ID is the SDX port URN
	ID     string `json:"port_id"`
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
	Node   string `json:"node,omitempty"`
	// VLANRange is the declared allowed range, e.g. "1-100,200"; empty
	// means the full default range
	VLANRange string `json:"vlan_range,omitempty"`
	Status    string `json:"status,omitempty"`
	State     string `json:"state,omitempty"`
}

// ServiceEndpoint is an endpoint of a service already present in the
// topology document. VLANs are numeric here because they are concrete
// allocations, not requests.
type ServiceEndpoint struct {
	PortID string `json:"port_id"`
	VLAN   int    `json:"vlan"`
}

// TopologyService is a provisioned service the topology reports, used to
// compute which VLANs are already taken.
type TopologyService struct {
	Type      string            `json:"type"`
	Endpoints []ServiceEndpoint `json:"endpoints"`
}

// Topology is the controller's network view.
type Topology struct {
	Name     string            `json:"name,omitempty"`
	Version  string            `json:"model_version,omitempty"`
	Ports    []Port            `json:"ports"`
	Services []TopologyService `json:"services,omitempty"`
}

// AvailablePort is a facility port together with the VLAN tags still free
// on it.
type AvailablePort struct {
	PortID    string `json:"port_id"`
	Name      string `json:"name"`
	Domain    string `json:"domain,omitempty"`
	Node      string `json:"node,omitempty"`
	FreeVLANs []int  `json:"free_vlans"`
}

// Label returns the human-readable handle used for searching ports.
func (p Port) Label() string {
	return p.Name + " (" + p.ID + ")"
}
