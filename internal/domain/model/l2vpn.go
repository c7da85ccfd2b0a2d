// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package model

// Administrative states accepted by the controller on update.
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// Endpoint is one attachment point of an L2VPN: a facility port plus a VLAN
// selection. Immutable once constructed.
type Endpoint struct {
	// PortID is the SDX port URN, e.g. urn:sdx:port:ampath.net:Ampath3:50
	PortID string `json:"port_id"`
	// VLAN is the tag selection: a single tag, a "low:high" range, or one
	// of the special values any, all, untagged
	VLAN string `json:"vlan"`
}

// Notification is an e-mail address the controller notifies about service
// state changes.
type Notification struct {
	Email string `json:"email"`
}

// Scheduling holds the optional activation window for a service, in ISO8601
// UTC timestamps.
type Scheduling struct {
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// QoSMetric is a single quality-of-service requirement. When Strict is set
// the controller must reject the request rather than degrade it.
type QoSMetric struct {
	Value  int  `json:"value"`
	Strict bool `json:"strict,omitempty"`
}

// QoSMetrics groups the quality-of-service requirements the controller
// understands.
type QoSMetrics struct {
	MinBW         *QoSMetric `json:"min_bw,omitempty"`
	MaxDelay      *QoSMetric `json:"max_delay,omitempty"`
	MaxNumberOXPs *QoSMetric `json:"max_number_oxps,omitempty"`
}

// OXPServiceID references the per-exchange-point service a circuit maps to.
type OXPServiceID struct {
	ID string `json:"id"`
}

// L2VPN is the controller's view of a provisioned circuit. All state lives
// server-side; this is the last-seen snapshot.
type L2VPN struct {
	ServiceID        string         `json:"service_id"`
	Name             string         `json:"name"`
	Endpoints        []Endpoint     `json:"endpoints"`
	Description      string         `json:"description,omitempty"`
	Notifications    []Notification `json:"notifications,omitempty"`
	Scheduling       *Scheduling    `json:"scheduling,omitempty"`
	QoSMetrics       *QoSMetrics    `json:"qos_metrics,omitempty"`
	Ownership        string         `json:"ownership,omitempty"`
	CreationDate     string         `json:"creation_date,omitempty"`
	ArchivedDate     string         `json:"archived_date,omitempty"`
	Status           string         `json:"status,omitempty"`
	State            string         `json:"state,omitempty"`
	CountersLocation string         `json:"counters_location,omitempty"`
	LastModified     string         `json:"last_modified,omitempty"`
	CurrentPath      []string       `json:"current_path,omitempty"`
	OXPServiceIDs    []OXPServiceID `json:"oxp_service_ids,omitempty"`
}

// CreateRequest carries everything needed to provision a new L2VPN.
type CreateRequest struct {
	Name          string         `json:"name"`
	Endpoints     []Endpoint     `json:"endpoints"`
	Description   string         `json:"description,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
	Scheduling    *Scheduling    `json:"scheduling,omitempty"`
	QoSMetrics    *QoSMetrics    `json:"qos_metrics,omitempty"`
}

// UpdateRequest carries the mutable attributes of an existing L2VPN. Nil
// fields are left untouched by the controller.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	State       *string `json:"state,omitempty"`
}

// ListFilter narrows a listing of the caller's services.
type ListFilter struct {
	// Archived selects the archived listing instead of the active one
	Archived bool
	// Search is a case-insensitive substring matched against service id
	// and name; empty means no filtering
	Search string
}
