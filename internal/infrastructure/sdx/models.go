// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package sdx

import "github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"

// createPayload is the wire shape of an L2VPN creation request. Ownership
// is filled in from the credential when a session is established.
type createPayload struct {
	Name          string               `json:"name"`
	Endpoints     []model.Endpoint     `json:"endpoints"`
	Ownership     string               `json:"ownership,omitempty"`
	Description   string               `json:"description,omitempty"`
	Notifications []model.Notification `json:"notifications,omitempty"`
	Scheduling    *model.Scheduling    `json:"scheduling,omitempty"`
	QoSMetrics    *model.QoSMetrics    `json:"qos_metrics,omitempty"`
}

// createResponse is the controller's answer to a creation request.
type createResponse struct {
	ServiceID string   `json:"service_id"`
	Warnings  []string `json:"warnings,omitempty"`
}

// updatePayload mirrors model.UpdateRequest plus the service id the
// controller expects in the body.
type updatePayload struct {
	ServiceID   string  `json:"service_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	State       *string `json:"state,omitempty"`
}

// loginPayload carries the identity attributes derived from the token
// claims to the session endpoint.
type loginPayload struct {
	Source    string `json:"source"`
	Ownership string `json:"ownership"`
	Email     string `json:"email"`
	EPPN      string `json:"eppn"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// errorResponse is the controller's error body, when it sends one.
type errorResponse struct {
	Error string `json:"error,omitempty"`
}

// statusMessages maps the controller's documented status codes for L2VPN
// operations to their meaning.
var statusMessages = map[int]string{
	201: "L2VPN Service Created",
	400: "Request does not have a valid JSON or body is incomplete/incorrect",
	401: "Not Authorized",
	402: "Request not compatible (e.g., P2MP L2VPN requested, but only P2P supported)",
	409: "L2VPN Service already exists",
	410: "Can't fulfill the strict QoS requirements",
	411: "Scheduling not possible",
	412: "No path available between endpoints",
	422: "Attribute not supported by the SDX-LC/OXPO",
}
