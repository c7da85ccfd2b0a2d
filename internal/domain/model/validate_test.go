// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package model

import (
	"testing"

	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func validEndpoints() []Endpoint {
	return []Endpoint{
		{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "150"},
		{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "300"},
	}
}

func TestCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr string
	}{
		{
			name: "valid request",
			req:  CreateRequest{Name: "TestL2VPN", Endpoints: validEndpoints()},
		},
		{
			name:    "empty name",
			req:     CreateRequest{Name: "", Endpoints: validEndpoints()},
			wantErr: "name must be",
		},
		{
			name: "name too long",
			req: CreateRequest{
				Name:      "This is a very long name that goes beyond the max!!",
				Endpoints: validEndpoints(),
			},
			wantErr: "name must be",
		},
		{
			name:    "no endpoints",
			req:     CreateRequest{Name: "Test"},
			wantErr: "at least 2 entries",
		},
		{
			name: "single endpoint",
			req: CreateRequest{
				Name:      "Test",
				Endpoints: validEndpoints()[:1],
			},
			wantErr: "at least 2 entries",
		},
		{
			name: "endpoint missing port_id",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "", VLAN: "100"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "100"},
				},
			},
			wantErr: "non-empty port_id",
		},
		{
			name: "endpoint missing vlan",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: ""},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "100"},
				},
			},
			wantErr: "non-empty vlan",
		},
		{
			name: "port id without urn prefix",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "ampath.net:Ampath3:50", VLAN: "100"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "100"},
				},
			},
			wantErr: "invalid port_id format",
		},
		{
			name: "vlan out of range",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "5000"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "100"},
				},
			},
			wantErr: "invalid VLAN value",
		},
		{
			name: "vlan range valid when uniform",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "100:200"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "100:200"},
				},
			},
		},
		{
			name: "vlan range reversed",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "200:100"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "200:100"},
				},
			},
			wantErr: "invalid VLAN range",
		},
		{
			name: "mixed range and single tag",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "100:200"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "150"},
				},
			},
			wantErr: "same VLAN value",
		},
		{
			name: "untagged on all endpoints",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "untagged"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "untagged"},
				},
			},
		},
		{
			name: "special value mixed with tag",
			req: CreateRequest{
				Name: "Test",
				Endpoints: []Endpoint{
					{PortID: "urn:sdx:port:ampath.net:Ampath3:50", VLAN: "any"},
					{PortID: "urn:sdx:port:tenet.ac.za:Tenet03:50", VLAN: "100"},
				},
			},
			wantErr: "same VLAN value",
		},
		{
			name: "description too long",
			req: CreateRequest{
				Name:        "Test",
				Endpoints:   validEndpoints(),
				Description: string(make([]byte, 256)),
			},
			wantErr: "description must be",
		},
		{
			name: "too many notifications",
			req: CreateRequest{
				Name:      "Test",
				Endpoints: validEndpoints(),
				Notifications: []Notification{
					{Email: "a@b.c"}, {Email: "a@b.c"}, {Email: "a@b.c"}, {Email: "a@b.c"},
					{Email: "a@b.c"}, {Email: "a@b.c"}, {Email: "a@b.c"}, {Email: "a@b.c"},
					{Email: "a@b.c"}, {Email: "a@b.c"}, {Email: "a@b.c"},
				},
			},
			wantErr: "at most 10",
		},
		{
			name: "invalid notification email",
			req: CreateRequest{
				Name:          "Test",
				Endpoints:     validEndpoints(),
				Notifications: []Notification{{Email: "not-an-email"}},
			},
			wantErr: "invalid email format",
		},
		{
			name: "valid scheduling window",
			req: CreateRequest{
				Name:      "Test",
				Endpoints: validEndpoints(),
				Scheduling: &Scheduling{
					StartTime: "2026-09-01T10:00:00Z",
					EndTime:   "2026-09-02T10:00:00Z",
				},
			},
		},
		{
			name: "scheduling end before start",
			req: CreateRequest{
				Name:      "Test",
				Endpoints: validEndpoints(),
				Scheduling: &Scheduling{
					StartTime: "2026-09-02T10:00:00Z",
					EndTime:   "2026-09-01T10:00:00Z",
				},
			},
			wantErr: "end time must be after start time",
		},
		{
			name: "scheduling bad timestamp",
			req: CreateRequest{
				Name:       "Test",
				Endpoints:  validEndpoints(),
				Scheduling: &Scheduling{StartTime: "tomorrow"},
			},
			wantErr: "ISO8601",
		},
		{
			name: "qos min_bw out of range",
			req: CreateRequest{
				Name:       "Test",
				Endpoints:  validEndpoints(),
				QoSMetrics: &QoSMetrics{MinBW: &QoSMetric{Value: 150}},
			},
			wantErr: "min_bw must be between 0 and 100",
		},
		{
			name: "qos max_delay valid",
			req: CreateRequest{
				Name:       "Test",
				Endpoints:  validEndpoints(),
				QoSMetrics: &QoSMetrics{MaxDelay: &QoSMetric{Value: 500, Strict: true}},
			},
		},
		{
			name: "qos max_number_oxps below minimum",
			req: CreateRequest{
				Name:       "Test",
				Endpoints:  validEndpoints(),
				QoSMetrics: &QoSMetrics{MaxNumberOXPs: &QoSMetric{Value: 0}},
			},
			wantErr: "max_number_oxps must be between 1 and 100",
		},
	}

	assertion := assert.New(t)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assertion.NoError(err)
				return
			}

			assertion.Error(err)
			var validation errors.Validation
			assertion.ErrorAs(err, &validation)
			assertion.Contains(err.Error(), tc.wantErr)
		})
	}
}

func TestUpdateRequestValidate(t *testing.T) {
	name := "NewName"
	longName := "This is a very long name that goes beyond the max!!"
	enabled := "Enabled"
	bogus := "paused"

	tests := []struct {
		name    string
		req     UpdateRequest
		wantErr string
	}{
		{
			name: "valid name change",
			req:  UpdateRequest{Name: &name},
		},
		{
			name: "valid state change, case-insensitive",
			req:  UpdateRequest{State: &enabled},
		},
		{
			name:    "empty request",
			req:     UpdateRequest{},
			wantErr: "at least one attribute",
		},
		{
			name:    "name too long",
			req:     UpdateRequest{Name: &longName},
			wantErr: "name must be",
		},
		{
			name:    "invalid state",
			req:     UpdateRequest{State: &bogus},
			wantErr: "must be enabled or disabled",
		},
	}

	assertion := assert.New(t)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assertion.NoError(err)
				return
			}
			assertion.Error(err)
			assertion.Contains(err.Error(), tc.wantErr)
		})
	}
}
