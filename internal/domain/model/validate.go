// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 255
	maxNotifications     = 10

	minVLAN = 1
	maxVLAN = 4095

	// PortURNPrefix is the required prefix of every SDX port id.
	PortURNPrefix = "urn:sdx:port:"
)

var specialVLANs = map[string]struct{}{
	"any":      {},
	"all":      {},
	"untagged": {},
}

var (
	emailPattern     = regexp.MustCompile(`^\S+@\S+$`)
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)
)

// Validate checks the endpoint's port id and VLAN selection. The VLAN
// grammar is the controller's: a special value, a single tag, or an
// inclusive "low:high" range.
func (e Endpoint) Validate() error {
	if strings.TrimSpace(e.PortID) == "" {
		return errors.NewValidation("each endpoint must contain a non-empty port_id")
	}
	if !strings.HasPrefix(e.PortID, PortURNPrefix) {
		return errors.NewValidation(fmt.Sprintf("invalid port_id format: %s", e.PortID))
	}

	if strings.TrimSpace(e.VLAN) == "" {
		return errors.NewValidation("each endpoint must contain a non-empty vlan")
	}
	return validateVLAN(e.VLAN)
}

func validateVLAN(vlan string) error {
	if _, ok := specialVLANs[vlan]; ok {
		return nil
	}

	if tag, err := strconv.Atoi(vlan); err == nil {
		if tag < minVLAN || tag > maxVLAN {
			return errors.NewValidation(fmt.Sprintf("invalid VLAN value %q: must be between %d and %d", vlan, minVLAN, maxVLAN))
		}
		return nil
	}

	if strings.Contains(vlan, ":") {
		return validateVLANRange(vlan)
	}

	return errors.NewValidation(fmt.Sprintf(
		"invalid VLAN value %q: must be any, all, untagged, a number between %d and %d, or a low:high range",
		vlan, minVLAN, maxVLAN,
	))
}

func validateVLANRange(vlan string) error {
	parts := strings.Split(vlan, ":")
	if len(parts) == 2 {
		low, errLow := strconv.Atoi(parts[0])
		high, errHigh := strconv.Atoi(parts[1])
		if errLow == nil && errHigh == nil && minVLAN <= low && low < high && high <= maxVLAN {
			return nil
		}
	}
	return errors.NewValidation(fmt.Sprintf(
		"invalid VLAN range %q: must be low:high with values between %d and %d and low < high",
		vlan, minVLAN, maxVLAN,
	))
}

// validateEndpoints enforces the minimum endpoint count and the controller's
// VLAN uniformity rule: once any endpoint uses a range or a special value,
// every endpoint must carry the same VLAN value.
func validateEndpoints(endpoints []Endpoint) error {
	if len(endpoints) < 2 {
		return errors.NewValidation("endpoints must contain at least 2 entries")
	}

	values := map[string]struct{}{}
	hasSpecial := false
	hasRange := false
	for _, ep := range endpoints {
		if err := ep.Validate(); err != nil {
			return err
		}
		values[ep.VLAN] = struct{}{}
		if _, ok := specialVLANs[ep.VLAN]; ok {
			hasSpecial = true
		}
		if strings.Contains(ep.VLAN, ":") {
			hasRange = true
		}
	}

	if (hasRange || hasSpecial) && len(values) > 1 {
		return errors.NewValidation("all endpoints must have the same VLAN value when a range or any/all/untagged is used")
	}
	return nil
}

// Validate checks the scheduling window timestamps and ordering.
func (s *Scheduling) Validate() error {
	if s == nil {
		return nil
	}
	for key, value := range map[string]string{"start_time": s.StartTime, "end_time": s.EndTime} {
		if value == "" {
			continue
		}
		if !timestampPattern.MatchString(value) {
			return errors.NewValidation(fmt.Sprintf("invalid %s format: use ISO8601 (YYYY-MM-DDTHH:mm:SSZ)", key))
		}
	}
	if s.StartTime != "" && s.EndTime != "" && s.EndTime <= s.StartTime {
		return errors.NewValidation("end time must be after start time")
	}
	return nil
}

// Validate checks each metric against the controller's accepted ranges.
func (q *QoSMetrics) Validate() error {
	if q == nil {
		return nil
	}
	checks := []struct {
		name     string
		metric   *QoSMetric
		min, max int
	}{
		{"min_bw", q.MinBW, 0, 100},
		{"max_delay", q.MaxDelay, 0, 1000},
		{"max_number_oxps", q.MaxNumberOXPs, 1, 100},
	}
	for _, c := range checks {
		if c.metric == nil {
			continue
		}
		if c.metric.Value < c.min || c.metric.Value > c.max {
			return errors.NewValidation(fmt.Sprintf("%s must be between %d and %d", c.name, c.min, c.max))
		}
	}
	return nil
}

func validateNotifications(notifications []Notification) error {
	if len(notifications) > maxNotifications {
		return errors.NewValidation(fmt.Sprintf("notifications can contain at most %d email addresses", maxNotifications))
	}
	for _, n := range notifications {
		if !emailPattern.MatchString(n.Email) {
			return errors.NewValidation(fmt.Sprintf("invalid email format: %s", n.Email))
		}
	}
	return nil
}

// Validate checks the whole create request locally. A request that fails
// here is never sent over the wire.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || len(r.Name) > maxNameLength {
		return errors.NewValidation(fmt.Sprintf("name must be a non-empty string with at most %d characters", maxNameLength))
	}
	if len(r.Description) > maxDescriptionLength {
		return errors.NewValidation(fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
	if err := validateEndpoints(r.Endpoints); err != nil {
		return err
	}
	if err := validateNotifications(r.Notifications); err != nil {
		return err
	}
	if err := r.Scheduling.Validate(); err != nil {
		return err
	}
	return r.QoSMetrics.Validate()
}

// Validate checks the update request. Only enabled/disabled are accepted as
// administrative states.
func (r UpdateRequest) Validate() error {
	if r.Name == nil && r.Description == nil && r.State == nil {
		return errors.NewValidation("update request must set at least one attribute")
	}
	if r.Name != nil && (strings.TrimSpace(*r.Name) == "" || len(*r.Name) > maxNameLength) {
		return errors.NewValidation(fmt.Sprintf("name must be a non-empty string with at most %d characters", maxNameLength))
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		return errors.NewValidation(fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}
	if r.State != nil {
		state := strings.ToLower(*r.State)
		if state != StateEnabled && state != StateDisabled {
			return errors.NewValidation("invalid state: must be enabled or disabled")
		}
	}
	return nil
}
