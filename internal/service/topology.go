// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/model"
	"github.com/atlanticwave-sdx/sdxlib-go/internal/domain/port"
	"github.com/atlanticwave-sdx/sdxlib-go/pkg/errors"
)

// freeVLANDisplayLimit caps how many free tags are reported per port; a
// full default range would be thousands of entries.
const freeVLANDisplayLimit = 10

// PortInventory computes which facility ports still have VLANs available,
// from the controller's topology view.
type PortInventory struct {
	source port.TopologySource
}

// NewPortInventory creates a new PortInventory service instance
func NewPortInventory(source port.TopologySource) *PortInventory {
	return &PortInventory{source: source}
}

// AvailablePorts lists all ports with unused VLANs: the declared allowed
// range minus the tags already taken by provisioned l2vpn services. The
// optional search filters on the port label, case-insensitively.
func (s *PortInventory) AvailablePorts(ctx context.Context, search string) ([]model.AvailablePort, error) {
	topology, err := s.source.GetTopology(ctx)
	if err != nil {
		return nil, err
	}

	used := vlansInUse(topology)
	search = strings.ToLower(search)

	available := []model.AvailablePort{}
	for _, p := range topology.Ports {
		if search != "" && !strings.Contains(strings.ToLower(p.Label()), search) {
			continue
		}

		allowed, err := allowedVLANs(p.VLANRange)
		if err != nil {
			slog.WarnContext(ctx, "skipping port with unparseable vlan_range",
				"port_id", p.ID,
				"vlan_range", p.VLANRange,
				"error", err,
			)
			continue
		}

		free := subtract(allowed, used[p.ID])
		if len(free) > freeVLANDisplayLimit {
			free = free[:freeVLANDisplayLimit]
		}

		available = append(available, model.AvailablePort{
			PortID:    p.ID,
			Name:      p.Name,
			Domain:    p.Domain,
			Node:      p.Node,
			FreeVLANs: free,
		})
	}

	slog.DebugContext(ctx, "computed available ports",
		"ports", len(available),
		"search", search,
	)
	return available, nil
}

// vlansInUse collects the concrete VLAN allocations per port from the
// topology's provisioned l2vpn services.
func vlansInUse(topology *model.Topology) map[string][]int {
	used := map[string][]int{}
	for _, svc := range topology.Services {
		if svc.Type != "l2vpn" {
			continue
		}
		for _, ep := range svc.Endpoints {
			if ep.PortID != "" && ep.VLAN != 0 {
				used[ep.PortID] = append(used[ep.PortID], ep.VLAN)
			}
		}
	}
	return used
}

// allowedVLANs expands a declared range like "1-100,200" into the sorted
// tag list. An empty declaration means the full default range.
func allowedVLANs(vlanRange string) ([]int, error) {
	if vlanRange == "" {
		full := make([]int, 0, 4094)
		for tag := 1; tag < 4095; tag++ {
			full = append(full, tag)
		}
		return full, nil
	}

	allowed := map[int]struct{}{}
	for _, part := range strings.Split(vlanRange, ",") {
		part = strings.TrimSpace(part)
		if low, high, ok := strings.Cut(part, "-"); ok {
			start, errLow := strconv.Atoi(low)
			end, errHigh := strconv.Atoi(high)
			if errLow != nil || errHigh != nil || start > end {
				return nil, errors.NewValidation(fmt.Sprintf("invalid vlan_range segment %q", part))
			}
			for tag := start; tag <= end; tag++ {
				allowed[tag] = struct{}{}
			}
			continue
		}

		tag, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.NewValidation(fmt.Sprintf("invalid vlan_range segment %q", part))
		}
		allowed[tag] = struct{}{}
	}

	out := make([]int, 0, len(allowed))
	for tag := range allowed {
		out = append(out, tag)
	}
	sort.Ints(out)
	return out, nil
}

// subtract returns the allowed tags not present in taken, preserving order.
func subtract(allowed, taken []int) []int {
	if len(taken) == 0 {
		return allowed
	}

	takenSet := make(map[int]struct{}, len(taken))
	for _, tag := range taken {
		takenSet[tag] = struct{}{}
	}

	free := []int{}
	for _, tag := range allowed {
		if _, ok := takenSet[tag]; !ok {
			free = append(free, tag)
		}
	}
	return free
}
