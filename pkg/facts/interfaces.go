/*
 * Copyright 2025 NetAPI Project Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package facts

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
)

var (
	pathShowInterface   = panos.NewCommandPath("show", "interface")
	pathInterfaceConfig = panos.ParsePath("/config/devices/entry/network/interface")
)

const defaultDetailWorkers = 4

// InterfaceCollector correlates the device's four independently shaped
// interface collections (physical, logical, config descriptions, per-interface
// detail) into one canonical topology. PAN-OS splits interfaces into physical
// and logical components; logical interfaces are not the same thing as
// subinterfaces.
type InterfaceCollector struct {
	api           API
	logger        logger.Logger
	detailWorkers int
}

// NewInterfaceCollector builds the correlation engine for one device.
func NewInterfaceCollector(api API, log logger.Logger) *InterfaceCollector {
	return &InterfaceCollector{
		api:           api,
		logger:        log,
		detailWorkers: defaultDetailWorkers,
	}
}

// Collect implements Collector.
func (c *InterfaceCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	topology, err := c.BuildTopology(ctx)
	if err != nil {
		return nil, err
	}

	return json.Marshal(topology)
}

// BuildTopology issues the three top-level reads plus one detail fetch per
// physical interface and joins the results. A failed top-level fetch is fatal
// and surfaces the original typed error; a failed per-interface detail fetch
// only leaves that parent's counters empty.
func (c *InterfaceCollector) BuildTopology(ctx context.Context) (*models.InterfaceTopology, error) {
	hardware, err := c.api.RunCommand(ctx, pathShowInterface, "hardware")
	if err != nil {
		return nil, err
	}

	logical, err := c.api.RunCommand(ctx, pathShowInterface, "logical")
	if err != nil {
		return nil, err
	}

	config, err := c.api.FetchConfig(ctx, pathInterfaceConfig)
	if err != nil {
		return nil, err
	}

	cfg := config.Child("interface")
	physical := panos.Entries(hardware.Child("hw"))
	ifnet := panos.Entries(logical.Child("ifnet"))

	topology := &models.InterfaceTopology{
		Interfaces: make([]models.Interface, 0, len(physical)),
	}

	// Physical entries define the ordered parent set.
	for _, phy := range physical {
		topology.Interfaces = append(topology.Interfaces, c.parentEntry(phy, ifnet, cfg))
	}

	topology.FailedCounterFetches = c.fetchDetails(ctx, topology.Interfaces)

	units := collectUnitDescriptions(cfg)
	c.attachSubinterfaces(topology, ifnet, units)

	return topology, nil
}

// parentEntry assembles one parent record from its physical attributes, the
// matching logical entry, and the config-only description.
func (c *InterfaceCollector) parentEntry(phy *panos.Node, ifnet []*panos.Node, cfg *panos.Node) models.Interface {
	name := phy.ChildText("name")

	entry := models.Interface{
		Name:          name,
		MAC:           phy.ChildText("mac"),
		Description:   physicalDescription(cfg, name),
		Family:        models.FamilyNone,
		Subinterfaces: []models.Subinterface{},
		PoE: models.PoE{
			Admin:       "N/A",
			Operational: "N/A",
			Max:         "N/A",
			Used:        "N/A",
		},
	}

	if logical := matchLogical(ifnet, name); logical != nil {
		if ip := logical.ChildText("ip"); ip == "N/A" {
			entry.Family = models.FamilyEthernet
		} else {
			entry.Family = models.FamilyInet
			entry.Address = ip
		}
	}

	// A down interface reports no usable speed, whatever the raw data says.
	if phy.ChildText("state") == "down" {
		entry.Speed = "None"
	} else {
		entry.Speed = phy.ChildText("speed")
	}

	return entry
}

// matchLogical finds the logical entry whose name equals the parent's name.
// Exact match, first match wins.
func matchLogical(ifnet []*panos.Node, name string) *panos.Node {
	for _, logical := range ifnet {
		if logical.ChildText("name") == name {
			return logical
		}
	}

	return nil
}

// fetchDetails issues the per-interface detail read for every parent through
// a bounded worker pool. The device reports byte and packet totals rather
// than rates here, so the counter fields stay empty either way; a failed
// fetch is counted and logged, never fatal.
func (c *InterfaceCollector) fetchDetails(ctx context.Context, interfaces []models.Interface) int {
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.detailWorkers)

	for _, iface := range interfaces {
		name := iface.Name

		g.Go(func() error {
			if _, err := c.api.RunCommand(gctx, pathShowInterface, name); err != nil {
				failed.Add(1)
				c.logger.Warn().
					Err(err).
					Str("interface", name).
					Msg("Interface detail fetch failed, counters left empty")
			}

			return nil
		})
	}

	_ = g.Wait()

	return int(failed.Load())
}

// attachSubinterfaces walks every logical entry whose name contains a dot,
// splits on the first dot, and attaches it to the parent whose physical name
// equals the prefix. First match wins; unmatched subinterfaces are dropped
// and counted.
func (c *InterfaceCollector) attachSubinterfaces(topology *models.InterfaceTopology, ifnet []*panos.Node, units []unitDescription) {
	for _, logical := range ifnet {
		name := logical.ChildText("name")
		if !strings.Contains(name, ".") {
			continue
		}

		parent := strings.SplitN(name, ".", 2)[0]

		idx := -1

		for i := range topology.Interfaces {
			if topology.Interfaces[i].Name == parent {
				idx = i
				break
			}
		}

		if idx < 0 {
			topology.DroppedSubinterfaces++
			c.logger.Debug().
				Str("subinterface", name).
				Msg("Subinterface has no matching parent, dropped")

			continue
		}

		sub := models.Subinterface{
			Name:        name,
			Description: descriptionForUnit(units, name),
		}

		if ip := logical.ChildText("ip"); ip == "N/A" {
			sub.Family = models.FamilyEthernet
		} else {
			sub.Family = models.FamilyInet
			sub.Address = ip
		}

		topology.Interfaces[idx].Subinterfaces = append(topology.Interfaces[idx].Subinterfaces, sub)
	}
}

// descriptionRule pairs an interface-name substring with the config subtree
// holding its comments. Rules are evaluated in fixed priority order, so a
// name matching several substrings ("ae" inside "ethernet1/1") resolves by
// whichever rule comes first.
type descriptionRule struct {
	substr string
	lookup func(cfg *panos.Node, name string) string
}

var descriptionRules = []descriptionRule{
	{"ethernet", func(cfg *panos.Node, name string) string {
		return commentIn(panos.Entries(cfg.Child("ethernet")), name)
	}},
	{"loopback", func(cfg *panos.Node, name string) string {
		return commentIn(panos.Entries(cfg.Find("loopback/units")), name)
	}},
	{"tunnel", func(cfg *panos.Node, name string) string {
		return commentIn(panos.Entries(cfg.Find("tunnel/units")), name)
	}},
	{"vlan", func(cfg *panos.Node, name string) string {
		// The vlan subtree may be entirely absent; the nil-safe walk
		// yields zero entries in that case.
		return commentIn(panos.Entries(cfg.Find("vlan/units")), name)
	}},
	{"ae", func(cfg *panos.Node, name string) string {
		return commentIn(panos.Entries(cfg.Child("aggregate-ethernet")), name)
	}},
}

// physicalDescription resolves a parent's description from the config tree.
// Descriptions exist only in configuration, never in operational data.
func physicalDescription(cfg *panos.Node, name string) string {
	for _, rule := range descriptionRules {
		if strings.Contains(name, rule.substr) {
			return rule.lookup(cfg, name)
		}
	}

	return ""
}

// commentIn scans entries for an exact name match and returns its comment.
func commentIn(entries []*panos.Node, name string) string {
	for _, entry := range entries {
		if entry.Attr("name") == name {
			return entry.ChildText("comment")
		}
	}

	return ""
}

type unitDescription struct {
	name        string
	description string
}

// collectUnitDescriptions gathers every subinterface comment from the config
// tree: ethernet and aggregate-ethernet layer2/layer3 units, plus the dotted
// loopback, vlan, and tunnel units.
func collectUnitDescriptions(cfg *panos.Node) []unitDescription {
	var units []unitDescription

	add := func(entries []*panos.Node, dottedOnly bool) {
		for _, unit := range entries {
			name := unit.Attr("name")
			if dottedOnly && !strings.Contains(name, ".") {
				continue
			}

			units = append(units, unitDescription{
				name:        name,
				description: unit.ChildText("comment"),
			})
		}
	}

	for _, eth := range panos.Entries(cfg.Child("ethernet")) {
		add(panos.Entries(eth.Find("layer2/units")), false)
		add(panos.Entries(eth.Find("layer3/units")), false)
	}

	add(panos.Entries(cfg.Find("loopback/units")), true)
	add(panos.Entries(cfg.Find("vlan/units")), true)
	add(panos.Entries(cfg.Find("tunnel/units")), true)

	for _, ae := range panos.Entries(cfg.Child("aggregate-ethernet")) {
		add(panos.Entries(ae.Find("layer2/units")), false)
		add(panos.Entries(ae.Find("layer3/units")), false)
	}

	return units
}

// descriptionForUnit returns the first exact name match, or "".
func descriptionForUnit(units []unitDescription, name string) string {
	for _, unit := range units {
		if unit.name == name {
			return unit.description
		}
	}

	return ""
}
