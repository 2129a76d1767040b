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

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
)

var (
	pathOSPFSummary   = panos.NewCommandPath("show", "routing", "protocol", "ospf", "summary")
	pathOSPFArea      = panos.NewCommandPath("show", "routing", "protocol", "ospf", "area")
	pathOSPFNeighbor  = panos.NewCommandPath("show", "routing", "protocol", "ospf", "neighbor")
	pathOSPFInterface = panos.NewCommandPath("show", "routing", "protocol", "ospf", "interface")
)

// The device does not expose the reference bandwidth; report the platform
// constant.
const ospfReferenceBandwidth = "100m"

// OSPFCollector merges the summary, area, neighbor, and interface views for
// the default virtual router.
type OSPFCollector struct {
	api    API
	logger logger.Logger
}

func NewOSPFCollector(api API, log logger.Logger) *OSPFCollector {
	return &OSPFCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *OSPFCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	summary, err := c.api.RunCommand(ctx, pathOSPFSummary, "")
	if err != nil {
		return nil, err
	}

	area, err := c.api.RunCommand(ctx, pathOSPFArea, "")
	if err != nil {
		return nil, err
	}

	neighbor, err := c.api.RunCommand(ctx, pathOSPFNeighbor, "")
	if err != nil {
		return nil, err
	}

	iface, err := c.api.RunCommand(ctx, pathOSPFInterface, "")
	if err != nil {
		return nil, err
	}

	neighbors := panos.Entries(neighbor)

	record := models.OSPF{
		Reference:  ospfReferenceBandwidth,
		Areas:      make([]models.OSPFArea, 0),
		Neighbors:  make([]models.OSPFNeighbor, 0),
		Interfaces: make([]models.OSPFInterface, 0),
	}

	for _, entry := range panos.Entries(summary) {
		if entry.ChildText("virtual-router") != "default" {
			continue
		}

		record.RouterID = entry.ChildText("router-id")
	}

	for _, entry := range panos.Entries(area) {
		if entry.ChildText("virtual-router") != "default" {
			continue
		}

		id := entry.ChildText("area-id")

		count := 0

		for _, n := range neighbors {
			if n.ChildText("area-id") == id {
				count++
			}
		}

		record.Areas = append(record.Areas, models.OSPFArea{
			ID:   id,
			Type: entry.ChildText("area-type"),
			// Authentication is configured per interface on these
			// devices, not per area.
			Authentication: nil,
			Neighbors:      count,
		})
	}

	for _, entry := range neighbors {
		if entry.ChildText("virtual-router") != "default" {
			continue
		}

		record.Neighbors = append(record.Neighbors, models.OSPFNeighbor{
			Address:   entry.ChildText("neighbor-address"),
			Interface: "",
			State:     entry.ChildText("status"),
			ID:        entry.ChildText("neighbor-router-id"),
		})
	}

	for _, entry := range panos.Entries(iface) {
		if entry.ChildText("virtual-router") != "default" {
			continue
		}

		record.Interfaces = append(record.Interfaces, models.OSPFInterface{
			Name:      entry.ChildText("interface-name"),
			State:     entry.ChildText("status"),
			Area:      entry.ChildText("area-id"),
			Neighbors: "",
		})
	}

	return json.Marshal(record)
}
