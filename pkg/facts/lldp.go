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

var pathLLDPNeighbors = panos.NewCommandPath("show", "lldp", "neighbors")

// LLDPCollector lists the neighbors learned on each local port. What shows up
// depends entirely on what the neighbor advertises; model, serial, and vendor
// are never reported by the device.
type LLDPCollector struct {
	api    API
	logger logger.Logger
}

func NewLLDPCollector(api API, log logger.Logger) *LLDPCollector {
	return &LLDPCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *LLDPCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	result, err := c.api.RunCommand(ctx, pathLLDPNeighbors, "all")
	if err != nil {
		return nil, err
	}

	neighbors := make([]models.LLDPNeighbor, 0)

	for _, port := range panos.Entries(result) {
		// Ports with nothing heard carry an empty neighbors element.
		neighbor := port.Find("neighbors/entry")
		if neighbor.IsNil() {
			continue
		}

		entry := models.LLDPNeighbor{
			Name:        port.Attr("name"),
			System:      neighbor.ChildText("system-name"),
			Description: neighbor.ChildText("system-description"),
		}

		for _, address := range panos.Entries(neighbor.Child("management-address")) {
			if address.ChildText("address-type") == "MAC" {
				entry.MAC = address.Attr("name")
			} else {
				entry.IP = address.Attr("name")
			}
		}

		neighbors = append(neighbors, entry)
	}

	return json.Marshal(map[string][]models.LLDPNeighbor{"interfaces": neighbors})
}
