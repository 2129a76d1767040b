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

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
)

var pathShowVLAN = panos.NewCommandPath("show", "vlan")

// VLANCollector lists VLANs that carry a routed vif; pure layer-2 VLANs
// without one are skipped. The VLAN id is the vif's dot suffix.
type VLANCollector struct {
	api    API
	logger logger.Logger
}

func NewVLANCollector(api API, log logger.Logger) *VLANCollector {
	return &VLANCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *VLANCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	result, err := c.api.RunCommand(ctx, pathShowVLAN, "all")
	if err != nil {
		return nil, err
	}

	vlans := make([]models.VLAN, 0)

	for _, vlan := range panos.Entries(result.Child("entries")) {
		vif := vlan.ChildText("vif")
		if vif == "" {
			continue
		}

		id := ""
		if parts := strings.SplitN(vif, ".", 2); len(parts) == 2 {
			id = parts[1]
		}

		vlans = append(vlans, models.VLAN{
			ID:          id,
			Name:        vlan.ChildText("name"),
			Description: "",
			IRB:         vif,
		})
	}

	return json.Marshal(map[string][]models.VLAN{"vlans": vlans})
}
