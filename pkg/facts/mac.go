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

var pathShowMAC = panos.NewCommandPath("show", "mac")

// MACCollector reads the switching MAC table, not ARP. A device running in
// pure L3 mode has no table at all; that case yields a single empty record so
// consumers still see the expected shape.
type MACCollector struct {
	api    API
	logger logger.Logger
}

func NewMACCollector(api API, log logger.Logger) *MACCollector {
	return &MACCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *MACCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	result, err := c.api.RunCommand(ctx, pathShowMAC, "all")
	if err != nil {
		return nil, err
	}

	table := panos.Entries(result.Child("entries"))

	entries := make([]models.MACEntry, 0, len(table))

	if len(table) == 0 {
		entries = append(entries, models.MACEntry{})
	}

	for _, item := range table {
		entries = append(entries, models.MACEntry{
			MAC:       item.ChildText("mac"),
			VLAN:      item.ChildText("vlan"),
			Interface: item.ChildText("interface"),
		})
	}

	return json.Marshal(map[string][]models.MACEntry{"entry": entries})
}
