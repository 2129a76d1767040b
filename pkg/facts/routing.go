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

var pathRoutingRoute = panos.NewCommandPath("show", "routing", "route")

// Route flags carry state markers (active, ecmp, and so on) alongside the
// protocol letters; the markers are stripped before decoding the protocol.
var routeFlagMarkers = strings.NewReplacer("A", "", "?", "", "E", "", "M", "", "~", "", " ", "")

var routeProtocols = map[string]string{
	"H":  "host",
	"C":  "connected",
	"S":  "static",
	"B":  "bgp",
	"R":  "rip",
	"Oi": "ospf intra-area",
	"Oo": "ospf inter-area",
	"O1": "ospf external type 1",
	"O2": "ospf external type 2",
	"O":  "ospf",
}

// RoutingCollector reads the unicast routing table of the default virtual
// router; other routers and route tables are skipped.
type RoutingCollector struct {
	api    API
	logger logger.Logger
}

func NewRoutingCollector(api API, log logger.Logger) *RoutingCollector {
	return &RoutingCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *RoutingCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	result, err := c.api.RunCommand(ctx, pathRoutingRoute, "")
	if err != nil {
		return nil, err
	}

	routes := make([]models.Route, 0)

	for _, route := range panos.Entries(result) {
		if route.ChildText("virtual-router") != "default" {
			continue
		}

		if route.ChildText("route-table") != "unicast" {
			continue
		}

		routes = append(routes, models.Route{
			Route:    route.ChildText("destination"),
			Metric:   route.ChildText("metric"),
			Protocol: routeProtocol(route.ChildText("flags")),
			NextHops: []models.NextHop{{
				Hop:       route.ChildText("nexthop"),
				Interface: route.ChildText("interface"),
			}},
		})
	}

	return json.Marshal(map[string][]models.Route{"entry": routes})
}

// routeProtocol decodes the remaining flag letters; combinations outside the
// table pass through as-is.
func routeProtocol(flags string) string {
	cleaned := routeFlagMarkers.Replace(flags)

	if protocol, ok := routeProtocols[cleaned]; ok {
		return protocol
	}

	return cleaned
}
