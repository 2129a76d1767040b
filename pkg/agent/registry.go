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

package agent

import (
	"context"

	"github.com/netapi/panosd/pkg/facts"
	"github.com/netapi/panosd/pkg/logger"
)

// initRegistry wires every collector the agent can serve. Registration
// order is the order ListModules reports.
func initRegistry() facts.Registry {
	registry := facts.NewRegistry()

	registry.Register("device_info", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewDeviceCollector(api, log), nil
	})
	registry.Register("hardware", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewHardwareCollector(api, log), nil
	})
	registry.Register("interfaces", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewInterfaceCollector(api, log), nil
	})
	registry.Register("lldp", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewLLDPCollector(api, log), nil
	})
	registry.Register("vlans", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewVLANCollector(api, log), nil
	})
	registry.Register("mac", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewMACCollector(api, log), nil
	})
	registry.Register("routing", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewRoutingCollector(api, log), nil
	})
	registry.Register("ospf", func(_ context.Context, api facts.API, log logger.Logger) (facts.Collector, error) {
		return facts.NewOSPFCollector(api, log), nil
	})

	return registry
}
