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

// Package facts turns raw PAN-OS API payloads into normalized,
// application-friendly records. Every collector performs an independent
// fetch-parse-return cycle; nothing is cached between calls.
package facts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/panos"
)

var errNoCollector = fmt.Errorf("no collector found")

// API is the slice of the protocol client the collectors consume.
type API interface {
	FetchConfig(ctx context.Context, path panos.CommandPath) (*panos.Node, error)
	RunCommand(ctx context.Context, path panos.CommandPath, arg string) (*panos.Node, error)
}

// Collector produces one feature area's flat record as JSON.
type Collector interface {
	Collect(ctx context.Context) (json.RawMessage, error)
}

// CollectorCreator builds a collector bound to one device.
type CollectorCreator func(ctx context.Context, api API, log logger.Logger) (Collector, error)

// Registry defines how to store and retrieve collector factories.
type Registry interface {
	Register(module string, creator CollectorCreator)
	Get(ctx context.Context, module string, api API, log logger.Logger) (Collector, error)
	Modules() []string
}

// collectorRegistry is a simple in-memory implementation of Registry.
type collectorRegistry struct {
	factories map[string]CollectorCreator
	order     []string
}

// NewRegistry creates a new collector registry.
func NewRegistry() Registry {
	return &collectorRegistry{
		factories: make(map[string]CollectorCreator),
	}
}

// Register adds a collector creator function to the registry under a module name.
func (r *collectorRegistry) Register(module string, creator CollectorCreator) {
	if _, exists := r.factories[module]; !exists {
		r.order = append(r.order, module)
	}

	r.factories[module] = creator
}

// Get retrieves a collector instance for the named module.
func (r *collectorRegistry) Get(ctx context.Context, module string, api API, log logger.Logger) (Collector, error) {
	f, ok := r.factories[module]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errNoCollector, module)
	}

	return f(ctx, api, log)
}

// Modules lists the registered module names in registration order.
func (r *collectorRegistry) Modules() []string {
	return append([]string(nil), r.order...)
}
