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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
)

func TestRoutingCollect(t *testing.T) {
	api := newFakeAPI()
	api.replies["/show/routing/route"] = `<response status="success"><result>
		<entry>
			<virtual-router>default</virtual-router><route-table>unicast</route-table>
			<destination>0.0.0.0/0</destination><metric>10</metric><flags>A S  </flags>
			<nexthop>203.0.113.1</nexthop><interface>ethernet1/1</interface>
		</entry>
		<entry>
			<virtual-router>default</virtual-router><route-table>unicast</route-table>
			<destination>10.0.0.0/24</destination><metric>0</metric><flags>A C  </flags>
			<nexthop>0.0.0.0</nexthop><interface>ethernet1/2</interface>
		</entry>
		<entry>
			<virtual-router>default</virtual-router><route-table>unicast</route-table>
			<destination>10.50.0.0/16</destination><metric>30</metric><flags>A Oi </flags>
			<nexthop>10.0.0.2</nexthop><interface>ethernet1/2</interface>
		</entry>
		<entry>
			<virtual-router>guest-vr</virtual-router><route-table>unicast</route-table>
			<destination>192.168.0.0/24</destination><metric>10</metric><flags>A S  </flags>
			<nexthop>192.168.0.1</nexthop><interface>ethernet1/5</interface>
		</entry>
		<entry>
			<virtual-router>default</virtual-router><route-table>multicast</route-table>
			<destination>224.0.0.0/4</destination><metric>0</metric><flags>A S  </flags>
			<nexthop>0.0.0.0</nexthop><interface/>
		</entry>
	</result></response>`

	data, err := NewRoutingCollector(api, logger.NewTestLogger()).Collect(context.Background())
	require.NoError(t, err)

	var record struct {
		Entries []models.Route `json:"entry"`
	}

	require.NoError(t, json.Unmarshal(data, &record))

	// The guest-vr and multicast rows are out of scope.
	require.Len(t, record.Entries, 3)

	first := record.Entries[0]
	assert.Equal(t, "0.0.0.0/0", first.Route)
	assert.Equal(t, "10", first.Metric)
	assert.Equal(t, "static", first.Protocol)
	require.Len(t, first.NextHops, 1)
	assert.Equal(t, models.NextHop{Hop: "203.0.113.1", Interface: "ethernet1/1"}, first.NextHops[0])

	assert.Equal(t, "connected", record.Entries[1].Protocol)
	assert.Equal(t, "ospf intra-area", record.Entries[2].Protocol)
}

func TestRouteProtocol(t *testing.T) {
	tests := []struct {
		flags string
		want  string
	}{
		{"A H  ", "host"},
		{"A C  ", "connected"},
		{"A S  ", "static"},
		{"A B  ", "bgp"},
		{"A R  ", "rip"},
		{"A Oi ", "ospf intra-area"},
		{"A Oo ", "ospf inter-area"},
		{"A O1 ", "ospf external type 1"},
		{"A O2 ", "ospf external type 2"},
		{"A O  ", "ospf"},
		{"A?E S", "static"},
		{"A E O2 ~", "ospf external type 2"},
		// Unknown combinations pass through cleaned.
		{"A Xy ", "Xy"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flags, func(t *testing.T) {
			assert.Equal(t, tt.want, routeProtocol(tt.flags))
		})
	}
}
