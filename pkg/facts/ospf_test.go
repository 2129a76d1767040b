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

func newOSPFFake() *fakeAPI {
	api := newFakeAPI()

	api.replies["/show/routing/protocol/ospf/summary"] = `<response status="success"><result>
		<entry><virtual-router>default</virtual-router><router-id>10.0.0.1</router-id></entry>
		<entry><virtual-router>guest-vr</virtual-router><router-id>192.168.0.1</router-id></entry>
	</result></response>`

	api.replies["/show/routing/protocol/ospf/area"] = `<response status="success"><result>
		<entry><virtual-router>default</virtual-router><area-id>0.0.0.0</area-id><area-type>normal</area-type></entry>
		<entry><virtual-router>default</virtual-router><area-id>0.0.0.1</area-id><area-type>stub</area-type></entry>
		<entry><virtual-router>guest-vr</virtual-router><area-id>0.0.0.9</area-id><area-type>normal</area-type></entry>
	</result></response>`

	api.replies["/show/routing/protocol/ospf/neighbor"] = `<response status="success"><result>
		<entry>
			<virtual-router>default</virtual-router><area-id>0.0.0.0</area-id>
			<neighbor-address>10.0.0.2</neighbor-address><status>full</status>
			<neighbor-router-id>10.0.0.2</neighbor-router-id>
		</entry>
		<entry>
			<virtual-router>default</virtual-router><area-id>0.0.0.0</area-id>
			<neighbor-address>10.0.0.3</neighbor-address><status>2way</status>
			<neighbor-router-id>10.0.0.3</neighbor-router-id>
		</entry>
	</result></response>`

	api.replies["/show/routing/protocol/ospf/interface"] = `<response status="success"><result>
		<entry>
			<virtual-router>default</virtual-router><interface-name>ethernet1/2</interface-name>
			<status>p2p</status><area-id>0.0.0.0</area-id>
		</entry>
		<entry>
			<virtual-router>guest-vr</virtual-router><interface-name>ethernet1/5</interface-name>
			<status>down</status><area-id>0.0.0.9</area-id>
		</entry>
	</result></response>`

	return api
}

func TestOSPFCollect(t *testing.T) {
	data, err := NewOSPFCollector(newOSPFFake(), logger.NewTestLogger()).Collect(context.Background())
	require.NoError(t, err)

	var record models.OSPF
	require.NoError(t, json.Unmarshal(data, &record))

	assert.Equal(t, "10.0.0.1", record.RouterID)
	assert.Equal(t, "100m", record.Reference)

	require.Len(t, record.Areas, 2)
	assert.Equal(t, "0.0.0.0", record.Areas[0].ID)
	assert.Equal(t, "normal", record.Areas[0].Type)
	assert.Nil(t, record.Areas[0].Authentication)
	assert.Equal(t, 2, record.Areas[0].Neighbors)
	assert.Equal(t, "stub", record.Areas[1].Type)
	assert.Zero(t, record.Areas[1].Neighbors)

	require.Len(t, record.Neighbors, 2)
	assert.Equal(t, "10.0.0.2", record.Neighbors[0].Address)
	assert.Equal(t, "full", record.Neighbors[0].State)
	assert.Equal(t, "2way", record.Neighbors[1].State)

	require.Len(t, record.Interfaces, 1)
	assert.Equal(t, "ethernet1/2", record.Interfaces[0].Name)
	assert.Equal(t, "p2p", record.Interfaces[0].State)
	assert.Equal(t, "0.0.0.0", record.Interfaces[0].Area)
}

func TestOSPFNoNeighbors(t *testing.T) {
	api := newOSPFFake()
	api.replies["/show/routing/protocol/ospf/neighbor"] = `<response status="success"><result/></response>`

	data, err := NewOSPFCollector(api, logger.NewTestLogger()).Collect(context.Background())
	require.NoError(t, err)

	var record models.OSPF
	require.NoError(t, json.Unmarshal(data, &record))

	assert.Empty(t, record.Neighbors)
	assert.Zero(t, record.Areas[0].Neighbors)
}
