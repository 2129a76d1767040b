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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
)

const interfaceHardwareReply = `<response status="success"><result><hw>
	<entry><name>ethernet1/1</name><mac>00:1b:17:00:01:10</mac><state>up</state><speed>1000</speed></entry>
	<entry><name>ethernet1/2</name><mac>00:1b:17:00:01:11</mac><state>down</state><speed>ukn</speed></entry>
	<entry><name>ae1</name><mac>00:1b:17:00:01:12</mac><state>up</state><speed>10000</speed></entry>
</hw></result></response>`

const interfaceLogicalReply = `<response status="success"><result><ifnet>
	<entry><name>ethernet1/1</name><ip>10.0.0.1/24</ip></entry>
	<entry><name>ethernet1/1.100</name><ip>10.0.100.1/24</ip></entry>
	<entry><name>ethernet1/1.200</name><ip>N/A</ip></entry>
	<entry><name>ae1</name><ip>N/A</ip></entry>
	<entry><name>tunnel.1</name><ip>N/A</ip></entry>
</ifnet></result></response>`

const interfaceConfigReply = `<response status="success"><result><interface>
	<ethernet>
		<entry name="ethernet1/1"><comment>uplink to core</comment>
			<layer3><units>
				<entry name="ethernet1/1.100"><comment>guest vlan</comment></entry>
				<entry name="ethernet1/1.200"/>
			</units></layer3>
		</entry>
		<entry name="ethernet1/2"/>
	</ethernet>
	<aggregate-ethernet>
		<entry name="ae1"><comment>core bundle</comment></entry>
	</aggregate-ethernet>
</interface></result></response>`

const interfaceDetailReply = `<response status="success"><result><ifnet><counters><ifnet>
	<entry><ibytes>100</ibytes><obytes>200</obytes></entry>
</ifnet></counters></ifnet></result></response>`

func newTopologyFake() *fakeAPI {
	api := newFakeAPI()
	api.replies["/show/interface hardware"] = interfaceHardwareReply
	api.replies["/show/interface logical"] = interfaceLogicalReply
	api.replies["/config/devices/entry/network/interface"] = interfaceConfigReply
	api.replies["/show/interface ethernet1/1"] = interfaceDetailReply
	api.replies["/show/interface ethernet1/2"] = interfaceDetailReply
	api.replies["/show/interface ae1"] = interfaceDetailReply

	return api
}

func TestBuildTopology(t *testing.T) {
	api := newTopologyFake()

	topology, err := NewInterfaceCollector(api, logger.NewTestLogger()).BuildTopology(context.Background())
	require.NoError(t, err)
	require.Len(t, topology.Interfaces, 3)

	eth1 := topology.Interfaces[0]
	assert.Equal(t, "ethernet1/1", eth1.Name)
	assert.Equal(t, "00:1b:17:00:01:10", eth1.MAC)
	assert.Equal(t, models.FamilyInet, eth1.Family)
	assert.Equal(t, "10.0.0.1/24", eth1.Address)
	assert.Equal(t, "1000", eth1.Speed)
	assert.Equal(t, "uplink to core", eth1.Description)

	require.Len(t, eth1.Subinterfaces, 2)
	assert.Equal(t, "ethernet1/1.100", eth1.Subinterfaces[0].Name)
	assert.Equal(t, models.FamilyInet, eth1.Subinterfaces[0].Family)
	assert.Equal(t, "10.0.100.1/24", eth1.Subinterfaces[0].Address)
	assert.Equal(t, "guest vlan", eth1.Subinterfaces[0].Description)
	assert.Equal(t, models.FamilyEthernet, eth1.Subinterfaces[1].Family)
	assert.Empty(t, eth1.Subinterfaces[1].Address)

	// No logical entry and administratively down.
	eth2 := topology.Interfaces[1]
	assert.Equal(t, models.FamilyNone, eth2.Family)
	assert.Empty(t, eth2.Address)
	assert.Equal(t, "None", eth2.Speed)
	assert.Empty(t, eth2.Description)
	assert.Empty(t, eth2.Subinterfaces)

	// Addressless logical entry, description from the aggregate subtree.
	ae1 := topology.Interfaces[2]
	assert.Equal(t, models.FamilyEthernet, ae1.Family)
	assert.Empty(t, ae1.Address)
	assert.Equal(t, "10000", ae1.Speed)
	assert.Equal(t, "core bundle", ae1.Description)

	// tunnel.1 matches no physical parent.
	assert.Equal(t, 1, topology.DroppedSubinterfaces)
	assert.Zero(t, topology.FailedCounterFetches)

	// One detail fetch per parent.
	assert.True(t, api.called("/show/interface ethernet1/1"))
	assert.True(t, api.called("/show/interface ethernet1/2"))
	assert.True(t, api.called("/show/interface ae1"))
}

func TestBuildTopologyDetailFetchFailure(t *testing.T) {
	api := newTopologyFake()
	api.errs["/show/interface ethernet1/2"] = &panos.APIError{
		Kind:    panos.KindTimeout,
		Message: "timeout while connecting to device",
	}

	topology, err := NewInterfaceCollector(api, logger.NewTestLogger()).BuildTopology(context.Background())
	require.NoError(t, err)

	// A dead detail fetch never breaks the build.
	require.Len(t, topology.Interfaces, 3)
	assert.Equal(t, 1, topology.FailedCounterFetches)
	assert.Empty(t, topology.Interfaces[1].Counters.BpsIn)
}

func TestBuildTopologyFatalOnTopLevelFailure(t *testing.T) {
	api := newTopologyFake()
	api.errs["/show/interface logical"] = &panos.APIError{
		Kind:    panos.KindDevice,
		Code:    "16",
		Message: "Unauthorized",
	}

	_, err := NewInterfaceCollector(api, logger.NewTestLogger()).BuildTopology(context.Background())
	require.Error(t, err)

	var apiErr *panos.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, panos.KindDevice, apiErr.Kind)
	assert.Equal(t, "16", apiErr.Code)
}

func TestCollectMarshalsTopology(t *testing.T) {
	api := newTopologyFake()

	data, err := NewInterfaceCollector(api, logger.NewTestLogger()).Collect(context.Background())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"subinterface":"ethernet1/1.100"`)
	assert.Contains(t, string(data), `"poe"`)
	assert.NotContains(t, string(data), "DroppedSubinterfaces")
}

func TestPhysicalDescriptionDispatch(t *testing.T) {
	cfgReply := `<response status="success"><result><interface>
		<ethernet><entry name="ethernet1/5"><comment>edge</comment></entry></ethernet>
		<loopback><units><entry name="loopback.10"><comment>router id</comment></entry></units></loopback>
		<tunnel><units><entry name="tunnel.2"><comment>vpn</comment></entry></units></tunnel>
		<aggregate-ethernet><entry name="ae2"><comment>lacp pair</comment></entry></aggregate-ethernet>
	</interface></result></response>`

	result, err := panos.ParseResponse([]byte(cfgReply), "cfg")
	require.NoError(t, err)

	cfg := result.Child("interface")

	tests := []struct {
		name string
		want string
	}{
		{"ethernet1/5", "edge"},
		{"loopback.10", "router id"},
		{"tunnel.2", "vpn"},
		{"ae2", "lacp pair"},
		{"vlan.30", ""},   // vlan subtree absent entirely
		{"ha1", ""},       // no rule matches
		{"ethernet9/9", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, physicalDescription(cfg, tt.name))
		})
	}
}

func TestCollectUnitDescriptions(t *testing.T) {
	cfgReply := `<response status="success"><result><interface>
		<ethernet><entry name="ethernet1/1">
			<layer2><units><entry name="ethernet1/1.50"><comment>l2 seg</comment></entry></units></layer2>
			<layer3><units><entry name="ethernet1/1.100"><comment>guest</comment></entry></units></layer3>
		</entry></ethernet>
		<loopback><units>
			<entry name="loopback"/>
			<entry name="loopback.1"><comment>mgmt</comment></entry>
		</units></loopback>
		<aggregate-ethernet><entry name="ae1">
			<layer3><units><entry name="ae1.10"><comment>transit</comment></entry></units></layer3>
		</entry></aggregate-ethernet>
	</interface></result></response>`

	result, err := panos.ParseResponse([]byte(cfgReply), "cfg")
	require.NoError(t, err)

	units := collectUnitDescriptions(result.Child("interface"))

	assert.Equal(t, "l2 seg", descriptionForUnit(units, "ethernet1/1.50"))
	assert.Equal(t, "guest", descriptionForUnit(units, "ethernet1/1.100"))
	assert.Equal(t, "mgmt", descriptionForUnit(units, "loopback.1"))
	assert.Equal(t, "transit", descriptionForUnit(units, "ae1.10"))

	// The undotted loopback base unit is not a subinterface.
	assert.Empty(t, descriptionForUnit(units, "loopback"))
	assert.Empty(t, descriptionForUnit(units, "ethernet1/1.999"))
}
