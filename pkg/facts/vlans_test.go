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

func TestVLANCollect(t *testing.T) {
	api := newFakeAPI()
	api.replies["/show/vlan all"] = `<response status="success"><result><entries>
		<entry><name>guest</name><vif>vlan.100</vif></entry>
		<entry><name>l2-only</name><vif/></entry>
		<entry><name>servers</name><vif>vlan.200</vif></entry>
	</entries></result></response>`

	data, err := NewVLANCollector(api, logger.NewTestLogger()).Collect(context.Background())
	require.NoError(t, err)

	var record struct {
		VLANs []models.VLAN `json:"vlans"`
	}

	require.NoError(t, json.Unmarshal(data, &record))

	// Only routed VLANs make the list.
	require.Len(t, record.VLANs, 2)
	assert.Equal(t, models.VLAN{ID: "100", Name: "guest", IRB: "vlan.100"}, record.VLANs[0])
	assert.Equal(t, "200", record.VLANs[1].ID)
	assert.Equal(t, "vlan.200", record.VLANs[1].IRB)
}

func TestVLANCollectEmpty(t *testing.T) {
	api := newFakeAPI()
	api.replies["/show/vlan all"] = `<response status="success"><result><entries/></result></response>`

	data, err := NewVLANCollector(api, logger.NewTestLogger()).Collect(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"vlans":[]}`, string(data))
}
