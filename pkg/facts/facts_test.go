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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/panos"
)

// fakeAPI serves canned XML replies keyed by "<path> <arg>" (or the bare
// path for config reads). Detail fetches run concurrently, hence the mutex.
type fakeAPI struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	calls   []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		replies: make(map[string]string),
		errs:    make(map[string]error),
	}
}

func (f *fakeAPI) FetchConfig(_ context.Context, path panos.CommandPath) (*panos.Node, error) {
	return f.reply(path.String())
}

func (f *fakeAPI) RunCommand(_ context.Context, path panos.CommandPath, arg string) (*panos.Node, error) {
	key := path.String()
	if arg != "" {
		key += " " + arg
	}

	return f.reply(key)
}

func (f *fakeAPI) reply(key string) (*panos.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, key)

	if err, ok := f.errs[key]; ok {
		return nil, err
	}

	raw, ok := f.replies[key]
	if !ok {
		return nil, fmt.Errorf("fakeAPI: no reply registered for %q", key)
	}

	return panos.ParseResponse([]byte(raw), key)
}

func (f *fakeAPI) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.calls {
		if c == key {
			return true
		}
	}

	return false
}

type staticCollector struct {
	data json.RawMessage
}

func (s *staticCollector) Collect(context.Context) (json.RawMessage, error) {
	return s.data, nil
}

func TestRegistryGetUnknownModule(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get(context.Background(), "no-such-module", newFakeAPI(), logger.NewTestLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoCollector)
}

func TestRegistryModulesOrder(t *testing.T) {
	reg := NewRegistry()

	creator := func(_ context.Context, _ API, _ logger.Logger) (Collector, error) {
		return &staticCollector{data: json.RawMessage(`{}`)}, nil
	}

	reg.Register("hardware", creator)
	reg.Register("device_info", creator)
	reg.Register("hardware", creator) // re-registration keeps the original slot

	assert.Equal(t, []string{"hardware", "device_info"}, reg.Modules())

	c, err := reg.Get(context.Background(), "device_info", newFakeAPI(), logger.NewTestLogger())
	require.NoError(t, err)

	data, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}
