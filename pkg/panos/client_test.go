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

package panos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at a TLS test server while keeping
// certificate verification on, using the server's own trust material.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "https://")
	client := NewClient(host, "test-token", WithHTTPClient(srv.Client()))

	return client, srv
}

func TestRunCommandSuccess(t *testing.T) {
	var gotQuery map[string]string

	var gotKey, gotContentType string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"type": r.URL.Query().Get("type"),
			"cmd":  r.URL.Query().Get("cmd"),
		}
		gotKey = r.Header.Get("X-PAN-KEY")
		gotContentType = r.Header.Get("Content-Type")

		_, _ = w.Write([]byte(`<response status="success"><result><system><hostname>fw01</hostname></system></result></response>`))
	}))

	result, err := client.RunCommand(context.Background(), NewCommandPath("show", "system", "info"), "")
	require.NoError(t, err)

	assert.Equal(t, "op", gotQuery["type"])
	assert.Equal(t, "<show><system><info></info></system></show>", gotQuery["cmd"])
	assert.Equal(t, "test-token", gotKey)
	assert.Equal(t, "application/xml", gotContentType)
	assert.Equal(t, "fw01", result.Find("system/hostname").Text())
}

func TestFetchConfigSendsXPath(t *testing.T) {
	var gotType, gotAction, gotXPath string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		gotAction = r.URL.Query().Get("action")
		gotXPath = r.URL.Query().Get("xpath")

		_, _ = w.Write([]byte(`<response status="success"><result><interface/></result></response>`))
	}))

	_, err := client.FetchConfig(context.Background(), ParsePath("/config/devices/entry/network/interface"))
	require.NoError(t, err)

	assert.Equal(t, "config", gotType)
	assert.Equal(t, "get", gotAction)
	assert.Equal(t, "/config/devices/entry/network/interface", gotXPath)
}

func TestRunCommandDeviceError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<response status="error" code="16"><msg>Unauthorized</msg></response>`))
	}))

	_, err := client.RunCommand(context.Background(), NewCommandPath("show", "system", "info"), "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindDevice, apiErr.Kind)
	assert.Equal(t, "16", apiErr.Code)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestRunCommandMalformedReply(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not xml at all <"))
	}))

	_, err := client.RunCommand(context.Background(), NewCommandPath("show", "system", "info"), "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindParse, apiErr.Kind)
}

func TestRunCommandTimeout(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.RunCommand(ctx, NewCommandPath("show", "system", "info"), "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindTimeout, apiErr.Kind)
	assert.Equal(t, "<show><system><info></info></system></show>", apiErr.Command)
}

func TestRunCommandConnectionRefused(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	host := strings.TrimPrefix(srv.URL, "https://")
	httpClient := srv.Client()
	srv.Close() // nothing listens on the port anymore

	client := NewClient(host, "test-token", WithHTTPClient(httpClient))

	_, err := client.RunCommand(context.Background(), NewCommandPath("show", "system", "info"), "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindConnectionFailed, apiErr.Kind)
}

func TestRunCommandInvalidPath(t *testing.T) {
	client := NewClient("device.example.com", "token")

	_, err := client.RunCommand(context.Background(), CommandPath{}, "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindInvalidCommand, apiErr.Kind)
}
