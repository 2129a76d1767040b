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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseSuccess(t *testing.T) {
	reply := `<response status="success"><result><system><hostname>fw01</hostname></system></result></response>`

	result, err := ParseResponse([]byte(reply), "<show><system><info></info></system></show>")
	require.NoError(t, err)
	require.False(t, result.IsNil())

	assert.Equal(t, "fw01", result.Find("system/hostname").Text())
}

func TestParseResponseEmptyResult(t *testing.T) {
	// A standby device answers config reads with an empty result.
	reply := `<response status="success"><result/></response>`

	result, err := ParseResponse([]byte(reply), "/config/devices/entry/deviceconfig/system/snmp-setting")
	require.NoError(t, err)
	require.False(t, result.IsNil())
	assert.True(t, result.Child("snmp-setting").IsNil())
}

func TestParseResponseDeviceError(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "top level message",
			reply:       `<response status="error" code="17"><msg>Invalid command given</msg></response>`,
			wantCode:    "17",
			wantMessage: "Invalid command given",
		},
		{
			name:        "message nested under result",
			reply:       `<response status="error" code="7"><result><msg>No such node</msg></result></response>`,
			wantCode:    "7",
			wantMessage: "No such node",
		},
		{
			name:        "line-structured message",
			reply:       `<response status="error" code="18"><msg><line>bad tag</line><line>near show</line></msg></response>`,
			wantCode:    "18",
			wantMessage: "bad tag; near show",
		},
		{
			name:        "no message anywhere",
			reply:       `<response status="error" code="2"></response>`,
			wantCode:    "2",
			wantMessage: "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse([]byte(tt.reply), "cmd")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, KindDevice, apiErr.Kind)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, "cmd", apiErr.Command)
		})
	}
}

func TestParseResponseMalformed(t *testing.T) {
	_, err := ParseResponse([]byte("<response status="), "cmd")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindParse, apiErr.Kind)
}

func TestParseResponseMissingRoot(t *testing.T) {
	_, err := ParseResponse([]byte("<reply></reply>"), "cmd")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindParse, apiErr.Kind)
}

func TestCodeText(t *testing.T) {
	assert.Equal(t, "Invalid command", CodeText("17"))
	assert.Equal(t, "Bad request", CodeText("400"))
	assert.Equal(t, "Session timed out", CodeText("22"))

	// Codes absent from the table pass through with a generic label.
	assert.Equal(t, unknownCodeText, CodeText("999"))
	assert.Equal(t, unknownCodeText, CodeText(""))
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Kind: KindDevice, Code: "17", Message: "Invalid command given", Command: "<show></show>"}
	assert.Contains(t, err.Error(), "17")
	assert.Contains(t, err.Error(), "Invalid command")

	timeout := &APIError{Kind: KindTimeout, Message: "timeout while connecting to device", Command: "<show></show>"}
	assert.Contains(t, timeout.Error(), "<show></show>")
}

func TestNodeNilSafety(t *testing.T) {
	var n *Node

	assert.True(t, n.IsNil())
	assert.Empty(t, n.Text())
	assert.Empty(t, n.Attr("name"))
	assert.True(t, n.Child("anything").IsNil())
	assert.True(t, n.Find("a/b/c").IsNil())
	assert.False(t, n.Has("x"))
	assert.Empty(t, n.Children("entry"))
}
