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

package models

// Facts holds the basic identity of a device.
type Facts struct {
	Hostname string `json:"hostname"`
	Serial   string `json:"serial"`
	Uptime   string `json:"uptime"`
	Model    string `json:"model"`
	Version  string `json:"version"`
}

type License struct {
	ID     string `json:"lic_id"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
}

type RadiusServer struct {
	Server         string `json:"server"`
	Port           string `json:"port"`
	AccountingPort string `json:"acc_port"`
	Timeout        string `json:"timeout"`
	Retry          string `json:"retry"`
	Source         string `json:"source"`
}

type SyslogServer struct {
	Server     string `json:"server"`
	Facilities string `json:"facilities"`
	Level      string `json:"level"`
	Source     string `json:"source"`
	Prefix     string `json:"prefix"`
}

type NTPServer struct {
	Server string `json:"server"`
	Prefer bool   `json:"prefer"`
}

type DNSServer struct {
	Server string `json:"server"`
	Source string `json:"source"`
}

type DNSSettings struct {
	Domain  string      `json:"domain,omitempty"`
	Servers []DNSServer `json:"servers"`
}

type SNMPCommunity struct {
	Community string   `json:"community"`
	Access    string   `json:"access"`
	Clients   []string `json:"clients"`
}

type SNMPSettings struct {
	Name        string          `json:"name"`
	Contact     string          `json:"contact"`
	Description string          `json:"description"`
	Communities []SNMPCommunity `json:"communities"`
}

// DeviceInfo is the merged device_info record: facts plus the management
// plane configuration (licensing, AAA, logging, time, name resolution, SNMP).
type DeviceInfo struct {
	Facts
	Licenses      []License      `json:"licenses"`
	RadiusServers []RadiusServer `json:"radius-servers"`
	SyslogServers []SyslogServer `json:"syslog-servers"`
	NTPServers    []NTPServer    `json:"ntp-servers"`
	DNSServers    DNSSettings    `json:"dns-servers"`
	SNMP          SNMPSettings   `json:"snmp"`
}
