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

// Interface family values. PAN-OS reports "N/A" for logical interfaces with
// no address; those are classified as Ethernet rather than inet.
const (
	FamilyNone     = "None"
	FamilyEthernet = "Ethernet"
	FamilyInet     = "inet"
)

// Counters carries interface rate counters. PAN-OS exposes byte and packet
// totals rather than rates on the per-interface detail output, so these are
// reported empty for compatibility with the record shape consumers expect.
type Counters struct {
	BpsIn  string `json:"bps_in"`
	BpsOut string `json:"bps_out"`
	PpsIn  string `json:"pps_in"`
	PpsOut string `json:"pps_out"`
}

// PoE reports power-over-ethernet state. Not supported on these firewalls.
type PoE struct {
	Admin       string `json:"admin"`
	Operational string `json:"operational"`
	Max         string `json:"max"`
	Used        string `json:"used"`
}

// Subinterface is a named child of a physical interface, identified by a
// dot-suffixed name, carrying its own address family and description.
type Subinterface struct {
	Name        string `json:"subinterface"`
	Family      string `json:"family"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description"`
}

// Interface is one canonical per-interface record: physical attributes joined
// with the matching logical entry, config-only description, and subinterfaces.
type Interface struct {
	Name          string         `json:"name"`
	MAC           string         `json:"mac"`
	Description   string         `json:"description"`
	Family        string         `json:"family"`
	Address       string         `json:"address,omitempty"`
	Speed         string         `json:"speed"`
	Counters      Counters       `json:"counters"`
	Subinterfaces []Subinterface `json:"subinterfaces"`
	PoE           PoE            `json:"poe"`
}

// InterfaceTopology is the correlation engine output. DroppedSubinterfaces
// counts logical subinterface entries whose name prefix matched no physical
// parent; they are excluded from the output.
type InterfaceTopology struct {
	Interfaces           []Interface `json:"interfaces"`
	DroppedSubinterfaces int         `json:"-"`
	FailedCounterFetches int         `json:"-"`
}
