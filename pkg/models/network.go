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

// LLDPNeighbor is one neighbor learned on a local port. Model, serial, and
// vendor are kept in the record shape even though PAN-OS never reports them.
type LLDPNeighbor struct {
	Model       string `json:"model"`
	Serial      string `json:"serial"`
	Vendor      string `json:"vendor"`
	Name        string `json:"name"`
	System      string `json:"system"`
	Description string `json:"description"`
	MAC         string `json:"mac"`
	IP          string `json:"ip"`
}

type VLAN struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IRB         string `json:"irb"`
}

type MACEntry struct {
	MAC       string `json:"mac"`
	VLAN      string `json:"vlan"`
	Interface string `json:"interface"`
}

type NextHop struct {
	Hop       string `json:"hop"`
	Interface string `json:"interface"`
}

type Route struct {
	Route    string    `json:"route"`
	Metric   string    `json:"metric"`
	Protocol string    `json:"protocol"`
	NextHops []NextHop `json:"next-hop"`
}

type OSPFArea struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Authentication *string `json:"authentication"`
	Neighbors      int     `json:"neighbours"`
}

type OSPFNeighbor struct {
	Address   string `json:"address"`
	Interface string `json:"interface"`
	State     string `json:"state"`
	ID        string `json:"id"`
}

type OSPFInterface struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Area      string `json:"area"`
	Neighbors string `json:"neighbors"`
}

// OSPF summarizes the default virtual router's OSPF state.
type OSPF struct {
	RouterID   string          `json:"id"`
	Reference  string          `json:"reference"`
	Areas      []OSPFArea      `json:"areas"`
	Neighbors  []OSPFNeighbor  `json:"neighbor"`
	Interfaces []OSPFInterface `json:"interface"`
}
