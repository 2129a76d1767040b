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

// CPU is parsed from the device's top output.
type CPU struct {
	Used       float64 `json:"used"`
	Idle       float64 `json:"idle"`
	OneMin     float64 `json:"1_min"`
	FiveMin    float64 `json:"5_min"`
	FifteenMin float64 `json:"15_min"`
}

// Memory totals are reported by the device in KiB.
type Memory struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
}

type Disk struct {
	Disk string `json:"disk"`
	Size string `json:"size"`
	Used string `json:"used"`
}

type Temperature struct {
	CPU     string `json:"cpu"`
	Chassis string `json:"chassis"`
}

type Fan struct {
	Fan    string `json:"fan"`
	Status string `json:"status"`
	RPM    string `json:"rpm"`
	Detail string `json:"detail"`
}

// Hardware is the merged hardware health record.
type Hardware struct {
	CPU         []CPU         `json:"cpu"`
	Memory      []Memory      `json:"memory"`
	Disk        []Disk        `json:"disk"`
	Temperature []Temperature `json:"temperature"`
	Fans        []Fan         `json:"fan"`
}
