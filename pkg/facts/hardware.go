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
	"strconv"
	"strings"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
)

var errResourceOutput = fmt.Errorf("unexpected system resources output")

var (
	pathSystemResources = panos.NewCommandPath("show", "system", "resources")
	pathSystemDiskSpace = panos.NewCommandPath("show", "system", "disk-space")
	pathEnvironmentals  = panos.NewCommandPath("show", "system", "environmentals")
)

// HardwareCollector reads CPU, memory, disk, and environmental state. The
// resource and disk replies are raw top/df text rather than XML, so those are
// parsed positionally the way the device formats them.
type HardwareCollector struct {
	api    API
	logger logger.Logger
}

func NewHardwareCollector(api API, log logger.Logger) *HardwareCollector {
	return &HardwareCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *HardwareCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	resources, err := c.api.RunCommand(ctx, pathSystemResources, "")
	if err != nil {
		return nil, err
	}

	disk, err := c.api.RunCommand(ctx, pathSystemDiskSpace, "")
	if err != nil {
		return nil, err
	}

	env, err := c.api.RunCommand(ctx, pathEnvironmentals, "")
	if err != nil {
		return nil, err
	}

	cpu, memory, err := parseResources(resources.Text())
	if err != nil {
		return nil, err
	}

	record := models.Hardware{
		CPU:         []models.CPU{cpu},
		Memory:      []models.Memory{memory},
		Disk:        parseDiskSpace(disk.Text()),
		Temperature: temperatures(env),
		Fans:        fans(env),
	}

	return json.Marshal(record)
}

// parseResources picks the CPU and memory figures out of the device's top
// output. Line 0 carries the load averages, line 2 the CPU percentages, line
// 3 the KiB memory totals.
func parseResources(top string) (models.CPU, models.Memory, error) {
	lines := strings.Split(top, "\n")
	if len(lines) < 4 {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: %d lines", errResourceOutput, len(lines))
	}

	avg := strings.Split(lines[0], ",")
	stats := strings.Split(lines[2], ",")
	mem := strings.Split(lines[3], ",")

	if len(avg) < 6 || len(stats) < 4 || len(mem) < 3 {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: short field lists", errResourceOutput)
	}

	var (
		cpu models.CPU
		err error
	)

	if cpu.Used, err = floatField(stats[0], "%Cpu(s):", "us"); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: cpu used: %w", errResourceOutput, err)
	}

	if cpu.Idle, err = floatField(stats[3], "", "id"); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: cpu idle: %w", errResourceOutput, err)
	}

	if cpu.OneMin, err = floatField(avg[3], "load average:", ""); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: load average: %w", errResourceOutput, err)
	}

	if cpu.FiveMin, err = floatField(avg[4], "", ""); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: load average: %w", errResourceOutput, err)
	}

	if cpu.FifteenMin, err = floatField(avg[5], "", ""); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: load average: %w", errResourceOutput, err)
	}

	var memory models.Memory

	if memory.Total, err = intField(mem[0], "KiB Mem :", "total"); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: memory total: %w", errResourceOutput, err)
	}

	if memory.Used, err = intField(mem[2], "", "used"); err != nil {
		return models.CPU{}, models.Memory{}, fmt.Errorf("%w: memory used: %w", errResourceOutput, err)
	}

	return cpu, memory, nil
}

// parseDiskSpace reads the df-style table, skipping the header row. Rows too
// short to carry filesystem, size, and used columns are ignored.
func parseDiskSpace(table string) []models.Disk {
	disks := make([]models.Disk, 0)

	lines := strings.Split(table, "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		disks = append(disks, models.Disk{
			Disk: fields[0],
			Size: fields[1],
			Used: fields[2],
		})
	}

	return disks
}

func temperatures(env *panos.Node) []models.Temperature {
	temps := make([]models.Temperature, 0)

	for _, entry := range panos.Entries(env.Find("thermal/Slot1")) {
		temps = append(temps, models.Temperature{
			CPU:     entry.ChildText("DegreesC"),
			Chassis: entry.ChildText("description"),
		})
	}

	return temps
}

func fans(env *panos.Node) []models.Fan {
	list := make([]models.Fan, 0)

	for _, entry := range panos.Entries(env.Find("fan/Slot1")) {
		status := "Alert"
		if entry.ChildText("alarm") == "False" {
			status = "OK"
		}

		list = append(list, models.Fan{
			Fan:    entry.ChildText("description"),
			Status: status,
			RPM:    entry.ChildText("RPMs"),
			Detail: "",
		})
	}

	return list
}

func floatField(raw, prefix, suffix string) (float64, error) {
	return strconv.ParseFloat(trimField(raw, prefix, suffix), 64)
}

func intField(raw, prefix, suffix string) (int64, error) {
	return strconv.ParseInt(trimField(raw, prefix, suffix), 10, 64)
}

func trimField(raw, prefix, suffix string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimSuffix(strings.TrimSpace(s), suffix)

	return strings.TrimSpace(s)
}
