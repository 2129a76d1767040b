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

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
)

// RADIUS server profile defaults applied when the config omits the field.
const (
	defaultRadiusTimeout        = "5"
	defaultRadiusRetries        = "3"
	defaultRadiusAccountingPort = "1813"
)

var (
	pathSystemInfo   = panos.NewCommandPath("show", "system", "info")
	pathLicenseInfo  = panos.NewCommandPath("request", "license", "info")
	pathRadiusConfig = panos.ParsePath("/config/shared/server-profile/radius")
	pathSyslogConfig = panos.ParsePath("/config/shared/log-settings/syslog")
	pathSystemConfig = panos.ParsePath("/config/devices/entry/deviceconfig/system")
	pathSNMPConfig   = panos.ParsePath("/config/devices/entry/deviceconfig/system/snmp-setting")
)

// DeviceCollector assembles the device_info record: identity facts plus the
// management-plane configuration (licensing, AAA, logging, time, name
// resolution, SNMP).
type DeviceCollector struct {
	api    API
	logger logger.Logger
}

func NewDeviceCollector(api API, log logger.Logger) *DeviceCollector {
	return &DeviceCollector{api: api, logger: log}
}

// Collect implements Collector.
func (c *DeviceCollector) Collect(ctx context.Context) (json.RawMessage, error) {
	info, err := c.api.RunCommand(ctx, pathSystemInfo, "")
	if err != nil {
		return nil, err
	}

	license, err := c.api.RunCommand(ctx, pathLicenseInfo, "")
	if err != nil {
		return nil, err
	}

	radius, err := c.api.FetchConfig(ctx, pathRadiusConfig)
	if err != nil {
		return nil, err
	}

	syslog, err := c.api.FetchConfig(ctx, pathSyslogConfig)
	if err != nil {
		return nil, err
	}

	system, err := c.api.FetchConfig(ctx, pathSystemConfig)
	if err != nil {
		return nil, err
	}

	snmp, err := c.api.FetchConfig(ctx, pathSNMPConfig)
	if err != nil {
		return nil, err
	}

	record := models.DeviceInfo{
		Facts:         deviceFacts(info),
		Licenses:      deviceLicenses(license),
		RadiusServers: radiusServers(radius),
		SyslogServers: syslogServers(syslog),
		NTPServers:    ntpServers(system.Child("system")),
		DNSServers:    dnsSettings(system.Child("system")),
		SNMP:          snmpSettings(snmp),
	}

	return json.Marshal(record)
}

func deviceFacts(info *panos.Node) models.Facts {
	system := info.Child("system")

	return models.Facts{
		Hostname: system.ChildText("hostname"),
		Serial:   system.ChildText("serial"),
		Uptime:   system.ChildText("uptime"),
		Model:    system.ChildText("model"),
		Version:  system.ChildText("sw-version"),
	}
}

func deviceLicenses(license *panos.Node) []models.License {
	licenses := make([]models.License, 0)

	for _, entry := range panos.Entries(license.Child("licenses")) {
		licenses = append(licenses, models.License{
			ID:     entry.ChildText("authcode"),
			Name:   entry.ChildText("feature"),
			Expiry: entry.ChildText("expires"),
		})
	}

	return licenses
}

// radiusServers flattens every server of every RADIUS profile into one list.
func radiusServers(radius *panos.Node) []models.RadiusServer {
	servers := make([]models.RadiusServer, 0)

	for _, profile := range panos.Entries(radius.Child("radius")) {
		for _, server := range panos.Entries(profile.Child("server")) {
			servers = append(servers, models.RadiusServer{
				Server:         server.ChildText("ip-address"),
				Port:           server.ChildText("port"),
				AccountingPort: textOr(server, "accounting-port", defaultRadiusAccountingPort),
				Timeout:        textOr(server, "auth-timeout", defaultRadiusTimeout),
				Retry:          textOr(server, "auth-retries", defaultRadiusRetries),
				Source:         server.ChildText("source-ip"),
			})
		}
	}

	return servers
}

func syslogServers(syslog *panos.Node) []models.SyslogServer {
	servers := make([]models.SyslogServer, 0)

	for _, profile := range panos.Entries(syslog.Child("syslog")) {
		for _, server := range panos.Entries(profile.Child("server")) {
			servers = append(servers, models.SyslogServer{
				Server:     server.ChildText("server"),
				Facilities: server.ChildText("facility"),
				Level:      server.ChildText("level"),
				Source:     server.ChildText("source"),
				Prefix:     server.ChildText("prefix"),
			})
		}
	}

	return servers
}

// ntpServers reports the configured primary and secondary servers. A device
// with no NTP configuration still yields one empty record so the output shape
// stays stable.
func ntpServers(system *panos.Node) []models.NTPServer {
	ntp := system.Child("ntp-servers")
	if ntp.IsNil() {
		return []models.NTPServer{{Server: "", Prefer: false}}
	}

	servers := make([]models.NTPServer, 0, 2)

	if primary := ntp.Find("primary-ntp-server/ntp-server-address"); !primary.IsNil() {
		servers = append(servers, models.NTPServer{Server: primary.Text(), Prefer: true})
	}

	if secondary := ntp.Find("secondary-ntp-server/ntp-server-address"); !secondary.IsNil() {
		servers = append(servers, models.NTPServer{Server: secondary.Text(), Prefer: false})
	}

	return servers
}

func dnsSettings(system *panos.Node) models.DNSSettings {
	settings := models.DNSSettings{
		Domain:  system.ChildText("domain"),
		Servers: make([]models.DNSServer, 0, 2),
	}

	servers := system.Find("dns-setting/servers")

	if servers.Has("primary") {
		settings.Servers = append(settings.Servers, models.DNSServer{
			Server: servers.ChildText("primary"),
		})
	}

	if servers.Has("secondary") {
		settings.Servers = append(settings.Servers, models.DNSServer{
			Server: servers.ChildText("secondary"),
		})
	}

	return settings
}

// snmpSettings tolerates an empty config result: a standby device answers the
// snmp-setting read with nothing, which still produces one empty community.
func snmpSettings(snmp *panos.Node) models.SNMPSettings {
	emptyCommunity := models.SNMPCommunity{
		Community: "",
		Access:    "",
		Clients:   []string{""},
	}

	setting := snmp.Child("snmp-setting")
	if setting.IsNil() {
		return models.SNMPSettings{Communities: []models.SNMPCommunity{emptyCommunity}}
	}

	settings := models.SNMPSettings{
		Name:        setting.ChildText("name"),
		Contact:     setting.ChildText("contact"),
		Description: setting.ChildText("description"),
	}

	if v2c := setting.Find("access-setting/version/v2c"); !v2c.IsNil() {
		settings.Communities = []models.SNMPCommunity{{
			Community: v2c.ChildText("snmp-community-string"),
			Access:    "",
			Clients:   []string{""},
		}}
	} else {
		settings.Communities = []models.SNMPCommunity{emptyCommunity}
	}

	return settings
}

// textOr distinguishes an absent element from a present-but-empty one, so
// config defaults only apply when the element is missing.
func textOr(n *panos.Node, name, fallback string) string {
	if n.Has(name) {
		return n.ChildText(name)
	}

	return fallback
}
