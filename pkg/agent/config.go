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

package agent

import (
	"errors"
	"time"

	grpcpkg "github.com/netapi/panosd/pkg/grpc"
	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
)

const defaultDeviceTimeout = 30 * time.Second

var errListenAddrRequired = errors.New("listen_addr is required")

// ServerConfig configures the agent daemon.
type ServerConfig struct {
	ListenAddr    string                 `json:"listen_addr"`
	DeviceTimeout models.Duration        `json:"device_timeout"`
	Security      *models.SecurityConfig `json:"security"`
	Logging       *logger.Config         `json:"logging"`
}

// Validate implements config.Validator. For mTLS listeners it also checks
// that the certificate material exists before the service starts.
func (c *ServerConfig) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.DeviceTimeout == 0 {
		c.DeviceTimeout = models.Duration(defaultDeviceTimeout)
	}

	if c.Security != nil && c.Security.Mode == grpcpkg.SecurityModeMTLS {
		if err := grpcpkg.NewCertificateManager(c.Security).ValidateCertificates(); err != nil {
			return err
		}
	}

	return nil
}
