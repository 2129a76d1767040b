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

package grpc

import (
	"fmt"
	"os"
	"strings"

	"github.com/netapi/panosd/pkg/models"
)

// CertificateManager checks the mTLS material referenced by a security
// config before the listener comes up, so a misconfigured agent fails at
// startup instead of on the first connection.
type CertificateManager struct {
	config *models.SecurityConfig
}

func NewCertificateManager(config *models.SecurityConfig) *CertificateManager {
	return &CertificateManager{config: config}
}

// ValidateCertificates reports every configured certificate file that does
// not exist on disk.
func (cm *CertificateManager) ValidateCertificates() error {
	required := []string{
		cm.config.TLS.CAFile,
		cm.config.TLS.CertFile,
		cm.config.TLS.KeyFile,
	}

	if cm.config.TLS.ClientCAFile != "" {
		required = append(required, cm.config.TLS.ClientCAFile)
	}

	var missing []string

	for _, file := range required {
		if file == "" {
			continue
		}

		path := resolveCertPath(cm.config.CertDir, file)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingCerts, strings.Join(missing, ", "))
	}

	return nil
}
