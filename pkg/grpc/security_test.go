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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
)

func TestGenerateTestCertificates(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, GenerateTestCertificates(tmpDir))

	for _, file := range []string{"ca.crt", "server.crt", "server.key", "client.crt", "client.key"} {
		_, err := os.Stat(filepath.Join(tmpDir, file))
		require.NoError(t, err, "expected %s to exist", file)
	}
}

func TestNoSecurityProvider(t *testing.T) {
	provider, err := NewSecurityProvider(context.Background(), nil, logger.NewTestLogger())
	require.NoError(t, err)
	require.IsType(t, &NoSecurityProvider{}, provider)

	_, err = provider.GetServerCredentials(context.Background())
	require.NoError(t, err)
	_, err = provider.GetClientCredentials(context.Background())
	require.NoError(t, err)
	require.NoError(t, provider.Close())
}

func TestMTLSProviderAgentRole(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, GenerateTestCertificates(tmpDir))

	cfg := &models.SecurityConfig{
		Mode:    SecurityModeMTLS,
		CertDir: tmpDir,
		Role:    models.RoleAgent,
		TLS: models.TLSConfig{
			CertFile: "server.crt",
			KeyFile:  "server.key",
			CAFile:   "ca.crt",
		},
	}

	provider, err := NewSecurityProvider(context.Background(), cfg, logger.NewTestLogger())
	require.NoError(t, err)

	_, err = provider.GetServerCredentials(context.Background())
	require.NoError(t, err)

	// The agent role never dials out.
	_, err = provider.GetClientCredentials(context.Background())
	assert.ErrorIs(t, err, errServiceNotClient)
}

func TestMTLSProviderClientRole(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, GenerateTestCertificates(tmpDir))

	cfg := &models.SecurityConfig{
		Mode:       SecurityModeMTLS,
		CertDir:    tmpDir,
		Role:       models.RoleClient,
		ServerName: "localhost",
		TLS: models.TLSConfig{
			CertFile: "client.crt",
			KeyFile:  "client.key",
			CAFile:   "ca.crt",
		},
	}

	provider, err := NewMTLSProvider(cfg, logger.NewTestLogger())
	require.NoError(t, err)

	_, err = provider.GetClientCredentials(context.Background())
	require.NoError(t, err)

	_, err = provider.GetServerCredentials(context.Background())
	assert.ErrorIs(t, err, errServiceNotServer)
}

func TestMTLSProviderMissingPaths(t *testing.T) {
	cfg := &models.SecurityConfig{
		Mode: SecurityModeMTLS,
		Role: models.RoleAgent,
	}

	_, err := NewMTLSProvider(cfg, logger.NewTestLogger())
	assert.ErrorIs(t, err, errSecurityConfigRequired)
}

func TestMTLSProviderUnknownRole(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, GenerateTestCertificates(tmpDir))

	cfg := &models.SecurityConfig{
		Mode:    SecurityModeMTLS,
		CertDir: tmpDir,
		Role:    "poller",
		TLS: models.TLSConfig{
			CertFile: "server.crt",
			KeyFile:  "server.key",
			CAFile:   "ca.crt",
		},
	}

	_, err := NewMTLSProvider(cfg, logger.NewTestLogger())
	assert.ErrorIs(t, err, errInvalidServiceRole)
}

func TestNewSecurityProviderUnknownMode(t *testing.T) {
	cfg := &models.SecurityConfig{Mode: "kerberos"}

	_, err := NewSecurityProvider(context.Background(), cfg, logger.NewTestLogger())
	assert.ErrorIs(t, err, errUnknownSecurityMode)
}

func TestCertificateManagerMissingFiles(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &models.SecurityConfig{
		CertDir: tmpDir,
		TLS: models.TLSConfig{
			CertFile: "server.crt",
			KeyFile:  "server.key",
			CAFile:   "ca.crt",
		},
	}

	err := NewCertificateManager(cfg).ValidateCertificates()
	assert.ErrorIs(t, err, errMissingCerts)

	require.NoError(t, GenerateTestCertificates(tmpDir))
	assert.NoError(t, NewCertificateManager(cfg).ValidateCertificates())
}
