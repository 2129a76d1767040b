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
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spiffe/go-spiffe/v2/spiffeid"
	"github.com/spiffe/go-spiffe/v2/spiffetls/tlsconfig"
	"github.com/spiffe/go-spiffe/v2/workloadapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
)

const (
	SecurityModeNone   models.SecurityMode = "none"
	SecurityModeMTLS   models.SecurityMode = "mtls"
	SecurityModeSpiffe models.SecurityMode = "spiffe"
)

// SecurityProvider supplies transport credentials for the RPC surface. It
// never touches the appliance-facing HTTPS client.
type SecurityProvider interface {
	GetClientCredentials(ctx context.Context) (grpc.DialOption, error)
	GetServerCredentials(ctx context.Context) (grpc.ServerOption, error)
	Close() error
}

// NoSecurityProvider runs without transport security (development only).
type NoSecurityProvider struct{}

func (*NoSecurityProvider) GetClientCredentials(context.Context) (grpc.DialOption, error) {
	return grpc.WithTransportCredentials(insecure.NewCredentials()), nil
}

func (*NoSecurityProvider) GetServerCredentials(context.Context) (grpc.ServerOption, error) {
	return grpc.Creds(insecure.NewCredentials()), nil
}

func (*NoSecurityProvider) Close() error {
	return nil
}

// MTLSProvider implements SecurityProvider with mutual TLS from files on
// disk.
type MTLSProvider struct {
	config      *models.SecurityConfig
	clientCreds credentials.TransportCredentials
	serverCreds credentials.TransportCredentials
	needsClient bool
	needsServer bool
	logger      logger.Logger
}

// NewMTLSProvider loads the credential set the configured role needs.
func NewMTLSProvider(config *models.SecurityConfig, log logger.Logger) (*MTLSProvider, error) {
	if config == nil {
		return nil, errSecurityConfigRequired
	}

	if config.TLS.CertFile == "" || config.TLS.KeyFile == "" || config.TLS.CAFile == "" {
		return nil, fmt.Errorf("%w: missing required TLS file paths in config", errSecurityConfigRequired)
	}

	provider := &MTLSProvider{config: config, logger: log}

	switch config.Role {
	case models.RoleAgent:
		// The agent only answers RPCs; it never dials out over gRPC.
		provider.needsServer = true
	case models.RoleClient:
		provider.needsClient = true
	default:
		return nil, fmt.Errorf("%w: %s", errInvalidServiceRole, config.Role)
	}

	log.Info().
		Str("role", string(config.Role)).
		Bool("needsClient", provider.needsClient).
		Bool("needsServer", provider.needsServer).
		Msg("Initializing mTLS provider")

	if err := provider.loadCredentials(); err != nil {
		return nil, err
	}

	return provider, nil
}

func (p *MTLSProvider) loadCredentials() error {
	var err error

	if p.needsClient {
		p.clientCreds, err = loadClientCredentials(p.config)
		if err != nil {
			return fmt.Errorf("%w: %w", errFailedToLoadClientCreds, err)
		}
	}

	if p.needsServer {
		p.serverCreds, err = loadServerCredentials(p.config, p.logger)
		if err != nil {
			return fmt.Errorf("%w: %w", errFailedToLoadServerCreds, err)
		}
	}

	return nil
}

func (*MTLSProvider) Close() error {
	return nil
}

func (p *MTLSProvider) GetClientCredentials(_ context.Context) (grpc.DialOption, error) {
	if !p.needsClient {
		return nil, errServiceNotClient
	}

	return grpc.WithTransportCredentials(p.clientCreds), nil
}

func (p *MTLSProvider) GetServerCredentials(_ context.Context) (grpc.ServerOption, error) {
	if !p.needsServer {
		return nil, errServiceNotServer
	}

	return grpc.Creds(p.serverCreds), nil
}

func loadClientCredentials(config *models.SecurityConfig) (credentials.TransportCredentials, error) {
	certPath := resolveCertPath(config.CertDir, config.TLS.CertFile)
	keyPath := resolveCertPath(config.CertDir, config.TLS.KeyFile)
	caPath := resolveCertPath(config.CertDir, config.TLS.CAFile)

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToLoadClientCert, err)
	}

	caPool, err := loadCAPool(caPath)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		ServerName:   config.ServerName,
		MinVersion:   tls.VersionTLS13,
	}

	return credentials.NewTLS(tlsConfig), nil
}

func loadServerCredentials(config *models.SecurityConfig, log logger.Logger) (credentials.TransportCredentials, error) {
	certPath := resolveCertPath(config.CertDir, config.TLS.CertFile)
	keyPath := resolveCertPath(config.CertDir, config.TLS.KeyFile)

	clientCAFile := config.TLS.ClientCAFile
	if clientCAFile == "" {
		log.Info().Str("caFile", config.TLS.CAFile).Msg("ClientCAFile not specified, using CAFile for client verification")

		clientCAFile = config.TLS.CAFile
	}

	clientCAPath := resolveCertPath(config.CertDir, clientCAFile)

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToLoadServerCert, err)
	}

	clientCAPool, err := loadCAPool(clientCAPath)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    clientCAPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}

	return credentials.NewTLS(tlsConfig), nil
}

// resolveCertPath joins a relative path onto the configured cert dir.
func resolveCertPath(certDir, path string) string {
	if path == "" || filepath.IsAbs(path) || certDir == "" {
		return path
	}

	return filepath.Join(certDir, path)
}

func loadCAPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToReadCACert, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: failed to parse CA certificate from %s", errFailedToAppendCACert, path)
	}

	return pool, nil
}

// SpiffeProvider implements SecurityProvider using the SPIFFE workload API.
type SpiffeProvider struct {
	config         *models.SecurityConfig
	client         *workloadapi.Client
	source         *workloadapi.X509Source
	trustDomain    spiffeid.TrustDomain
	serverID       spiffeid.ID
	hasTrustDomain bool
	hasServerID    bool
	closeOnce      sync.Once
	logger         logger.Logger
}

func NewSpiffeProvider(ctx context.Context, config *models.SecurityConfig, log logger.Logger) (*SpiffeProvider, error) {
	if config.WorkloadSocket == "" {
		config.WorkloadSocket = "unix:/run/spire/sockets/agent.sock"
	}

	client, err := workloadapi.New(ctx, workloadapi.WithAddr(config.WorkloadSocket))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedWorkloadAPIClient, err)
	}

	source, err := workloadapi.NewX509Source(ctx, workloadapi.WithClient(client))
	if err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("%w: %w", errFailedToCreateSource, err)
	}

	provider := &SpiffeProvider{
		config: config,
		client: client,
		source: source,
		logger: log,
	}

	if td := strings.TrimSpace(config.TrustDomain); td != "" {
		provider.trustDomain, err = parseTrustDomain(td)
		if err != nil {
			_ = provider.Close()

			return nil, fmt.Errorf("%w: %w", errInvalidTrustDomain, err)
		}

		provider.hasTrustDomain = true
	}

	if idStr := strings.TrimSpace(config.ServerSPIFFEID); idStr != "" {
		provider.serverID, err = normalizeServerSPIFFEID(idStr, provider.trustDomain, provider.hasTrustDomain)
		if err != nil {
			_ = provider.Close()

			return nil, fmt.Errorf("%w: %w", errInvalidServerSPIFFEID, err)
		}

		provider.hasServerID = true
	}

	return provider, nil
}

func parseTrustDomain(raw string) (spiffeid.TrustDomain, error) {
	if strings.Contains(raw, "://") {
		id, err := spiffeid.FromString(raw)
		if err != nil {
			return spiffeid.TrustDomain{}, err
		}

		return id.TrustDomain(), nil
	}

	return spiffeid.TrustDomainFromString(raw)
}

// normalizeServerSPIFFEID accepts either a full spiffe:// URI or a bare path
// relative to the configured trust domain.
func normalizeServerSPIFFEID(raw string, trustDomain spiffeid.TrustDomain, hasTrustDomain bool) (spiffeid.ID, error) {
	if strings.Contains(raw, "://") {
		return spiffeid.FromString(raw)
	}

	if !hasTrustDomain {
		return spiffeid.ID{}, fmt.Errorf("server SPIFFE ID %q is missing a scheme and no trust_domain is configured", raw)
	}

	path := "/" + strings.TrimPrefix(raw, "/")

	return spiffeid.FromString(fmt.Sprintf("spiffe://%s%s", trustDomain.String(), path))
}

func (p *SpiffeProvider) GetClientCredentials(_ context.Context) (grpc.DialOption, error) {
	authorizer := tlsconfig.AuthorizeAny()

	switch {
	case p.hasServerID:
		authorizer = tlsconfig.AuthorizeID(p.serverID)
	case p.hasTrustDomain:
		authorizer = tlsconfig.AuthorizeMemberOf(p.trustDomain)
		p.logger.Warn().Msg("SPIFFE client credentials using trust domain membership; set server_spiffe_id for stricter verification")
	default:
		p.logger.Warn().Msg("SPIFFE client credentials have no server_spiffe_id or trust_domain; allowing any SPIFFE endpoint")
	}

	tlsConfig := tlsconfig.MTLSClientConfig(p.source, p.source, authorizer)

	return grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)), nil
}

func (p *SpiffeProvider) GetServerCredentials(_ context.Context) (grpc.ServerOption, error) {
	authorizer := tlsconfig.AuthorizeAny()
	if p.hasTrustDomain {
		authorizer = tlsconfig.AuthorizeMemberOf(p.trustDomain)
	}

	tlsConfig := tlsconfig.MTLSServerConfig(p.source, p.source, authorizer)

	return grpc.Creds(credentials.NewTLS(tlsConfig)), nil
}

func (p *SpiffeProvider) Close() error {
	var err error

	p.closeOnce.Do(func() {
		if p.source != nil {
			if e := p.source.Close(); e != nil {
				p.logger.Error().Err(e).Msg("Failed to close X.509 source")

				err = e
			}
		}

		if p.client != nil {
			if e := p.client.Close(); e != nil {
				p.logger.Error().Err(e).Msg("Failed to close workload client")

				err = e
			}
		}
	})

	return err
}

// NewSecurityProvider builds the provider the configured mode names. A nil
// config or empty mode falls back to no security with a loud warning.
func NewSecurityProvider(ctx context.Context, config *models.SecurityConfig, log logger.Logger) (SecurityProvider, error) {
	if config == nil || config.Mode == "" {
		log.Warn().Msg("SECURITY WARNING: no security config provided, using no security")

		return &NoSecurityProvider{}, nil
	}

	mode := models.SecurityMode(strings.ToLower(string(config.Mode)))

	switch mode {
	case SecurityModeNone:
		log.Info().Msg("Using no security (explicitly configured)")

		return &NoSecurityProvider{}, nil
	case SecurityModeMTLS:
		log.Info().Str("certDir", config.CertDir).Msg("Initializing mTLS security provider")

		return NewMTLSProvider(config, log)
	case SecurityModeSpiffe:
		log.Info().Str("workloadSocket", config.WorkloadSocket).Msg("Initializing SPIFFE security provider")

		return NewSpiffeProvider(ctx, config, log)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownSecurityMode, config.Mode)
	}
}
