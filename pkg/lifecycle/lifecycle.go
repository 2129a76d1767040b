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

// Package lifecycle runs a gRPC service with signal handling and graceful
// shutdown so every daemon in this project starts and stops the same way.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	grpcpkg "github.com/netapi/panosd/pkg/grpc"
	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
)

// Service is the long-running component hosted by RunServer. Start is
// called before the listener comes up and Stop during shutdown.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// GRPCServiceRegistrar registers a gRPC service implementation on the server.
type GRPCServiceRegistrar func(s *grpc.Server) error

// ServerOptions configures RunServer.
type ServerOptions struct {
	ListenAddr           string
	ServiceName          string
	Service              Service
	RegisterGRPCServices []GRPCServiceRegistrar
	Security             *models.SecurityConfig
	EnableHealthCheck    bool
	Logger               logger.Logger
}

// RunServer starts the service and its gRPC listener, then blocks until the
// context is canceled or SIGINT/SIGTERM arrives, shutting down gracefully.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	log := opts.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := grpcpkg.NewSecurityProvider(ctx, opts.Security, log)
	if err != nil {
		return fmt.Errorf("failed to create security provider: %w", err)
	}
	defer func() {
		if closeErr := provider.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close security provider")
		}
	}()

	creds, err := provider.GetServerCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server credentials: %w", err)
	}

	srv := grpcpkg.NewServer(opts.ListenAddr, log, grpcpkg.WithServerOptions(creds))

	for _, register := range opts.RegisterGRPCServices {
		if err := register(srv.GetGRPCServer()); err != nil {
			return fmt.Errorf("failed to register gRPC service: %w", err)
		}
	}

	if opts.EnableHealthCheck {
		if err := srv.RegisterHealthServer(); err != nil {
			return fmt.Errorf("failed to register health server: %w", err)
		}
	}

	if opts.Service != nil {
		if err := opts.Service.Start(ctx); err != nil {
			return fmt.Errorf("failed to start %s: %w", opts.ServiceName, err)
		}
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Start()
	}()

	log.Info().
		Str("service", opts.ServiceName).
		Str("listen_addr", opts.ListenAddr).
		Msg("Service started")

	select {
	case <-ctx.Done():
		log.Info().Str("service", opts.ServiceName).Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	}

	shutdownCtx := context.Background()

	if opts.Service != nil {
		if err := opts.Service.Stop(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("service", opts.ServiceName).Msg("Service stop failed")
		}
	}

	srv.Stop(shutdownCtx)

	return nil
}

// ExitOnError logs the error and exits with a non-zero status. Intended for
// use from main functions only.
func ExitOnError(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}
