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

// Package agent exposes the fact collectors over gRPC. One agent serves any
// number of appliances; every request carries the device address and token.
package agent

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/netapi/panosd/pkg/facts"
	"github.com/netapi/panosd/pkg/logger"
	"github.com/netapi/panosd/pkg/models"
	"github.com/netapi/panosd/pkg/panos"
	"github.com/netapi/panosd/proto"
)

// apiFactory builds a device API client per request. Swapped out in tests.
type apiFactory func(host, token string, timeout time.Duration, log logger.Logger) facts.API

// Server implements proto.DeviceServiceServer on top of the collector
// registry.
type Server struct {
	proto.UnimplementedDeviceServiceServer

	config   *ServerConfig
	registry facts.Registry
	newAPI   apiFactory
	logger   logger.Logger
}

// NewServer builds the agent server with the full collector registry.
func NewServer(config *ServerConfig, log logger.Logger) *Server {
	return &Server{
		config:   config,
		registry: initRegistry(),
		newAPI: func(host, token string, timeout time.Duration, log logger.Logger) facts.API {
			return panos.NewClient(host, token, panos.WithTimeout(timeout), panos.WithLogger(log))
		},
		logger: log,
	}
}

// ListenAddr returns the configured gRPC listen address.
func (s *Server) ListenAddr() string {
	return s.config.ListenAddr
}

// SecurityConfig returns the configured transport security, possibly nil.
func (s *Server) SecurityConfig() *models.SecurityConfig {
	return s.config.Security
}

// Start implements lifecycle.Service. The agent holds no warm state.
func (*Server) Start(context.Context) error { return nil }

// Stop implements lifecycle.Service.
func (*Server) Stop(context.Context) error { return nil }

// GetFacts runs one collector against the addressed device and returns its
// JSON record. Device-side failures come back in the response error field;
// only malformed requests fail the RPC itself.
func (s *Server) GetFacts(ctx context.Context, req *proto.FactsRequest) (*proto.FactsResponse, error) {
	if req.GetHost() == "" {
		return nil, status.Error(codes.InvalidArgument, "host is required")
	}

	if req.GetToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	if req.GetModule() == "" {
		return nil, status.Error(codes.InvalidArgument, "module is required")
	}

	log := s.logger.With().Str("host", req.GetHost()).Str("module", req.GetModule()).Logger()

	api := s.newAPI(req.GetHost(), req.GetToken(), time.Duration(s.config.DeviceTimeout), s.logger)

	collector, err := s.registry.Get(ctx, req.GetModule(), api, s.logger)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "unknown module %q", req.GetModule())
	}

	data, err := collector.Collect(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Collector failed")

		return &proto.FactsResponse{
			Module:    req.GetModule(),
			Available: false,
			Error:     collectError(err),
		}, nil
	}

	return &proto.FactsResponse{
		Module:    req.GetModule(),
		Available: true,
		Data:      data,
	}, nil
}

// collectError renders a collector failure for the response. Device errors
// carry their classified message; anything else is reported generically so
// internal details stay on the agent side.
func collectError(err error) string {
	var apiErr *panos.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	return "collector failed"
}

// ListModules reports the registered module names in registration order.
func (s *Server) ListModules(_ context.Context, _ *proto.ListModulesRequest) (*proto.ListModulesResponse, error) {
	return &proto.ListModulesResponse{Modules: s.registry.Modules()}, nil
}
