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

import "errors"

var (
	errInternalError           = errors.New("internal error")
	errHealthServerRegistered  = errors.New("health server already registered")
	errSecurityConfigRequired  = errors.New("security config required")
	errInvalidServiceRole      = errors.New("invalid service role")
	errServiceNotClient        = errors.New("service role does not dial out")
	errServiceNotServer        = errors.New("service role does not serve")
	errFailedToLoadClientCreds = errors.New("failed to load client credentials")
	errFailedToLoadServerCreds = errors.New("failed to load server credentials")
	errFailedToLoadClientCert  = errors.New("failed to load client certificate")
	errFailedToLoadServerCert  = errors.New("failed to load server certificate")
	errFailedToReadCACert      = errors.New("failed to read CA certificate")
	errFailedToAppendCACert    = errors.New("failed to append CA certificate")
	errInvalidTrustDomain      = errors.New("invalid trust domain")
	errInvalidServerSPIFFEID   = errors.New("invalid server SPIFFE ID")
	errFailedWorkloadAPIClient = errors.New("failed to create workload API client")
	errFailedToCreateSource    = errors.New("failed to create X.509 source")
	errUnknownSecurityMode     = errors.New("unknown security mode")
	errMissingCerts            = errors.New("missing certificates")
)
