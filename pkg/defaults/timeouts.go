// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// GenerateHandlerTimeout is the timeout for scaffold generation requests.
	GenerateHandlerTimeout = 30 * time.Second

	// GenerateBuildTimeout is the internal timeout for building the archive.
	// Should be less than GenerateHandlerTimeout to allow error handling.
	GenerateBuildTimeout = 25 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIGenerateTimeout bounds a local generate run.
	CLIGenerateTimeout = 1 * time.Minute

	// CLIPushTimeout bounds pushing an archive to an OCI registry.
	CLIPushTimeout = 2 * time.Minute
)

// HTTP client timeouts for fetching remote configuration documents.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Request and generation limits.
const (
	// MaxRequestBodyBytes caps the configuration document accepted over HTTP.
	MaxRequestBodyBytes = 1 << 20

	// GenerateConcurrency is the default number of templates rendered in parallel.
	GenerateConcurrency = 4
)

// ArchiveModTime is the modification time stamped on every archive entry.
// A fixed value keeps repeated builds byte-identical.
var ArchiveModTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
