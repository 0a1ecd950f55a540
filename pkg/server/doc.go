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

// Package server is the HTTP runtime behind easyshd.
//
// It owns the listener, the middleware chain, and the system routes; the
// generation endpoints are registered by package api through WithHandler.
//
// # Routes
//
//	GET  /          service info (name, version, ready, routes)
//	GET  /health    liveness
//	GET  /ready     readiness, 503 until Start and during shutdown
//	GET  /metrics   Prometheus exposition
//
// System routes bypass rate limiting. Every other route runs behind
// metrics, API version negotiation, request ids, CORS, panic recovery,
// a token bucket rate limiter, and request logging, in that order.
//
// # Errors
//
// Failures are written as ErrorResponse JSON. WriteErrorFromErr maps the
// code of a structured error (see package errors) to a status:
// validation and selection problems are 400, timeouts 504, a client that
// went away 499, an unavailable catalog 503, and render or archive
// defects 500.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST, and CORS_ALLOWED_ORIGINS (comma separated, "*" by
// default).
package server
