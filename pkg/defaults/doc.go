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

// Package defaults provides centralized configuration constants for easysh.
//
// Timeouts, request limits and generation parameters used by the server,
// the CLI and the archive builder live here so they can be tuned in one place.
//
// # Usage
//
//	import "github.com/easysh/easysh/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.GenerateHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 30s for a generation request
//   - Archive build: 25s, below the handler timeout so errors can be reported
//   - Server shutdown: 30s for graceful shutdown
//   - Registry push: 2m for OCI uploads from the CLI
package defaults
