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

// Package api wires scaffold generation into the HTTP server.
//
// Serve loads the embedded template catalog once, builds an archive
// builder around it, and registers HandleGenerate with package server:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /api/generate - generate a project archive
//   - POST /v1/generate  - same, versioned path
//
// The request body is the project configuration as JSON or YAML, at most
// 1 MiB. A successful response is the zip archive itself, with
// Content-Disposition naming <projectName>.zip and X-Scaffold-Files and
// X-Scaffold-Size describing it. Invalid configurations and configurations
// that include no part are rejected with 400; a template that fails to
// render yields 500 and no archive.
//
// System endpoints (GET /, /health, /ready, /metrics) come from package
// server.
//
// Set GENERATE_CONCURRENCY to change how many templates render in
// parallel.
package api
