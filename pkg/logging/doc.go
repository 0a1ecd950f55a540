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

// Package logging configures the slog default logger shared by the easysh
// CLI and the easyshd server.
//
// Records are JSON on stderr and carry the emitting binary as "module"
// together with its build "version". The level comes from the --log-level
// flag when set and from LOG_LEVEL otherwise; unknown names fall back to
// INFO. At DEBUG every record also carries its source location, which is
// the level to use when following one template through rendering and
// archive assembly.
//
//	LOG_LEVEL=debug easysh generate --config scaffold.yaml --output demo.zip
//
// NewLogLogger bridges the legacy *log.Logger that net/http still expects
// for http.Server.ErrorLog, so connection errors land in the same stream.
package logging
