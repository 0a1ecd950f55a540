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

// Package config models the scaffold configuration submitted by a user.
//
// A configuration names the root project and describes which optional parts
// (backend, frontend) to generate. It is parsed from an untyped document,
// validated eagerly and then consumed read-only by the archive builder.
//
// # Document Shape
//
//	global:
//	  projectName: demo          # required, archive root directory
//	backend:
//	  include: true
//	  projectName: api           # sub-directory for this part
//	  dbHost: postgres
//	  dbPort: 5432
//	frontend:
//	  include: false
//	  moduleSystem:
//	    include: true
//	    modules:
//	      - id: billing
//	        permissions: billing:read,billing:write
//	    features:
//	      - id: darkMode
//
// Omitted fields take the documented defaults. Unknown fields are ignored.
//
// # Usage
//
//	cfg, err := config.Decode(body)
//	if err != nil {
//	    var verr *config.ValidationError
//	    if errors.As(err, &verr) {
//	        // report verr.Field and verr.Reason
//	    }
//	}
//	ctx := cfg.Context() // plain nested mapping for templates
package config
