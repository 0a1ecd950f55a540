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

// Package render renders scaffold templates with pongo2, a Django/Jinja2
// style template engine.
//
// Templates are loaded by logical path from the catalog's fs.FS and parsed
// once; the parsed form is cached for the life of the Renderer. Each render
// receives the whole configuration as a plain nested mapping, reachable both
// at the top level and under "config":
//
//	{{ backend.dbHost }}
//	{{ config.backend.dbHost }}
//
// Output is source code, so HTML autoescaping is disabled.
//
// # Filters
//
// Three filters are registered in addition to the pongo2 builtins:
//
//	{{ backend.dbHost|required }}             fails the render when empty
//	{% for p in module.permissions|permissions %}  splits "a, b" into ["a" "b"]
//	{{ backend.projectName|shquote }}         quotes the value as one bash word
//
// A failed render returns a *RenderError carrying the logical path.
package render
