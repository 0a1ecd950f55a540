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

// Package catalog indexes the scaffold template sources.
//
// A Catalog is built once at process start from an fs.FS. Each top-level
// directory that names a known partition (backend, frontend) contributes its
// *.jinja2 files, in lexical path order, to that partition. The setup script
// at the root belongs to no partition and is always generated.
//
// The catalog is immutable after construction and safe for concurrent use.
// Construction failures carry the CATALOG_UNAVAILABLE error code and are
// fatal at startup.
//
// Usage:
//
//	cat, err := catalog.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for entry := range cat.Entries("backend") {
//	    fmt.Println(entry.LogicalPath)
//	}
package catalog
