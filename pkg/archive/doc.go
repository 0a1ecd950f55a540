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

// Package archive builds the scaffold archive for a configuration.
//
// The Builder selects the catalog partitions whose part is included, renders
// every template with the full configuration as context, maps each result to
// its archive path and writes the entries into an in-memory ZIP. The setup
// script is always rendered and written at the archive root.
//
// # Archive Layout
//
//	<global.projectName>/
//	  setup_environment.sh
//	  <part.projectName>/              (one per included part)
//	    <relative dirs>/<file without .jinja2>
//	  checksums.txt                    (WithChecksums only)
//
// # Failure Semantics
//
// Generation is all-or-nothing. The first failing template aborts the build
// with a *GenerationError of kind TemplateRenderFailed naming the template;
// no partial archive is returned. Selecting no part fails with
// NoPartsSelected before anything is rendered, and two templates mapping to
// the same path fail with DuplicateArchivePath.
//
// # Concurrency
//
// Templates may be rendered in parallel (WithConcurrency). Results are
// buffered and written in canonical order: partitions in part order, entries
// in catalog order, then the setup script. Repeated builds of the same
// configuration produce byte-identical archives.
//
// # Observability
//
// Exported Prometheus metrics:
//
//	easysh_generate_total{outcome}
//	easysh_generate_duration_seconds
//	easysh_archive_entries_written_total
//	easysh_archive_size_bytes
//
// Usage:
//
//	cat, _ := catalog.Default()
//	b, err := archive.New(cat, archive.WithConcurrency(4))
//	if err != nil {
//	    return err
//	}
//	res, err := b.Build(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile(res.Filename, res.Data, 0o644)
package archive
