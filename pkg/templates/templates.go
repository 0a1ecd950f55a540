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

// Package templates embeds the scaffold template sources.
//
// The tree under files/ is laid out by partition: one top-level directory per
// project part (backend, frontend) plus the setup script at the root. Every
// file carrying the .jinja2 suffix is a template; the suffix is stripped when
// the rendered file is written to the archive.
package templates

import (
	"embed"
	"io/fs"
)

// files includes dot-files such as backend/.env.jinja2.
//
//go:embed all:files
var files embed.FS

// FS returns the embedded template tree rooted at its partitions.
func FS() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		// fs.Sub only fails for invalid paths; "files" is a constant.
		panic(err)
	}
	return sub
}
