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

// Package pathmap derives archive-relative paths for rendered templates.
//
// A template at <partition>/<dir>/<name>.jinja2 is written to
// <rootProjectName>/<partProjectName>/<dir>/<name>. The setup script is
// written to <rootProjectName>/setup_environment.sh. Archive paths always
// use forward slashes.
package pathmap

import (
	"fmt"
	"path"
	"strings"

	"github.com/easysh/easysh/pkg/catalog"
)

// SetupScriptName is the file name of the setup script inside the archive.
var SetupScriptName = strings.TrimSuffix(catalog.SetupScriptPath, catalog.TemplateSuffix)

// Map computes the archive path of the template at logicalPath belonging to
// partition. An empty partition is only valid for the setup script.
func Map(logicalPath, partition, rootProjectName, partProjectName string) (string, error) {
	if partition == "" {
		if logicalPath != catalog.SetupScriptPath {
			return "", fmt.Errorf("template %s has no partition", logicalPath)
		}
		return SetupScript(rootProjectName), nil
	}

	rel, ok := strings.CutPrefix(logicalPath, partition+"/")
	if !ok {
		return "", fmt.Errorf("template %s is not under partition %s", logicalPath, partition)
	}

	name, ok := strings.CutSuffix(rel, catalog.TemplateSuffix)
	if !ok {
		return "", fmt.Errorf("template %s lacks the %s suffix", logicalPath, catalog.TemplateSuffix)
	}
	if name == "" || strings.HasSuffix(name, "/") {
		return "", fmt.Errorf("template %s has an empty file name", logicalPath)
	}

	return path.Join(rootProjectName, partProjectName, name), nil
}

// MapEntry is Map for a catalog entry.
func MapEntry(e catalog.Entry, rootProjectName, partProjectName string) (string, error) {
	return Map(e.LogicalPath, e.Partition, rootProjectName, partProjectName)
}

// SetupScript returns the archive path of the setup script.
func SetupScript(rootProjectName string) string {
	return path.Join(rootProjectName, SetupScriptName)
}
