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

package defaults

import "strings"

// Files written directly under the archive root directory. Part project
// names share that directory, so they must not reuse these names.
const (
	// SetupScriptName is the rendered setup script file name.
	SetupScriptName = "setup_environment.sh"

	// ChecksumFileName is the optional checksum manifest file name.
	ChecksumFileName = "checksums.txt"
)

// IsReservedRootName reports whether name collides with a file the
// generator writes at the archive root. The comparison ignores case so
// archives stay extractable on case-insensitive filesystems.
func IsReservedRootName(name string) bool {
	for _, reserved := range []string{SetupScriptName, ChecksumFileName} {
		if strings.EqualFold(name, reserved) {
			return true
		}
	}
	return false
}
