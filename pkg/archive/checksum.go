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

package archive

import (
	"fmt"
	"strings"

	"github.com/easysh/easysh/pkg/defaults"
)

// ChecksumFileName is the name of the optional checksum manifest written at
// the archive root.
const ChecksumFileName = defaults.ChecksumFileName

// checksumManifest renders one "<sha256>  <path>" line per entry, with paths
// relative to the archive root directory.
func checksumManifest(root string, entries []Entry) []byte {
	var sb strings.Builder
	for _, e := range entries {
		rel := strings.TrimPrefix(e.Path, root+"/")
		fmt.Fprintf(&sb, "%s  %s\n", e.SHA256, rel)
	}
	return []byte(sb.String())
}
