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

	"mvdan.cc/sh/v3/syntax"
)

// isShellScript reports whether the archive path names a shell script.
func isShellScript(archivePath string) bool {
	return strings.HasSuffix(archivePath, ".sh")
}

// checkShell parses a rendered script as bash. A template producing an
// unparsable script is treated as a render failure.
func checkShell(name, script string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(script), name); err != nil {
		return fmt.Errorf("rendered script is not valid bash: %w", err)
	}
	return nil
}
