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

package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSLayout(t *testing.T) {
	fsys := FS()

	_, err := fs.Stat(fsys, "setup_environment.sh.jinja2")
	require.NoError(t, err, "setup script must be embedded at the root")

	for _, p := range []string{
		"backend/.env.jinja2",
		"backend/docker-compose.yml.jinja2",
		"backend/src/main.py.jinja2",
		"frontend/package.json.jinja2",
		"frontend/src/App.tsx.jinja2",
	} {
		_, err := fs.Stat(fsys, p)
		assert.NoError(t, err, "expected %s to be embedded", p)
	}
}

func TestAllFilesAreTemplates(t *testing.T) {
	err := fs.WalkDir(FS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		assert.True(t, strings.HasSuffix(path, ".jinja2"), "%s lacks the template suffix", path)
		return nil
	})
	require.NoError(t, err)
}
