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

package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/easysh/easysh/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]any{
		"global": map[string]any{"projectName": "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Global.ProjectName)
	if diff := cmp.Diff(NewBackendConfig(), cfg.Backend); diff != "" {
		t.Errorf("backend defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewFrontendConfig(), cfg.Frontend); diff != "" {
		t.Errorf("frontend defaults mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, cfg.AnyIncluded())
}

func TestParseFullDocument(t *testing.T) {
	cfg, err := Parse(map[string]any{
		"global": map[string]any{"projectName": "demo"},
		"backend": map[string]any{
			"include":         true,
			"projectName":     "api",
			"dbHost":          "db.internal",
			"dbPort":          float64(6543),
			"dbPassword":      nil,
			"pgAdminPassword": "secret",
			"debug":           true,
			"logLevel":        "DEBUG",
		},
		"frontend": map[string]any{
			"include":      true,
			"projectName":  "web",
			"includeHusky": true,
			"moduleSystem": map[string]any{
				"include": true,
				"modules": []any{
					map[string]any{"id": "user-management", "permissions": "users:read,users:write"},
					map[string]any{"id": "billing", "name": "Payments"},
				},
				"features": []any{
					map[string]any{"id": "darkMode"},
				},
			},
			"somethingExtra": "ignored",
		},
	})
	require.NoError(t, err)

	assert.True(t, cfg.Backend.Include)
	assert.Equal(t, "api", cfg.Backend.ProjectName)
	assert.Equal(t, "db.internal", cfg.Backend.DBHost)
	assert.Equal(t, 6543, cfg.Backend.DBPort)
	assert.Equal(t, "", cfg.Backend.DBPassword)
	assert.Equal(t, "secret", cfg.Backend.PgAdminPassword)
	assert.Equal(t, DefaultDBName, cfg.Backend.DBName)
	assert.True(t, cfg.Backend.Debug)

	want := ModuleSystem{
		Include: true,
		Modules: []Module{
			{ID: "user-management", Name: "User Management", Permissions: "users:read,users:write"},
			{ID: "billing", Name: "Payments"},
		},
		Features: []Feature{{ID: "darkMode"}},
	}
	if diff := cmp.Diff(want, cfg.Frontend.ModuleSystem); diff != "" {
		t.Errorf("module system mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, cfg.Frontend.IncludeHusky)
	assert.False(t, cfg.Frontend.IncludeExamplePages)
}

func TestParseValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		doc       map[string]any
		wantField string
	}{
		{
			name:      "nil document",
			doc:       nil,
			wantField: "global",
		},
		{
			name:      "missing global",
			doc:       map[string]any{"backend": map[string]any{"include": true}},
			wantField: "global",
		},
		{
			name:      "global not an object",
			doc:       map[string]any{"global": "demo"},
			wantField: "global",
		},
		{
			name:      "missing project name",
			doc:       map[string]any{"global": map[string]any{}},
			wantField: "global.projectName",
		},
		{
			name:      "empty project name",
			doc:       map[string]any{"global": map[string]any{"projectName": ""}},
			wantField: "global.projectName",
		},
		{
			name:      "project name with separator",
			doc:       map[string]any{"global": map[string]any{"projectName": "a/b"}},
			wantField: "global.projectName",
		},
		{
			name:      "project name is dot dot",
			doc:       map[string]any{"global": map[string]any{"projectName": ".."}},
			wantField: "global.projectName",
		},
		{
			name: "include not boolean",
			doc: map[string]any{
				"global":  map[string]any{"projectName": "demo"},
				"backend": map[string]any{"include": "yes"},
			},
			wantField: "backend.include",
		},
		{
			name: "port not integer",
			doc: map[string]any{
				"global":  map[string]any{"projectName": "demo"},
				"backend": map[string]any{"dbPort": "5432"},
			},
			wantField: "backend.dbPort",
		},
		{
			name: "port fractional",
			doc: map[string]any{
				"global":  map[string]any{"projectName": "demo"},
				"backend": map[string]any{"dbPort": 54.5},
			},
			wantField: "backend.dbPort",
		},
		{
			name: "part project name with separator",
			doc: map[string]any{
				"global":   map[string]any{"projectName": "demo"},
				"frontend": map[string]any{"projectName": "../web"},
			},
			wantField: "frontend.projectName",
		},
		{
			name: "part named like the setup script",
			doc: map[string]any{
				"global":  map[string]any{"projectName": "demo"},
				"backend": map[string]any{"include": true, "projectName": "setup_environment.sh"},
			},
			wantField: "backend.projectName",
		},
		{
			name: "part named like the checksum manifest",
			doc: map[string]any{
				"global":   map[string]any{"projectName": "demo"},
				"frontend": map[string]any{"include": true, "projectName": "Checksums.TXT"},
			},
			wantField: "frontend.projectName",
		},
		{
			name: "module without id",
			doc: map[string]any{
				"global": map[string]any{"projectName": "demo"},
				"frontend": map[string]any{"moduleSystem": map[string]any{
					"modules": []any{map[string]any{"name": "Nameless"}},
				}},
			},
			wantField: "frontend.moduleSystem.modules[0].id",
		},
		{
			name: "features not a list",
			doc: map[string]any{
				"global": map[string]any{"projectName": "demo"},
				"backend": map[string]any{"moduleSystem": map[string]any{
					"features": "darkMode",
				}},
			},
			wantField: "backend.moduleSystem.features",
		},
		{
			name: "duplicate part project names",
			doc: map[string]any{
				"global":   map[string]any{"projectName": "demo"},
				"backend":  map[string]any{"include": true, "projectName": "app"},
				"frontend": map[string]any{"include": true, "projectName": "app"},
			},
			wantField: "frontend.projectName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.doc)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Reason)
			assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
		})
	}
}

func TestParseDuplicateNamesAllowedWhenOnePartExcluded(t *testing.T) {
	cfg, err := Parse(map[string]any{
		"global":   map[string]any{"projectName": "demo"},
		"backend":  map[string]any{"include": true, "projectName": "app"},
		"frontend": map[string]any{"include": false, "projectName": "app"},
	})
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Frontend.ProjectName)
}

func TestParseRootMayUseReservedName(t *testing.T) {
	cfg, err := Parse(map[string]any{
		"global": map[string]any{"projectName": "checksums.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "checksums.txt", cfg.Global.ProjectName)
}

func TestDecode(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg, err := Decode([]byte(`{"global":{"projectName":"demo"},"backend":{"include":true,"dbPort":15432}}`))
		require.NoError(t, err)
		assert.Equal(t, 15432, cfg.Backend.DBPort)
		assert.True(t, cfg.Backend.Include)
	})

	t.Run("yaml", func(t *testing.T) {
		doc := `
global:
  projectName: demo
frontend:
  include: true
  moduleSystem:
    include: true
    features:
      - id: darkMode
`
		cfg, err := Decode([]byte(doc))
		require.NoError(t, err)
		assert.True(t, cfg.Frontend.Include)
		assert.Equal(t, []Feature{{ID: "darkMode"}}, cfg.Frontend.ModuleSystem.Features)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode([]byte("  \n"))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, verr.Field)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Decode([]byte(`{"global": `))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Reason, "malformed")
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := Decode([]byte(`["demo"]`))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"billing":         "Billing",
		"user-management": "User Management",
		"audit_log":       "Audit Log",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayName(in), "DisplayName(%q)", in)
	}
}

func TestValidationErrorStructured(t *testing.T) {
	verr := &ValidationError{Field: "backend.dbPort", Reason: "expected integer, got string"}
	se := verr.Structured()
	assert.Equal(t, apperrors.ErrCodeValidation, se.Code)
	assert.Equal(t, "backend.dbPort", se.Context["field"])
	assert.Contains(t, se.Message, "backend.dbPort")
}
