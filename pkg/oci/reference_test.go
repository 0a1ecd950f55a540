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

package oci

import (
	"testing"
)

func TestParseOutputTarget(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIsOCI bool
		wantReg   string
		wantRepo  string
		wantTag   string
		wantDir   string
		wantErr   bool
	}{
		{
			name:      "local directory relative",
			input:     "./scaffold-out",
			wantIsOCI: false,
			wantDir:   "./scaffold-out",
		},
		{
			name:      "local directory absolute",
			input:     "/tmp/scaffolds",
			wantIsOCI: false,
			wantDir:   "/tmp/scaffolds",
		},
		{
			name:      "local directory current",
			input:     ".",
			wantIsOCI: false,
			wantDir:   ".",
		},
		{
			name:      "OCI with tag",
			input:     "oci://ghcr.io/acme/scaffold:v1.0.0",
			wantIsOCI: true,
			wantReg:   "ghcr.io",
			wantRepo:  "acme/scaffold",
			wantTag:   "v1.0.0",
		},
		{
			name:      "OCI without tag returns empty (caller applies default)",
			input:     "oci://ghcr.io/acme/scaffold",
			wantIsOCI: true,
			wantReg:   "ghcr.io",
			wantRepo:  "acme/scaffold",
			wantTag:   "",
		},
		{
			name:      "OCI with port and tag",
			input:     "oci://localhost:5000/test/scaffold:v1",
			wantIsOCI: true,
			wantReg:   "localhost:5000",
			wantRepo:  "test/scaffold",
			wantTag:   "v1",
		},
		{
			name:      "OCI with port no tag returns empty (caller applies default)",
			input:     "oci://localhost:5000/test/scaffold",
			wantIsOCI: true,
			wantReg:   "localhost:5000",
			wantRepo:  "test/scaffold",
			wantTag:   "",
		},
		{
			name:      "OCI deeply nested repository",
			input:     "oci://ghcr.io/org/team/project/scaffold:latest",
			wantIsOCI: true,
			wantReg:   "ghcr.io",
			wantRepo:  "org/team/project/scaffold",
			wantTag:   "latest",
		},
		{
			name:    "OCI digest reference rejected",
			input:   "oci://ghcr.io/acme/scaffold@sha256:0000000000000000000000000000000000000000000000000000000000000000",
			wantErr: true,
		},
		{
			name:    "OCI invalid reference",
			input:   "oci://",
			wantErr: true,
		},
		{
			name:    "OCI invalid characters",
			input:   "oci://ghcr.io/INVALID/Scaffold:v1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseOutputTarget(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOutputTarget() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			if ref.IsOCI != tt.wantIsOCI {
				t.Errorf("ParseOutputTarget() IsOCI = %v, want %v", ref.IsOCI, tt.wantIsOCI)
			}
			if ref.Registry != tt.wantReg {
				t.Errorf("ParseOutputTarget() Registry = %v, want %v", ref.Registry, tt.wantReg)
			}
			if ref.Repository != tt.wantRepo {
				t.Errorf("ParseOutputTarget() Repository = %v, want %v", ref.Repository, tt.wantRepo)
			}
			if ref.Tag != tt.wantTag {
				t.Errorf("ParseOutputTarget() Tag = %v, want %v", ref.Tag, tt.wantTag)
			}
			if ref.LocalPath != tt.wantDir {
				t.Errorf("ParseOutputTarget() LocalPath = %v, want %v", ref.LocalPath, tt.wantDir)
			}
		})
	}
}

func TestReference_String(t *testing.T) {
	tests := []struct {
		name string
		ref  *Reference
		want string
	}{
		{
			name: "local path",
			ref: &Reference{
				IsOCI:     false,
				LocalPath: "./scaffold",
			},
			want: "./scaffold",
		},
		{
			name: "OCI with tag",
			ref: &Reference{
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "acme/scaffold",
				Tag:        "v1.0.0",
			},
			want: "oci://ghcr.io/acme/scaffold:v1.0.0",
		},
		{
			name: "OCI without tag",
			ref: &Reference{
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "acme/scaffold",
				Tag:        "",
			},
			want: "oci://ghcr.io/acme/scaffold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.String(); got != tt.want {
				t.Errorf("Reference.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReference_ImageReference(t *testing.T) {
	tests := []struct {
		name string
		ref  *Reference
		want string
	}{
		{
			name: "local path returns empty",
			ref: &Reference{
				IsOCI:     false,
				LocalPath: "./scaffold",
			},
			want: "",
		},
		{
			name: "OCI with tag",
			ref: &Reference{
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "acme/scaffold",
				Tag:        "v1.0.0",
			},
			want: "ghcr.io/acme/scaffold:v1.0.0",
		},
		{
			name: "OCI without tag",
			ref: &Reference{
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "acme/scaffold",
				Tag:        "",
			},
			want: "ghcr.io/acme/scaffold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.ImageReference(); got != tt.want {
				t.Errorf("Reference.ImageReference() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReference_WithTag(t *testing.T) {
	tests := []struct {
		name    string
		ref     *Reference
		newTag  string
		wantTag string
	}{
		{
			name: "local path unchanged",
			ref: &Reference{
				IsOCI:     false,
				LocalPath: "./scaffold",
			},
			newTag:  "v2.0.0",
			wantTag: "",
		},
		{
			name: "OCI reference gets new tag",
			ref: &Reference{
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "acme/scaffold",
				Tag:        "v1.0.0",
			},
			newTag:  "v2.0.0",
			wantTag: "v2.0.0",
		},
		{
			name: "OCI reference without tag gets tag",
			ref: &Reference{
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "acme/scaffold",
				Tag:        "",
			},
			newTag:  "v1.0.0",
			wantTag: "v1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.ref.WithTag(tt.newTag)
			if result.Tag != tt.wantTag {
				t.Errorf("Reference.WithTag() Tag = %v, want %v", result.Tag, tt.wantTag)
			}
			// Ensure original is not modified for OCI refs
			if tt.ref.IsOCI && result != tt.ref && tt.ref.Tag == tt.wantTag {
				t.Error("Reference.WithTag() modified original reference")
			}
		})
	}
}

func TestValidateRegistryReference(t *testing.T) {
	tests := []struct {
		name       string
		registry   string
		repository string
		wantErr    bool
	}{
		{"valid ghcr.io", "ghcr.io", "acme/scaffolds", false},
		{"valid localhost with port", "localhost:5000", "test/repo", false},
		{"valid with https prefix", "https://ghcr.io", "acme/scaffolds", false},
		{"valid complex repository", "registry.example.com:5000", "org/team/project", false},
		{"invalid registry with spaces", "invalid registry", "test/repo", true},
		{"invalid repository with uppercase", "ghcr.io", "ACME/Scaffolds", true},
		{"invalid repository with digest chars", "ghcr.io", "test/repo@latest", true},
		{"repository with tag", "ghcr.io", "test/repo:v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistryReference(tt.registry, tt.repository)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistryReference() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStripProtocol(t *testing.T) {
	tests := map[string]string{
		"https://ghcr.io":       "ghcr.io",
		"http://localhost:5000": "localhost:5000",
		"registry.example.com":  "registry.example.com",
		"https://ghcr.io/acme":  "ghcr.io/acme",
	}
	for in, want := range tests {
		if got := stripProtocol(in); got != want {
			t.Errorf("stripProtocol(%q) = %q, want %q", in, got, want)
		}
	}
}
