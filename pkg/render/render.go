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

package render

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"mvdan.cc/sh/v3/syntax"
)

// ConfigKey is the context key under which the full configuration is
// additionally exposed.
const ConfigKey = "config"

var registerOnce sync.Once

// registerFilters installs the package filters into pongo2's global registry
// and turns off autoescaping, which pongo2 also keeps globally.
func registerFilters() {
	registerOnce.Do(func() {
		pongo2.SetAutoescape(false)
		for name, fn := range map[string]pongo2.FilterFunction{
			"required":    filterRequired,
			"permissions": filterPermissions,
			"shquote":     filterShellQuote,
		} {
			if pongo2.FilterExists(name) {
				continue
			}
			if err := pongo2.RegisterFilter(name, fn); err != nil {
				slog.Error("failed to register template filter", "filter", name, "error", err)
			}
		}
	})
}

// Renderer renders templates from a single source. It is safe for
// concurrent use.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New returns a Renderer loading templates from fsys.
func New(fsys fs.FS) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("render: template source is nil")
	}
	registerFilters()

	return &Renderer{
		set:       pongo2.NewSet("easysh", pongo2.NewFSLoader(fsys)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render renders the template at logicalPath with data as context.
// data is the plain nested configuration mapping; see NewContext.
func (r *Renderer) Render(logicalPath string, data map[string]any) (string, error) {
	tmpl, err := r.template(logicalPath)
	if err != nil {
		return "", &RenderError{LogicalPath: logicalPath, Cause: err}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(NewContext(data), &buf); err != nil {
		return "", &RenderError{LogicalPath: logicalPath, Cause: err}
	}
	return buf.String(), nil
}

// Preload parses every listed template so syntax errors surface at startup
// rather than on the first request.
func (r *Renderer) Preload(logicalPaths ...string) error {
	for _, p := range logicalPaths {
		if _, err := r.template(p); err != nil {
			return &RenderError{LogicalPath: p, Cause: err}
		}
	}
	return nil
}

// Cached returns the number of parsed templates held by the renderer.
func (r *Renderer) Cached() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

func (r *Renderer) template(logicalPath string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[logicalPath]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[logicalPath]; ok {
		return tmpl, nil
	}

	tmpl, err := r.set.FromFile(logicalPath)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}

	r.templates[logicalPath] = tmpl
	slog.Debug("template parsed", "logicalPath", logicalPath)
	return tmpl, nil
}

// NewContext builds the render context: every top-level key of data plus
// the whole mapping under ConfigKey.
func NewContext(data map[string]any) pongo2.Context {
	ctx := make(pongo2.Context, len(data)+1)
	for k, v := range data {
		ctx[k] = v
	}
	ctx[ConfigKey] = data
	return ctx
}

func filterRequired(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() || (in.IsString() && strings.TrimSpace(in.String()) == "") {
		return nil, &pongo2.Error{
			Sender:    "filter:required",
			OrigError: fmt.Errorf("required value is missing or empty"),
		}
	}
	return in, nil
}

func filterPermissions(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	perms := []string{}
	for _, p := range strings.Split(in.String(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}
	return pongo2.AsValue(perms), nil
}

// filterShellQuote quotes the value as a single bash word so user-supplied
// names never expand inside generated scripts.
func filterShellQuote(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	quoted, err := syntax.Quote(in.String(), syntax.LangBash)
	if err != nil {
		return nil, &pongo2.Error{
			Sender:    "filter:shquote",
			OrigError: fmt.Errorf("value cannot be shell quoted: %w", err),
		}
	}
	return pongo2.AsValue(quoted), nil
}
