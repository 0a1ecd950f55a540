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

package catalog

import (
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/easysh/easysh/pkg/config"
	apperrors "github.com/easysh/easysh/pkg/errors"
	"github.com/easysh/easysh/pkg/templates"
)

const (
	// TemplateSuffix marks a file as a template.
	TemplateSuffix = ".jinja2"

	// SetupScriptPath is the logical path of the always-included setup script.
	SetupScriptPath = "setup_environment.sh" + TemplateSuffix
)

// Entry is one template source.
type Entry struct {
	// LogicalPath is the slash-separated path within the source FS,
	// e.g. "backend/src/main.py.jinja2".
	LogicalPath string `json:"logicalPath" yaml:"logicalPath"`

	// Partition is the owning partition; empty for the setup script.
	Partition string `json:"partition,omitempty" yaml:"partition,omitempty"`
}

// RelPath returns the entry path relative to its partition root.
func (e Entry) RelPath() string {
	if e.Partition == "" {
		return e.LogicalPath
	}
	return strings.TrimPrefix(e.LogicalPath, e.Partition+"/")
}

// IsSetupScript reports whether e is the setup script.
func (e Entry) IsSetupScript() bool {
	return e.Partition == "" && e.LogicalPath == SetupScriptPath
}

// Catalog is a read-only partition index over a template source.
type Catalog struct {
	fsys       fs.FS
	partitions []string
	index      map[string][]Entry
	setup      Entry
	strict     bool
}

// Option configures catalog construction.
type Option func(*Catalog)

// withPartitions sets the known partitions in canonical order.
// Defaults to the configuration part names.
func withPartitions(names ...string) Option {
	return func(c *Catalog) {
		c.partitions = slices.Clone(names)
	}
}

// WithStrict makes templates under an unknown top-level directory a
// construction error instead of being skipped.
func WithStrict(strict bool) Option {
	return func(c *Catalog) {
		c.strict = strict
	}
}

// Default builds the catalog over the embedded template tree.
func Default() (*Catalog, error) {
	return New(templates.FS(), WithStrict(true))
}

// New walks fsys once and builds the partition index.
func New(fsys fs.FS, opts ...Option) (*Catalog, error) {
	if fsys == nil {
		return nil, apperrors.New(apperrors.ErrCodeCatalogUnavailable, "template source is nil")
	}

	c := &Catalog{
		fsys:       fsys,
		partitions: config.PartNames(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.index = make(map[string][]Entry, len(c.partitions))
	for _, p := range c.partitions {
		c.index[p] = []Entry{}
	}

	if err := fs.WalkDir(fsys, ".", c.visit); err != nil {
		if se := apperrors.AsStructured(err); se != nil && se.Code == apperrors.ErrCodeCatalogUnavailable {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeCatalogUnavailable, "failed to read template source", err)
	}

	if c.setup.LogicalPath == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeCatalogUnavailable,
			"setup script template missing", map[string]any{"logicalPath": SetupScriptPath})
	}

	for p := range c.index {
		slices.SortFunc(c.index[p], func(a, b Entry) int {
			return strings.Compare(a.LogicalPath, b.LogicalPath)
		})
	}

	slog.Debug("template catalog built",
		"partitions", len(c.partitions),
		"entries", c.Len())

	return c, nil
}

func (c *Catalog) visit(p string, d fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if d.IsDir() || !strings.HasSuffix(p, TemplateSuffix) {
		return nil
	}

	top, _, nested := strings.Cut(p, "/")
	if !nested {
		if p == SetupScriptPath {
			c.setup = Entry{LogicalPath: p}
		} else {
			slog.Debug("skipping root template outside any partition", "logicalPath", p)
		}
		return nil
	}

	if _, known := c.index[top]; !known {
		if c.strict {
			return apperrors.NewWithContext(apperrors.ErrCodeCatalogUnavailable,
				fmt.Sprintf("template %s is under unknown partition %q", p, top),
				map[string]any{"logicalPath": p, "partition": top})
		}
		slog.Warn("skipping template under unknown partition", "logicalPath", p, "partition", top)
		return nil
	}

	c.index[top] = append(c.index[top], Entry{LogicalPath: path.Clean(p), Partition: top})
	return nil
}

// FS returns the template source the catalog was built from.
func (c *Catalog) FS() fs.FS {
	return c.fsys
}

// Partitions returns the known partitions in canonical order.
func (c *Catalog) Partitions() []string {
	return slices.Clone(c.partitions)
}

// Entries yields the entries of partition in lexical path order.
// Unknown partitions yield nothing.
func (c *Catalog) Entries(partition string) iter.Seq[Entry] {
	entries := c.index[partition]
	return func(yield func(Entry) bool) {
		for _, e := range entries {
			if !yield(e) {
				return
			}
		}
	}
}

// SetupScript returns the always-included setup script entry.
func (c *Catalog) SetupScript() Entry {
	return c.setup
}

// Len returns the number of entries including the setup script.
func (c *Catalog) Len() int {
	n := 1
	for _, entries := range c.index {
		n += len(entries)
	}
	return n
}
