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
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/easysh/easysh/pkg/catalog"
	"github.com/easysh/easysh/pkg/config"
	"github.com/easysh/easysh/pkg/defaults"
	apperrors "github.com/easysh/easysh/pkg/errors"
	"github.com/easysh/easysh/pkg/pathmap"
	"github.com/easysh/easysh/pkg/render"
)

// Renderer renders one template by logical path.
type Renderer interface {
	Render(logicalPath string, data map[string]any) (string, error)
}

// preloader is implemented by renderers that can parse templates ahead of
// the first build.
type preloader interface {
	Preload(logicalPaths ...string) error
}

// Entry describes one file written to the archive.
type Entry struct {
	Path   string `json:"path" yaml:"path"`
	Size   int64  `json:"size" yaml:"size"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// Result is a successfully built archive.
type Result struct {
	// Data holds the complete ZIP archive.
	Data []byte
	// Filename is the suggested download name, <rootProjectName>.zip.
	Filename string
	// Entries lists the written files in archive order.
	Entries  []Entry
	Duration time.Duration
}

// Size returns the archive size in bytes.
func (r *Result) Size() int64 {
	return int64(len(r.Data))
}

// Builder renders catalog templates into archives. It holds no per-build
// state and is safe for concurrent use.
type Builder struct {
	catalog     *catalog.Catalog
	renderer    Renderer
	concurrency int
	shellCheck  bool
	checksums   bool
	modTime     time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithConcurrency sets how many templates are rendered in parallel.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n < 1 {
			n = 1
		}
		b.concurrency = n
	}
}

// WithShellCheck enables or disables parsing rendered .sh files as bash.
// Enabled by default.
func WithShellCheck(enabled bool) Option {
	return func(b *Builder) {
		b.shellCheck = enabled
	}
}

// WithChecksums adds a checksums.txt manifest at the archive root.
// Disabled by default.
func WithChecksums(enabled bool) Option {
	return func(b *Builder) {
		b.checksums = enabled
	}
}

// WithRenderer replaces the renderer created from the catalog source.
func WithRenderer(r Renderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}

// WithModTime overrides the timestamp stamped on archive entries.
func WithModTime(t time.Time) Option {
	return func(b *Builder) {
		b.modTime = t
	}
}

// New returns a Builder over cat.
func New(cat *catalog.Catalog, opts ...Option) (*Builder, error) {
	if cat == nil {
		return nil, apperrors.New(apperrors.ErrCodeCatalogUnavailable, "catalog is nil")
	}

	b := &Builder{
		catalog:     cat,
		concurrency: defaults.GenerateConcurrency,
		shellCheck:  true,
		modTime:     defaults.ArchiveModTime,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.renderer == nil {
		r, err := render.New(cat.FS())
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeCatalogUnavailable, "failed to create renderer", err)
		}
		b.renderer = r
	}

	return b, nil
}

// Preload parses every catalog template, including the setup script, so a
// broken template stops startup instead of failing the first request.
// Renderers without preload support are left alone.
func (b *Builder) Preload() error {
	p, ok := b.renderer.(preloader)
	if !ok {
		return nil
	}

	paths := make([]string, 0, b.catalog.Len())
	for _, part := range b.catalog.Partitions() {
		for entry := range b.catalog.Entries(part) {
			paths = append(paths, entry.LogicalPath)
		}
	}
	setup := b.catalog.SetupScript()
	if !setup.IsSetupScript() {
		return apperrors.New(apperrors.ErrCodeCatalogUnavailable, "catalog has no setup script")
	}
	paths = append(paths, setup.LogicalPath)

	if err := p.Preload(paths...); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCatalogUnavailable, "failed to parse templates", err)
	}

	slog.Debug("templates preloaded", "count", len(paths))
	return nil
}

// job is one template scheduled for rendering.
type job struct {
	entry       catalog.Entry
	archivePath string
}

// Build renders every selected template for cfg and returns the archive.
// Any failure discards all rendered output.
func (b *Builder) Build(ctx context.Context, cfg *config.Config) (*Result, error) {
	start := time.Now()

	res, err := b.build(ctx, cfg)
	elapsed := time.Since(start)

	if err != nil {
		recordOutcome(outcomeOf(err), elapsed.Seconds())
		slog.Debug("archive generation failed", "error", err, "duration", elapsed)
		return nil, err
	}

	res.Duration = elapsed
	recordOutcome(outcomeSuccess, elapsed.Seconds())
	entriesWritten.Add(float64(len(res.Entries)))
	archiveSize.Observe(float64(res.Size()))

	slog.Info("archive generated",
		"project", cfg.Global.ProjectName,
		"files", len(res.Entries),
		"size_bytes", res.Size(),
		"duration", elapsed.Round(time.Millisecond),
	)
	return res, nil
}

func (b *Builder) build(ctx context.Context, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "configuration cannot be nil")
	}
	if !cfg.AnyIncluded() {
		return nil, &GenerationError{
			Kind:    KindNoPartsSelected,
			Message: "at least one part of the project (backend or frontend) must be included",
		}
	}

	jobs, err := b.plan(cfg)
	if err != nil {
		return nil, err
	}

	rendered, err := b.renderAll(ctx, jobs, cfg.Context())
	if err != nil {
		return nil, err
	}

	return b.write(cfg.Global.ProjectName, jobs, rendered)
}

// plan lists the templates to render in canonical order: included
// partitions in part order, then the setup script.
func (b *Builder) plan(cfg *config.Config) ([]job, error) {
	root := cfg.Global.ProjectName
	var jobs []job

	for _, part := range cfg.Parts() {
		if !part.Include {
			continue
		}
		for entry := range b.catalog.Entries(part.Name) {
			p, err := pathmap.MapEntry(entry, root, part.ProjectName)
			if err != nil {
				return nil, &GenerationError{
					Kind:        KindTemplateRenderFailed,
					Message:     "cannot compute archive path",
					LogicalPath: entry.LogicalPath,
					Cause:       err,
				}
			}
			jobs = append(jobs, job{entry: entry, archivePath: p})
		}
	}

	setup := b.catalog.SetupScript()
	if !setup.IsSetupScript() {
		return nil, apperrors.New(apperrors.ErrCodeCatalogUnavailable, "catalog has no setup script")
	}
	jobs = append(jobs, job{entry: setup, archivePath: pathmap.SetupScript(root)})
	return jobs, nil
}

// renderAll renders jobs with bounded parallelism. Output is indexed like
// jobs so the caller can write it in order. The first failure cancels the
// remaining work.
func (b *Builder) renderAll(ctx context.Context, jobs []job, data map[string]any) ([]string, error) {
	out := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := b.renderOne(j, data)
			if err != nil {
				return err
			}
			out[i] = text
			return nil
		})
	}

	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, contextError(ctxErr)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Builder) renderOne(j job, data map[string]any) (string, error) {
	text, err := b.renderer.Render(j.entry.LogicalPath, data)
	if err != nil {
		return "", &GenerationError{
			Kind:        KindTemplateRenderFailed,
			Message:     "failed to render template",
			LogicalPath: j.entry.LogicalPath,
			Cause:       err,
		}
	}

	if b.shellCheck && isShellScript(j.archivePath) {
		if err := checkShell(j.archivePath, text); err != nil {
			return "", &GenerationError{
				Kind:        KindTemplateRenderFailed,
				Message:     "rendered script failed syntax check",
				LogicalPath: j.entry.LogicalPath,
				Cause:       err,
			}
		}
	}

	slog.Debug("template rendered", "logicalPath", j.entry.LogicalPath, "archivePath", j.archivePath)
	return text, nil
}

// write assembles the archive. Paths must be unique, and no file may sit
// where another entry needs a directory.
func (b *Builder) write(root string, jobs []job, rendered []string) (*Result, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	paths := newPathSet(len(jobs) + 1)
	entries := make([]Entry, 0, len(jobs)+1)

	add := func(name, logicalPath string, content []byte) error {
		if err := paths.claim(name, logicalPath); err != nil {
			return err
		}

		if err := b.writeEntry(zw, name, content); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInternal, "failed to write archive entry", err,
				map[string]any{"path": name})
		}

		sum := sha256.Sum256(content)
		entries = append(entries, Entry{
			Path:   name,
			Size:   int64(len(content)),
			SHA256: hex.EncodeToString(sum[:]),
		})
		return nil
	}

	for i, j := range jobs {
		if err := add(j.archivePath, j.entry.LogicalPath, []byte(rendered[i])); err != nil {
			return nil, err
		}
	}

	if b.checksums {
		manifest := checksumManifest(root, entries)
		if err := add(path.Join(root, ChecksumFileName), ChecksumFileName, manifest); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to finalize archive", err)
	}

	return &Result{
		Data:     buf.Bytes(),
		Filename: root + ".zip",
		Entries:  entries,
	}, nil
}

// pathSet tracks archive files and the directories they imply.
type pathSet struct {
	files map[string]string
	dirs  map[string]string
}

func newPathSet(size int) *pathSet {
	return &pathSet{
		files: make(map[string]string, size),
		dirs:  make(map[string]string, size),
	}
}

// claim records name as a file written from logicalPath. It fails when name
// is already a file or a directory, or when one of its parents is a file.
func (s *pathSet) claim(name, logicalPath string) error {
	if prev, dup := s.files[name]; dup {
		return duplicatePath(name, prev, logicalPath)
	}
	if prev, dup := s.dirs[name]; dup {
		return duplicatePath(name, prev, logicalPath)
	}
	for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if prev, dup := s.files[dir]; dup {
			return duplicatePath(dir, prev, logicalPath)
		}
	}

	s.files[name] = logicalPath
	for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if _, ok := s.dirs[dir]; ok {
			break
		}
		s.dirs[dir] = logicalPath
	}
	return nil
}

func duplicatePath(name, prev, logicalPath string) *GenerationError {
	return &GenerationError{
		Kind:        KindDuplicateArchivePath,
		Message:     fmt.Sprintf("archive path %s is produced by both %s and %s", name, prev, logicalPath),
		LogicalPath: logicalPath,
	}
}

func (b *Builder) writeEntry(zw *zip.Writer, name string, content []byte) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: b.modTime,
	}
	var mode fs.FileMode = 0o644
	if isShellScript(name) {
		mode = 0o755
	}
	header.SetMode(mode)

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

// contextError classifies why ctx ended: a deadline is a timeout, anything
// else means the caller gave up.
func contextError(ctxErr error) error {
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, "archive generation timed out", ctxErr)
	}
	return apperrors.Wrap(apperrors.ErrCodeCanceled, "archive generation cancelled", ctxErr)
}

func outcomeOf(err error) string {
	if ge := asGenerationError(err); ge != nil {
		return string(ge.Kind)
	}
	switch code := apperrors.CodeOf(err); code {
	case apperrors.ErrCodeTimeout:
		return outcomeTimeout
	case apperrors.ErrCodeCanceled:
		return outcomeCancelled
	default:
		return string(code)
	}
}
