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

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/easysh/easysh/pkg/archive"
	"github.com/easysh/easysh/pkg/config"
	"github.com/easysh/easysh/pkg/defaults"
	apperrors "github.com/easysh/easysh/pkg/errors"
	"github.com/easysh/easysh/pkg/server"
)

// Response headers describing the generated archive.
const (
	HeaderScaffoldFiles = "X-Scaffold-Files"
	HeaderScaffoldSize  = "X-Scaffold-Size"
)

var acceptedMediaTypes = map[string]bool{
	"application/json":   true,
	"application/yaml":   true,
	"application/x-yaml": true,
	"text/yaml":          true,
}

// Generator builds an archive from a validated configuration.
type Generator interface {
	Build(ctx context.Context, cfg *config.Config) (*archive.Result, error)
}

// Handler serves scaffold generation requests.
type Handler struct {
	generator Generator
	timeout   time.Duration
	maxBytes  int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithTimeout bounds a single generation.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithMaxBodyBytes caps the accepted configuration document.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// NewHandler returns a Handler backed by g.
func NewHandler(g Generator, opts ...HandlerOption) *Handler {
	h := &Handler{
		generator: g,
		timeout:   defaults.GenerateBuildTimeout,
		maxBytes:  defaults.MaxRequestBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleGenerate accepts a configuration document (JSON or YAML) and
// answers with the generated project as a zip archive.
//
// Example:
//
//	POST /v1/generate
//	Content-Type: application/json
//	Body: {"global": {"projectName": "demo"}, "backend": {"include": true}}
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethod(w, r, http.MethodPost) {
		return
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || !acceptedMediaTypes[mediaType] {
			server.WriteError(w, r, http.StatusUnsupportedMediaType, apperrors.ErrCodeInvalidRequest,
				"Unsupported content type", false, map[string]any{
					"contentType": ct,
				})
			return
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{
					"limit": tooLarge.Limit,
				})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Failed to read request body", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	cfg, err := config.Decode(body)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid configuration", nil)
		return
	}

	slog.Debug("generate request received",
		"requestID", server.RequestID(r.Context()),
		"project", cfg.Global.ProjectName,
		"parts", includedParts(cfg),
	)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.generator.Build(ctx, cfg)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeCanceled {
			slog.Info("client went away before the archive was ready",
				"requestID", server.RequestID(r.Context()),
				"project", cfg.Global.ProjectName)
		}
		server.WriteErrorFromErr(w, r, err, "Failed to generate project", nil)
		return
	}

	writeArchive(w, res)
}

func writeArchive(w http.ResponseWriter, res *archive.Result) {
	h := w.Header()
	h.Set("Content-Type", "application/zip")
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	h.Set("Content-Length", strconv.Itoa(len(res.Data)))
	h.Set(HeaderScaffoldFiles, strconv.Itoa(len(res.Entries)))
	h.Set(HeaderScaffoldSize, strconv.FormatInt(res.Size(), 10))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(res.Data); err != nil {
		// Can't write error response if we've already started writing
		slog.Warn("failed to stream archive", "error", err)
	}
}

func includedParts(cfg *config.Config) []string {
	var parts []string
	for _, p := range cfg.Parts() {
		if p.Include {
			parts = append(parts, p.Name)
		}
	}
	return parts
}
