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
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/easysh/easysh/pkg/archive"
	"github.com/easysh/easysh/pkg/catalog"
	"github.com/easysh/easysh/pkg/defaults"
	"github.com/easysh/easysh/pkg/logging"
	"github.com/easysh/easysh/pkg/server"
)

const (
	name           = "easyshd"
	versionDefault = "dev"

	// EnvGenerateConcurrency bounds how many templates render in parallel.
	EnvGenerateConcurrency = "GENERATE_CONCURRENCY"
)

// Generation routes.
const (
	RouteGenerate   = "/api/generate"
	RouteGenerateV1 = "/v1/generate"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/easysh/easysh/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve builds the template catalog, starts the API server, and blocks
// until shutdown. A catalog that cannot be built is fatal.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cat, err := catalog.Default()
	if err != nil {
		slog.Error("template catalog unavailable", "error", err)
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	b, err := newBuilder(cat, archive.WithConcurrency(concurrencyFromEnv()))
	if err != nil {
		slog.Error("template catalog unavailable", "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(NewHandler(b))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newBuilder creates the archive builder and parses every template up
// front, so the server never starts listening with a broken catalog.
func newBuilder(cat *catalog.Catalog, opts ...archive.Option) (*archive.Builder, error) {
	b, err := archive.New(cat, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive builder: %w", err)
	}
	if err := b.Preload(); err != nil {
		return nil, fmt.Errorf("failed to preload templates: %w", err)
	}
	return b, nil
}

// Routes maps the generation endpoints to h.
func Routes(h *Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteGenerate:   h.HandleGenerate,
		RouteGenerateV1: h.HandleGenerate,
	}
}

func concurrencyFromEnv() int {
	if v := os.Getenv(EnvGenerateConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			return n
		}
		slog.Warn("ignoring invalid generate concurrency", "value", v)
	}
	return defaults.GenerateConcurrency
}
