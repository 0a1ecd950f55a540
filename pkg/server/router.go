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

package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	apperrors "github.com/easysh/easysh/pkg/errors"
	"github.com/easysh/easysh/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// System routes served without rate limiting.
const (
	RouteHealth  = "/health"
	RouteReady   = "/ready"
	RouteMetrics = "/metrics"
)

// InfoResponse is returned by the root route.
type InfoResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(RouteHealth, s.handleHealth)
	mux.HandleFunc(RouteReady, s.handleReady)
	mux.Handle(RouteMetrics, promhttp.Handler())

	for path, handler := range s.config.Handlers {
		if isSystemRoute(path) {
			slog.Warn("ignoring handler that shadows a system route", "path", path)
			continue
		}
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

func isSystemRoute(path string) bool {
	return path == RouteHealth || path == RouteReady || path == RouteMetrics
}

// routes lists every registered path in a stable order.
func (s *Server) routes() []string {
	routes := []string{RouteHealth, RouteReady, RouteMetrics}
	for path := range s.config.Handlers {
		if path != "/" && !isSystemRoute(path) {
			routes = append(routes, path)
		}
	}
	slices.Sort(routes)
	return routes
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path, "routes": s.routes()})
		return
	}
	if !AllowMethod(w, r, http.MethodGet) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, InfoResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.IsReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routes(),
	})
}
