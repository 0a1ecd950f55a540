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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestServer(cfg *Config) *Server {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(nil)
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generates when absent", "", false},
		{"keeps valid uuid", provided, true},
		{"replaces invalid id", "invalid-not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			_, err := uuid.Parse(captured)
			require.NoError(t, err)
			assert.Equal(t, captured, rec.Header().Get("X-Request-Id"))
			if tt.wantSame {
				assert.Equal(t, tt.header, captured)
			} else {
				assert.NotEqual(t, tt.header, captured)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(nil)

	var captured string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = APIVersion(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", nil)
	req.Header.Set("Accept", "application/vnd.easysh.v1+json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, "v1", captured)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows and sets headers", func(t *testing.T) {
		s := newTestServer(nil)
		rec := httptest.NewRecorder()
		s.rateLimitMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			assert.NotEmpty(t, rec.Header().Get(h), h)
		}
	})

	t.Run("rejects when exhausted", func(t *testing.T) {
		s := &Server{config: NewConfig(), rateLimiter: rate.NewLimiter(0, 0)}
		called := false
		rec := httptest.NewRecorder()
		s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
		})(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(nil)

	rec := httptest.NewRecorder()
	s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	})(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	s.panicRecoveryMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	s := newTestServer(nil)

	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError} {
		handler := s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, status, rec.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		origin        string
		preflight     bool
		wantStatus    int
		wantAllow     string
		wantNextCalls bool
	}{
		{
			name:          "no origin passes through",
			origins:       []string{"https://app.example.com"},
			wantStatus:    http.StatusOK,
			wantNextCalls: true,
		},
		{
			name:          "wildcard",
			origins:       []string{"*"},
			origin:        "https://anywhere.example.com",
			wantStatus:    http.StatusOK,
			wantAllow:     "*",
			wantNextCalls: true,
		},
		{
			name:          "listed origin is echoed",
			origins:       []string{"https://app.example.com"},
			origin:        "https://app.example.com",
			wantStatus:    http.StatusOK,
			wantAllow:     "https://app.example.com",
			wantNextCalls: true,
		},
		{
			name:          "unlisted simple request gets no cors headers",
			origins:       []string{"https://app.example.com"},
			origin:        "https://evil.example.com",
			wantStatus:    http.StatusOK,
			wantNextCalls: true,
		},
		{
			name:       "preflight allowed",
			origins:    []string{"https://app.example.com"},
			origin:     "https://app.example.com",
			preflight:  true,
			wantStatus: http.StatusNoContent,
			wantAllow:  "https://app.example.com",
		},
		{
			name:       "preflight rejected",
			origins:    []string{"https://app.example.com"},
			origin:     "https://evil.example.com",
			preflight:  true,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.AllowedOrigins = tt.origins
			s := newTestServer(cfg)

			called := false
			handler := s.corsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			method := http.MethodPost
			if tt.preflight {
				method = http.MethodOptions
			}
			req := httptest.NewRequest(method, "/api/generate", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantNextCalls, called)
			if tt.preflight && tt.wantStatus == http.StatusNoContent {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			}
			if tt.wantAllow != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Scaffold-Files")
			}
		})
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := newTestServer(nil)

	var requestID, version string
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestID(r.Context())
		version = APIVersion(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NotEmpty(t, requestID)
	assert.Equal(t, DefaultAPIVersion, version)
	for _, h := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-API-Version"} {
		assert.NotEmpty(t, rec.Header().Get(h), h)
	}
}
