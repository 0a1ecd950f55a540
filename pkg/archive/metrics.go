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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess   = "success"
	outcomeTimeout   = "timeout"
	outcomeCancelled = "cancelled"
)

var (
	generateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "easysh_generate_total",
			Help: "Total number of archive generation attempts",
		},
		[]string{"outcome"}, // success, timeout, cancelled or a failure kind
	)

	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "easysh_generate_duration_seconds",
			Help:    "Time taken to render and package a scaffold archive",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	entriesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "easysh_archive_entries_written_total",
			Help: "Total number of files written into generated archives",
		},
	)

	archiveSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "easysh_archive_size_bytes",
			Help:    "Size of generated archives in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

func recordOutcome(outcome string, seconds float64) {
	generateTotal.WithLabelValues(outcome).Inc()
	generateDuration.Observe(seconds)
}
