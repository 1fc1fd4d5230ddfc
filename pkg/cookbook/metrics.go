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

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registration metrics
	entriesRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_registered_total",
			Help: "Total number of entries added to the catalog",
		},
		[]string{"kind"},
	)
	registrationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_registration_failures_total",
			Help: "Total number of rejected entry registrations",
		},
		[]string{"code"},
	)

	// Summary metrics
	summaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_summary_duration_seconds",
			Help:    "Duration of recipe expansion and summary in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
	summaryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_summary_failures_total",
			Help: "Total number of failed summary requests",
		},
		[]string{"code"},
	)
)
