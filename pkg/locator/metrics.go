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

package locator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	locateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctk_locate_total",
			Help: "Total number of installer locate attempts",
		},
		[]string{"os", "arch", "status"}, // status: success or error
	)

	manifestFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ctk_manifest_fetch_duration_seconds",
			Help:    "Time taken to fetch a release checksum manifest",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
	)
)
