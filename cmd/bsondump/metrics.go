// Copyright 2021 FerretDB Inc.
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

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// metrics holds the small set of Prometheus counters this CLI exposes —
// a minimal instance of the teacher's prometheus/client_golang usage,
// scoped to what a single-pass dump tool actually does.
type metrics struct {
	documentsDecoded prometheus.Counter
	decodeErrors     prometheus.Counter
	chunksEmitted    prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		documentsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bsondump",
			Name:      "documents_decoded_total",
			Help:      "Total number of BSON documents successfully decoded.",
		}),
		decodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bsondump",
			Name:      "decode_errors_total",
			Help:      "Total number of documents that failed to decode.",
		}),
		chunksEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bsondump",
			Name:      "ejson_chunks_emitted_total",
			Help:      "Total number of EJSON chunks written to stdout.",
		}),
	}
}

// register adds m's counters to the default Prometheus registerer.
func (m *metrics) register() {
	prometheus.MustRegister(m.documentsDecoded, m.decodeErrors, m.chunksEmitted)
}

// serveMetrics registers m and blocks serving /metrics on addr.
func serveMetrics(addr string, logger *zap.Logger, m *metrics) {
	m.register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("serving Prometheus metrics", zap.String("addr", addr))

	if err := http.ListenAndServe(addr, mux); err != nil { //nolint:gosec // debug-only listener, not internet-facing
		logger.Error("metrics listener stopped", zap.Error(err))
	}
}
