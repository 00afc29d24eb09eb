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

// Package main is the entry point for bsondump, a CLI that reads one or more
// BSON documents and writes their Extended JSON projection to stdout.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// cli represents all command-line flags, parsed by kong.
var cli struct {
	Canonical bool `default:"false" help:"Use canonical (type-preserving) EJSON instead of relaxed."`
	Legacy    bool `default:"false" help:"Use legacy (v1) Binary/RegExp EJSON forms."`
	Indent    int  `default:"0"     help:"Number of spaces to indent nested structures by (0-10)."`

	PromoteBuffers                   bool `default:"false" help:"Decode Binary payloads as raw byte strings instead of $binary wrappers."`
	AllowObjectSmallerThanBufferSize bool `default:"false" help:"Allow the input buffer to extend past a document's declared length."`

	MetricsAddr string `default:"" help:"Listen address for a Prometheus /metrics endpoint. Disabled when empty."`

	Files []string `arg:"" optional:"" help:"BSON files to read. Reads stdin when omitted."`
}

func main() {
	kong.Parse(&cli)

	logger := setupLogger()
	defer func() { _ = logger.Sync() }()

	setGOMAXPROCS(logger)

	m := newMetrics()

	if cli.MetricsAddr != "" {
		go serveMetrics(cli.MetricsAddr, logger, m)
	}

	if err := run(os.Stdout, m, logger); err != nil {
		logger.Error("bsondump failed", zap.Error(err))
		os.Exit(1)
	}
}

// setupLogger builds the application-level logger, distinct from the
// bson package's own [log/slog] value logging — the same two-tier split
// the teacher draws between library-level slog.LogValuer and
// application-level zap.Logger.
func setupLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}

	return logger
}

// setGOMAXPROCS sets GOMAXPROCS from the container's CPU quota, matching
// cmd/ferretdb/gomaxprocs.go.
func setGOMAXPROCS(logger *zap.Logger) {
	opts := []maxprocs.Option{
		maxprocs.Min(1),
		maxprocs.RoundQuotaFunc(func(v float64) int {
			return int(math.Ceil(v))
		}),
		maxprocs.Logger(func(format string, a ...any) {
			logger.Sugar().Infof(format, a...)
		}),
	}

	if _, err := maxprocs.Set(opts...); err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}
}
