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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/docubson/bson/bson"
	"github.com/docubson/bson/ejson"
)

// run reads every BSON document from the configured input sources (files,
// or stdin when none were given) and writes one line of EJSON per document
// to out.
func run(out io.Writer, m *metrics, logger *zap.Logger) error {
	decodeOpts := bson.DecodeOptions{
		PromoteLongs:                     true,
		PromoteValues:                    true,
		PromoteBuffers:                   cli.PromoteBuffers,
		AllowObjectSmallerThanBufferSize: cli.AllowObjectSmallerThanBufferSize,
	}

	ejsonOpts := ejson.Options{
		Relaxed: !cli.Canonical,
		Legacy:  cli.Legacy,
	}

	if len(cli.Files) == 0 {
		return dumpStream(os.Stdin, out, decodeOpts, ejsonOpts, m, logger)
	}

	for _, path := range cli.Files {
		if err := dumpFile(path, out, decodeOpts, ejsonOpts, m, logger); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func dumpFile(
	path string,
	out io.Writer,
	decodeOpts bson.DecodeOptions,
	ejsonOpts ejson.Options,
	m *metrics,
	logger *zap.Logger,
) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // read-only fd, nothing to recover from a close error here

	return dumpStream(f, out, decodeOpts, ejsonOpts, m, logger)
}

// dumpStream reads consecutive length-prefixed BSON documents from r until
// EOF, writing one EJSON line per document to out.
func dumpStream(
	r io.Reader,
	out io.Writer,
	decodeOpts bson.DecodeOptions,
	ejsonOpts ejson.Options,
	m *metrics,
	logger *zap.Logger,
) error {
	for {
		raw, err := readOneDocument(r)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		v, err := bson.DecodeOptionsDocument(raw, decodeOpts)
		if err != nil {
			m.decodeErrors.Inc()
			logger.Warn("failed to decode document", zap.Error(err))

			continue
		}

		m.documentsDecoded.Inc()

		if err = writeEJSON(v, ejsonOpts, out, m); err != nil {
			return err
		}

		if _, err = io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
}

// readOneDocument reads a single length-prefixed BSON document from r,
// returning io.EOF (unwrapped) only when r is exhausted before any bytes of
// a new document are read.
func readOneDocument(r io.Reader) (bson.RawDocument, error) {
	var lenBuf [4]byte

	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("reading document length: %w", err)
	}

	size := int32(binary.LittleEndian.Uint32(lenBuf[:]))
	if size < 5 {
		return nil, fmt.Errorf("invalid document length %d", size)
	}

	buf := make([]byte, size)
	copy(buf, lenBuf[:])

	if _, err := io.ReadFull(r, buf[4:]); err != nil {
		return nil, fmt.Errorf("reading document body: %w", err)
	}

	return bson.RawDocument(buf), nil
}

// writeEJSON drains an [ejson.Encoder] for v, writing each chunk to out and
// counting it in m.
func writeEJSON(v any, opts ejson.Options, out io.Writer, m *metrics) error {
	var indentArg any
	if cli.Indent > 0 {
		indentArg = cli.Indent
	}

	enc, err := ejson.NewWithOptions(v, opts, nil, indentArg)
	if err != nil {
		return err
	}

	for {
		chunk, ok, err := enc.Next()
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		m.chunksEmitted.Inc()

		if _, err = io.WriteString(out, chunk); err != nil {
			return err
		}
	}
}
