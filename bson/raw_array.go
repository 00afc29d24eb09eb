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

package bson

import (
	"log/slog"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// RawArray represents a single BSON array in its binary encoded form.
//
// It generally references a part of a larger slice, not a copy.
type RawArray []byte

// Decode decodes a single BSON array that takes the whole byte slice, with
// [DefaultDecodeOptions].
func (raw RawArray) Decode() (*Array, error) {
	return raw.decode(DefaultDecodeOptions())
}

// decode decodes a single BSON array that takes the whole byte slice,
// applying opts (notably opts.Raw for whether nested documents/arrays are
// left undecoded).
func (raw RawArray) decode(opts DecodeOptions) (*Array, error) {
	doc, _, err := decodeElementLoop(raw, true, opts)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	res := &Array{elements: doc.Values()}

	return res, nil
}

// LogValue implements [slog.LogValuer].
func (raw RawArray) LogValue() slog.Value {
	return slogValue(raw, 1)
}

// check interfaces
var (
	_ slog.LogValuer = RawArray(nil)
)
