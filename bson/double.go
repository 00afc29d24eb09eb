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
	"encoding/binary"
	"math"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// Double is the non-promoted wrapper for a BSON 64-bit float value.
type Double float64

// decodeDouble decodes a Double payload starting at b[0] and applies o's
// promotion policy.
//
// Non-finite values (NaN, ±Inf) are always surfaced as their exact float64
// value, never as the literal strings "NaN"/"Infinity"/"-Infinity" — see
// DESIGN.md's Open Question decision on this point.
func decodeDouble(b []byte, o DecodeOptions) (any, int, error) {
	if err := decodeCheckOffset(b, 0, 8); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	v := math.Float64frombits(binary.LittleEndian.Uint64(b))

	if !o.PromoteValues {
		return Double(v), 8, nil
	}

	return v, 8, nil
}
