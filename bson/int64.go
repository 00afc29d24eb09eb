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

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// Int64 is the non-promoted wrapper for a 64-bit integer, carrying the exact
// value as two unsigned 32-bit halves rather than a signed int64, per
// spec.md §9's "Bignum vs two-word Long" design note.
type Int64 struct {
	Hi uint32
	Lo uint32
}

// Value reassembles the wrapped value as a signed int64.
func (v Int64) Value() int64 {
	return int64(uint64(v.Hi)<<32 | uint64(v.Lo))
}

// newInt64 builds the two-word wrapper from a signed int64.
func newInt64(v int64) Int64 {
	u := uint64(v)
	return Int64{Hi: uint32(u >> 32), Lo: uint32(u)}
}

// safeIntMax and safeIntMin bound the range in which an int64 converts to
// float64 without loss of precision (JS's Number.MAX_SAFE_INTEGER and its
// negation); this is the range spec.md's promoteLongs policy checks.
const (
	safeIntMax = int64(1<<53 - 1)
	safeIntMin = -safeIntMax
)

// decodeInt64 decodes an Int64 payload starting at b[0] and applies o's
// promotion policy, returning one of: float64 (promoted, safe range),
// [Int64] (not promoted, or promoted but out of safe range), or int64
// (useBigInt64).
func decodeInt64(b []byte, o DecodeOptions) (any, int, error) {
	if err := decodeCheckOffset(b, 0, 8); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	raw := int64(binary.LittleEndian.Uint64(b))

	switch {
	case o.UseBigInt64:
		if !o.PromoteValues || !o.PromoteLongs {
			return nil, 0, lazyerrors.Errorf("useBigInt64 requires promoteValues and promoteLongs: %w", ErrOptionConflict)
		}

		return raw, 8, nil

	case o.PromoteLongs && o.PromoteValues:
		if raw >= safeIntMin && raw <= safeIntMax {
			return float64(raw), 8, nil
		}

		return newInt64(raw), 8, nil

	default:
		return newInt64(raw), 8, nil
	}
}
