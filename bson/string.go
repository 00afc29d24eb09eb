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

// decodeString decodes a length-prefixed BSON string (String, Code, Symbol,
// the DBPointer namespace, …) starting at b[0].
//
// The length field includes the terminating NUL; it must be strictly
// positive, fit in the remaining buffer, and be followed by a NUL byte.
// This only checks structure; callers apply UTF-8 validation separately
// according to the active [DecodeOptions.UTF8Validation] policy.
func decodeString(b []byte) (string, int, error) {
	if err := decodeCheckOffset(b, 0, 4); err != nil {
		return "", 0, lazyerrors.Error(err)
	}

	l := int(int32(binary.LittleEndian.Uint32(b)))
	if l <= 0 {
		return "", 0, lazyerrors.Errorf("non-positive string length %d: %w", l, ErrBadString)
	}

	if err := decodeCheckOffset(b, 4, l); err != nil {
		return "", 0, lazyerrors.Error(err)
	}

	if b[4+l-1] != 0 {
		return "", 0, lazyerrors.Errorf("string not NUL-terminated: %w", ErrBadString)
	}

	return string(b[4 : 4+l-1]), 4 + l, nil
}
