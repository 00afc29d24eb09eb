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

// FindRaw finds the first raw BSON document or array in b, honoring allowShorter,
// and returns its declared length l.
//
// When allowShorter is false, it additionally requires len(b) == l.
// RawDocument(b[:l])/RawArray(b[:l]) might still not be structurally valid;
// it is the caller's responsibility to fully decode it.
func FindRaw(b []byte, allowShorter bool) (int, error) {
	bl := len(b)
	if bl < 5 {
		return 0, lazyerrors.Errorf("len(b) = %d: %w", bl, ErrDecodeShortInput)
	}

	dl := int(int32(binary.LittleEndian.Uint32(b)))
	if dl < 5 {
		return 0, lazyerrors.Errorf("declared length = %d: %w", dl, ErrCorruptBSON)
	}

	if bl < dl {
		return 0, lazyerrors.Errorf("len(b) = %d, declared length = %d: %w", bl, dl, ErrDecodeShortInput)
	}

	if !allowShorter && bl != dl {
		return 0, lazyerrors.Errorf("len(b) = %d, declared length = %d: %w", bl, dl, ErrCorruptBSON)
	}

	if b[dl-1] != 0 {
		return 0, lazyerrors.Errorf("invalid terminator byte: %w", ErrCorruptBSON)
	}

	return dl, nil
}

// decodeCheckOffset verifies that at least n more bytes are available in b starting at offset.
func decodeCheckOffset(b []byte, offset, n int) error {
	if offset < 0 || offset+n > len(b) {
		return lazyerrors.Errorf("offset %d, need %d, len(b) = %d: %w", offset, n, len(b), ErrDecodeShortInput)
	}

	return nil
}
