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
	"time"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// decodeDateTime decodes a Date payload (milliseconds since the Unix epoch,
// signed 64-bit) starting at b[0].
func decodeDateTime(b []byte) (time.Time, int, error) {
	if err := decodeCheckOffset(b, 0, 8); err != nil {
		return time.Time{}, 0, lazyerrors.Error(err)
	}

	ms := int64(binary.LittleEndian.Uint64(b))

	return time.UnixMilli(ms).UTC(), 8, nil
}
