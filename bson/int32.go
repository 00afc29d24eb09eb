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

// Int32 is the non-promoted wrapper for a BSON 32-bit integer value.
type Int32 int32

// decodeInt32 decodes an Int32 payload starting at b[0] and applies o's
// promotion policy.
func decodeInt32(b []byte, o DecodeOptions) (any, int, error) {
	if err := decodeCheckOffset(b, 0, 4); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	v := int32(binary.LittleEndian.Uint32(b))

	if !o.PromoteValues {
		return Int32(v), 4, nil
	}

	return v, 4, nil
}
