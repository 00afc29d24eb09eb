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

// Timestamp represents the BSON Timestamp type: two unsigned 32-bit halves.
//
// I and T must never be reassembled via signed bit-shifts; see decodeTimestamp.
type Timestamp struct {
	I uint32
	T uint32
}

// sizeTimestamp is the on-wire size of a Timestamp payload.
const sizeTimestamp = 8

// decodeTimestamp decodes a Timestamp payload starting at b[0].
//
// Both halves are read via [binary.LittleEndian.Uint32], which performs
// unsigned assembly; there is no bit-shift promotion to a signed type here.
func decodeTimestamp(b []byte) (Timestamp, int, error) {
	if err := decodeCheckOffset(b, 0, sizeTimestamp); err != nil {
		return Timestamp{}, 0, lazyerrors.Error(err)
	}

	i := binary.LittleEndian.Uint32(b[0:4])
	t := binary.LittleEndian.Uint32(b[4:8])

	return Timestamp{I: i, T: t}, sizeTimestamp, nil
}
