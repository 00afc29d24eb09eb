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
	"encoding/hex"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// ObjectID represents the BSON ObjectId type: a 12-byte value, copied out of
// the input buffer so it never aliases it.
type ObjectID [12]byte

// String returns the 24-character lowercase hex representation.
func (id ObjectID) String() string {
	return hex.EncodeToString(id[:])
}

// sizeObjectID is the on-wire size of an ObjectID payload.
const sizeObjectID = 12

// decodeObjectID decodes an ObjectID payload starting at b[0].
func decodeObjectID(b []byte) (ObjectID, int, error) {
	if err := decodeCheckOffset(b, 0, sizeObjectID); err != nil {
		return ObjectID{}, 0, lazyerrors.Error(err)
	}

	var id ObjectID
	copy(id[:], b[:sizeObjectID])

	return id, sizeObjectID, nil
}
