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
	"fmt"

	"github.com/google/uuid"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// BinarySubtype represents a BSON Binary subtype byte.
type BinarySubtype byte

// Binary subtypes defined by the BSON spec.
const (
	BinaryGeneric     = BinarySubtype(0x00)
	BinaryFunction    = BinarySubtype(0x01)
	BinaryGenericOld  = BinarySubtype(0x02)
	BinaryUUIDOld     = BinarySubtype(0x03)
	BinaryUUID        = BinarySubtype(0x04)
	BinaryMD5         = BinarySubtype(0x05)
	BinaryEncrypted   = BinarySubtype(0x06)
	BinaryUserDefined = BinarySubtype(0x80)
)

// String returns a short name for the subtype, used in logging.
func (s BinarySubtype) String() string {
	switch s {
	case BinaryGeneric:
		return "generic"
	case BinaryFunction:
		return "function"
	case BinaryGenericOld:
		return "generic-old"
	case BinaryUUIDOld:
		return "uuid-old"
	case BinaryUUID:
		return "uuid"
	case BinaryMD5:
		return "md5"
	case BinaryEncrypted:
		return "encrypted"
	default:
		return fmt.Sprintf("subtype(%#02x)", byte(s))
	}
}

// Binary represents the BSON Binary type.
type Binary struct {
	Subtype BinarySubtype
	B       []byte
}

// UUID is a well-formed 16-byte subtype-0x04 Binary, promoted from [Binary]
// unless PromoteBuffers and PromoteValues are both set (see [decodeBinary]).
type UUID = uuid.UUID

// decodeBinary decodes a Binary payload starting at b[0], applying the
// promotion policy from o. It returns the decoded value and the number of
// bytes consumed.
func decodeBinary(b []byte, o DecodeOptions) (any, int, error) {
	if err := decodeCheckOffset(b, 0, 5); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	l := int(int32(binary.LittleEndian.Uint32(b)))
	if l < 0 {
		return nil, 0, lazyerrors.Errorf("negative binary length %d: %w", l, ErrCorruptBSON)
	}

	subtype := BinarySubtype(b[4])

	payloadOff := 5
	payloadLen := l

	if subtype == BinaryGenericOld {
		if err := decodeCheckOffset(b, payloadOff, 4); err != nil {
			return nil, 0, lazyerrors.Error(err)
		}

		inner := int(int32(binary.LittleEndian.Uint32(b[payloadOff:])))
		if inner != l-4 {
			return nil, 0, lazyerrors.Errorf(
				"binary subtype 0x02: inner length %d != outer-4 %d: %w", inner, l-4, ErrCorruptBSON,
			)
		}

		payloadOff += 4
		payloadLen = inner
	}

	if err := decodeCheckOffset(b, payloadOff, payloadLen); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	raw := make([]byte, payloadLen)
	copy(raw, b[payloadOff:payloadOff+payloadLen])

	total := payloadOff + payloadLen

	if o.PromoteBuffers && o.PromoteValues {
		return raw, total, nil
	}

	if subtype == BinaryUUID && len(raw) == 16 {
		id, err := uuid.FromBytes(raw)
		if err == nil {
			return UUID(id), total, nil
		}
	}

	return Binary{Subtype: subtype, B: raw}, total, nil
}
