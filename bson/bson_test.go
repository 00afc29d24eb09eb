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
)

// buf is a small helper for building raw BSON byte slices in tests without
// hand-counting offsets.
type buf struct {
	b []byte
}

func (bb *buf) u32(v int32) *buf {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	bb.b = append(bb.b, tmp[:]...)

	return bb
}

func (bb *buf) u64(v uint64) *buf {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	bb.b = append(bb.b, tmp[:]...)

	return bb
}

func (bb *buf) byte(v byte) *buf {
	bb.b = append(bb.b, v)

	return bb
}

func (bb *buf) cstring(s string) *buf {
	bb.b = append(bb.b, s...)
	bb.b = append(bb.b, 0)

	return bb
}

func (bb *buf) bytes(b []byte) *buf {
	bb.b = append(bb.b, b...)

	return bb
}

// document wraps fields (each producing a tag+cstring+payload) into a
// length-prefixed, NUL-terminated BSON document.
func document(fields ...[]byte) []byte {
	var b buf

	b.u32(0) // placeholder, patched below

	for _, f := range fields {
		b.bytes(f)
	}

	b.byte(0)

	binary.LittleEndian.PutUint32(b.b, uint32(len(b.b)))

	return b.b
}

func fieldDouble(name string, v float64) []byte {
	var b buf
	b.byte(byte(tagDouble)).cstring(name)
	b.u64(math.Float64bits(v))

	return b.b
}

func fieldString(name, v string) []byte {
	var b buf
	b.byte(byte(tagString)).cstring(name)
	b.u32(int32(len(v) + 1))
	b.bytes([]byte(v))
	b.byte(0)

	return b.b
}

func fieldInt32(name string, v int32) []byte {
	var b buf
	b.byte(byte(tagInt32)).cstring(name)
	b.u32(v)

	return b.b
}

func fieldBool(name string, v bool) []byte {
	var b buf
	b.byte(byte(tagBool)).cstring(name)

	if v {
		b.byte(1)
	} else {
		b.byte(0)
	}

	return b.b
}

func fieldNull(name string) []byte {
	var b buf
	b.byte(byte(tagNull)).cstring(name)

	return b.b
}

func fieldDocument(name string, doc []byte) []byte {
	var b buf
	b.byte(byte(tagDocument)).cstring(name)
	b.bytes(doc)

	return b.b
}
