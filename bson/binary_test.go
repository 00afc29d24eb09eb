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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binaryPayload(subtype BinarySubtype, payload []byte) []byte {
	var b buf
	b.u32(int32(len(payload)))
	b.byte(byte(subtype))
	b.bytes(payload)

	return b.b
}

func TestDecodeBinaryGeneric(t *testing.T) {
	t.Parallel()

	v, n, err := decodeBinary(binaryPayload(BinaryGeneric, []byte{1, 2, 3}), DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, 5+3, n)

	bin, ok := v.(Binary)
	require.True(t, ok)
	assert.Equal(t, BinaryGeneric, bin.Subtype)
	assert.Equal(t, []byte{1, 2, 3}, bin.B)
}

func TestDecodeBinarySubtype02NestedLength(t *testing.T) {
	t.Parallel()

	var inner buf
	inner.u32(3)
	inner.bytes([]byte{9, 9, 9})

	payload := binaryPayload(BinaryGenericOld, inner.b)

	v, n, err := decodeBinary(payload, DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)

	bin, ok := v.(Binary)
	require.True(t, ok)
	assert.Equal(t, []byte{9, 9, 9}, bin.B)
}

func TestDecodeBinarySubtype02MismatchedNestedLength(t *testing.T) {
	t.Parallel()

	var inner buf
	inner.u32(99) // wrong: does not match outer-4
	inner.bytes([]byte{9, 9, 9})

	payload := binaryPayload(BinaryGenericOld, inner.b)

	_, _, err := decodeBinary(payload, DefaultDecodeOptions())
	require.Error(t, err)
}

func TestDecodeBinaryUUIDPromotion(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	payload := binaryPayload(BinaryUUID, id[:])

	v, _, err := decodeBinary(payload, DefaultDecodeOptions())
	require.NoError(t, err)

	got, ok := v.(UUID)
	require.True(t, ok)
	assert.Equal(t, id, uuid.UUID(got))
}

func TestDecodeBinaryPromoteBuffers(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.PromoteBuffers = true

	v, _, err := decodeBinary(binaryPayload(BinaryGeneric, []byte{1, 2}), opts)
	require.NoError(t, err)

	raw, ok := v.([]byte)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2}, raw)
}
