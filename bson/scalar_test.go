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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObjectID(t *testing.T) {
	t.Parallel()

	var b buf
	for i := byte(0); i < 12; i++ {
		b.byte(i)
	}

	id, n, err := decodeObjectID(b.b)
	require.NoError(t, err)
	assert.Equal(t, sizeObjectID, n)
	assert.Equal(t, "000102030405060708090a0b", id.String())
}

func TestDecodeDecimal128(t *testing.T) {
	t.Parallel()

	var b buf
	for i := byte(0); i < 16; i++ {
		b.byte(i)
	}

	d, n, err := decodeDecimal128(b.b)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, byte(0), d[0])
	assert.Equal(t, byte(15), d[15])
}

func TestDecodeSymbolWrapped(t *testing.T) {
	t.Parallel()

	var b buf
	b.u32(int32(len("sym") + 1))
	b.bytes([]byte("sym"))
	b.byte(0)

	v, _, err := decodeSymbol(b.b, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, Symbol("sym"), v)
}

func TestDecodeSymbolPromoted(t *testing.T) {
	t.Parallel()

	var b buf
	b.u32(int32(len("sym") + 1))
	b.bytes([]byte("sym"))
	b.byte(0)

	v, _, err := decodeSymbol(b.b, DecodeOptions{PromoteValues: true})
	require.NoError(t, err)
	assert.Equal(t, "sym", v)
}

func TestDecodeCodeWithScope(t *testing.T) {
	t.Parallel()

	scope := document(fieldBool("x", true))

	var code buf
	code.u32(int32(len("f()") + 1))
	code.bytes([]byte("f()"))
	code.byte(0)

	total := 4 + len(code.b) + len(scope)

	var b buf
	b.u32(int32(total))
	b.bytes(code.b)
	b.bytes(scope)

	cws, n, err := decodeCodeWithScope(b.b, DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, total, n)
	assert.Equal(t, "f()", cws.Code)

	x, ok := cws.Scope.Get("x")
	require.True(t, ok)
	assert.Equal(t, true, x)
}

func TestDecodeCodeWithScopeSizeMismatch(t *testing.T) {
	t.Parallel()

	scope := document(fieldBool("x", true))

	var code buf
	code.u32(int32(len("f()") + 1))
	code.bytes([]byte("f()"))
	code.byte(0)

	var b buf
	b.u32(999) // wrong total size
	b.bytes(code.b)
	b.bytes(scope)

	_, _, err := decodeCodeWithScope(b.b, DefaultDecodeOptions())
	require.Error(t, err)
}

func TestDecodeDBPointer(t *testing.T) {
	t.Parallel()

	var ns buf
	ns.u32(int32(len("db.coll") + 1))
	ns.bytes([]byte("db.coll"))
	ns.byte(0)

	var id buf
	for i := byte(0); i < 12; i++ {
		id.byte(i)
	}

	var b buf
	b.bytes(ns.b)
	b.bytes(id.b)

	ptr, n, err := decodeDBPointer(b.b)
	require.NoError(t, err)
	assert.Equal(t, len(b.b), n)
	assert.Equal(t, "db.coll", ptr.Namespace)
	assert.Equal(t, "000102030405060708090a0b", ptr.ID.String())
}

func TestDecodeNullMinMaxSingletons(t *testing.T) {
	t.Parallel()

	var lo, hi buf
	lo.byte(byte(tagMinKey)).cstring("lo")
	hi.byte(byte(tagMaxKey)).cstring("hi")

	raw := RawDocument(document(
		fieldNull("n"),
		lo.b,
		hi.b,
	))

	v, err := raw.Decode()
	require.NoError(t, err)

	doc := v.(*Document)
	n, ok := doc.Get("n")
	require.True(t, ok)
	assert.Equal(t, Null, n)

	minKey, ok := doc.Get("lo")
	require.True(t, ok)
	assert.Equal(t, MinKey, minKey)

	maxKey, ok := doc.Get("hi")
	require.True(t, ok)
	assert.Equal(t, MaxKey, maxKey)
}
