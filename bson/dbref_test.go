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

func TestDBRefRecognized(t *testing.T) {
	t.Parallel()

	raw := RawDocument(document(
		fieldString("$ref", "products"),
		fieldString("$id", "abc123"),
		fieldString("$db", "shop"),
	))

	v, err := raw.Decode()
	require.NoError(t, err)

	ref, ok := v.(DBRef)
	require.True(t, ok)
	assert.Equal(t, "products", ref.Ref)
	assert.Equal(t, "abc123", ref.ID)
	require.NotNil(t, ref.DB)
	assert.Equal(t, "shop", *ref.DB)
	assert.Nil(t, ref.Extra)
}

func TestDBRefRecognizedWithExtra(t *testing.T) {
	t.Parallel()

	raw := RawDocument(document(
		fieldString("$ref", "products"),
		fieldString("$id", "abc123"),
		fieldString("note", "priority"),
	))

	v, err := raw.Decode()
	require.NoError(t, err)

	ref, ok := v.(DBRef)
	require.True(t, ok)
	require.NotNil(t, ref.Extra)

	note, found := ref.Extra.Get("note")
	require.True(t, found)
	assert.Equal(t, "priority", note)
}

func TestDBRefNotRecognizedWithOtherDollarKey(t *testing.T) {
	t.Parallel()

	raw := RawDocument(document(
		fieldString("$ref", "products"),
		fieldString("$id", "abc123"),
		fieldString("$extra", "nope"),
	))

	v, err := raw.Decode()
	require.NoError(t, err)

	_, ok := v.(*Document)
	require.True(t, ok, "must not be promoted to DBRef when an unrelated $-prefixed key is present")
}

func TestDBRefNotRecognizedMissingID(t *testing.T) {
	t.Parallel()

	raw := RawDocument(document(fieldString("$ref", "products")))

	v, err := raw.Decode()
	require.NoError(t, err)

	_, ok := v.(*Document)
	assert.True(t, ok)
}

func TestDBRefNotRecognizedWrongRefType(t *testing.T) {
	t.Parallel()

	raw := RawDocument(document(
		fieldInt32("$ref", 1),
		fieldString("$id", "abc123"),
	))

	v, err := raw.Decode()
	require.NoError(t, err)

	_, ok := v.(*Document)
	assert.True(t, ok)
}
