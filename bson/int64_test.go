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

func int64Payload(v int64) []byte {
	var b buf
	b.u64(uint64(v))

	return b.b
}

func TestDecodeInt64Default(t *testing.T) {
	t.Parallel()

	v, n, err := decodeInt64(int64Payload(42), DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	promoted, ok := v.(float64)
	require.True(t, ok)
	assert.Equal(t, float64(42), promoted)
}

func TestDecodeInt64PromoteSafeRange(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.PromoteLongs = true
	opts.PromoteValues = true

	v, _, err := decodeInt64(int64Payload(safeIntMax), opts)
	require.NoError(t, err)
	assert.Equal(t, float64(safeIntMax), v)

	v, _, err = decodeInt64(int64Payload(safeIntMax+1), opts)
	require.NoError(t, err)
	wrapped, ok := v.(Int64)
	require.True(t, ok)
	assert.Equal(t, safeIntMax+1, wrapped.Value())
}

func TestDecodeInt64UseBigInt64(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.PromoteLongs = true
	opts.PromoteValues = true
	opts.UseBigInt64 = true

	v, _, err := decodeInt64(int64Payload(-7), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), v)
}

func TestDecodeInt64UseBigInt64WithoutPromotionConflicts(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.UseBigInt64 = true
	opts.PromoteLongs = false

	_, _, err := decodeInt64(int64Payload(1), opts)
	require.Error(t, err)
}

func TestInt64ValueRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40)} {
		assert.Equal(t, v, newInt64(v).Value(), "v = %d", v)
	}
}
