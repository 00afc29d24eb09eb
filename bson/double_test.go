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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doublePayload(v float64) []byte {
	var b buf
	b.u64(math.Float64bits(v))

	return b.b
}

func TestDecodeDoublePromoted(t *testing.T) {
	t.Parallel()

	v, n, err := decodeDouble(doublePayload(42.5), DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, 42.5, v)
}

func TestDecodeDoubleWrapped(t *testing.T) {
	t.Parallel()

	opts := DecodeOptions{}

	v, _, err := decodeDouble(doublePayload(1.5), opts)
	require.NoError(t, err)
	assert.Equal(t, Double(1.5), v)
}

func TestDecodeDoubleNonFiniteNeverStringified(t *testing.T) {
	t.Parallel()

	v, _, err := decodeDouble(doublePayload(math.NaN()), DefaultDecodeOptions())
	require.NoError(t, err)

	f, ok := v.(float64)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestDecodeInt32Promotion(t *testing.T) {
	t.Parallel()

	var b buf
	b.u32(7)

	v, n, err := decodeInt32(b.b, DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, int32(7), v)

	v, _, err = decodeInt32(b.b, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, Int32(7), v)
}
