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

func TestDecodeTimestampUnsignedAssembly(t *testing.T) {
	t.Parallel()

	var b buf
	b.u32(-1) // 0xFFFFFFFF as I
	b.u32(1)  // T

	ts, n, err := decodeTimestamp(b.b)
	require.NoError(t, err)
	assert.Equal(t, sizeTimestamp, n)

	assert.Equal(t, uint32(0xFFFFFFFF), ts.I)
	assert.Equal(t, uint32(1), ts.T)
}

func TestDecodeTimestampShortInput(t *testing.T) {
	t.Parallel()

	_, _, err := decodeTimestamp([]byte{1, 2, 3})
	require.Error(t, err)
}
