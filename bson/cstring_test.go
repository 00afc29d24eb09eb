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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCString(t *testing.T) {
	t.Parallel()

	s, err := DecodeCString([]byte("hello\x00world"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, 6, SizeCString(s))
}

func TestDecodeCStringMissingTerminator(t *testing.T) {
	t.Parallel()

	_, err := DecodeCString([]byte("hello"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptBSON))
}

func TestUTF8CheckRejectsInvalid(t *testing.T) {
	t.Parallel()

	err := utf8Check(string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadUTF8))
}

func TestUTF8CheckAcceptsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, utf8Check("héllo wörld"))
}
