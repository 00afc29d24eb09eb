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

func TestLogMessageDocument(t *testing.T) {
	t.Parallel()

	doc := MakeDocument(0)
	require.NoError(t, doc.Add("name", "Ada"))
	require.NoError(t, doc.Add("age", int32(30)))

	assert.Equal(t, `{"name": "Ada", "age": 30}`, LogMessage(doc))
}

func TestLogMessageEmptyDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{}", LogMessage(MakeDocument(0)))
}

func TestLogMessageArray(t *testing.T) {
	t.Parallel()

	arr := MakeArray(2)
	arr.elements = append(arr.elements, int32(1), int32(2))

	assert.Equal(t, "[1, 2]", LogMessage(arr))
}

func TestLogMessageBlockAlwaysMultiline(t *testing.T) {
	t.Parallel()

	doc := MakeDocument(0)
	require.NoError(t, doc.Add("a", int32(1)))

	assert.Equal(t, "{\n  \"a\": 1,\n}", LogMessageBlock(doc))
}

func TestLogMessageDBRef(t *testing.T) {
	t.Parallel()

	ref := DBRef{Ref: "products", ID: "abc"}

	assert.Equal(t, `DBRef{$ref: "products", $id: "abc"}`, LogMessage(ref))
}
