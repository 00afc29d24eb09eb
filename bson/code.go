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

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// Code represents the BSON JavaScript-code type.
type Code string

// CodeWithScope represents the BSON JavaScript-code-with-scope type.
type CodeWithScope struct {
	Code  string
	Scope *Document
}

// decodeCode decodes a Code payload starting at b[0].
func decodeCode(b []byte) (Code, int, error) {
	s, n, err := decodeString(b)
	if err != nil {
		return "", 0, lazyerrors.Error(err)
	}

	return Code(s), n, nil
}

// decodeCodeWithScope decodes a CodeWithScope payload starting at b[0],
// cross-checking the declared totalSize against 4 (totalSize field itself)
// + the string's size + the scope document's size.
//
// The scope is always fully decoded (never left as a raw slice, regardless
// of opts.Raw) since CodeWithScope.Scope is pinned to *Document; DBRef
// recognition does not apply inside a scope document.
func decodeCodeWithScope(b []byte, opts DecodeOptions) (CodeWithScope, int, error) {
	if err := decodeCheckOffset(b, 0, 4); err != nil {
		return CodeWithScope{}, 0, lazyerrors.Error(err)
	}

	totalSize := int(int32(binary.LittleEndian.Uint32(b)))

	if err := decodeCheckOffset(b, 4, 0); err != nil {
		return CodeWithScope{}, 0, lazyerrors.Error(err)
	}

	code, codeSize, err := decodeString(b[4:])
	if err != nil {
		return CodeWithScope{}, 0, lazyerrors.Error(err)
	}

	scopeOff := 4 + codeSize

	if err = decodeCheckOffset(b, scopeOff, 0); err != nil {
		return CodeWithScope{}, 0, lazyerrors.Error(err)
	}

	scopeLen, err := FindRaw(b[scopeOff:], true)
	if err != nil {
		return CodeWithScope{}, 0, lazyerrors.Error(err)
	}

	if want := 4 + codeSize + scopeLen; want != totalSize {
		return CodeWithScope{}, 0, lazyerrors.Errorf(
			"codeWithScope totalSize mismatch: declared %d, computed %d: %w", totalSize, want, ErrCorruptBSON,
		)
	}

	rawScope := RawDocument(b[scopeOff : scopeOff+scopeLen])

	scope, _, err := decodeElementLoop(rawScope, false, opts)
	if err != nil {
		return CodeWithScope{}, 0, lazyerrors.Error(err)
	}

	return CodeWithScope{Code: code, Scope: scope}, totalSize, nil
}
