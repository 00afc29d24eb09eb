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
	"bytes"
	"unicode/utf8"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// DecodeCString decodes a NUL-terminated CString key starting at b[0].
//
// It does not validate UTF-8; callers apply the validation policy separately
// since CString validation is key-scoped, not value-scoped (see [utf8Check]).
func DecodeCString(b []byte) (string, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", lazyerrors.Errorf("no NUL terminator: %w", ErrCorruptBSON)
	}

	return string(b[:i]), nil
}

// SizeCString returns the on-wire size (including the terminating NUL) of s.
func SizeCString(s string) int {
	return len(s) + 1
}

// utf8Check reports whether s is valid UTF-8, returning a wrapped [ErrBadUTF8] if not.
func utf8Check(s string) error {
	if !utf8.ValidString(s) {
		return lazyerrors.Errorf("invalid UTF-8 in %q: %w", s, ErrBadUTF8)
	}

	return nil
}
