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
	"log/slog"
	"strconv"

	"github.com/docubson/bson/internal/util/lazyerrors"
	"github.com/docubson/bson/internal/util/must"
)

// RawDocument represents a single BSON document (object) in its binary
// encoded form.
//
// It generally references a part of a larger slice, not a copy.
type RawDocument []byte

// Decode decodes a single BSON document that takes the whole byte slice,
// with [DefaultDecodeOptions].
//
// A document matching the DBRef shape (see [recognizeDBRef]) is returned as
// a [DBRef] instead of a *[Document].
func (raw RawDocument) Decode() (any, error) {
	return DecodeOptionsDocument(raw, DefaultDecodeOptions())
}

// DecodeOptionsDocument decodes a single BSON document that takes the whole
// byte slice, applying opts.
func DecodeOptionsDocument(raw RawDocument, opts DecodeOptions) (any, error) {
	if err := opts.validate(); err != nil {
		return nil, lazyerrors.Error(err)
	}

	i := opts.Index
	if i < 0 || i > len(raw) {
		return nil, lazyerrors.Errorf("index %d out of range, len = %d: %w", i, len(raw), ErrDecodeShortInput)
	}

	sub := []byte(raw)[i:]

	l, err := FindRaw(sub, opts.AllowObjectSmallerThanBufferSize)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	doc, possibleDBRef, err := decodeElementLoop(sub[:l], false, opts)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return recognizeDBRef(doc, possibleDBRef), nil
}

// decodeElementLoop is the core single-pass BSON element reader shared by
// documents and arrays. It reads the outer length/terminator framing, then
// one (tag, key, payload) triple at a time until the 0x00 terminator,
// applying opts' promotion and validation policy to each payload.
//
// possibleDBRef tracks whether the document (never meaningful in array
// context) remains eligible for DBRef recognition by the caller.
func decodeElementLoop(b []byte, arrayContext bool, opts DecodeOptions) (doc *Document, possibleDBRef bool, err error) {
	l, err := FindRaw(b, opts.AllowObjectSmallerThanBufferSize)
	if err != nil {
		return nil, false, lazyerrors.Error(err)
	}

	doc = MakeDocument(0)
	possibleDBRef = !arrayContext

	offset := 4
	arrayIndex := 0

	for {
		if err = decodeCheckOffset(b, offset, 1); err != nil {
			return nil, false, lazyerrors.Error(err)
		}

		t := tag(b[offset])
		if t == 0 {
			offset++

			if offset != l {
				return nil, false, lazyerrors.Errorf(
					"len = %d, offset = %d: %w", l, offset, ErrCorruptBSON,
				)
			}

			return doc, possibleDBRef, nil
		}

		offset++

		if err = decodeCheckOffset(b, offset, 1); err != nil {
			return nil, false, lazyerrors.Error(err)
		}

		name, nameErr := DecodeCString(b[offset:])
		if nameErr != nil {
			return nil, false, lazyerrors.Error(nameErr)
		}

		offset += SizeCString(name)

		if arrayContext {
			if name != strconv.Itoa(arrayIndex) {
				return nil, false, lazyerrors.Errorf("invalid array index %q, want %d: %w", name, arrayIndex, ErrCorruptBSON)
			}

			arrayIndex++
		}

		validateName := opts.validateKey(name)
		if validateName {
			if err = utf8Check(name); err != nil {
				return nil, false, lazyerrors.Error(err)
			}
		}

		if err = decodeCheckOffset(b, offset, 0); err != nil {
			return nil, false, lazyerrors.Error(err)
		}

		var (
			v any
			n int
		)

		v, n, err = decodeElement(b[offset:], t, name, arrayContext, validateName, opts)
		if err != nil {
			return nil, false, lazyerrors.Error(err)
		}

		offset += n

		if !arrayContext {
			possibleDBRef = trackDBRefKey(possibleDBRef, name)
		}

		must.NoError(doc.Add(name, v))
	}
}

// decodeElement dispatches on tag t and decodes one payload starting at b[0].
func decodeElement(b []byte, t tag, name string, arrayContext, validateName bool, opts DecodeOptions) (any, int, error) {
	switch t { //nolint:exhaustive // tagDocument/tagArray have recursive handling below
	case tagDouble:
		return decodeDouble(b, opts)

	case tagString:
		s, n, err := decodeString(b)
		if err != nil {
			return nil, 0, lazyerrors.Error(err)
		}

		if validateName {
			if err = utf8Check(s); err != nil {
				return nil, 0, lazyerrors.Error(err)
			}
		}

		return s, n, nil

	case tagDocument:
		l, err := FindRaw(b, true)
		if err != nil {
			return nil, 0, lazyerrors.Errorf("no document at offset: %w", err)
		}

		raw := RawDocument(b[:l])

		if opts.Raw {
			return raw, l, nil
		}

		sub, possible, err := decodeElementLoop(raw, false, opts)
		if err != nil {
			return nil, 0, lazyerrors.Error(err)
		}

		return recognizeDBRef(sub, possible), l, nil

	case tagArray:
		l, err := FindRaw(b, true)
		if err != nil {
			return nil, 0, lazyerrors.Errorf("no array at offset: %w", err)
		}

		raw := RawArray(b[:l])

		forceRaw := opts.Raw || (opts.FieldsAsRaw != nil && opts.FieldsAsRaw[name])
		if forceRaw {
			return raw, l, nil
		}

		arr, err := raw.decode(opts)
		if err != nil {
			return nil, 0, lazyerrors.Error(err)
		}

		return arr, l, nil

	case tagBinary:
		return decodeBinary(b, opts)

	case tagUndefined:
		return UndefinedValue, 0, nil

	case tagObjectID:
		return decodeObjectID(b)

	case tagBool:
		return decodeBool(b)

	case tagDateTime:
		return decodeDateTime(b)

	case tagNull:
		return Null, 0, nil

	case tagRegex:
		return decodeRegex(b, opts)

	case tagDBPointer:
		return decodeDBPointer(b)

	case tagJavaScript:
		c, n, err := decodeCode(b)
		if err != nil {
			return nil, 0, lazyerrors.Error(err)
		}

		if validateName {
			if err = utf8Check(string(c)); err != nil {
				return nil, 0, lazyerrors.Error(err)
			}
		}

		return c, n, nil

	case tagSymbol:
		return decodeSymbol(b, opts)

	case tagJavaScopeCode:
		cws, n, err := decodeCodeWithScope(b, opts)
		if err != nil {
			return nil, 0, lazyerrors.Error(err)
		}

		return cws, n, nil

	case tagInt32:
		return decodeInt32(b, opts)

	case tagTimestamp:
		t, n, err := decodeTimestamp(b)
		return t, n, err

	case tagInt64:
		return decodeInt64(b, opts)

	case tagDecimal128:
		d, n, err := decodeDecimal128(b)
		return d, n, err

	case tagMinKey:
		return MinKey, 0, nil

	case tagMaxKey:
		return MaxKey, 0, nil

	default:
		return nil, 0, lazyerrors.Errorf("tag %s: %w", t, ErrUnknownType)
	}
}

// LogValue implements [slog.LogValuer].
func (raw RawDocument) LogValue() slog.Value {
	return slogValue(raw, 1)
}

// check interfaces
var (
	_ slog.LogValuer = RawDocument(nil)
)
