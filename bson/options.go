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

import "github.com/docubson/bson/internal/util/lazyerrors"

// DecodeOptions controls how [Decode] promotes and validates BSON values.
//
// The zero value is not generally usable; use [DefaultDecodeOptions] as a
// starting point and override individual fields.
type DecodeOptions struct {
	// UseBigInt64 surfaces Int64 values as a plain Go int64 carrying the
	// exact signed value, regardless of range.
	//
	// Conflicts with PromoteValues=false or PromoteLongs=false.
	UseBigInt64 bool

	// PromoteLongs narrows Int64 to a float64 when the value fits in the safe
	// integer range and PromoteValues is also true; otherwise the [Int64]
	// wrapper is kept.
	PromoteLongs bool

	// PromoteBuffers surfaces Binary payloads as raw []byte instead of a [Binary] wrapper.
	PromoteBuffers bool

	// PromoteValues surfaces primitives unwrapped (plain float64/int32/int64/string)
	// instead of their typed wrapper forms.
	PromoteValues bool

	// FieldsAsRaw lists keys whose Array-typed children are forced to raw ([RawArray])
	// instead of being decoded, regardless of the decode mode.
	FieldsAsRaw map[string]bool

	// BSONRegExp keeps RegExp as the [Regex] wrapper instead of translating it to a
	// native *regexp.Regexp.
	BSONRegExp bool

	// AllowObjectSmallerThanBufferSize relaxes the outer length check from
	// len(B) == i+size to len(B) >= i+size.
	AllowObjectSmallerThanBufferSize bool

	// Index is the starting offset into the input buffer.
	Index int

	// Raw returns embedded documents/arrays as raw slices instead of decoding them.
	Raw bool

	// UTF8Validation controls which keys/string payloads are UTF-8 checked.
	//
	// nil means "validate everything" (the default). A non-nil, non-empty map
	// must be uniform (all values true, or all values false); a mixed or empty
	// map is an [ErrOptionConflict].
	UTF8Validation map[string]bool
}

// DefaultDecodeOptions returns the option record matching spec.md §6's defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		PromoteLongs:  true,
		PromoteValues: true,
	}
}

// validate checks the option record for internal self-contradictions.
func (o DecodeOptions) validate() error {
	if o.UseBigInt64 && (!o.PromoteValues || !o.PromoteLongs) {
		return lazyerrors.Errorf("useBigInt64 requires promoteValues and promoteLongs: %w", ErrOptionConflict)
	}

	if o.UTF8Validation != nil {
		if len(o.UTF8Validation) == 0 {
			return lazyerrors.Errorf("validation.utf8 map must be non-empty: %w", ErrOptionConflict)
		}

		var sawTrue, sawFalse bool

		for _, v := range o.UTF8Validation {
			if v {
				sawTrue = true
			} else {
				sawFalse = true
			}
		}

		if sawTrue && sawFalse {
			return lazyerrors.Errorf("validation.utf8 map must be uniform: %w", ErrOptionConflict)
		}
	}

	return nil
}

// validateKey reports whether key should be UTF-8 validated under o.
func (o DecodeOptions) validateKey(key string) bool {
	if o.UTF8Validation == nil {
		return true
	}

	listed, ok := o.UTF8Validation[key]
	if !ok {
		// key not in the map: under an all-true map, unlisted keys are skipped;
		// under an all-false map, unlisted keys are validated.
		for _, v := range o.UTF8Validation {
			return !v
		}
	}

	return listed
}
