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

import "errors"

// Sentinel errors returned (wrapped with lazyerrors) by Decode and friends.
//
// Callers should use errors.Is against these, not the wrapping lazyerror.
var (
	// ErrDecodeShortInput is returned when the input byte slice is shorter than the declared length.
	ErrDecodeShortInput = errors.New("bson: short input")

	// ErrCorruptBSON is returned when framing, terminator, or length checks fail.
	ErrCorruptBSON = errors.New("bson: corrupt BSON")

	// ErrBadString is returned when a length-prefixed string is malformed.
	ErrBadString = errors.New("bson: bad string")

	// ErrBadUTF8 is returned when UTF-8 validation is enabled and a non-UTF-8 sequence is found.
	ErrBadUTF8 = errors.New("bson: invalid UTF-8")

	// ErrUnknownType is returned for an unrecognized type tag.
	ErrUnknownType = errors.New("bson: unknown type")

	// ErrOptionConflict is returned when the decode options record is self-contradictory.
	ErrOptionConflict = errors.New("bson: option conflict")
)
