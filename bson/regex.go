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
	"regexp"
	"strings"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// Regex represents the BSON RegExp type, preserving the original option
// string exactly as it appeared on the wire.
type Regex struct {
	Pattern string
	Options string
}

// decodeRegex decodes a Regex payload (two CStrings) starting at b[0],
// applying o's bsonRegExp policy.
func decodeRegex(b []byte, o DecodeOptions) (any, int, error) {
	pattern, err := DecodeCString(b)
	if err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	off := SizeCString(pattern)

	if err = decodeCheckOffset(b, off, 0); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	options, err := DecodeCString(b[off:])
	if err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	off += SizeCString(options)

	if err = utf8Check(pattern); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	if err = utf8Check(options); err != nil {
		return nil, 0, lazyerrors.Error(err)
	}

	if o.BSONRegExp {
		return Regex{Pattern: pattern, Options: options}, off, nil
	}

	re, err := regexp.Compile(translateRegexOptions(pattern, options))
	if err != nil {
		return nil, 0, lazyerrors.Errorf("invalid regex %q/%q: %w", pattern, options, err)
	}

	return re, off, nil
}

// translateRegexOptions rewrites BSON regex options into a Go regexp inline
// flag prefix: m→m, i→i, s→s (Go's dotall flag is the faithful native-regex
// equivalent of BSON's "s" option; other host languages map it to something
// else entirely, but there is no such flag in Go's regexp/syntax). Any other
// flag is dropped.
func translateRegexOptions(pattern, options string) string {
	var flags strings.Builder

	for _, c := range options {
		switch c {
		case 'm':
			flags.WriteByte('m')
		case 'i':
			flags.WriteByte('i')
		case 's':
			flags.WriteByte('s')
		}
	}

	if flags.Len() == 0 {
		return pattern
	}

	return "(?" + flags.String() + ")" + pattern
}
