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

package ejson

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/docubson/bson/bson"
	"github.com/docubson/bson/internal/util/lazyerrors"
)

// entry is a single (key, value) pair of an object-shaped projection, kept
// in the order it should be emitted.
type entry struct {
	Key   string
	Value any
}

// rawObject marks an entry slice as a synthetic wrapper object (e.g. the
// inner {"base64", "subType"} of a Binary projection) rather than a real
// [bson.Document] passed through from user data — synthetic objects are
// never subject to a replacer or key allow-list, since their keys are not
// document fields.
type rawObject []entry

// projKind distinguishes the three shapes [project] can return.
type projKind int

const (
	projLiteral projKind = iota
	projObject
	projArray
)

// projected is the result of projecting one value: either a fully rendered
// JSON literal with no children, or an ordered object/array shape whose
// entries/elements still need to be projected themselves (recursively, by
// the encoder's frame stack).
//
// identity is non-nil exactly when this projection passes through a real
// [bson.Document] or [bson.Array] value (as opposed to a synthetic wrapper
// object built by this file) — the encoder uses it for both cycle detection
// and for deciding whether a replacer/key allow-list applies.
type projected struct {
	kind     projKind
	literal  string
	entries  []entry
	elements []any
	identity any
}

// safeIntMax and safeIntMin bound the range in which an int64 renders as a
// plain JSON number under relaxed mode without losing precision in a
// float64-based JSON reader (mirrors [bson]'s own promotion threshold).
const (
	safeIntMax = int64(1<<53 - 1)
	safeIntMin = -safeIntMax
)

// quoteJSON renders s as a JSON string literal, escaping via the standard
// library's own string marshaler rather than hand-rolling escape rules.
func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal on a string does not fail in practice: invalid UTF-8
		// is written as U+FFFD. This fallback converts through runes, which
		// performs the same replacement.
		b, _ = json.Marshal(string([]rune(s)))
	}

	return string(b)
}

// project determines how v should be rendered: a literal, a real or
// synthetic object, or a real array. opts selects between canonical,
// relaxed, and legacy projections per spec.md §4.2's table.
func project(v any, opts Options) (projected, error) {
	switch val := v.(type) {
	case nil:
		return projected{kind: projLiteral, literal: "null"}, nil

	case bson.NullType:
		return projected{kind: projLiteral, literal: "null"}, nil

	case bson.UndefinedType:
		return wrapped("$undefined", true), nil

	case bool:
		return projected{kind: projLiteral, literal: strconv.FormatBool(val)}, nil

	case string:
		return projected{kind: projLiteral, literal: quoteJSON(val)}, nil

	case int:
		return projected{kind: projLiteral, literal: strconv.Itoa(val)}, nil

	case uint32:
		return projected{kind: projLiteral, literal: strconv.FormatUint(uint64(val), 10)}, nil

	case int32:
		return projectInt32(val, opts), nil
	case bson.Int32:
		return projectInt32(int32(val), opts), nil

	case int64:
		return projectInt64(val, opts), nil
	case bson.Int64:
		return projectInt64(val.Value(), opts), nil

	case float64:
		return projectDouble(val, opts), nil
	case bson.Double:
		return projectDouble(float64(val), opts), nil

	case bson.Decimal128:
		return wrapped("$numberDecimal", val.String()), nil

	case bson.ObjectID:
		return wrapped("$oid", val.String()), nil

	case bson.Binary:
		return projectBinary(val, opts), nil
	case bson.UUID:
		return projectBinary(bson.Binary{Subtype: bson.BinaryUUID, B: val[:]}, opts), nil

	case time.Time:
		return projectDate(val, opts), nil

	case bson.Timestamp:
		return projected{
			kind: projObject,
			entries: []entry{
				{"$timestamp", rawObject{{"t", val.T}, {"i", val.I}}},
			},
		}, nil

	case bson.Regex:
		return projectRegex(val.Pattern, val.Options, opts), nil
	case *regexp.Regexp:
		// Go's regexp.Regexp carries its flags inlined as a (?flags) prefix
		// in String(); there is no way to recover a separate BSON options
		// string from it, so it is projected with an empty options string.
		return projectRegex(val.String(), "", opts), nil

	case bson.MinKeyType:
		return wrapped("$minKey", 1), nil
	case bson.MaxKeyType:
		return wrapped("$maxKey", 1), nil

	case bson.Symbol:
		return wrapped("$symbol", string(val)), nil

	case bson.Code:
		return wrapped("$code", string(val)), nil

	case bson.CodeWithScope:
		return projected{
			kind: projObject,
			entries: []entry{
				{"$code", val.Code},
				{"$scope", val.Scope},
			},
		}, nil

	case bson.DBPointer:
		return projected{
			kind: projObject,
			entries: []entry{
				{"$dbPointer", rawObject{
					{"$ref", val.Namespace},
					{"$id", rawObject{{"$oid", val.ID.String()}}},
				}},
			},
		}, nil

	case bson.DBRef:
		return projectDBRef(val), nil

	case *bson.Document:
		return projectDocument(val), nil

	case *bson.Array:
		return projected{kind: projArray, elements: val.Values(), identity: val}, nil

	case rawObject:
		return projected{kind: projObject, entries: val}, nil

	case []any:
		return projected{kind: projArray, elements: val}, nil
	}

	return projected{}, lazyerrors.Errorf("ejson: cannot project value of type %T", v)
}

// wrapped builds the common single-key synthetic-object projection shape
// used by most scalar wrapper types ($oid, $symbol, $code, …).
func wrapped(key string, value any) projected {
	return projected{kind: projObject, entries: []entry{{key, value}}}
}

func projectDocument(doc *bson.Document) projected {
	keys := doc.Keys()
	values := doc.Values()

	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{Key: k, Value: values[i]}
	}

	return projected{kind: projObject, entries: entries, identity: doc}
}

func projectDBRef(ref bson.DBRef) projected {
	entries := []entry{
		{"$ref", ref.Ref},
		{"$id", ref.ID},
	}

	if ref.DB != nil {
		entries = append(entries, entry{"$db", *ref.DB})
	}

	if ref.Extra != nil {
		keys := ref.Extra.Keys()
		values := ref.Extra.Values()

		for i, k := range keys {
			entries = append(entries, entry{Key: k, Value: values[i]})
		}
	}

	return projected{kind: projObject, entries: entries}
}

func projectInt32(v int32, opts Options) projected {
	if opts.Relaxed {
		return projected{kind: projLiteral, literal: strconv.FormatInt(int64(v), 10)}
	}

	return wrapped("$numberInt", strconv.FormatInt(int64(v), 10))
}

func projectInt64(v int64, opts Options) projected {
	if opts.Relaxed && v >= safeIntMin && v <= safeIntMax {
		return projected{kind: projLiteral, literal: strconv.FormatInt(v, 10)}
	}

	return wrapped("$numberLong", strconv.FormatInt(v, 10))
}

func projectDouble(v float64, opts Options) projected {
	switch {
	case math.IsNaN(v):
		return wrapped("$numberDouble", "NaN")
	case math.IsInf(v, 1):
		return wrapped("$numberDouble", "Infinity")
	case math.IsInf(v, -1):
		return wrapped("$numberDouble", "-Infinity")
	}

	if opts.Relaxed {
		return projected{kind: projLiteral, literal: formatJSONNumber(v)}
	}

	return wrapped("$numberDouble", canonicalDoubleString(v))
}

// formatJSONNumber renders a finite float64 as a bare JSON number token.
func formatJSONNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// canonicalDoubleString renders a finite float64 the way $numberDouble's
// string payload always carries a decimal point or exponent, never a bare
// integer-looking token.
func canonicalDoubleString(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)

	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}

	return s + ".0"
}

func projectBinary(b bson.Binary, opts Options) projected {
	b64 := base64.StdEncoding.EncodeToString(b.B)
	subtypeHex := fmt.Sprintf("%02x", byte(b.Subtype))

	if opts.Legacy {
		return projected{
			kind: projObject,
			entries: []entry{
				{"$binary", b64},
				{"$type", subtypeHex},
			},
		}
	}

	return projected{
		kind: projObject,
		entries: []entry{
			{"$binary", rawObject{
				{"base64", b64},
				{"subType", subtypeHex},
			}},
		},
	}
}

func projectDate(t time.Time, opts Options) projected {
	ms := t.UnixMilli()

	if opts.Relaxed {
		year := t.UTC().Year()
		if year >= 0 && year <= 9999 {
			iso := t.UTC().Format("2006-01-02T15:04:05.000Z")
			return projected{kind: projLiteral, literal: quoteJSON(iso)}
		}
	}

	return projected{
		kind: projObject,
		entries: []entry{
			{"$date", rawObject{{"$numberLong", strconv.FormatInt(ms, 10)}}},
		},
	}
}

func projectRegex(pattern, options string, opts Options) projected {
	if opts.Legacy {
		return projected{
			kind: projObject,
			entries: []entry{
				{"$regex", pattern},
				{"$options", options},
			},
		}
	}

	return projected{
		kind: projObject,
		entries: []entry{
			{"$regularExpression", rawObject{
				{"pattern", pattern},
				{"options", options},
			}},
		},
	}
}
