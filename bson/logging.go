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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// logMaxDepth is the maximum depth of a recursive representation of a BSON value.
const logMaxDepth = 20

// logMaxFlowLength is the maximum length of a flow/inline/compact representation of a BSON value.
// It may be set to 0 to always disable flow representation.
const logMaxFlowLength = 80

// nanBits is the most common pattern of a NaN float64 value, the same as math.Float64bits(math.NaN()).
const nanBits = 0b111111111111000000000000000000000000000000000000000000000000001

// slogValue returns a compact representation of any BSON value as [slog.Value].
// It may change over time.
//
// The result is optimized for small values such as function parameters.
// Some information is lost; both Int32/int32 and Int64/int64 values are
// returned with [slog.KindInt64], arrays are treated as documents, and
// empty documents are omitted.
func slogValue(v any, depth int) slog.Value {
	switch v := v.(type) {
	case *Document:
		if v == nil {
			return slog.StringValue("Document<nil>")
		}

		if depth > logMaxDepth {
			return slog.StringValue("Document<...>")
		}

		var attrs []slog.Attr

		for _, f := range v.fields {
			attrs = append(attrs, slog.Attr{Key: f.name, Value: slogValue(f.value, depth+1)})
		}

		return slog.GroupValue(attrs...)

	case RawDocument:
		if v == nil {
			return slog.StringValue("RawDocument<nil>")
		}

		return slog.StringValue("RawDocument<" + strconv.Itoa(len(v)) + ">")

	case *Array:
		if v == nil {
			return slog.StringValue("Array<nil>")
		}

		if depth > logMaxDepth {
			return slog.StringValue("Array<...>")
		}

		var attrs []slog.Attr

		for i, e := range v.elements {
			attrs = append(attrs, slog.Attr{Key: strconv.Itoa(i), Value: slogValue(e, depth+1)})
		}

		return slog.GroupValue(attrs...)

	case RawArray:
		if v == nil {
			return slog.StringValue("RawArray<nil>")
		}

		return slog.StringValue("RawArray<" + strconv.Itoa(len(v)) + ">")

	case DBRef:
		attrs := []slog.Attr{
			{Key: "$ref", Value: slog.StringValue(v.Ref)},
			{Key: "$id", Value: slogValue(v.ID, depth+1)},
		}

		if v.DB != nil {
			attrs = append(attrs, slog.Attr{Key: "$db", Value: slog.StringValue(*v.DB)})
		}

		return slog.GroupValue(attrs...)

	case float64:
		// for JSON handler to work
		switch {
		case math.IsNaN(v):
			return slog.StringValue("NaN")
		case math.IsInf(v, 1):
			return slog.StringValue("+Inf")
		case math.IsInf(v, -1):
			return slog.StringValue("-Inf")
		}

		return slog.Float64Value(v)

	case Double:
		return slogValue(float64(v), depth)

	case string:
		return slog.StringValue(v)

	case Symbol:
		return slog.StringValue(string(v))

	case Code:
		return slog.StringValue(string(v))

	case CodeWithScope:
		return slog.GroupValue(
			slog.Attr{Key: "code", Value: slog.StringValue(v.Code)},
			slog.Attr{Key: "scope", Value: slogValue(v.Scope, depth+1)},
		)

	case Binary:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case UUID:
		return slog.StringValue("UUID(" + v.String() + ")")

	case ObjectID:
		return slog.StringValue("ObjectID(" + hex.EncodeToString(v[:]) + ")")

	case bool:
		return slog.BoolValue(v)

	case time.Time:
		return slog.TimeValue(v.Truncate(time.Millisecond).UTC())

	case NullType:
		return slog.Value{}

	case UndefinedType:
		return slog.StringValue("undefined")

	case MinKeyType:
		return slog.StringValue("MinKey")

	case MaxKeyType:
		return slog.StringValue("MaxKey")

	case Regex:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case *regexp.Regexp:
		return slog.StringValue(v.String())

	case DBPointer:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case int32:
		return slog.Int64Value(int64(v))

	case Int32:
		return slog.Int64Value(int64(v))

	case Timestamp:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case int64:
		return slog.Int64Value(v)

	case Int64:
		return slog.Int64Value(v.Value())

	case Decimal128:
		return slog.StringValue("Decimal128(" + hex.EncodeToString(v[:]) + ")")

	default:
		panic(fmt.Sprintf("invalid BSON type %T", v))
	}
}

// LogMessage returns a representation as a string.
// It may change over time.
func LogMessage(v any) string {
	return logMessage(v, logMaxFlowLength, "", 1)
}

// LogMessageBlock is a variant of [LogMessage] that never uses a flow style.
func LogMessageBlock(v any) string {
	return logMessage(v, 0, "", 1)
}

// LogMessageFlow is a variant of [LogMessage] that always uses a flow style.
func LogMessageFlow(v any) string {
	return logMessage(v, math.MaxInt, "", 1)
}

// logMessage returns an indented representation of any BSON value as a string,
// somewhat similar (but not identical) to JSON or Go syntax.
// It may change over time.
//
// The result is optimized for large values such as full request documents.
// Values are rendered in full, except that raw documents/arrays show only
// their length and a DBRef's extra fields are omitted.
func logMessage(v any, maxFlowLength int, indent string, depth int) string {
	switch v := v.(type) {
	case *Document:
		if v == nil {
			return "{<nil>}"
		}

		l := len(v.fields)
		if l == 0 {
			return "{}"
		}

		if depth > logMaxDepth {
			return "{...}"
		}

		if maxFlowLength > 0 {
			res := "{"

			for i, f := range v.fields {
				res += strconv.Quote(f.name) + `: `
				res += logMessage(f.value, maxFlowLength, "", depth+1)

				if i != l-1 {
					res += ", "
				}

				if len(res) >= maxFlowLength {
					break
				}
			}

			res += `}`

			if len(res) < maxFlowLength {
				return res
			}
		}

		res := "{\n"

		for _, f := range v.fields {
			res += indent + "  "
			res += strconv.Quote(f.name) + `: `
			res += logMessage(f.value, maxFlowLength, indent+"  ", depth+1) + ",\n"
		}

		res += indent + `}`

		return res

	case RawDocument:
		return "RawDocument<" + strconv.FormatInt(int64(len(v)), 10) + ">"

	case *Array:
		if v == nil {
			return "[<nil>]"
		}

		l := len(v.elements)
		if l == 0 {
			return "[]"
		}

		if depth > logMaxDepth {
			return "[...]"
		}

		if maxFlowLength > 0 {
			res := "["

			for i, e := range v.elements {
				res += logMessage(e, maxFlowLength, "", depth+1)

				if i != l-1 {
					res += ", "
				}

				if len(res) >= maxFlowLength {
					break
				}
			}

			res += `]`

			if len(res) < maxFlowLength {
				return res
			}
		}

		res := "[\n"

		for _, e := range v.elements {
			res += indent + "  "
			res += logMessage(e, maxFlowLength, indent+"  ", depth+1) + ",\n"
		}

		res += indent + `]`

		return res

	case RawArray:
		return "RawArray<" + strconv.FormatInt(int64(len(v)), 10) + ">"

	case DBRef:
		res := "DBRef{$ref: " + strconv.Quote(v.Ref) + ", $id: " + logMessage(v.ID, maxFlowLength, indent, depth+1)

		if v.DB != nil {
			res += ", $db: " + strconv.Quote(*v.DB)
		}

		return res + "}"

	case float64:
		return formatFloat(v)

	case Double:
		return formatFloat(float64(v))

	case string:
		return strconv.Quote(v)

	case Symbol:
		return "Symbol(" + strconv.Quote(string(v)) + ")"

	case Code:
		return "Code(" + strconv.Quote(string(v)) + ")"

	case CodeWithScope:
		return "CodeWithScope(" + strconv.Quote(v.Code) + ", " + logMessage(v.Scope, maxFlowLength, indent, depth+1) + ")"

	case Binary:
		return "Binary(" + v.Subtype.String() + ":" + base64.StdEncoding.EncodeToString(v.B) + ")"

	case UUID:
		return "UUID(" + v.String() + ")"

	case ObjectID:
		return "ObjectID(" + hex.EncodeToString(v[:]) + ")"

	case bool:
		return strconv.FormatBool(v)

	case time.Time:
		return v.Truncate(time.Millisecond).UTC().Format(time.RFC3339Nano)

	case NullType:
		return "null"

	case UndefinedType:
		return "undefined"

	case MinKeyType:
		return "MinKey"

	case MaxKeyType:
		return "MaxKey"

	case Regex:
		return "/" + v.Pattern + "/" + v.Options

	case *regexp.Regexp:
		return "/" + v.String() + "/"

	case DBPointer:
		return "DBPointer(" + strconv.Quote(v.Namespace) + ", " + hex.EncodeToString(v.ID[:]) + ")"

	case int32:
		return strconv.FormatInt(int64(v), 10)

	case Int32:
		return strconv.FormatInt(int64(v), 10)

	case Timestamp:
		return "Timestamp(t:" + strconv.FormatUint(uint64(v.T), 10) + ", i:" + strconv.FormatUint(uint64(v.I), 10) + ")"

	case int64:
		return "int64(" + strconv.FormatInt(v, 10) + ")"

	case Int64:
		return "Int64(" + strconv.FormatInt(v.Value(), 10) + ")"

	case Decimal128:
		return "Decimal128(" + hex.EncodeToString(v[:]) + ")"

	default:
		panic(fmt.Sprintf("invalid BSON type %T", v))
	}
}

// formatFloat renders a float64 the way [logMessage] does, sharing the NaN
// bit-pattern/Inf special cases between the plain float64 and [Double] arms.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		if bits := math.Float64bits(v); bits != nanBits {
			return fmt.Sprintf("NaN(%b)", bits)
		}

		return "NaN"

	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		res := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(res, ".") {
			res += ".0"
		}

		return res
	}
}
