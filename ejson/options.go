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
	"strings"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// Options controls the EJSON projection rules, matching spec.md §6's
// encoder option record.
type Options struct {
	// Relaxed selects the relaxed (driver-friendly) projection over canonical
	// EJSON. Defaults to true.
	Relaxed bool

	// Legacy alters Binary and RegExp projections to their Extended JSON v1 forms.
	Legacy bool
}

// DefaultOptions returns the option record matching spec.md §6's defaults
// (relaxed=true, legacy=false).
func DefaultOptions() Options {
	return Options{Relaxed: true}
}

// ReplacerFunc is invoked once per (key, value) pair before projection.
//
// Returning ok=false omits the entry for object members, or substitutes null
// for array elements — the Go equivalent of JS's "returning undefined".
type ReplacerFunc func(key string, value any) (v any, ok bool)

// maxIndentSpaces caps the integer-indent slot, matching the canonical
// stringify's own cap.
const maxIndentSpaces = 10

// resolvedParams is the fully normalized form of the polymorphic
// (replacer, indent) argument pair accepted by [New].
type resolvedParams struct {
	opts     Options
	replacer ReplacerFunc
	keyList  []string // nil means "no allow-list filtering"
	indent   string
}

// resolveParams normalizes replacerArg/indentArg's four possible shapes each
// (nil, function/array/options-record for replacerArg; nil, int, string,
// options-record for indentArg) per spec.md §4.2's "Parameter overloading".
func resolveParams(base Options, replacerArg, indentArg any) (resolvedParams, error) {
	res := resolvedParams{opts: base}

	switch r := replacerArg.(type) {
	case nil:
	case ReplacerFunc:
		res.replacer = r
	case func(key string, value any) (any, bool):
		res.replacer = r
	case []string:
		res.keyList = append([]string(nil), r...)
	case Options:
		res.opts = r
	default:
		return resolvedParams{}, lazyerrors.Errorf("ejson: unsupported replacer argument of type %T", replacerArg)
	}

	switch ind := indentArg.(type) {
	case nil:
	case int:
		if ind < 0 {
			ind = 0
		}

		if ind > maxIndentSpaces {
			ind = maxIndentSpaces
		}

		res.indent = strings.Repeat(" ", ind)
	case string:
		res.indent = ind
	case Options:
		res.opts = ind
	default:
		return resolvedParams{}, lazyerrors.Errorf("ejson: unsupported indent argument of type %T", indentArg)
	}

	return res, nil
}
