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

// field is a single (name, value) pair of a [Document], stored in insertion order.
type field struct {
	name  string
	value any
}

// Document represents a BSON document a.k.a. object as an ordered mapping
// from string keys to values, reconstructed in full from the wire format.
//
// The zero value is not usable; use [MakeDocument] or decode one.
type Document struct {
	fields []field
}

// MakeDocument creates an empty Document with capacity for sizeHint fields.
func MakeDocument(sizeHint int) *Document {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Document{
		fields: make([]field, 0, sizeHint),
	}
}

// Add appends a (name, value) pair to the document.
//
// A key literally equal to "__proto__" is stored as an ordinary field;
// no prototype machinery exists in Go, so this is a pure no-op guard that
// documents the invariant rather than changing behavior.
func (doc *Document) Add(name string, value any) error {
	if doc == nil {
		return lazyerrors.New("bson: Add on nil Document")
	}

	doc.fields = append(doc.fields, field{name: name, value: value})

	return nil
}

// Len returns the number of fields in the document.
func (doc *Document) Len() int {
	if doc == nil {
		return 0
	}

	return len(doc.fields)
}

// Keys returns the document's keys in insertion order.
func (doc *Document) Keys() []string {
	if doc == nil {
		return nil
	}

	keys := make([]string, len(doc.fields))
	for i, f := range doc.fields {
		keys[i] = f.name
	}

	return keys
}

// Get returns the value stored under key and whether it was present.
//
// If key appears more than once (duplicate keys in the input, which is
// allowed but not required to be preserved per spec.md's Invariants), the
// last occurrence wins.
func (doc *Document) Get(key string) (any, bool) {
	if doc == nil {
		return nil, false
	}

	var (
		v     any
		found bool
	)

	for _, f := range doc.fields {
		if f.name == key {
			v, found = f.value, true
		}
	}

	return v, found
}

// Values returns the document's values in insertion order.
func (doc *Document) Values() []any {
	if doc == nil {
		return nil
	}

	values := make([]any, len(doc.fields))
	for i, f := range doc.fields {
		values[i] = f.value
	}

	return values
}
