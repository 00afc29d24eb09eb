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

import "strings"

// DBRef represents the sugared cross-collection reference recognized on
// decode when a document matches the shape in [recognizeDBRef].
type DBRef struct {
	Ref   string
	ID    any
	DB    *string
	Extra *Document
}

// isPossibleDBRefKey reports whether key is one of the three keys DBRef
// recognition tolerates.
func isPossibleDBRefKey(key string) bool {
	return key == "$ref" || key == "$id" || key == "$db"
}

// recognizeDBRef inspects doc's fields (already fully decoded, in document
// context) and returns a [DBRef] if it matches the required shape, or doc
// unchanged otherwise.
//
// possible must be false whenever a "$"-prefixed key other than $ref/$id/$db
// was seen during the element loop (tracked by the caller); this function
// does not re-scan for that case, it only validates the required/optional
// key types.
func recognizeDBRef(doc *Document, possible bool) any {
	if !possible {
		return doc
	}

	var (
		ref      string
		refFound bool
		id       any
		idFound  bool
		db       *string
	)

	extra := MakeDocument(0)

	for _, f := range doc.fields {
		switch f.name {
		case "$ref":
			s, ok := f.value.(string)
			if !ok {
				return doc
			}

			ref, refFound = s, true

		case "$id":
			id, idFound = f.value, true

		case "$db":
			s, ok := f.value.(string)
			if !ok {
				return doc
			}

			db = &s

		default:
			_ = extra.Add(f.name, f.value)
		}
	}

	if !refFound || !idFound {
		return doc
	}

	var extraPtr *Document
	if extra.Len() > 0 {
		extraPtr = extra
	}

	return DBRef{Ref: ref, ID: id, DB: db, Extra: extraPtr}
}

// trackDBRefKey updates the running isPossibleDBRef flag as keys are seen
// during the element loop of a document (not array) context.
func trackDBRefKey(possible bool, key string) bool {
	if !possible {
		return false
	}

	if strings.HasPrefix(key, "$") && !isPossibleDBRefKey(key) {
		return false
	}

	return true
}
