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

// DBPointer represents the BSON DBPointer type (deprecated, retained for
// decode compatibility with legacy producers).
type DBPointer struct {
	Namespace string
	ID        ObjectID
}

// decodeDBPointer decodes a DBPointer payload (a string, then an ObjectID)
// starting at b[0]. The namespace is always UTF-8 validated, matching the
// spec's note that DBPointer is "subject to UTF-8 validation".
func decodeDBPointer(b []byte) (DBPointer, int, error) {
	ns, n, err := decodeString(b)
	if err != nil {
		return DBPointer{}, 0, lazyerrors.Error(err)
	}

	if err = utf8Check(ns); err != nil {
		return DBPointer{}, 0, lazyerrors.Error(err)
	}

	if err = decodeCheckOffset(b, n, 0); err != nil {
		return DBPointer{}, 0, lazyerrors.Error(err)
	}

	id, idSize, err := decodeObjectID(b[n:])
	if err != nil {
		return DBPointer{}, 0, lazyerrors.Error(err)
	}

	return DBPointer{Namespace: ns, ID: id}, n + idSize, nil
}
