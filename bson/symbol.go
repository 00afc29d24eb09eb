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

// Symbol is the non-promoted wrapper for a BSON Symbol value (a deprecated
// type kept distinct from String for round-trip fidelity).
type Symbol string

// decodeSymbol decodes a Symbol payload (a length-prefixed string) starting
// at b[0] and applies o's promotion policy.
func decodeSymbol(b []byte, o DecodeOptions) (any, int, error) {
	s, n, err := decodeString(b)
	if err != nil {
		return nil, 0, err
	}

	if o.PromoteValues {
		return s, n, nil
	}

	return Symbol(s), n, nil
}
