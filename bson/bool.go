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

// decodeBool decodes a Boolean payload starting at b[0]; the byte must be
// exactly 0 or 1.
func decodeBool(b []byte) (bool, int, error) {
	if err := decodeCheckOffset(b, 0, 1); err != nil {
		return false, 0, lazyerrors.Error(err)
	}

	switch b[0] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, lazyerrors.Errorf("invalid bool byte %#02x: %w", b[0], ErrCorruptBSON)
	}
}
