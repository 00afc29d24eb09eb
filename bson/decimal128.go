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
	"encoding/binary"
	"math/big"
	"strconv"
	"strings"

	"github.com/docubson/bson/internal/util/lazyerrors"
)

// Decimal128 represents the BSON Decimal128 type: a 16-byte IEEE 754-2008
// decimal floating point value, copied out of the input buffer by value.
type Decimal128 [16]byte

// decodeDecimal128 decodes a Decimal128 payload starting at b[0].
func decodeDecimal128(b []byte) (Decimal128, int, error) {
	if err := decodeCheckOffset(b, 0, 16); err != nil {
		return Decimal128{}, 0, lazyerrors.Error(err)
	}

	var v Decimal128
	copy(v[:], b[:16])

	return v, 16, nil
}

// String renders the decimal128 value in the textual form its IEEE 754-2008
// significand/exponent pair denote (the same rules mongo tooling uses: plain
// notation near zero exponent, scientific notation otherwise).
func (d Decimal128) String() string {
	low := binary.LittleEndian.Uint64(d[0:8])
	high := binary.LittleEndian.Uint64(d[8:16])

	negative := high>>63&1 == 1

	switch high >> 58 & 0x1F {
	case 0x1F:
		return "NaN"
	case 0x1E:
		if negative {
			return "-Infinity"
		}

		return "Infinity"
	}

	var (
		exp     int32
		sigHigh uint64
	)

	if high>>61&3 == 3 {
		// top two combination bits both set: the leading coefficient digit
		// is implicit (8 or 9), exponent sits two bits further right.
		exp = int32(high>>47&(1<<14-1)) - 6176
		sigHigh = high&(1<<49-1) | (1 << 49)
	} else {
		exp = int32(high>>49&(1<<14-1)) - 6176
		sigHigh = high & (1<<49 - 1)
	}

	coeff := new(big.Int).Lsh(new(big.Int).SetUint64(sigHigh), 64)
	coeff.Or(coeff, new(big.Int).SetUint64(low))

	digits := coeff.String()

	var b strings.Builder

	if negative {
		b.WriteByte('-')
	}

	nDigits := len(digits)
	adjExp := int64(exp) + int64(nDigits) - 1

	switch {
	case exp <= 0 && adjExp >= -6:
		// plain notation
		if exp == 0 {
			b.WriteString(digits)
			break
		}

		pointPos := nDigits + int(exp)

		switch {
		case pointPos <= 0:
			b.WriteString("0.")
			b.WriteString(strings.Repeat("0", -pointPos))
			b.WriteString(digits)
		default:
			b.WriteString(digits[:pointPos])
			b.WriteByte('.')
			b.WriteString(digits[pointPos:])
		}

	default:
		// scientific notation
		b.WriteByte(digits[0])

		if nDigits > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}

		b.WriteByte('E')

		if adjExp >= 0 {
			b.WriteByte('+')
		}

		b.WriteString(strconv.FormatInt(adjExp, 10))
	}

	return b.String()
}
