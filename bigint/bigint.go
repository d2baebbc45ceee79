// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/util"
)

// Uint - a non-negative integer held as its canonical big endian
// bytes: no leading zero byte, zero is the empty sequence
type Uint struct {
	bytes []byte
}

// FromBytes - create from big endian bytes, leading zeros are trimmed
func FromBytes(b []byte) Uint {
	i := 0
	for ; i < len(b); i += 1 {
		if 0 != b[i] {
			break
		}
	}
	return newUint(append([]byte{}, b[i:]...))
}

// zero is always held as nil so that equal values are deeply equal
func newUint(b []byte) Uint {
	if 0 == len(b) {
		return Uint{}
	}
	return Uint{bytes: b}
}

// FromUint64 - create from a native value
func FromUint64(value uint64) Uint {
	return FromBig(new(big.Int).SetUint64(value))
}

// FromBig - create from a big.Int
//
// panics on a negative value, use Parse for untrusted input
func FromBig(value *big.Int) Uint {
	if value.Sign() < 0 {
		panic(fault.ErrNegativeNumber)
	}
	return newUint(value.Bytes())
}

// Parse - convert a decimal or 0x hex string
//
// negative values, fractions and bare hex digits are rejected
func Parse(s string) (Uint, error) {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}

	if 0 == len(digits) {
		return Uint{}, fault.ErrNotAnInteger
	}
	for _, c := range digits {
		if !isDigit(c, base) {
			return Uint{}, fault.ErrNotAnInteger
		}
	}
	if negative {
		return Uint{}, fault.ErrNegativeNumber
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Uint{}, fault.ErrNotAnInteger
	}
	return FromBig(value), nil
}

func isDigit(c rune, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case 16 == base && c >= 'a' && c <= 'f':
		return true
	case 16 == base && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Bytes - copy of the canonical bytes
func (u Uint) Bytes() []byte {
	return append([]byte{}, u.bytes...)
}

// Len - number of canonical bytes
func (u Uint) Len() int {
	return len(u.bytes)
}

// BitLen - number of significant bits
func (u Uint) BitLen() int {
	return u.Big().BitLen()
}

// IsZero - the zero value
func (u Uint) IsZero() bool {
	return 0 == len(u.bytes)
}

// Big - the value as a new big.Int
func (u Uint) Big() *big.Int {
	return new(big.Int).SetBytes(u.bytes)
}

// Uint64 - native value, false if it does not fit
func (u Uint) Uint64() (uint64, bool) {
	if len(u.bytes) > 8 {
		return 0, false
	}
	value := uint64(0)
	for _, b := range u.bytes {
		value = value<<8 | uint64(b)
	}
	return value, true
}

// Cmp - compare as big.Int.Cmp
func (u Uint) Cmp(other Uint) int {
	return u.Big().Cmp(other.Big())
}

// Equal - same value
func (u Uint) Equal(other Uint) bool {
	return 0 == u.Cmp(other)
}

// Text - value in base 10 (no prefix) or base 16 (0x prefix)
func (u Uint) Text(base int) string {
	if 16 == base {
		return "0x" + u.Big().Text(16)
	}
	return u.Big().Text(10)
}

// Hex - the canonical bytes as hex after prefix, zero is the prefix alone
func (u Uint) Hex(prefix string) string {
	return util.BytesToHex(u.bytes, prefix)
}

// FromHex - convert even length hex that must begin with prefix
//
// leading zero bytes are trimmed as in FromBytes
func FromHex(s string, prefix string) (Uint, error) {
	b, err := util.HexToBytes(s, prefix)
	if nil != err {
		return Uint{}, err
	}
	return FromBytes(b), nil
}

// String - 0x hex form for use by the fmt package
func (u Uint) String() string {
	return u.Text(16)
}

// MarshalText - convert to 0x hex
func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText - convert from decimal or 0x hex
func (u *Uint) UnmarshalText(s []byte) error {
	result, err := Parse(string(s))
	if nil != err {
		return err
	}
	*u = result
	return nil
}

// UnmarshalJSON - accept a JSON number as well as a string
func (u *Uint) UnmarshalJSON(s []byte) error {
	if "null" == string(s) {
		return nil
	}
	if 0 != len(s) && '"' == s[0] {
		text := ""
		if err := json.Unmarshal(s, &text); nil != err {
			return err
		}
		s = []byte(text)
	}
	return u.UnmarshalText(s)
}
