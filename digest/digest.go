// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/util"
)

// Length - number of bytes in the digest
const Length = 32

// Bytes32 - type for a 32 byte hash or key
// stored and printed big endian
// to convert to bytes just use d[:]
type Bytes32 [Length]byte

// FromBytes - create a Bytes32 from a byte slice
//
// a short slice is right aligned (zero padded on the left), a long
// slice keeps only its rightmost 32 bytes
func FromBytes(b []byte) Bytes32 {
	var d Bytes32
	if len(b) > Length {
		b = b[len(b)-Length:]
	}
	copy(d[Length-len(b):], b)
	return d
}

// FromHex - parse a hex string that must be exactly 32 bytes
func FromHex(s string, prefix string) (Bytes32, error) {
	b, err := util.HexToBytes(s, prefix)
	if nil != err {
		return Bytes32{}, err
	}
	if Length != len(b) {
		return Bytes32{}, fault.ErrBytes32Length
	}
	return FromBytes(b), nil
}

// Bytes - a copy of the digest bytes
func (d Bytes32) Bytes() []byte {
	return append([]byte{}, d[:]...)
}

// IsZero - true if every byte is zero
func (d Bytes32) IsZero() bool {
	return Bytes32{} == d
}

// Hex - digest as hex with the given prefix
func (d Bytes32) Hex(prefix string) string {
	return prefix + hex.EncodeToString(d[:])
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (d Bytes32) String() string {
	return d.Hex(util.DefaultHexPrefix)
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (d Bytes32) GoString() string {
	return "<bytes32:" + d.Hex("") + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (d *Bytes32) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return 'x' == c || 'X' == c
	})
	if nil != err {
		return err
	}
	s := string(token)
	if len(s) > 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	result, err := FromHex(s, "")
	if nil != err {
		return err
	}
	*d = result
	return nil
}

// MarshalText - convert digest to 0x hex text
func (d Bytes32) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert 0x hex text into a digest
func (d *Bytes32) UnmarshalText(s []byte) error {
	result, err := FromHex(string(s), util.DefaultHexPrefix)
	if nil != err {
		return err
	}
	*d = result
	return nil
}
