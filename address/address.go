// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/util"
)

// Length - number of bytes in an address
const Length = 20

// Address - the 20 byte identity of an account
// to convert to bytes just use a[:]
type Address [Length]byte

// FromBytes - create an address from a byte slice
//
// a short slice is right aligned (zero padded on the left), a long
// slice keeps only its rightmost 20 bytes
func FromBytes(b []byte) Address {
	var a Address
	if len(b) > Length {
		b = b[len(b)-Length:]
	}
	copy(a[Length-len(b):], b)
	return a
}

// FromHex - parse a hex string that must be exactly 20 bytes
func FromHex(s string, prefix string) (Address, error) {
	b, err := util.HexToBytes(s, prefix)
	if nil != err {
		return Address{}, err
	}
	if Length != len(b) {
		return Address{}, fault.ErrAddressLength
	}
	return FromBytes(b), nil
}

// Bytes - a copy of the address bytes
func (a Address) Bytes() []byte {
	return append([]byte{}, a[:]...)
}

// Hex - address as hex with the given prefix
func (a Address) Hex(prefix string) string {
	return prefix + hex.EncodeToString(a[:])
}

// String - convert to 0x hex for use by the fmt package (for %s)
func (a Address) String() string {
	return a.Hex(util.DefaultHexPrefix)
}

// GoString - for use by the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + a.Hex("") + ">"
}

// MarshalText - convert address to 0x hex text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert 0x hex text into an address
func (a *Address) UnmarshalText(s []byte) error {
	result, err := FromHex(string(s), util.DefaultHexPrefix)
	if nil != err {
		return err
	}
	*a = result
	return nil
}
