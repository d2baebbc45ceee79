// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/thortx/fault"
)

// DefaultHexPrefix - prefix used for all text forms unless specified
const DefaultHexPrefix = "0x"

// HexToBytes - decode a hex string that must begin with prefix
//
// the prefix may be empty; characters must be 0-9, a-f, A-F and the
// number of digits must be even
func HexToBytes(s string, prefix string) ([]byte, error) {
	if !strings.HasPrefix(s, prefix) {
		return nil, fault.ErrPrefixMismatch
	}
	s = s[len(prefix):]

	for i := 0; i < len(s); i += 1 {
		if !isHexDigit(s[i]) {
			return nil, fault.ErrNotHex
		}
	}
	if 0 != len(s)%2 {
		return nil, fault.ErrOddHex
	}

	buffer := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(buffer, []byte(s))
	if nil != err {
		return nil, fault.ErrNotHex
	}
	return buffer, nil
}

// BytesToHex - encode bytes as prefix followed by lower case hex
func BytesToHex(b []byte, prefix string) string {
	return prefix + hex.EncodeToString(b)
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// HexBytes - a byte slice that is 0x hex in text form (JSON)
type HexBytes []byte

// String - hex form with default prefix
func (b HexBytes) String() string {
	return BytesToHex(b, DefaultHexPrefix)
}

// MarshalText - convert to 0x prefixed hex
func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText - convert from 0x prefixed hex
func (b *HexBytes) UnmarshalText(s []byte) error {
	buffer, err := HexToBytes(string(s), DefaultHexPrefix)
	if nil != err {
		return err
	}
	*b = buffer
	return nil
}
