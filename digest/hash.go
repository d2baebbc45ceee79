// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Blake2b256 - BLAKE2b-256 of the concatenation of all items
func Blake2b256(data ...[]byte) Bytes32 {
	h, err := blake2b.New256(nil)
	if nil != err {
		// only fails for an oversized key
		panic(err)
	}
	for _, d := range data {
		h.Write(d)
	}
	var result Bytes32
	h.Sum(result[:0])
	return result
}

// Keccak256 - legacy (pre-standard) Keccak-256 of the concatenation of all items
func Keccak256(data ...[]byte) Bytes32 {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var result Bytes32
	h.Sum(result[:0])
	return result
}
