// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rlp

import (
	ethrlp "github.com/ethereum/go-ethereum/rlp"
)

// Encode - the canonical encoding of an item
//
// a nil item encodes as the empty string
func Encode(item Item) []byte {
	buffer, err := ethrlp.EncodeToBytes(encodable(item))
	if nil != err {
		// only byte slices and lists of them are passed
		panic(err)
	}
	return buffer
}

// map an item onto the values the encoder writes as strings and lists
func encodable(item Item) interface{} {
	switch v := item.(type) {
	case String:
		return []byte(v)
	case List:
		elements := make([]interface{}, 0, len(v))
		for _, element := range v {
			elements = append(elements, encodable(element))
		}
		return elements
	default:
		return []byte{}
	}
}
