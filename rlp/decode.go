// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rlp

import (
	"io"

	ethrlp "github.com/ethereum/go-ethereum/rlp"

	"github.com/bitmark-inc/thortx/fault"
)

// prefix of a one byte string
const singleByteStringPrefix = 0x81

// Decode - decode a buffer that holds exactly one item
//
// strings in the result share memory with the buffer
func Decode(buffer []byte) (Item, error) {
	item, rest, err := Split(buffer)
	if nil != err {
		return nil, err
	}
	if 0 != len(rest) {
		return nil, fault.ErrTrailingBytes
	}
	return item, nil
}

// Split - decode the first item of a buffer and return the remainder
func Split(buffer []byte) (Item, []byte, error) {
	if 0 == len(buffer) {
		return nil, nil, fault.ErrEmptyInput
	}

	kind, content, rest, err := ethrlp.Split(buffer)
	if nil != err {
		return nil, nil, splitError(buffer[0], err)
	}

	if ethrlp.List != kind {
		return String(content), rest, nil
	}

	list := List{}
	for 0 != len(content) {
		var element Item
		element, content, err = Split(content)
		if nil != err {
			return nil, nil, err
		}
		list = append(list, element)
	}
	return list, rest, nil
}

// convert a header error to its fault
func splitError(prefix byte, err error) error {
	switch err {
	case ethrlp.ErrCanonSize:
		if singleByteStringPrefix == prefix {
			return fault.ErrSingleByteString
		}
		return fault.ErrNonCanonicalSize
	case ethrlp.ErrValueTooLarge, io.ErrUnexpectedEOF:
		return fault.ErrTruncated
	default:
		return err
	}
}
