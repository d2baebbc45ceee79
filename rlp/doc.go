// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rlp - recursive length prefix codec
//
// Values are either byte strings or ordered lists of values.
//
//   single byte 0x00..0x7f      the byte itself
//   string, length < 56         0x80+length, bytes
//   string, length >= 56        0xb7+len(length), big endian length, bytes
//   list, payload < 56          0xc0+length, encoded items
//   list, payload >= 56         0xf7+len(length), big endian length, encoded items
//
// The decoder only accepts the canonical form: a single byte below
// 0x80 must not carry a prefix, the long form is only used for 56 or
// more bytes and lengths have no leading zero byte.
//
// Headers are read and written by github.com/ethereum/go-ethereum/rlp;
// this package adds the untyped Item tree and maps header failures
// onto fault errors.
package rlp
