// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - journal of signed transactions
//
// A single LevelDB database holds two pools:
//
//   T ‖ id            → wire encoding of the transaction
//   S ‖ signer ‖ id   → empty (index by signer)
//
// the key 0x00 ‖ "VERSION" holds the database version as 4 big endian bytes
package storage
