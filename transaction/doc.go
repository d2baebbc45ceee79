// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - multi-clause transactions
//
// A transaction carries an ordered list of clauses, each a call or a
// contract creation, under a single fee and a single signature.
//
// The unsigned form is the 9 element list:
//
//   [chainTag, blockRef, expiration, clauses, gasPriceCoef, gas, dependsOn, nonce, reserved]
//
// where each clause is [to, value, data].  The wire form appends the
// signature as a tenth element.
//
// signing hash = BLAKE2b-256(unsigned encoding)
// id           = BLAKE2b-256(signing hash ‖ signer address)
package transaction
