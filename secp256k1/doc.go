// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package secp256k1 - keys, recoverable signatures and addresses
//
// signatures are 65 bytes: R (32) ‖ S (32) ‖ recovery id (0 or 1)
package secp256k1
