// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// thor-cli - build, sign, decode and price multi-clause transactions
//
// Bodies are read as JSON, for example:
//
//   {
//     "chainTag": 39,
//     "blockRef": "0x00000000aabbccdd",
//     "expiration": 720,
//     "clauses": [
//       {"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": "10000", "data": "0x"}
//     ],
//     "gasPriceCoef": 128,
//     "gas": 21000,
//     "dependsOn": null,
//     "nonce": "0xbc614e"
//   }
//
// chainTag, expiration and gasPriceCoef default to the values from
// the configuration file when omitted.  Signed transactions can be
// kept in a local journal (see the database configuration item).
package main
