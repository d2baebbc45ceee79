// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed by an embedded Lua interpreter and must
// return a table; the table fields are mapped to the struct fields
// carrying a matching "gluamapper" tag.
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items, e.g.
//
//   local M = {}
//   M.data_directory = arg[0]:match("(.*/)")
//   M.chain_tag = 0x4a
//   M.keystore = os.getenv("THOR_KEYSTORE") or ""
//   return M
package configuration
