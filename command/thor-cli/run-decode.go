// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/transaction"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	raw, err := decodeHex(c.String("transaction"))
	if nil != err {
		return err
	}

	tx, err := transaction.Decode(raw)
	if nil != err {
		return err
	}

	if c.Bool("store") {
		err = storeTransaction(m, tx)
		if nil != err {
			return err
		}
	}

	base, err := m.config.basePrice()
	if nil != err {
		return err
	}
	return printJson(m.w, makeView(tx, base))
}
