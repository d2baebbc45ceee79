// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/util"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	j, err := openJournal(m, true)
	if nil != err {
		return err
	}
	defer j.Close()

	if s := c.String("signer"); "" != s {
		signer, err := address.FromHex(s, util.DefaultHexPrefix)
		if nil != err {
			return err
		}
		ids, err := j.BySigner(signer)
		if nil != err {
			return err
		}
		return printJson(m.w, ids)
	}

	entries, err := j.List()
	if nil != err {
		return err
	}

	base, err := m.config.basePrice()
	if nil != err {
		return err
	}
	views := make([]transactionView, 0, len(entries))
	for _, e := range entries {
		views = append(views, makeView(e.Transaction, base))
	}
	return printJson(m.w, views)
}
