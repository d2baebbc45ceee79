// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/transaction"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	body, err := readBody(c.String("body"), m.config)
	if nil != err {
		return err
	}
	tx, err := transaction.New(body)
	if nil != err {
		return err
	}

	keyPair, err := loadKeyPair(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s\n", keyPair.Address)
		fmt.Fprintf(m.e, "signing hash: %s\n", tx.SigningHash())
	}

	err = tx.Sign(keyPair)
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

func storeTransaction(m *metadata, tx *transaction.Transaction) error {
	j, err := openJournal(m, false)
	if nil != err {
		return err
	}
	defer j.Close()

	id, err := j.Put(tx)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "stored: %s\n", id)
	}
	return nil
}
