// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/transaction"
	"github.com/bitmark-inc/thortx/util"
)

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	body, err := readBody(c.String("body"), m.config)
	if nil != err {
		return err
	}
	tx, err := transaction.New(body)
	if nil != err {
		return err
	}

	out := struct {
		SigningHash  digest.Bytes32 `json:"signingHash"`
		Unsigned     util.HexBytes  `json:"unsigned"`
		IntrinsicGas uint64         `json:"intrinsicGas"`
	}{
		SigningHash:  tx.SigningHash(),
		Unsigned:     tx.UnsignedEncoding(),
		IntrinsicGas: tx.IntrinsicGas(),
	}
	return printJson(m.w, out)
}
