// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/transaction"
)

func runGas(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	body, err := readBody(c.String("body"), m.config)
	if nil != err {
		return err
	}
	tx, err := transaction.New(body)
	if nil != err {
		return err
	}

	var base bigint.Uint
	if s := c.String("base"); "" != s {
		base, err = bigint.Parse(s)
	} else {
		base, err = m.config.basePrice()
	}
	if nil != err {
		return err
	}

	out := struct {
		IntrinsicGas uint64      `json:"intrinsicGas"`
		Gas          bigint.Uint `json:"gas"`
		GasPriceCoef uint8       `json:"gasPriceCoef"`
		BaseGasPrice bigint.Uint `json:"baseGasPrice"`
		GasPrice     bigint.Uint `json:"gasPrice"`
	}{
		IntrinsicGas: tx.IntrinsicGas(),
		Gas:          body.Gas,
		GasPriceCoef: body.GasPriceCoef,
		BaseGasPrice: base,
		GasPrice:     tx.GasPrice(base),
	}
	return printJson(m.w, out)
}
