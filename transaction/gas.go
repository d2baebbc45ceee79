// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"math/big"

	"github.com/bitmark-inc/thortx/bigint"
)

// gas schedule
const (
	TxGas                     = 5000
	ClauseGas                 = 16000
	ClauseGasContractCreation = 48000
	TxDataZeroGas             = 4
	TxDataNonZeroGas          = 68

	// the divisor of the gas price coefficient
	maxGasPriceCoef = 255
)

// IntrinsicGas - gas consumed before any clause executes
//
// a transaction with no clauses is charged as a single clause
func IntrinsicGas(clauses ...Clause) uint64 {
	if 0 == len(clauses) {
		return TxGas + ClauseGas
	}
	total := uint64(TxGas)
	for _, c := range clauses {
		if nil == c.To {
			total += ClauseGasContractCreation
		} else {
			total += ClauseGas
		}
		total += DataGas(c.Data)
	}
	return total
}

// DataGas - the charge for clause data
func DataGas(data []byte) uint64 {
	gas := uint64(0)
	for _, b := range data {
		if 0 == b {
			gas += TxDataZeroGas
		} else {
			gas += TxDataNonZeroGas
		}
	}
	return gas
}

// IntrinsicGas - intrinsic gas of the transaction clauses
func (tx *Transaction) IntrinsicGas() uint64 {
	return IntrinsicGas(tx.body.Clauses...)
}

// GasPrice - base + base × gasPriceCoef / 255, rounded down
func (tx *Transaction) GasPrice(base bigint.Uint) bigint.Uint {
	b := base.Big()
	extra := new(big.Int).Mul(b, big.NewInt(int64(tx.body.GasPriceCoef)))
	extra.Quo(extra, big.NewInt(maxGasPriceCoef))
	return bigint.FromBig(extra.Add(extra, b))
}
