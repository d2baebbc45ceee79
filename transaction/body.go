// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/rlp"
	"github.com/bitmark-inc/thortx/util"
)

// byte sizes for various fields
const (
	BlockRefLength = 8
	maxUint64Bytes = 8
)

// Clause - one call or contract creation
//
// a nil To creates a contract
type Clause struct {
	To    *address.Address `json:"to"`    // hex or null
	Value bigint.Uint      `json:"value"` // decimal or 0x hex
	Data  util.HexBytes    `json:"data"`  // hex
}

// Body - the unsigned content of a transaction
type Body struct {
	ChainTag     uint8           `json:"chainTag"`
	BlockRef     util.HexBytes   `json:"blockRef"`   // 8 bytes
	Expiration   uint32          `json:"expiration"` // blocks after blockRef
	Clauses      []Clause        `json:"clauses"`
	GasPriceCoef uint8           `json:"gasPriceCoef"`
	Gas          bigint.Uint     `json:"gas"`       // at most 64 bits
	DependsOn    *digest.Bytes32 `json:"dependsOn"` // optional id of a prior transaction
	Nonce        bigint.Uint     `json:"nonce"`     // at most 64 bits
	Reserved     []rlp.Item      `json:"-"`
}

// Validate - check a body built by a caller
func (b *Body) Validate() error {
	return b.validate(true)
}

// decoded bodies may carry reserved items
func (b *Body) validate(checkReserved bool) error {
	if BlockRefLength != len(b.BlockRef) {
		return fault.ErrBlockRefLength
	}
	if b.Gas.Len() > maxUint64Bytes {
		return fault.ErrGasRange
	}
	if b.Nonce.Len() > maxUint64Bytes {
		return fault.ErrNonceRange
	}
	if checkReserved && 0 != len(b.Reserved) {
		return fault.ErrReservedNotEmpty
	}
	return nil
}

// deep copy so the caller cannot alter an accepted body
func (b *Body) clone() Body {
	c := Body{
		ChainTag:     b.ChainTag,
		BlockRef:     copyBytes(b.BlockRef),
		Expiration:   b.Expiration,
		GasPriceCoef: b.GasPriceCoef,
		Gas:          b.Gas,
		Nonce:        b.Nonce,
	}
	for _, clause := range b.Clauses {
		c.Clauses = append(c.Clauses, clause.clone())
	}
	if nil != b.DependsOn {
		d := *b.DependsOn
		c.DependsOn = &d
	}
	if 0 != len(b.Reserved) {
		c.Reserved = append([]rlp.Item{}, b.Reserved...)
	}
	return c
}

func (c Clause) clone() Clause {
	result := Clause{
		Value: c.Value,
		Data:  copyBytes(c.Data),
	}
	if nil != c.To {
		to := *c.To
		result.To = &to
	}
	return result
}

// nil for empty input
func copyBytes(b []byte) []byte {
	if 0 == len(b) {
		return nil
	}
	return append([]byte{}, b...)
}
