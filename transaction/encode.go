// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/rlp"
)

// number of top level elements
const (
	unsignedFieldCount = 9
	signedFieldCount   = 10
	clauseFieldCount   = 3
)

// UnsignedEncoding - the encoded 9 element list
func (tx *Transaction) UnsignedEncoding() []byte {
	return rlp.Encode(tx.unsignedList())
}

// SigningHash - BLAKE2b-256 of the unsigned encoding
func (tx *Transaction) SigningHash() digest.Bytes32 {
	return digest.Blake2b256(tx.UnsignedEncoding())
}

// Encode - the wire form, signature included
func (tx *Transaction) Encode() ([]byte, error) {
	if !tx.IsSigned() {
		return nil, fault.ErrMissingSignature
	}
	list := append(tx.unsignedList(), rlp.String(tx.signature))
	return rlp.Encode(list), nil
}

func (tx *Transaction) unsignedList() rlp.List {
	b := &tx.body

	clauses := make(rlp.List, 0, len(b.Clauses))
	for _, c := range b.Clauses {
		to := rlp.String{}
		if nil != c.To {
			to = rlp.String(c.To.Bytes())
		}
		clauses = append(clauses, rlp.List{
			to,
			rlp.String(c.Value.Bytes()),
			rlp.String(c.Data),
		})
	}

	dependsOn := rlp.String{}
	if nil != b.DependsOn {
		dependsOn = rlp.String(b.DependsOn.Bytes())
	}

	reserved := rlp.List{}
	reserved = append(reserved, b.Reserved...)

	list := make(rlp.List, 0, signedFieldCount)
	return append(list,
		rlp.Uint(uint64(b.ChainTag)),
		rlp.String(trimLeadingZeros(b.BlockRef)),
		rlp.Uint(uint64(b.Expiration)),
		clauses,
		rlp.Uint(uint64(b.GasPriceCoef)),
		rlp.String(b.Gas.Bytes()),
		dependsOn,
		rlp.String(b.Nonce.Bytes()),
		reserved,
	)
}

// the block reference is encoded as an integer
func trimLeadingZeros(b []byte) []byte {
	for i, c := range b {
		if 0 != c {
			return b[i:]
		}
	}
	return nil
}
