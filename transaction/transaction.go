// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
)

// Signer - produces a 65 byte recoverable signature of a hash
type Signer interface {
	Sign(hash digest.Bytes32) ([]byte, error)
}

// Recoverer - recovers the address that signed a hash
type Recoverer interface {
	RecoverAddress(hash digest.Bytes32, signature []byte) (address.Address, error)
}

// Transaction - a validated body and an optional signature
//
// the body cannot change after construction and the signature can
// only be attached once
type Transaction struct {
	body      Body
	signature []byte
	signed    bool
}

// New - validate and copy a body into an unsigned transaction
func New(body *Body) (*Transaction, error) {
	if err := body.Validate(); nil != err {
		return nil, err
	}
	return &Transaction{
		body: body.clone(),
	}, nil
}

// Body - a copy of the body
func (tx *Transaction) Body() Body {
	return tx.body.clone()
}

// Clauses - a copy of the clauses
func (tx *Transaction) Clauses() []Clause {
	return tx.body.clone().Clauses
}

// IsSigned - true once a signature is attached
//
// a decoded signature counts even when it is empty
func (tx *Transaction) IsSigned() bool {
	return tx.signed
}

// Signature - a copy of the signature, nil if unsigned
func (tx *Transaction) Signature() []byte {
	if !tx.signed {
		return nil
	}
	return append([]byte{}, tx.signature...)
}

// SetSignature - attach a signature
func (tx *Transaction) SetSignature(signature []byte) error {
	if tx.IsSigned() {
		return fault.ErrSignatureAlreadySet
	}
	if 0 == len(signature) {
		return fault.ErrMissingSignature
	}
	tx.signature = copyBytes(signature)
	tx.signed = true
	return nil
}

// Sign - sign the signing hash and attach the result
func (tx *Transaction) Sign(signer Signer) error {
	if tx.IsSigned() {
		return fault.ErrSignatureAlreadySet
	}
	signature, err := signer.Sign(tx.SigningHash())
	if nil != err {
		return err
	}
	return tx.SetSignature(signature)
}
