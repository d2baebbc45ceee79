// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/secp256k1"
)

// ID - transaction identifier
//
// the zero value is the invalid id, produced when the signer cannot
// be determined
type ID struct {
	hash  digest.Bytes32
	valid bool
}

// Valid - true if the id was computed from a recovered signer
func (id ID) Valid() bool {
	return id.valid
}

// Hash - the id hash, all zero if invalid
func (id ID) Hash() digest.Bytes32 {
	return id.hash
}

// Bytes - the 32 id bytes, empty if invalid
func (id ID) Bytes() []byte {
	if !id.valid {
		return []byte{}
	}
	return id.hash.Bytes()
}

// String - 0x hex or "invalid"
func (id ID) String() string {
	if !id.valid {
		return "invalid"
	}
	return id.hash.String()
}

// MarshalText - hex, empty if invalid
func (id ID) MarshalText() ([]byte, error) {
	if !id.valid {
		return []byte{}, nil
	}
	return id.hash.MarshalText()
}

// IDFromHash - a valid id from a known hash
func IDFromHash(hash digest.Bytes32) ID {
	return ID{
		hash:  hash,
		valid: true,
	}
}

// Signer - the address that signed the transaction
func (tx *Transaction) Signer() (address.Address, error) {
	return tx.SignerWith(secp256k1.Recoverer{})
}

// SignerWith - the signer determined by a specific recoverer
func (tx *Transaction) SignerWith(recoverer Recoverer) (address.Address, error) {
	if !tx.IsSigned() {
		return address.Address{}, fault.ErrMissingSignature
	}
	return recoverer.RecoverAddress(tx.SigningHash(), tx.signature)
}

// ID - BLAKE2b-256 of the signing hash and the signer
func (tx *Transaction) ID() ID {
	return tx.IDWith(secp256k1.Recoverer{})
}

// IDWith - the id with the signer determined by a specific recoverer
func (tx *Transaction) IDWith(recoverer Recoverer) ID {
	hash := tx.SigningHash()
	if !tx.IsSigned() {
		return ID{}
	}
	signer, err := recoverer.RecoverAddress(hash, tx.signature)
	if nil != err {
		return ID{}
	}
	return IDFromHash(digest.Blake2b256(hash[:], signer.Bytes()))
}
