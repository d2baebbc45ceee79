// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"strings"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/secp256k1"
	"github.com/bitmark-inc/thortx/util"
)

// KeyPair - structure to hold public and private keys and the
// address derived from them
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
	Address    address.Address
}

// RawKeyPair - text version of keys and address
type RawKeyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
}

// MakeKeyPair - create a new random key pair
func MakeKeyPair() (*RawKeyPair, *KeyPair, error) {
	privateKey, err := secp256k1.GeneratePrivateKey()
	if nil != err {
		return nil, nil, err
	}
	keyPair, err := FromPrivateKey(privateKey)
	if nil != err {
		return nil, nil, err
	}
	raw := keyPair.Raw()
	return &raw, keyPair, nil
}

// FromPrivateKey - derive the public key and address
func FromPrivateKey(privateKey []byte) (*KeyPair, error) {
	publicKey, err := secp256k1.DerivePublicKey(privateKey)
	if nil != err {
		return nil, err
	}
	a, err := secp256k1.DeriveAddress(publicKey)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: append([]byte{}, privateKey...),
		PublicKey:  publicKey,
		Address:    a,
	}, nil
}

// FromHex - key pair from a hex private key, 0x prefix optional
func FromHex(s string) (*KeyPair, error) {
	prefix := ""
	if strings.HasPrefix(s, util.DefaultHexPrefix) {
		prefix = util.DefaultHexPrefix
	}
	privateKey, err := util.HexToBytes(s, prefix)
	if nil != err {
		return nil, err
	}
	if secp256k1.PrivateKeyLength != len(privateKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return FromPrivateKey(privateKey)
}

// Sign - recoverable signature of a hash
func (k *KeyPair) Sign(hash digest.Bytes32) ([]byte, error) {
	return secp256k1.Sign(hash, k.PrivateKey)
}

// Raw - hex form of the key pair
func (k *KeyPair) Raw() RawKeyPair {
	return RawKeyPair{
		PrivateKey: util.BytesToHex(k.PrivateKey, util.DefaultHexPrefix),
		PublicKey:  util.BytesToHex(k.PublicKey, util.DefaultHexPrefix),
		Address:    k.Address.String(),
	}
}
