// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mnemonic - BIP39 word lists and BIP32 key derivation
package mnemonic

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	bip39 "github.com/cosmos/go-bip39"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/secp256k1"
)

// entropy size of a 12 word mnemonic
const entropyBits = 128

// first index of the hardened range
const hardened = uint32(0x80000000)

// DefaultPath - m/44'/818'/0'/0/0
var DefaultPath = []uint32{
	hardened + 44,
	hardened + 818,
	hardened + 0,
	0,
	0,
}

// key used for the master node
var masterKey = []byte("Bitcoin seed")

// Generate - a new random 12 word mnemonic
func Generate() ([]string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if nil != err {
		return nil, err
	}
	m, err := bip39.NewMnemonic(entropy)
	if nil != err {
		return nil, err
	}
	return strings.Fields(m), nil
}

// Validate - check the words and checksum
func Validate(words []string) bool {
	_, err := bip39.NewSeedWithErrorChecking(strings.Join(words, " "), "")
	return nil == err
}

// DerivePrivateKey - the private key at the default path
func DerivePrivateKey(words []string) ([]byte, error) {
	return DerivePrivateKeyPath(words, DefaultPath)
}

// DerivePrivateKeyPath - the private key at a specific path
func DerivePrivateKeyPath(words []string, path []uint32) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(strings.Join(words, " "), "")
	if nil != err {
		return nil, fault.ErrInvalidMnemonic
	}

	mac := hmac.New(sha512.New, masterKey)
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chainCode := sum[:32], sum[32:]
	if !secp256k1.IsValidPrivateKey(key) {
		return nil, fault.ErrDerivationFailed
	}

	for _, index := range path {
		key, chainCode, err = deriveChild(key, chainCode, index)
		if nil != err {
			return nil, err
		}
	}
	return key, nil
}

// one step of private parent to private child derivation
func deriveChild(key []byte, chainCode []byte, index uint32) ([]byte, []byte, error) {
	data := make([]byte, 0, 37)
	if index >= hardened {
		data = append(data, 0x00)
		data = append(data, key...)
	} else {
		_, publicKey := btcec.PrivKeyFromBytes(btcec.S256(), key)
		data = append(data, publicKey.SerializeCompressed()...)
	}
	var i [4]byte
	binary.BigEndian.PutUint32(i[:], index)
	data = append(data, i[:]...)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)

	n := btcec.S256().N
	tweak := new(big.Int).SetBytes(sum[:32])
	if tweak.Cmp(n) >= 0 {
		return nil, nil, fault.ErrDerivationFailed
	}
	child := tweak.Add(tweak, new(big.Int).SetBytes(key))
	child.Mod(child, n)
	if 0 == child.Sign() {
		return nil, nil, fault.ErrDerivationFailed
	}

	childKey := make([]byte, 32)
	b := child.Bytes()
	copy(childKey[32-len(b):], b)
	return childKey, sum[32:], nil
}
