// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
)

// byte sizes
const (
	PrivateKeyLength = 32
	PublicKeyLength  = 65
	SignatureLength  = 65

	// btcec compact signatures start with 27 + recovery id (+4 when compressed)
	compactOffset = 27
)

// GeneratePrivateKey - a new random private key
func GeneratePrivateKey() ([]byte, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if nil != err {
		return nil, err
	}
	return paddedScalar(key), nil
}

// IsValidPrivateKey - check for a 32 byte scalar in [1, n-1]
func IsValidPrivateKey(privateKey []byte) bool {
	if PrivateKeyLength != len(privateKey) {
		return false
	}
	d := new(big.Int).SetBytes(privateKey)
	return d.Sign() > 0 && d.Cmp(btcec.S256().N) < 0
}

// DerivePublicKey - the 65 byte uncompressed public key
func DerivePublicKey(privateKey []byte) ([]byte, error) {
	if !IsValidPrivateKey(privateKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	_, publicKey := btcec.PrivKeyFromBytes(btcec.S256(), privateKey)
	return publicKey.SerializeUncompressed(), nil
}

// DeriveAddress - low 20 bytes of the Keccak-256 of the public key
// coordinates
func DeriveAddress(publicKey []byte) (address.Address, error) {
	if PublicKeyLength != len(publicKey) || 0x04 != publicKey[0] {
		return address.Address{}, fault.ErrInvalidPublicKey
	}
	h := digest.Keccak256(publicKey[1:])
	return address.FromBytes(h[digest.Length-address.Length:]), nil
}

// Sign - deterministic signature as R‖S‖recovery
func Sign(hash digest.Bytes32, privateKey []byte) ([]byte, error) {
	if !IsValidPrivateKey(privateKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), privateKey)
	compact, err := btcec.SignCompact(btcec.S256(), key, hash[:], false)
	if nil != err {
		return nil, err
	}

	signature := make([]byte, SignatureLength)
	copy(signature, compact[1:])
	signature[SignatureLength-1] = compact[0] - compactOffset
	return signature, nil
}

// Recover - the uncompressed public key that produced a signature
func Recover(hash digest.Bytes32, signature []byte) ([]byte, error) {
	if SignatureLength != len(signature) {
		return nil, fault.ErrInvalidSignature
	}
	recovery := signature[SignatureLength-1]
	if recovery > 1 {
		return nil, fault.ErrInvalidRecoveryID
	}

	compact := make([]byte, SignatureLength)
	compact[0] = compactOffset + recovery
	copy(compact[1:], signature[:SignatureLength-1])

	publicKey, _, err := btcec.RecoverCompact(btcec.S256(), compact, hash[:])
	if nil != err {
		return nil, fault.ErrRecoveryFailed
	}
	return publicKey.SerializeUncompressed(), nil
}

// Recoverer - signer recovery backed by this curve
type Recoverer struct{}

// RecoverAddress - the address that produced a signature
func (Recoverer) RecoverAddress(hash digest.Bytes32, signature []byte) (address.Address, error) {
	publicKey, err := Recover(hash, signature)
	if nil != err {
		return address.Address{}, err
	}
	return DeriveAddress(publicKey)
}

// fixed width big endian scalar
func paddedScalar(key *btcec.PrivateKey) []byte {
	b := key.D.Bytes()
	result := make([]byte, PrivateKeyLength)
	copy(result[PrivateKeyLength-len(b):], b)
	return result
}
