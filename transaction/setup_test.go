// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/hex"
	"testing"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/rlp"
	"github.com/bitmark-inc/thortx/secp256k1"
	"github.com/bitmark-inc/thortx/transaction"
)

// known values
const (
	toHex          = "7567d83b7b8d80addcb281a71d54fc7b3364ffed"
	signingHashHex = "0x2a1c25ce0d66f45276a5f308b99bf410e2fc7d5b6ea37a49f2ab9f1da9446478"
	idHex          = "0xda90eaea52980bc4bb8d40cb2ff84d78433b3b4a6e7d50b75736c5e3e77b71ec"
	signatureHex   = "f76f3c91a834165872aa9464fc55b03a13f46ea8d3b858e528fcceaf371ad6884193c3f313ff8effbb57fe4d1adc13dceb933bedbf9dbb528d2936203d5511df00"
	encodedHex     = "f8970184aabbccdd20f840df947567d83b7b8d80addcb281a71d54fc7b3364ffed82271086000000606060df947567d83b7b8d80addcb281a71d54fc7b3364ffed824e208600000060606081808252088083bc614ec0b841" + signatureHex

	privateKeyHex = "7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a"
	signerHex     = "0xd989829d88b0ed1b06edf5c50174ecfa64f14a64"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		t.Fatalf("bad test hex: %q  error: %s", s, err)
	}
	return b
}

func mustAddress(t *testing.T, s string) *address.Address {
	a, err := address.FromHex(s, "")
	if nil != err {
		t.Fatalf("bad test address: %q  error: %s", s, err)
	}
	return &a
}

// the reference body: two calls to the same contract
func makeBody(t *testing.T) *transaction.Body {
	return &transaction.Body{
		ChainTag:   1,
		BlockRef:   mustHex(t, "00000000aabbccdd"),
		Expiration: 32,
		Clauses: []transaction.Clause{
			{
				To:    mustAddress(t, toHex),
				Value: bigint.FromUint64(10000),
				Data:  mustHex(t, "000000606060"),
			},
			{
				To:    mustAddress(t, toHex),
				Value: bigint.FromUint64(20000),
				Data:  mustHex(t, "000000606060"),
			},
		},
		GasPriceCoef: 128,
		Gas:          bigint.FromUint64(21000),
		DependsOn:    nil,
		Nonce:        bigint.FromUint64(12345678),
		Reserved:     nil,
	}
}

func makeTransaction(t *testing.T) *transaction.Transaction {
	tx, err := transaction.New(makeBody(t))
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return tx
}

func makeSignedTransaction(t *testing.T) *transaction.Transaction {
	tx := makeTransaction(t)
	if err := tx.SetSignature(mustHex(t, signatureHex)); nil != err {
		t.Fatalf("set signature error: %s", err)
	}
	return tx
}

// the 10 wire fields of the reference transaction
func referenceFields(t *testing.T) rlp.List {
	item, err := rlp.Decode(mustHex(t, encodedHex))
	if nil != err {
		t.Fatalf("decode reference error: %s", err)
	}
	return item.(rlp.List)
}

// replace one wire field and encode
func withField(t *testing.T, index int, item rlp.Item) []byte {
	fields := append(rlp.List{}, referenceFields(t)...)
	fields[index] = item
	return rlp.Encode(fields)
}

// signs with a raw private key
type keySigner []byte

func (k keySigner) Sign(hash digest.Bytes32) ([]byte, error) {
	return secp256k1.Sign(hash, k)
}
