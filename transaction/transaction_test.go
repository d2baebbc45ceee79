// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/rlp"
	"github.com/bitmark-inc/thortx/transaction"
)

func TestSigningHash(t *testing.T) {
	tx := makeTransaction(t)

	assert.Equal(t, signingHashHex, tx.SigningHash().String(), "signing hash")
	assert.Equal(t, uint64(37432), tx.IntrinsicGas(), "intrinsic gas")
	assert.False(t, tx.IsSigned(), "signed")
	assert.Nil(t, tx.Signature(), "signature")
}

func TestSignedTransaction(t *testing.T) {
	tx := makeSignedTransaction(t)

	encoded, err := tx.Encode()
	assert.Nil(t, err, "encode")
	assert.Equal(t, encodedHex, hex.EncodeToString(encoded), "encoded")

	signer, err := tx.Signer()
	assert.Nil(t, err, "signer")

	id := tx.ID()
	assert.True(t, id.Valid(), "valid id")
	assert.Equal(t, idHex, id.String(), "id")
	assert.Equal(t, 32, len(id.Bytes()), "id bytes")

	hash := tx.SigningHash()
	assert.Equal(t, digest.Blake2b256(hash[:], signer.Bytes()), id.Hash(), "id composition")
}

func TestUnsigned(t *testing.T) {
	tx := makeTransaction(t)

	_, err := tx.Encode()
	assert.Equal(t, fault.ErrMissingSignature, err, "encode")

	_, err = tx.Signer()
	assert.Equal(t, fault.ErrMissingSignature, err, "signer")

	id := tx.ID()
	assert.False(t, id.Valid(), "valid id")
	assert.Equal(t, []byte{}, id.Bytes(), "id bytes")
	assert.Equal(t, digest.Bytes32{}, id.Hash(), "id hash")
	assert.Equal(t, "invalid", id.String(), "id string")
}

func TestIncorrectlySigned(t *testing.T) {
	tx := makeTransaction(t)
	assert.Nil(t, tx.SetSignature([]byte{1, 2, 3}), "set signature")

	_, err := tx.Signer()
	assert.Equal(t, fault.ErrInvalidSignature, err, "signer")

	id := tx.ID()
	assert.False(t, id.Valid(), "valid id")
	assert.Equal(t, 0, len(id.Bytes()), "id bytes")

	encoded, err := tx.Encode()
	assert.Nil(t, err, "encode")

	decoded, err := transaction.Decode(encoded)
	assert.Nil(t, err, "decode")
	assert.Equal(t, []byte{1, 2, 3}, decoded.Signature(), "signature")
}

func TestSignatureOnce(t *testing.T) {
	tx := makeSignedTransaction(t)

	err := tx.SetSignature(mustHex(t, signatureHex))
	assert.Equal(t, fault.ErrSignatureAlreadySet, err, "second signature")
	assert.True(t, fault.IsErrExists(err), "error class")

	err = tx.Sign(keySigner(mustHex(t, privateKeyHex)))
	assert.Equal(t, fault.ErrSignatureAlreadySet, err, "sign after signature")

	assert.Equal(t, fault.ErrMissingSignature, makeTransaction(t).SetSignature(nil), "empty signature")
}

func TestSignWithKey(t *testing.T) {
	tx := makeTransaction(t)

	err := tx.Sign(keySigner(mustHex(t, privateKeyHex)))
	assert.Nil(t, err, "sign")
	assert.Equal(t, 65, len(tx.Signature()), "signature length")

	signer, err := tx.Signer()
	assert.Nil(t, err, "signer")
	assert.Equal(t, signerHex, signer.String(), "signer")

	assert.True(t, tx.ID().Valid(), "valid id")
}

func TestDecode(t *testing.T) {
	tx, err := transaction.Decode(mustHex(t, encodedHex))
	if !assert.Nil(t, err, "decode") {
		return
	}

	assert.Equal(t, *makeBody(t), tx.Body(), "body")
	assert.Equal(t, mustHex(t, signatureHex), tx.Signature(), "signature")
	assert.Equal(t, signingHashHex, tx.SigningHash().String(), "signing hash")
	assert.Equal(t, idHex, tx.ID().String(), "id")

	encoded, err := tx.Encode()
	assert.Nil(t, err, "encode")
	assert.Equal(t, encodedHex, hex.EncodeToString(encoded), "re-encoded")

	// an empty signature is kept and only fails when the signer is needed
	raw := withField(t, 9, rlp.String{})
	tx, err = transaction.Decode(raw)
	if !assert.Nil(t, err, "decode empty signature") {
		return
	}
	assert.True(t, tx.IsSigned(), "empty signature is signed")
	assert.Equal(t, []byte{}, tx.Signature(), "empty signature")

	encoded, err = tx.Encode()
	assert.Nil(t, err, "encode empty signature")
	assert.Equal(t, raw, encoded, "empty signature re-encoded")

	_, err = tx.Signer()
	assert.Equal(t, fault.ErrInvalidSignature, err, "signer of empty signature")
	assert.False(t, tx.ID().Valid(), "id of empty signature")
	assert.Equal(t, fault.ErrSignatureAlreadySet, tx.SetSignature(mustHex(t, signatureHex)), "signature replaced")
}

func TestRoundTrip(t *testing.T) {
	dependsOn := digest.Blake2b256([]byte("previous"))

	body := makeBody(t)
	body.BlockRef = mustHex(t, "0000000000000001")
	body.DependsOn = &dependsOn
	body.Clauses = append(body.Clauses, transaction.Clause{
		To:    nil,
		Value: bigint.Uint{},
		Data:  nil,
	})
	body.Gas = bigint.FromUint64(0xffffffffffffffff)
	body.Nonce = bigint.Uint{}

	tx, err := transaction.New(body)
	if !assert.Nil(t, err, "new") {
		return
	}
	assert.Nil(t, tx.Sign(keySigner(mustHex(t, privateKeyHex))), "sign")

	encoded, err := tx.Encode()
	assert.Nil(t, err, "encode")

	decoded, err := transaction.Decode(encoded)
	if !assert.Nil(t, err, "decode") {
		return
	}
	assert.Equal(t, tx.Body(), decoded.Body(), "body")
	assert.Equal(t, tx.Signature(), decoded.Signature(), "signature")
	assert.Equal(t, tx.ID(), decoded.ID(), "id")
	assert.Equal(t, mustHex(t, "0000000000000001"), []byte(decoded.Body().BlockRef), "block ref")
}

func TestNoClauses(t *testing.T) {
	body := makeBody(t)
	body.Clauses = nil

	tx, err := transaction.New(body)
	assert.Nil(t, err, "new")
	assert.Nil(t, tx.Sign(keySigner(mustHex(t, privateKeyHex))), "sign")

	encoded, err := tx.Encode()
	assert.Nil(t, err, "encode")

	decoded, err := transaction.Decode(encoded)
	assert.Nil(t, err, "decode")
	assert.Equal(t, 0, len(decoded.Clauses()), "clauses")
	assert.Equal(t, uint64(21000), decoded.IntrinsicGas(), "intrinsic gas")
}

func TestNewCopiesBody(t *testing.T) {
	body := makeBody(t)
	tx, err := transaction.New(body)
	assert.Nil(t, err, "new")

	body.BlockRef[7] = 0xff
	body.Clauses[0].Data[5] = 0xff
	body.Clauses[0].To[0] = 0xff
	body.ChainTag = 99

	assert.Equal(t, signingHashHex, tx.SigningHash().String(), "signing hash after body change")

	b := tx.Body()
	b.Clauses[1].Data[0] = 0xff
	assert.Equal(t, signingHashHex, tx.SigningHash().String(), "signing hash after copy change")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		modify func(*transaction.Body)
		err    error
	}{
		{func(b *transaction.Body) {}, nil},
		{func(b *transaction.Body) { b.BlockRef = b.BlockRef[:7] }, fault.ErrBlockRefLength},
		{func(b *transaction.Body) { b.BlockRef = append(b.BlockRef, 0) }, fault.ErrBlockRefLength},
		{func(b *transaction.Body) { b.BlockRef = nil }, fault.ErrBlockRefLength},
		{func(b *transaction.Body) { b.Gas = bigint.FromUint64(0xffffffffffffffff) }, nil},
		{func(b *transaction.Body) { b.Gas = bigint.FromBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0}) }, fault.ErrGasRange},
		{func(b *transaction.Body) { b.Nonce = bigint.FromBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0}) }, fault.ErrNonceRange},
		{func(b *transaction.Body) { b.Reserved = []rlp.Item{rlp.String{1}} }, fault.ErrReservedNotEmpty},
		{func(b *transaction.Body) { b.Clauses[0].Value = bigint.FromBytes(make([]byte, 40)) }, nil},
	}

	for i, item := range tests {
		body := makeBody(t)
		item.modify(body)

		assert.Equal(t, item.err, body.Validate(), "%d: validate", i)

		tx, err := transaction.New(body)
		assert.Equal(t, item.err, err, "%d: new", i)
		if nil != item.err {
			assert.Nil(t, tx, "%d: transaction", i)
			assert.True(t, fault.IsErrInvalid(err), "%d: error class", i)
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	nine := append(rlp.List{}, referenceFields(t)[:9]...)
	tooLong := append(rlp.List{}, referenceFields(t)...)
	tooLong = append(tooLong, rlp.String{})

	shortClause := rlp.List{rlp.List{rlp.String(mustHex(t, toHex)), rlp.Uint(1)}}
	badTo := rlp.List{rlp.List{rlp.String(mustHex(t, toHex)[1:]), rlp.Uint(1), rlp.String{}}}
	listTo := rlp.List{rlp.List{rlp.List{}, rlp.Uint(1), rlp.String{}}}
	badValue := rlp.List{rlp.List{rlp.String{}, rlp.String{0, 1}, rlp.String{}}}

	tests := []struct {
		raw []byte
		err error
	}{
		{[]byte{}, fault.ErrEmptyInput},
		{rlp.Encode(rlp.String("abc")), fault.ErrListExpected},
		{rlp.Encode(nine), fault.ErrListCount},
		{rlp.Encode(tooLong), fault.ErrListCount},
		{append(mustHex(t, encodedHex), 0x80), fault.ErrTrailingBytes},

		{withField(t, 0, rlp.Uint(256)), fault.ErrChainTagRange},
		{withField(t, 0, rlp.String{0, 1}), fault.ErrNonCanonicalInteger},
		{withField(t, 0, rlp.List{}), fault.ErrStringExpected},

		{withField(t, 1, rlp.String{1, 2, 3, 4, 5, 6, 7, 8, 9}), fault.ErrBlockRefTooLong},
		{withField(t, 1, rlp.String{0, 0xaa}), fault.ErrNonCanonicalInteger},

		{withField(t, 2, rlp.Uint(1<<32)), fault.ErrExpirationRange},
		{withField(t, 2, rlp.Uint(1<<48)), fault.ErrUnsafeNumber},

		{withField(t, 3, rlp.String{}), fault.ErrListExpected},
		{withField(t, 3, shortClause), fault.ErrListCount},
		{withField(t, 3, badTo), fault.ErrAddressExpected},
		{withField(t, 3, listTo), fault.ErrStringExpected},
		{withField(t, 3, badValue), fault.ErrNonCanonicalInteger},

		{withField(t, 4, rlp.Uint(256)), fault.ErrGasPriceCoefRange},

		{withField(t, 5, rlp.String{1, 0, 0, 0, 0, 0, 0, 0, 0}), fault.ErrGasRange},
		{withField(t, 5, rlp.String{0, 1}), fault.ErrNonCanonicalInteger},

		{withField(t, 6, rlp.String(make([]byte, 31))), fault.ErrBytes32Expected},

		{withField(t, 7, rlp.String{1, 0, 0, 0, 0, 0, 0, 0, 0}), fault.ErrNonceRange},

		{withField(t, 8, rlp.String{}), fault.ErrListExpected},

		{withField(t, 9, rlp.List{}), fault.ErrStringExpected},
	}

	for i, item := range tests {
		tx, err := transaction.Decode(item.raw)
		assert.Equal(t, item.err, errors.Cause(err), "%d: error: %v", i, err)
		assert.Nil(t, tx, "%d: transaction", i)
	}
}

func TestDecodeErrorPosition(t *testing.T) {
	badTo := rlp.List{
		rlp.List{rlp.String(mustHex(t, toHex)), rlp.Uint(1), rlp.String{}},
		rlp.List{rlp.String{1, 2}, rlp.Uint(1), rlp.String{}},
	}

	_, err := transaction.Decode(withField(t, 3, badTo))
	assert.Equal(t, "clauses[1]: to: address expected", err.Error(), "message")
	assert.True(t, fault.IsErrRecord(err), "error class")
}

func TestDecodePaddedClauseValue(t *testing.T) {
	padded := rlp.List{
		rlp.List{rlp.String(mustHex(t, toHex)), rlp.String{0, 1}, rlp.String{}},
	}

	tx, err := transaction.Decode(withField(t, 3, padded))
	assert.Nil(t, tx, "transaction")
	assert.Equal(t, fault.ErrNonCanonicalInteger, errors.Cause(err), "cause")
	assert.Equal(t, "clauses[0]: value: "+fault.ErrNonCanonicalInteger.Error(), err.Error(), "message")
}

func TestDecodeReserved(t *testing.T) {
	reserved := rlp.List{rlp.String{1}, rlp.List{}}

	tx, err := transaction.Decode(withField(t, 8, reserved))
	if !assert.Nil(t, err, "decode") {
		return
	}
	assert.Equal(t, []rlp.Item(reserved), tx.Body().Reserved, "reserved")

	encoded, err := tx.Encode()
	assert.Nil(t, err, "encode")
	assert.Equal(t, withField(t, 8, reserved), encoded, "re-encoded")

	body := tx.Body()
	_, err = transaction.New(&body)
	assert.Equal(t, fault.ErrReservedNotEmpty, err, "rebuild from decoded body")
}

func TestBodyJSON(t *testing.T) {
	j := `{
  "chainTag": 1,
  "blockRef": "0x00000000aabbccdd",
  "expiration": 32,
  "clauses": [
    {"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": 10000, "data": "0x000000606060"},
    {"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": "20000", "data": "0x000000606060"}
  ],
  "gasPriceCoef": 128,
  "gas": 21000,
  "dependsOn": null,
  "nonce": "0xbc614e"
}`

	var body transaction.Body
	err := json.Unmarshal([]byte(j), &body)
	if !assert.Nil(t, err, "unmarshal") {
		return
	}

	tx, err := transaction.New(&body)
	assert.Nil(t, err, "new")
	assert.Equal(t, signingHashHex, tx.SigningHash().String(), "signing hash")
}
