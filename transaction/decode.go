// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/rlp"
)

// integers wider than this cannot be held exactly by a double
const maxSafeIntegerBytes = 6

// Decode - parse and validate the wire form
//
// decode errors are wrapped with the position of the failing field,
// use errors.Cause to obtain the fault value
func Decode(raw []byte) (*Transaction, error) {
	item, err := rlp.Decode(copyBytes(raw))
	if nil != err {
		return nil, errors.Wrap(err, "transaction")
	}
	fields, err := rlp.AsList(item, signedFieldCount)
	if nil != err {
		return nil, errors.Wrap(err, "transaction")
	}

	body := Body{}

	chainTag, err := smallInteger(fields[0], "chainTag", 8, fault.ErrChainTagRange)
	if nil != err {
		return nil, err
	}
	body.ChainTag = uint8(chainTag)

	blockRef, err := integerBytes(fields[1])
	if nil != err {
		return nil, errors.Wrap(err, "blockRef")
	}
	if len(blockRef) > BlockRefLength {
		return nil, errors.Wrap(fault.ErrBlockRefTooLong, "blockRef")
	}
	body.BlockRef = make([]byte, BlockRefLength)
	copy(body.BlockRef[BlockRefLength-len(blockRef):], blockRef)

	expiration, err := smallInteger(fields[2], "expiration", 32, fault.ErrExpirationRange)
	if nil != err {
		return nil, err
	}
	body.Expiration = uint32(expiration)

	clauses, err := rlp.AsList(fields[3], -1)
	if nil != err {
		return nil, errors.Wrap(err, "clauses")
	}
	for i, item := range clauses {
		clause, err := decodeClause(item)
		if nil != err {
			return nil, errors.Wrapf(err, "clauses[%d]", i)
		}
		body.Clauses = append(body.Clauses, clause)
	}

	gasPriceCoef, err := smallInteger(fields[4], "gasPriceCoef", 8, fault.ErrGasPriceCoefRange)
	if nil != err {
		return nil, err
	}
	body.GasPriceCoef = uint8(gasPriceCoef)

	gas, err := integerBytes(fields[5])
	if nil != err {
		return nil, errors.Wrap(err, "gas")
	}
	body.Gas = bigint.FromBytes(gas)

	dependsOn, err := rlp.AsString(fields[6])
	if nil != err {
		return nil, errors.Wrap(err, "dependsOn")
	}
	switch len(dependsOn) {
	case 0:
	case digest.Length:
		d := digest.FromBytes(dependsOn)
		body.DependsOn = &d
	default:
		return nil, errors.Wrap(fault.ErrBytes32Expected, "dependsOn")
	}

	nonce, err := integerBytes(fields[7])
	if nil != err {
		return nil, errors.Wrap(err, "nonce")
	}
	body.Nonce = bigint.FromBytes(nonce)

	reserved, err := rlp.AsList(fields[8], -1)
	if nil != err {
		return nil, errors.Wrap(err, "reserved")
	}
	if 0 != len(reserved) {
		body.Reserved = reserved
	}

	signature, err := rlp.AsString(fields[unsignedFieldCount])
	if nil != err {
		return nil, errors.Wrap(err, "signature")
	}

	if err := body.validate(false); nil != err {
		return nil, err
	}

	return &Transaction{
		body:      body,
		signature: append([]byte{}, signature...),
		signed:    true,
	}, nil
}

// [to, value, data]
func decodeClause(item rlp.Item) (Clause, error) {
	fields, err := rlp.AsList(item, clauseFieldCount)
	if nil != err {
		return Clause{}, err
	}

	clause := Clause{}

	to, err := rlp.AsString(fields[0])
	if nil != err {
		return Clause{}, errors.Wrap(err, "to")
	}
	switch len(to) {
	case 0:
	case address.Length:
		a := address.FromBytes(to)
		clause.To = &a
	default:
		return Clause{}, errors.Wrap(fault.ErrAddressExpected, "to")
	}

	value, err := integerBytes(fields[1])
	if nil != err {
		return Clause{}, errors.Wrap(err, "value")
	}
	clause.Value = bigint.FromBytes(value)

	data, err := rlp.AsString(fields[2])
	if nil != err {
		return Clause{}, errors.Wrap(err, "data")
	}
	clause.Data = copyBytes(data)

	return clause, nil
}

// the bytes of a canonical integer leaf
func integerBytes(item rlp.Item) ([]byte, error) {
	b, err := rlp.AsString(item)
	if nil != err {
		return nil, err
	}
	if 0 != len(b) && 0 == b[0] {
		return nil, fault.ErrNonCanonicalInteger
	}
	return b, nil
}

// an integer that must fit in the given number of bits
func smallInteger(item rlp.Item, name string, bits uint, rangeError error) (uint64, error) {
	b, err := integerBytes(item)
	if nil != err {
		return 0, errors.Wrap(err, name)
	}
	if len(b) > maxSafeIntegerBytes {
		return 0, errors.Wrap(fault.ErrUnsafeNumber, name)
	}
	value := uint64(0)
	for _, c := range b {
		value = value<<8 | uint64(c)
	}
	if 0 != value>>bits {
		return 0, rangeError
	}
	return value, nil
}
