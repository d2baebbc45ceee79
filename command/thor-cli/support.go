// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/keypair"
	"github.com/bitmark-inc/thortx/keystore"
	"github.com/bitmark-inc/thortx/storage"
	"github.com/bitmark-inc/thortx/transaction"
	"github.com/bitmark-inc/thortx/util"
)

// JSON view of a transaction
type transactionView struct {
	ID           transaction.ID   `json:"id"`
	Signer       *address.Address `json:"signer"`
	SigningHash  digest.Bytes32   `json:"signingHash"`
	Body         transaction.Body `json:"body"`
	Signature    util.HexBytes    `json:"signature"`
	Encoded      util.HexBytes    `json:"encoded,omitempty"`
	IntrinsicGas uint64           `json:"intrinsicGas"`
	GasPrice     bigint.Uint      `json:"gasPrice"`
}

func makeView(tx *transaction.Transaction, base bigint.Uint) transactionView {
	view := transactionView{
		ID:           tx.ID(),
		SigningHash:  tx.SigningHash(),
		Body:         tx.Body(),
		Signature:    tx.Signature(),
		IntrinsicGas: tx.IntrinsicGas(),
		GasPrice:     tx.GasPrice(base),
	}
	if signer, err := tx.Signer(); nil == err {
		view.Signer = &signer
	}
	if encoded, err := tx.Encode(); nil == err {
		view.Encoded = encoded
	}
	return view
}

// read a JSON body, omitted fields take configuration defaults
func readBody(fileName string, config *Configuration) (*transaction.Body, error) {
	var data []byte
	var err error
	if "-" == fileName {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(fileName)
	}
	if nil != err {
		return nil, err
	}

	body := &transaction.Body{
		ChainTag:     config.ChainTag,
		Expiration:   config.Expiration,
		GasPriceCoef: config.GasPriceCoef,
	}
	err = json.Unmarshal(data, body)
	if nil != err {
		return nil, errors.Wrap(err, "body")
	}
	return body, nil
}

// key pair from --key or from a keystore
func loadKeyPair(c *cli.Context, m *metadata) (*keypair.KeyPair, error) {
	if key := c.String("key"); "" != key {
		return keypair.FromHex(key)
	}

	fileName := c.String("keystore")
	if "" == fileName {
		fileName = m.config.Keystore
	}
	if "" == fileName {
		return nil, fault.ErrInvalidKeystore
	}

	ks, err := readKeystore(fileName)
	if nil != err {
		return nil, err
	}

	password := c.String("password")
	if "" == password {
		password, err = promptCheckPasswordReader()
		if nil != err {
			return nil, err
		}
	}

	privateKey, err := keystore.Decrypt(ks, password)
	if nil != err {
		return nil, err
	}
	return keypair.FromPrivateKey(privateKey)
}

func readKeystore(fileName string) (*keystore.Keystore, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	ks := &keystore.Keystore{}
	err = json.Unmarshal(data, ks)
	if nil != err {
		return nil, errors.Wrapf(err, "keystore: %s", fileName)
	}
	return ks, nil
}

// the journal can only be used with a configuration file
func openJournal(m *metadata, readOnly bool) (*storage.Journal, error) {
	if "" == m.file {
		return nil, fault.ErrDatabaseIsNotOpen
	}
	return storage.Open(m.config.Database, readOnly)
}

// strip an optional 0x and decode
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	prefix := ""
	if strings.HasPrefix(s, util.DefaultHexPrefix) {
		prefix = util.DefaultHexPrefix
	}
	return util.HexToBytes(s, prefix)
}

func writeFile(fileName string, data []byte, w io.Writer) error {
	if "" == fileName {
		_, err := w.Write(data)
		return err
	}
	return ioutil.WriteFile(fileName, data, 0600)
}
