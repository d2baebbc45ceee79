// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/keypair"
	"github.com/bitmark-inc/thortx/keystore"
)

func runKeystoreEncrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := keypair.FromHex(c.String("key"))
	if nil != err {
		return err
	}

	password := c.String("password")
	if "" == password {
		password, err = promptPasswordReader()
		if nil != err {
			return err
		}
	} else if len(password) < minimumPasswordLength {
		return fault.ErrInvalidPasswordLength
	}

	ks, err := keystore.Encrypt(keyPair.PrivateKey, password)
	if nil != err {
		return err
	}

	data, err := json.MarshalIndent(ks, "", "  ")
	if nil != err {
		return err
	}
	data = append(data, '\n')

	output := c.String("output")
	if m.verbose && "" != output {
		fmt.Fprintf(m.e, "writing keystore: %s  address: %s\n", output, keyPair.Address)
	}
	return writeFile(output, data, m.w)
}

func runKeystoreDecrypt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := loadKeyPair(c, m)
	if nil != err {
		return err
	}

	return printJson(m.w, keyPair.Raw())
}
