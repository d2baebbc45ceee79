// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/keypair"
	"github.com/bitmark-inc/thortx/mnemonic"
)

func runMnemonic(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	words := strings.Fields(c.String("words"))
	if 0 == len(words) {
		generated, err := mnemonic.Generate()
		if nil != err {
			return err
		}
		words = generated
	} else if !mnemonic.Validate(words) {
		return fault.ErrInvalidMnemonic
	}

	privateKey, err := mnemonic.DerivePrivateKey(words)
	if nil != err {
		return err
	}
	keyPair, err := keypair.FromPrivateKey(privateKey)
	if nil != err {
		return err
	}

	out := struct {
		Words   []string           `json:"words"`
		KeyPair keypair.RawKeyPair `json:"key_pair"`
	}{
		Words:   words,
		KeyPair: keyPair.Raw(),
	}
	return printJson(m.w, out)
}
