// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/keypair"
	"github.com/bitmark-inc/thortx/secp256k1"
)

const (
	privateKeyHex = "7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a"
	publicKeyHex  = "0x04b90e9bb2617387eba4502c730de65a33878ef384a46f1096d86f2da19043304afa67d0ad09cf2bea0c6f2d1767a9e62a7a7ecc41facf18f2fa505d92243a658f"
	addressHex    = "0xd989829d88b0ed1b06edf5c50174ecfa64f14a64"
)

func TestFromHex(t *testing.T) {
	for _, s := range []string{privateKeyHex, "0x" + privateKeyHex} {
		k, err := keypair.FromHex(s)
		if !assert.Nil(t, err, "from hex: %s", s) {
			continue
		}
		raw := k.Raw()
		assert.Equal(t, "0x"+privateKeyHex, raw.PrivateKey, "private key")
		assert.Equal(t, publicKeyHex, raw.PublicKey, "public key")
		assert.Equal(t, addressHex, raw.Address, "address")
	}
}

func TestFromHexInvalid(t *testing.T) {
	tests := []struct {
		s   string
		err error
	}{
		{"", fault.ErrInvalidPrivateKey},
		{"0x1234", fault.ErrInvalidPrivateKey},
		{"7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26", fault.ErrOddHex},
		{"zz82be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a", fault.ErrNotHex},
		{"0000000000000000000000000000000000000000000000000000000000000000", fault.ErrInvalidPrivateKey},
	}

	for i, item := range tests {
		_, err := keypair.FromHex(item.s)
		assert.Equal(t, item.err, err, "%d: error", i)
	}
}

func TestMakeKeyPair(t *testing.T) {
	raw, k, err := keypair.MakeKeyPair()
	if !assert.Nil(t, err, "make") {
		return
	}
	assert.Equal(t, k.Raw(), *raw, "raw form")

	again, err := keypair.FromHex(raw.PrivateKey)
	assert.Nil(t, err, "from raw")
	assert.Equal(t, k, again, "rebuilt")
}

func TestSign(t *testing.T) {
	k, err := keypair.FromHex(privateKeyHex)
	if !assert.Nil(t, err, "from hex") {
		return
	}

	hash := digest.Blake2b256([]byte("message"))
	signature, err := k.Sign(hash)
	assert.Nil(t, err, "sign")

	a, err := secp256k1.Recoverer{}.RecoverAddress(hash, signature)
	assert.Nil(t, err, "recover")
	assert.Equal(t, k.Address, a, "address")
}
