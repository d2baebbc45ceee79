// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore - version 3 encrypted private key files
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/secp256k1"
)

// supported algorithms
const (
	Version   = 3
	CipherAES = "aes-128-ctr"
	KDFScrypt = "scrypt"
	KDFPBKDF2 = "pbkdf2"
	PRFSHA256 = "hmac-sha256"

	derivedKeyLength = 32
	saltLength       = 32
)

// Keystore - the JSON document
type Keystore struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Address string `json:"address"` // lower case hex, no prefix
	Crypto  Crypto `json:"crypto"`
}

// Crypto - cipher and key derivation details
type Crypto struct {
	Cipher       string                 `json:"cipher"`
	CipherText   string                 `json:"ciphertext"`
	CipherParams CipherParams           `json:"cipherparams"`
	KDF          string                 `json:"kdf"`
	KDFParams    map[string]interface{} `json:"kdfparams"`
	MAC          string                 `json:"mac"`
}

// CipherParams - the counter mode initial value
type CipherParams struct {
	IV string `json:"iv"`
}

// Params - key derivation settings for encryption
//
// N, R, P apply to scrypt and C to pbkdf2
type Params struct {
	KDF string
	N   int
	R   int
	P   int
	C   int
}

// StandardParams - scrypt n=262144 r=8 p=1
var StandardParams = Params{
	KDF: KDFScrypt,
	N:   1 << 18,
	R:   8,
	P:   1,
}

// Encrypt - encrypt a private key with the standard parameters
func Encrypt(privateKey []byte, password string) (*Keystore, error) {
	return EncryptWithParams(privateKey, password, StandardParams)
}

// EncryptWithParams - encrypt a private key with specific parameters
func EncryptWithParams(privateKey []byte, password string, params Params) (*Keystore, error) {
	publicKey, err := secp256k1.DerivePublicKey(privateKey)
	if nil != err {
		return nil, err
	}
	a, err := secp256k1.DeriveAddress(publicKey)
	if nil != err {
		return nil, err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); nil != err {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); nil != err {
		return nil, err
	}

	kdfParams := map[string]interface{}{
		"dklen": derivedKeyLength,
		"salt":  hex.EncodeToString(salt),
	}
	switch params.KDF {
	case KDFScrypt:
		kdfParams["n"] = params.N
		kdfParams["r"] = params.R
		kdfParams["p"] = params.P
	case KDFPBKDF2:
		kdfParams["c"] = params.C
		kdfParams["prf"] = PRFSHA256
	default:
		return nil, fault.ErrUnsupportedKDF
	}

	derivedKey, err := deriveKey(password, params.KDF, kdfParams)
	if nil != err {
		return nil, err
	}
	cipherText, err := aesCTR(derivedKey[:16], iv, privateKey)
	if nil != err {
		return nil, err
	}
	mac := digest.Keccak256(derivedKey[16:32], cipherText)

	return &Keystore{
		Version: Version,
		ID:      uuid.NewRandom().String(),
		Address: a.Hex(""),
		Crypto: Crypto{
			Cipher:     CipherAES,
			CipherText: hex.EncodeToString(cipherText),
			CipherParams: CipherParams{
				IV: hex.EncodeToString(iv),
			},
			KDF:       params.KDF,
			KDFParams: kdfParams,
			MAC:       hex.EncodeToString(mac[:]),
		},
	}, nil
}

// Decrypt - recover the private key
func Decrypt(ks *Keystore, password string) ([]byte, error) {
	if !WellFormed(ks) {
		return nil, fault.ErrInvalidKeystore
	}
	if CipherAES != ks.Crypto.Cipher {
		return nil, fault.ErrUnsupportedCipher
	}

	mac, err := hex.DecodeString(ks.Crypto.MAC)
	if nil != err {
		return nil, fault.ErrInvalidKeystore
	}
	iv, err := hex.DecodeString(ks.Crypto.CipherParams.IV)
	if nil != err || aes.BlockSize != len(iv) {
		return nil, fault.ErrInvalidKeystore
	}
	cipherText, err := hex.DecodeString(ks.Crypto.CipherText)
	if nil != err {
		return nil, fault.ErrInvalidKeystore
	}

	derivedKey, err := deriveKey(password, ks.Crypto.KDF, ks.Crypto.KDFParams)
	if nil != err {
		return nil, err
	}

	expected := digest.Keccak256(derivedKey[16:32], cipherText)
	if 1 != subtle.ConstantTimeCompare(expected[:], mac) {
		return nil, fault.ErrWrongPassword
	}

	return aesCTR(derivedKey[:16], iv, cipherText)
}

// WellFormed - version, id and address are present and correct
func WellFormed(ks *Keystore) bool {
	if nil == ks || Version != ks.Version {
		return false
	}
	if nil == uuid.Parse(ks.ID) {
		return false
	}
	if strings.ToLower(ks.Address) != ks.Address {
		return false
	}
	_, err := address.FromHex(ks.Address, "")
	return nil == err
}

func deriveKey(password string, kdf string, params map[string]interface{}) ([]byte, error) {
	salt, err := hexParam(params, "salt")
	if nil != err {
		return nil, err
	}
	dkLen, err := intParam(params, "dklen")
	if nil != err {
		return nil, err
	}
	if derivedKeyLength != dkLen {
		return nil, fault.ErrInvalidKeystore
	}

	switch kdf {
	case KDFScrypt:
		n, err := intParam(params, "n")
		if nil != err {
			return nil, err
		}
		r, err := intParam(params, "r")
		if nil != err {
			return nil, err
		}
		p, err := intParam(params, "p")
		if nil != err {
			return nil, err
		}
		key, err := scrypt.Key([]byte(password), salt, n, r, p, dkLen)
		if nil != err {
			return nil, errors.Wrap(err, "scrypt")
		}
		return key, nil

	case KDFPBKDF2:
		if prf, ok := params["prf"].(string); !ok || PRFSHA256 != prf {
			return nil, fault.ErrUnsupportedKDF
		}
		c, err := intParam(params, "c")
		if nil != err {
			return nil, err
		}
		return pbkdf2.Key([]byte(password), salt, c, dkLen, sha256.New), nil

	default:
		return nil, fault.ErrUnsupportedKDF
	}
}

// JSON numbers arrive as float64, locally built parameters as int
func intParam(params map[string]interface{}, name string) (int, error) {
	switch v := params[name].(type) {
	case int:
		return v, nil
	case float64:
		if v < 1 || v != float64(int(v)) {
			return 0, fault.ErrInvalidKeystore
		}
		return int(v), nil
	default:
		return 0, fault.ErrInvalidKeystore
	}
}

func hexParam(params map[string]interface{}, name string) ([]byte, error) {
	s, ok := params[name].(string)
	if !ok {
		return nil, fault.ErrInvalidKeystore
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidKeystore
	}
	return b, nil
}

func aesCTR(key []byte, iv []byte, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}
	result := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(result, data)
	return result, nil
}
