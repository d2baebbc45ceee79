// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressExpected       = RecordError("address expected")
	ErrAddressLength         = LengthError("address should be 20 bytes")
	ErrBlockRefLength        = InvalidError("blockRef: must be 8 bytes")
	ErrBlockRefTooLong       = RecordError("blockRef: too long")
	ErrBytes32Expected       = RecordError("bytes32 expected")
	ErrBytes32Length         = LengthError("bytes32 should be 32 bytes")
	ErrChainTagRange         = InvalidError("chainTag: must be uint8")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrDatabaseIsNotOpen     = ProcessError("database is not open")
	ErrDerivationFailed      = ProcessError("key derivation failed")
	ErrEmptyInput            = RecordError("empty input")
	ErrExpirationRange       = InvalidError("expiration: must be uint32")
	ErrGasPriceCoefRange     = InvalidError("gasPriceCoef: must be uint8")
	ErrGasRange              = InvalidError("gas: must be uint64")
	ErrIncompatibleDatabase  = ProcessError("incompatible database version")
	ErrInvalidID             = InvalidError("transaction id is invalid")
	ErrInvalidKeystore       = InvalidError("keystore is not well formed")
	ErrInvalidMnemonic       = InvalidError("mnemonic is invalid")
	ErrInvalidPasswordLength = InvalidError("password length is too short")
	ErrInvalidPrivateKey     = InvalidError("private key is invalid")
	ErrInvalidPublicKey      = InvalidError("public key is invalid")
	ErrInvalidRecoveryID     = ProcessError("invalid signature recovery")
	ErrInvalidSignature      = ProcessError("invalid signature")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrListCount             = RecordError("list element count incorrect")
	ErrListExpected          = RecordError("list expected")
	ErrMissingSignature      = ProcessError("signature missing")
	ErrNegativeNumber        = InvalidError("negative number")
	ErrNonCanonicalInteger   = RecordError("non-canonical integer (leading zero bytes) for integer")
	ErrNonCanonicalSize      = RecordError("non-canonical size information")
	ErrNonceRange            = InvalidError("nonce: must be uint64")
	ErrNotAnInteger          = InvalidError("not an integer")
	ErrNotHex                = InvalidError("not in hex format")
	ErrOddHex                = LengthError("odd hex")
	ErrPasswordMismatch      = InvalidError("password mismatch")
	ErrPrefixMismatch        = InvalidError("prefix mismatch")
	ErrRecoveryFailed        = ProcessError("public key recovery failed")
	ErrReservedNotEmpty      = InvalidError("reserved: must be empty")
	ErrSignatureAlreadySet   = ExistsError("signature already set")
	ErrSingleByteString      = RecordError("single byte below 0x80 must not be length prefixed")
	ErrStringExpected        = RecordError("byte string expected")
	ErrTrailingBytes         = RecordError("input contains more than one value")
	ErrTransactionNotFound   = NotFoundError("transaction not found")
	ErrTruncated             = RecordError("value size exceeds available input length")
	ErrUnsafeNumber          = RecordError("unable to safely decode to number")
	ErrUnsupportedCipher     = InvalidError("keystore cipher is not supported")
	ErrUnsupportedKDF        = InvalidError("keystore kdf is not supported")
	ErrWrongPassword         = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
// wrapped errors are classified by their cause
func IsErrExists(e error) bool   { _, ok := errors.Cause(e).(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := errors.Cause(e).(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := errors.Cause(e).(RecordError); return ok }
