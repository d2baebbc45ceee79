// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/digest"
	"github.com/bitmark-inc/thortx/fault"
)

const pureHex = "9bcc6526a76ae560244f698805cc001977246cb92c2b4f1e2b7a204e445409ea"

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestFromBytes(t *testing.T) {
	expected := decodeHex(pureHex)

	d := digest.FromBytes(expected)
	assert.Equal(t, expected, d[:], "exact")

	longer := digest.FromBytes(decodeHex("ff" + pureHex))
	assert.Equal(t, expected, longer[:], "longer keeps rightmost bytes")

	shorter := digest.FromBytes(decodeHex("204e445409ea"))
	assert.Equal(t, decodeHex("0000000000000000000000000000000000000000000000000000204e445409ea"), shorter[:], "shorter is left padded")

	assert.True(t, digest.FromBytes(nil).IsZero(), "empty is zero")
	assert.False(t, d.IsZero(), "value is not zero")
}

func TestFromHex(t *testing.T) {
	expected := digest.FromBytes(decodeHex(pureHex))

	for i, item := range []struct{ s, prefix string }{
		{"0x" + pureHex, "0x"},
		{pureHex, ""},
		{"foo" + pureHex, "foo"},
	} {
		d, err := digest.FromHex(item.s, item.prefix)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, expected, d, "%d: digest", i)
	}

	for i, item := range []struct {
		s, prefix string
		err       error
	}{
		{"0x" + pureHex, "xx", fault.ErrPrefixMismatch},
		{"0xm" + pureHex[1:], "0x", fault.ErrNotHex},
		{"0x" + pureHex + "ff", "0x", fault.ErrBytes32Length},
		{"0x" + pureHex[2:], "0x", fault.ErrBytes32Length},
	} {
		_, err := digest.FromHex(item.s, item.prefix)
		assert.Equal(t, item.err, err, "%d: %q", i, item.s)
	}
}

func TestFormatting(t *testing.T) {
	d, _ := digest.FromHex(pureHex, "")

	assert.Equal(t, "0x"+pureHex, d.String())
	assert.Equal(t, "foo"+pureHex, d.Hex("foo"))
	assert.Equal(t, "<bytes32:"+pureHex+">", fmt.Sprintf("%#v", d))

	var scanned digest.Bytes32
	n, err := fmt.Sscan("0x"+pureHex, &scanned)
	assert.Nil(t, err, "scan")
	assert.Equal(t, 1, n, "scan count")
	assert.Equal(t, d, scanned, "scanned value")

	b, err := json.Marshal(d)
	assert.Nil(t, err)
	var decoded digest.Bytes32
	assert.Nil(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, d, decoded)
}

func TestBlake2b256(t *testing.T) {
	tests := []struct {
		data     [][]byte
		expected string
	}{
		{[][]byte{{}}, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{[][]byte{[]byte("hello world")}, "256c83b297114d201b30179f3f0ef0cace9783622da5974326b436178aeef610"},
		{[][]byte{[]byte("hello"), []byte(" world")}, "256c83b297114d201b30179f3f0ef0cace9783622da5974326b436178aeef610"},
	}
	for i, item := range tests {
		assert.Equal(t, "0x"+item.expected, digest.Blake2b256(item.data...).String(), "%d", i)
	}
}

func TestKeccak256(t *testing.T) {
	tests := []struct {
		data     [][]byte
		expected string
	}{
		{[][]byte{{}}, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{[][]byte{[]byte("hello world")}, "47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad"},
		{[][]byte{[]byte("hello"), []byte(" world")}, "47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad"},
	}
	for i, item := range tests {
		assert.Equal(t, "0x"+item.expected, digest.Keccak256(item.data...).String(), "%d", i)
	}
}
