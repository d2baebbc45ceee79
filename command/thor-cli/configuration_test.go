// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/fault"
)

func tempDirectory(t *testing.T) string {
	dir, err := ioutil.TempDir("", "thor-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	return dir
}

func TestSampleConfiguration(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	sample, err := ioutil.ReadFile("thor-cli.conf.sample")
	if nil != err {
		t.Fatalf("read sample error: %s", err)
	}
	fileName := filepath.Join(dir, "thor-cli.conf")
	err = ioutil.WriteFile(fileName, sample, 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	os.Unsetenv("THOR_KEYSTORE")

	config, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, filepath.Clean(dir), config.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "journal.leveldb"), config.Database, "database")
	assert.Equal(t, "", config.Keystore, "keystore")
	assert.Equal(t, uint8(0x4a), config.ChainTag, "chain tag")
	assert.Equal(t, uint32(720), config.Expiration, "expiration")

	logDirectory := filepath.Join(dir, "log")
	assert.Equal(t, logDirectory, config.Logging.Directory, "log directory")
	info, err := os.Stat(logDirectory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")

	price, err := config.basePrice()
	assert.Nil(t, err, "base price error")
	assert.Equal(t, "1000000000000000", price.String(), "base price")
}

func TestConfigurationErrors(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	tests := []struct {
		name   string
		source string
	}{
		{"no-directory", `return { data_directory = "" }`},
		{"missing-directory", `return { data_directory = "/nonexistent/thor-cli" }`},
		{"bad-price", `return { data_directory = ".", base_gas_price = "ten" }`},
		{"log-path", `return { data_directory = ".", logging = { file = "a/b.log" } }`},
		{"not-a-table", `return "."`},
	}

	for _, item := range tests {
		fileName := filepath.Join(dir, item.name+".conf")
		err := ioutil.WriteFile(fileName, []byte(item.source), 0600)
		if nil != err {
			t.Fatalf("write error: %s", err)
		}
		_, err = getConfiguration(fileName)
		assert.NotNil(t, err, item.name)
	}
}

func TestReadBodyDefaults(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "body.json")
	body := `{
  "blockRef": "0x00000000aabbccdd",
  "clauses": [
    {"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": 10000, "data": "0x000000606060"}
  ],
  "gas": 21000,
  "nonce": "12345678"
}`
	err := ioutil.WriteFile(fileName, []byte(body), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	config := defaultConfiguration()
	config.GasPriceCoef = 128

	b, err := readBody(fileName, config)
	if nil != err {
		t.Fatalf("read body error: %s", err)
	}

	assert.Equal(t, uint8(0x4a), b.ChainTag, "chain tag")
	assert.Equal(t, uint32(720), b.Expiration, "expiration")
	assert.Equal(t, uint8(128), b.GasPriceCoef, "gas price coef")
	assert.Equal(t, bigint.FromUint64(21000), b.Gas, "gas")
	assert.Equal(t, bigint.FromUint64(12345678), b.Nonce, "nonce")
	assert.Equal(t, 1, len(b.Clauses), "clauses")
	assert.Equal(t, bigint.FromUint64(10000), b.Clauses[0].Value, "value")
	assert.Nil(t, b.DependsOn, "dependsOn")
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		s        string
		expected []byte
	}{
		{"0x0102", []byte{1, 2}},
		{"0102", []byte{1, 2}},
		{"  0xff\n", []byte{0xff}},
	}
	for i, item := range tests {
		b, err := decodeHex(item.s)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.expected, b, "%d: bytes", i)
	}

	_, err := decodeHex("0x012")
	assert.Equal(t, fault.ErrOddHex, err, "odd hex")
}

func TestWriteFile(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := writeFile("", []byte("data"), buffer)
	assert.Nil(t, err, "write to buffer")
	assert.Equal(t, "data", buffer.String(), "buffer contents")
}
