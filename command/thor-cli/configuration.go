// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/thortx/bigint"
	"github.com/bitmark-inc/thortx/configuration"
	"github.com/bitmark-inc/thortx/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultChainTag     = 0x4a
	defaultExpiration   = 720
	defaultGasPriceCoef = 0
	defaultBaseGasPrice = "1000000000000000"

	defaultDatabase = "journal.leveldb"
	defaultKeystore = ""

	defaultLogDirectory = "log"
	defaultLogFile      = "thor-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// Configuration - values read from the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	ChainTag      uint8                `gluamapper:"chain_tag" json:"chain_tag"`
	Expiration    uint32               `gluamapper:"expiration" json:"expiration"`
	GasPriceCoef  uint8                `gluamapper:"gas_price_coef" json:"gas_price_coef"`
	BaseGasPrice  string               `gluamapper:"base_gas_price" json:"base_gas_price"`
	Database      string               `gluamapper:"database" json:"database"`
	Keystore      string               `gluamapper:"keystore" json:"keystore"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// values used when no configuration file is given
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		ChainTag:      defaultChainTag,
		Expiration:    defaultExpiration,
		GasPriceCoef:  defaultGasPriceCoef,
		BaseGasPrice:  defaultBaseGasPrice,
		Database:      defaultDatabase,
		Keystore:      defaultKeystore,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if _, err := options.basePrice(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Keystore,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// base gas price as a number
func (c *Configuration) basePrice() (bigint.Uint, error) {
	price, err := bigint.Parse(c.BaseGasPrice)
	if nil != err {
		return bigint.Uint{}, fmt.Errorf("base_gas_price: %q  error: %s", c.BaseGasPrice, err)
	}
	return price, nil
}
