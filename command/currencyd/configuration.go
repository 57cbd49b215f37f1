// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/evmlink/currencyd/configuration"
	"github.com/evmlink/currencyd/evm"
	"github.com/evmlink/currencyd/fault"
	"github.com/evmlink/currencyd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "registry.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "currencyd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - the registry database location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ContractType - one known contract from the configuration
//
// stands in for the metadata that a live execution environment would
// return for the contract
type ContractType struct {
	Address  string `gluamapper:"address" json:"address"`
	Symbol   string `gluamapper:"symbol" json:"symbol"`
	Decimals int    `gluamapper:"decimals" json:"decimals"`
}

// Configuration - the currencyd configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Contracts     []ContractType       `gluamapper:"contracts" json:"contracts"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, nil); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.InvalidError("data directory is not set")
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.InvalidError("data directory path is not a directory")
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// the database name must be a simple file name inside the
	// database directory
	switch filepath.Dir(options.Database.Name) {
	case "", ".":
		options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)
	default:
		return nil, fault.InvalidError("database name is not a plain name")
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
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

// Querier - build the contract metadata table from the configuration
func (configuration *Configuration) Querier() (evm.Querier, error) {
	contracts := make(map[evm.Address]evm.Metadata, len(configuration.Contracts))
	for _, contract := range configuration.Contracts {
		address, err := evm.AddressFromHexString(contract.Address)
		if nil != err {
			return nil, err
		}
		if contract.Decimals < 0 || contract.Decimals > 255 {
			return nil, fault.WrongDecimalsRange
		}
		if "" == contract.Symbol {
			return nil, fault.WrongSymbolLength
		}
		contracts[address] = evm.Metadata{
			Symbol:   contract.Symbol,
			Decimals: uint8(contract.Decimals),
		}
	}
	return evm.NewTableQuerier(contracts), nil
}
