// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currencyid_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/evmlink/currencyd/erc20"
	"github.com/evmlink/currencyd/evm"
	"github.com/evmlink/currencyd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
	logDirectory     = "log"
)

// fixture contracts
var (
	registeredContract   = mustAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	unregisteredContract = mustAddress("0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359")
)

func mustAddress(s string) evm.Address {
	address, err := evm.AddressFromHexString(s)
	if nil != err {
		panic(err)
	}
	return address
}

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

// configure for testing
//
// the metadata collaborator is a fixed table holding only the
// registered fixture contract
func setup(t *testing.T) {
	removeFiles()

	os.MkdirAll(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	if err := storage.Initialise(databaseFileName, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	querier := evm.NewTableQuerier(map[evm.Address]evm.Metadata{
		registeredContract: {Symbol: "USDX", Decimals: 17},
	})
	if err := erc20.Initialise(querier); nil != err {
		t.Fatalf("erc20 initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	erc20.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
