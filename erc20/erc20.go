// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package erc20

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/evmlink/currencyd/evm"
	"github.com/evmlink/currencyd/fault"
	"github.com/evmlink/currencyd/storage"
	"github.com/evmlink/currencyd/token"
)

// record layout in the contracts pool
//
//	bytes 0..3   assigned id, big endian
//	byte  4      decimals
//	bytes 5..    declared symbol
const (
	recordIdSize       = 4
	recordMinimumSize  = recordIdSize + 1
	recordSymbolOffset = recordMinimumSize
)

// globals
type globalDataType struct {
	sync.RWMutex
	log     *logger.L
	querier evm.Querier

	// id for the next registration, recovered from storage
	nextId uint32

	// set once during initialise
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - prepare the registry
//
// storage must already be initialised; the id sequence continues from
// the highest id committed to the ids pool
func Initialise(querier evm.Querier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("erc20")
	globalData.log.Info("starting…")

	globalData.querier = querier

	globalData.nextId = token.ReservedOffset
	if e, found := storage.Pool.Ids.LastElement(); found {
		if recordIdSize != len(e.Key) {
			logger.Panicf("erc20: corrupt id key: %x", e.Key)
		}
		globalData.nextId = binary.BigEndian.Uint32(e.Key) + 1
	}
	globalData.log.Infof("next id: %d", globalData.nextId)

	globalData.initialised = true

	return nil
}

// Finalise - shut down the registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.querier = nil
	globalData.initialised = false

	return nil
}

// Register - assign a permanent id to a contract address
//
// idempotent: registering an already registered address succeeds
// without any state change
//
// the contract metadata is queried once and cached; a contract whose
// declared symbol already belongs to a different registered address is
// rejected with fault.CurrencyIdExisted; a failed metadata query is
// reported as fault.InvalidErc20Contract; nothing is committed on any
// failure
func Register(address evm.Address) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	// repeat registration of the same address is a no-op
	if storage.Pool.Contracts.Has(address.Bytes()) {
		return nil
	}

	metadata, err := globalData.querier.Erc20Metadata(address)
	if nil != err {
		globalData.log.Warnf("metadata query failed: %s  error: %s", address, err)
		return fault.InvalidErc20Contract
	}

	symbol := []byte(metadata.Symbol)
	if 0 == len(symbol) {
		return fault.InvalidErc20Contract
	}

	// the symbol must not belong to a different address
	if storage.Pool.Symbols.Has(symbol) {
		return fault.CurrencyIdExisted
	}

	id := globalData.nextId

	record := make([]byte, recordMinimumSize, recordMinimumSize+len(symbol))
	binary.BigEndian.PutUint32(record[:recordIdSize], id)
	record[recordIdSize] = metadata.Decimals
	record = append(record, symbol...)

	idKey := make([]byte, recordIdSize)
	binary.BigEndian.PutUint32(idKey, id)

	// all three records commit or none does
	trx := storage.NewTransaction()
	trx.Put(storage.Pool.Contracts, address.Bytes(), record)
	trx.Put(storage.Pool.Ids, idKey, address.Bytes())
	trx.Put(storage.Pool.Symbols, symbol, address.Bytes())
	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.nextId = id + 1

	globalData.log.Infof("registered: %s  id: %d  symbol: %q  decimals: %d",
		address, id, metadata.Symbol, metadata.Decimals)

	return nil
}

// IdOf - the assigned id of a registered address
func IdOf(address evm.Address) (uint32, bool) {
	record := storage.Pool.Contracts.Get(address.Bytes())
	if nil == record {
		return 0, false
	}
	if len(record) < recordMinimumSize {
		logger.Panicf("erc20: corrupt record for: %s", address)
	}
	return binary.BigEndian.Uint32(record[:recordIdSize]), true
}

// AddressOf - reverse lookup of an assigned id
//
// only defined for ids at or above the reserved offset
func AddressOf(id uint32) (evm.Address, bool) {
	if id < token.ReservedOffset {
		return evm.Address{}, false
	}
	idKey := make([]byte, recordIdSize)
	binary.BigEndian.PutUint32(idKey, id)

	value := storage.Pool.Ids.Get(idKey)
	if nil == value {
		return evm.Address{}, false
	}
	address, err := evm.AddressFromBytes(value)
	if nil != err {
		logger.Panicf("erc20: corrupt address record for id: %d", id)
	}
	return address, true
}

// DecimalsOf - the cached decimal precision of a registered address
func DecimalsOf(address evm.Address) (uint8, bool) {
	record := storage.Pool.Contracts.Get(address.Bytes())
	if nil == record {
		return 0, false
	}
	if len(record) < recordMinimumSize {
		logger.Panicf("erc20: corrupt record for: %s", address)
	}
	return record[recordIdSize], true
}

// Entry - one registered contract, as handed to Scan
type Entry struct {
	Address  evm.Address `json:"address"`
	Id       uint32      `json:"id"`
	Decimals uint8       `json:"decimals"`
	Symbol   string      `json:"symbol"`
}

// Scan - run a function over all registered contracts in address order
func Scan(f func(Entry) error) error {
	return storage.Pool.Contracts.Map(func(key []byte, value []byte) error {
		address, err := evm.AddressFromBytes(key)
		if nil != err {
			logger.Panicf("erc20: corrupt contract key: %x", key)
		}
		if len(value) < recordMinimumSize {
			logger.Panicf("erc20: corrupt record for: %s", address)
		}
		return f(Entry{
			Address:  address,
			Id:       binary.BigEndian.Uint32(value[:recordIdSize]),
			Decimals: value[recordIdSize],
			Symbol:   string(value[recordSymbolOffset:]),
		})
	})
}

// SymbolOf - the cached declared symbol of a registered address
func SymbolOf(address evm.Address) (string, bool) {
	record := storage.Pool.Contracts.Get(address.Bytes())
	if nil == record {
		return "", false
	}
	if len(record) < recordMinimumSize {
		logger.Panicf("erc20: corrupt record for: %s", address)
	}
	return string(record[recordSymbolOffset:]), true
}
