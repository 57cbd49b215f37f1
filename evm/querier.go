// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evm

import (
	"github.com/evmlink/currencyd/fault"
)

// Metadata - the declared identity of a deployed token contract
type Metadata struct {
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Querier - read the metadata of a deployed token contract
//
// fails if the address does not host a conforming contract
type Querier interface {
	Erc20Metadata(address Address) (Metadata, error)
}

// TableQuerier - a Querier backed by a fixed table of known contracts
//
// used where no live execution environment is attached, e.g. the
// currencyd command reading its contract table from the configuration
type TableQuerier struct {
	contracts map[Address]Metadata
}

// NewTableQuerier - create a querier from a contract table
func NewTableQuerier(contracts map[Address]Metadata) TableQuerier {
	return TableQuerier{contracts: contracts}
}

// Erc20Metadata - look up a contract in the table
func (querier TableQuerier) Erc20Metadata(address Address) (Metadata, error) {
	m, ok := querier.contracts[address]
	if !ok {
		return Metadata{}, fault.InvalidErc20Contract
	}
	return m, nil
}
