// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currencyid

import (
	"github.com/evmlink/currencyd/erc20"
	"github.com/evmlink/currencyd/evm"
)

// Decimals - the decimal precision of a currency
//
// native tokens carry a fixed precision, contracts the precision
// cached at registration; a pair has no decimals and an unregistered
// contract has none yet
func Decimals(c CurrencyId) (uint8, bool) {
	switch c := c.(type) {
	case Token:
		return c.Symbol.Decimals(), true
	case Erc20:
		return erc20.DecimalsOf(c.Address)
	default:
		return 0, false
	}
}

// EvmAddress - the EVM visible address of a currency
//
// the registered address for a registered contract; nothing for an
// unregistered contract, a pair, or a native token (no derivation
// convention is defined for tokens)
func EvmAddress(c CurrencyId) (evm.Address, bool) {
	switch c := c.(type) {
	case Erc20:
		if _, ok := erc20.IdOf(c.Address); ok {
			return c.Address, true
		}
	}
	return evm.Address{}, false
}
