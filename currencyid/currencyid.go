// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currencyid

import (
	"fmt"
	"strings"

	"github.com/evmlink/currencyd/evm"
	"github.com/evmlink/currencyd/fault"
	"github.com/evmlink/currencyd/token"
)

// CurrencyId - closed union of the currency variants
//
// only Token, Erc20 and DexShare implement this
type CurrencyId interface {
	fmt.Stringer
	isCurrencyId()
}

// Share - restricted union for a pair leg
//
// only Token and Erc20 implement this, a pair cannot nest
type Share interface {
	CurrencyId
	isShare()
}

// Token - a native token from the fixed catalog
type Token struct {
	Symbol token.Symbol
}

// Erc20 - an externally deployed token contract
type Erc20 struct {
	Address evm.Address
}

// DexShare - a derived trading pair
type DexShare struct {
	Left  Share
	Right Share
}

func (Token) isCurrencyId()    {}
func (Erc20) isCurrencyId()    {}
func (DexShare) isCurrencyId() {}

func (Token) isShare() {}
func (Erc20) isShare() {}

// String - the display form of a currency
func (c Token) String() string {
	return c.Symbol.String()
}

func (c Erc20) String() string {
	return c.Address.String()
}

func (c DexShare) String() string {
	return c.Left.String() + "/" + c.Right.String()
}

// FromString - parse the display form of a currency
//
// a native token symbol, a 0x prefixed contract address, or two of
// those joined by "/" for a pair
func FromString(s string) (CurrencyId, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		left, err := shareFromString(s[:i])
		if nil != err {
			return nil, err
		}
		right, err := shareFromString(s[i+1:])
		if nil != err {
			return nil, err
		}
		return DexShare{Left: left, Right: right}, nil
	}

	share, err := shareFromString(s)
	if nil != err {
		return nil, err
	}
	return share, nil
}

func shareFromString(s string) (Share, error) {
	var symbol token.Symbol
	if nil == symbol.UnmarshalText([]byte(s)) {
		return Token{Symbol: symbol}, nil
	}

	address, err := evm.AddressFromHexString(s)
	if nil == err {
		return Erc20{Address: address}, nil
	}

	return nil, fault.InvalidCurrencyString
}
