// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/evmlink/currencyd/fault"
)

// Symbol - native token enumeration
type Symbol uint32

// possible token values
const (
	ACA          Symbol = iota // this must be the first value
	AUSD         Symbol = iota
	DOT          Symbol = iota
	LDOT         Symbol = iota
	RENBTC       Symbol = iota
	maximumValue Symbol = iota // this must be the last value
	First        Symbol = ACA
	Last         Symbol = maximumValue - 1
	Count        int    = int(maximumValue) // count of tokens
)

// ReservedOffset - boundary partitioning the 32 bit id space
//
// native token ids are below this value, registered contract ids are
// assigned from this value upwards
const ReservedOffset uint32 = 0x20000000

// internal conversion
func toString(symbol Symbol) ([]byte, error) {
	switch symbol {
	case ACA:
		return []byte("ACA"), nil
	case AUSD:
		return []byte("AUSD"), nil
	case DOT:
		return []byte("DOT"), nil
	case LDOT:
		return []byte("LDOT"), nil
	case RENBTC:
		return []byte("RENBTC"), nil
	default:
		return []byte{}, fault.InvalidTokenSymbol
	}
}

// convert a string to a token symbol
func fromString(in string) (Symbol, error) {
	switch strings.ToLower(in) {
	case "aca":
		return ACA, nil
	case "ausd":
		return AUSD, nil
	case "dot":
		return DOT, nil
	case "ldot":
		return LDOT, nil
	case "renbtc":
		return RENBTC, nil
	default:
		return maximumValue, fault.InvalidTokenSymbol
	}
}

// String - convert a token to its string symbol
func (symbol Symbol) String() string {
	s, err := toString(symbol)
	if nil != err {
		logger.Panicf("invalid token enumeration: %d", symbol)
	}
	return string(s)
}

// GoString - show both enum value and symbol, for debugging
func (symbol Symbol) GoString() string {
	return fmt.Sprintf("<Symbol#%d:%q>", uint32(symbol), symbol.String())
}

// Scan - convert a token symbol string
func (symbol *Symbol) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*symbol = parsed
	return nil
}

// IsValid - token is in the range First to Last
func (symbol Symbol) IsValid() bool {
	return symbol >= First && symbol <= Last
}

// Uint32 - convert the token to its fixed numeric id
func (symbol Symbol) Uint32() uint32 {
	return uint32(symbol)
}

// FromUint32 - convert a numeric id to a token
//
// second value is false for an unknown id
func FromUint32(n uint32) (Symbol, bool) {
	if Symbol(n) < maximumValue {
		return Symbol(n), true
	}
	return maximumValue, false
}

// Decimals - the fixed decimal precision of a token
func (symbol Symbol) Decimals() uint8 {
	switch symbol {
	case ACA, AUSD:
		return 12
	case DOT, LDOT:
		return 10
	case RENBTC:
		return 8
	default:
		logger.Panicf("invalid token enumeration: %d", symbol)
	}
	return 0
}
