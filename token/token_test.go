// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/evmlink/currencyd/token"
)

type tokenTest struct {
	str      string
	symbol   token.Symbol
	id       uint32
	decimals uint8
	j        string
}

var valid = []tokenTest{
	{"aca", token.ACA, 0, 12, `"ACA"`},
	{"ACA", token.ACA, 0, 12, `"ACA"`},
	{"ausd", token.AUSD, 1, 12, `"AUSD"`},
	{"AUSD", token.AUSD, 1, 12, `"AUSD"`},
	{"dot", token.DOT, 2, 10, `"DOT"`},
	{"DOT", token.DOT, 2, 10, `"DOT"`},
	{"ldot", token.LDOT, 3, 10, `"LDOT"`},
	{"LDOT", token.LDOT, 3, 10, `"LDOT"`},
	{"renbtc", token.RENBTC, 4, 8, `"RENBTC"`},
	{"RenBTC", token.RENBTC, 4, 8, `"RENBTC"`},
}

var invalid = []string{
	"389749837598",
	"null",
	"BTC",
	"erc20",
}

func TestValidString(t *testing.T) {
	for index, test := range valid {

		var symbol token.Symbol
		n, err := fmt.Sscan(test.str, &symbol)
		if nil != err {
			t.Fatalf("%d: string to symbol error: %s", index, err)
		}

		if 1 != n {
			t.Fatalf("%d: scanned %d items expected to scan 1", index, n)
		}

		if symbol != test.symbol {
			t.Errorf("%d: %q converted to: %#v  expected: %#v", index, test.str, symbol, test.symbol)
		}
	}
}

func TestInvalidString(t *testing.T) {
	for index, test := range invalid {

		var symbol token.Symbol
		_, err := fmt.Sscan(test, &symbol)
		if nil == err {
			t.Fatalf("%d: %q unexpectedly scanned as: %#v", index, test, symbol)
		}
	}
}

func TestIds(t *testing.T) {
	for index, test := range valid {
		if test.symbol.Uint32() != test.id {
			t.Errorf("%d: %s id: %d  expected: %d", index, test.symbol, test.symbol.Uint32(), test.id)
		}

		symbol, ok := token.FromUint32(test.id)
		if !ok {
			t.Fatalf("%d: id %d not found", index, test.id)
		}
		if symbol != test.symbol {
			t.Errorf("%d: id %d converted to: %#v  expected: %#v", index, test.id, symbol, test.symbol)
		}
	}

	// all native ids stay below the reserved offset
	for symbol := token.First; symbol <= token.Last; symbol += 1 {
		if symbol.Uint32() >= token.ReservedOffset {
			t.Errorf("id %d is not below the reserved offset", symbol.Uint32())
		}
	}

	// unknown ids return nothing
	for _, id := range []uint32{uint32(token.Count), 99, token.ReservedOffset, 0xffffffff} {
		if _, ok := token.FromUint32(id); ok {
			t.Errorf("unknown id: %d unexpectedly found", id)
		}
	}
}

func TestDecimals(t *testing.T) {
	for index, test := range valid {
		if test.symbol.Decimals() != test.decimals {
			t.Errorf("%d: %s decimals: %d  expected: %d", index, test.symbol, test.symbol.Decimals(), test.decimals)
		}
	}
}

func TestMarshalling(t *testing.T) {
	for index, test := range valid {
		buffer, err := json.Marshal(test.symbol)
		if nil != err {
			t.Fatalf("%d: symbol to JSON error: %s", index, err)
		}

		if test.j != string(buffer) {
			t.Errorf("%d: marshalled: %s  expected: %s", index, buffer, test.j)
		}

		var symbol token.Symbol
		err = json.Unmarshal(buffer, &symbol)
		if nil != err {
			t.Fatalf("%d: JSON to symbol error: %s", index, err)
		}
		if symbol != test.symbol {
			t.Errorf("%d: marshalling round trip: %#v  expected: %#v", index, symbol, test.symbol)
		}
	}
}
