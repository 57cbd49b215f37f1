// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currencyid - structured currency identity and its wire codec
//
// a currency is one of:
//
//	Token    - native token from the fixed catalog
//	Erc20    - externally deployed token contract
//	DexShare - derived trading pair, each leg a Token or Erc20
//
// the 32 byte slot form is used wherever the execution environment
// expects an address shaped value:
//
//	bytes  0-10  reserved, zero
//	byte   11    0 = single currency, 1 = pair
//	bytes 12-31  payload
//
// single currency payload: a native token id as big endian u32 at
// 12-15 with a zero tail, or a full 20 byte contract address;
// pair payload: two big endian u32 leg ids at 12-15 and 16-19
//
// the single currency form is ambiguous: a real contract address
// ending in 16 zero bytes decodes as a token id instead; this zero
// tail heuristic is inherited from the original format and is kept
// for compatibility
package currencyid
