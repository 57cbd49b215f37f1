// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - the native multi-currency token catalog
//
// a fixed compile-time table of token symbols, each with a small
// numeric id and a fixed decimal precision; all native ids are
// strictly below ReservedOffset, ids at or above that value belong
// to registered ERC20 contracts (see the erc20 package)
package token
