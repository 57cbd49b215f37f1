// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package evm - types shared with the EVM execution environment
//
// the 20 byte contract address and the contract metadata query
// interface; the actual mechanism that reads symbol/decimals from a
// deployed contract lives outside this module and is supplied as a
// Querier implementation
package evm
