// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package erc20 - registry of externally deployed token contracts
//
// append-only mapping of a 20 byte contract address to an assigned
// numeric id and cached decimal precision
//
// ids are assigned as ReservedOffset + registration sequence number,
// strictly increasing, and are never reused or reassigned even across
// repeated registrations; once an id has been embedded in a pair
// encoding it must resolve to the same contract forever, so entries
// are never deleted
//
// registration of a contract whose declared symbol already belongs to
// a different registered contract is rejected; the symbol, not the
// address, is what downstream consumers key on when displaying or
// comparing currencies
package erc20
