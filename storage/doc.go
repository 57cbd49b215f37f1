// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a LevelDB database with prefixed keys so that a single
// database can contain multiple pools of key/value pairs
//
// pools:
//
//	Contracts  'C' → registered contract records, keyed by address
//	Ids        'I' → reverse index, big endian u32 id → address
//	Symbols    'S' → uniqueness index, contract symbol → address
//	TestData   'Z' → scratch area for tests
package storage
