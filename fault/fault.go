// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	CannotEncodeCurrency    = NotFoundError("cannot encode currency")
	CurrencyIdExisted       = ExistsError("currency id already existed")
	DatabaseIsNotSet        = ProcessError("database is not set")
	InvalidCount            = InvalidError("invalid count")
	InvalidCurrencyString   = InvalidError("invalid currency string")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidErc20Contract    = InvalidError("invalid erc20 contract")
	InvalidEvmAddress       = InvalidError("invalid evm address")
	InvalidSlot             = InvalidError("invalid currency slot")
	InvalidTokenSymbol      = InvalidError("invalid token symbol")
	NotInitialised          = ProcessError("not initialised")
	WrongAddressLength      = LengthError("wrong address length")
	WrongSlotLength         = LengthError("wrong slot length")
	WrongDatabaseVersion    = ProcessError("wrong database version")
	WrongDecimalsRange      = InvalidError("wrong decimals range")
	WrongSymbolLength       = LengthError("wrong symbol length")
	WriteToReadOnlyDatabase = ProcessError("write to read only database")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
