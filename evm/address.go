// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evm

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/evmlink/currencyd/fault"
)

// AddressLength - number of bytes in an EVM contract address
const AddressLength = 20

// Address - a contract address
// represented as 0x prefixed lower case hex for print and JSON
type Address [AddressLength]byte

// AddressFromBytes - convert and validate a binary byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	address := Address{}
	if AddressLength != len(buffer) {
		return address, fault.WrongAddressLength
	}
	copy(address[:], buffer)
	return address, nil
}

// AddressFromHexString - convert and validate a hex string to an
// address, an optional "0x" prefix is accepted
func AddressFromHexString(s string) (Address, error) {
	address := Address{}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if hex.EncodedLen(AddressLength) != len(s) {
		return address, fault.WrongAddressLength
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return address, fault.InvalidEvmAddress
	}
	copy(address[:], buffer)
	return address, nil
}

// Bytes - return the address as a byte slice
func (address Address) Bytes() []byte {
	return address[:]
}

// String - convert an address to its 0x prefixed hex form
func (address Address) String() string {
	return "0x" + hex.EncodeToString(address[:])
}

// GoString - show both type and value, for debugging
func (address Address) GoString() string {
	return fmt.Sprintf("<Address:%s>", address.String())
}

// MarshalText - convert an address into JSON
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert an address hex string from JSON
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromHexString(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
