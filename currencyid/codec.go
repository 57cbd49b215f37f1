// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currencyid

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/evmlink/currencyd/erc20"
	"github.com/evmlink/currencyd/evm"
	"github.com/evmlink/currencyd/fault"
	"github.com/evmlink/currencyd/token"
)

// SlotLength - number of bytes in the slot form
const SlotLength = 32

// slot byte layout
const (
	discriminantIndex = 11
	payloadIndex      = 12
	rightLegIndex     = 16

	singleDiscriminant = 0
	pairDiscriminant   = 1
)

// first byte of a synthetic placeholder address, matches the high
// byte of token.ReservedOffset
const placeholderMarker = 0x20

// Slot - the 32 byte wire form of a currency
type Slot [SlotLength]byte

// SlotFromBytes - convert and validate a binary byte slice to a slot
func SlotFromBytes(buffer []byte) (Slot, error) {
	slot := Slot{}
	if SlotLength != len(buffer) {
		return slot, fault.WrongSlotLength
	}
	copy(slot[:], buffer)
	return slot, nil
}

// SlotFromHexString - convert and validate a hex string to a slot, an
// optional "0x" prefix is accepted
func SlotFromHexString(s string) (Slot, error) {
	slot := Slot{}
	if len(s) >= 2 && "0x" == s[0:2] {
		s = s[2:]
	}
	if hex.EncodedLen(SlotLength) != len(s) {
		return slot, fault.WrongSlotLength
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return slot, fault.InvalidSlot
	}
	copy(slot[:], buffer)
	return slot, nil
}

// Bytes - return the slot as a byte slice
func (slot Slot) Bytes() []byte {
	return slot[:]
}

// String - convert a slot to its 0x prefixed hex form
func (slot Slot) String() string {
	return "0x" + hex.EncodeToString(slot[:])
}

// Pack - encode a currency into its slot form
//
// a pair leg naming an unregistered contract cannot be encoded, since
// only its 4 byte registry id fits in the leg, so the second value is
// false; a single Erc20 always encodes as its full address and needs
// no registry entry
func Pack(c CurrencyId) (Slot, bool) {
	slot := Slot{}

	switch c := c.(type) {

	case Token:
		binary.BigEndian.PutUint32(slot[payloadIndex:payloadIndex+4], c.Symbol.Uint32())

	case Erc20:
		copy(slot[payloadIndex:], c.Address.Bytes())

	case DexShare:
		left, ok := shareId(c.Left)
		if !ok {
			return Slot{}, false
		}
		right, ok := shareId(c.Right)
		if !ok {
			return Slot{}, false
		}
		slot[discriminantIndex] = pairDiscriminant
		binary.BigEndian.PutUint32(slot[payloadIndex:rightLegIndex], left)
		binary.BigEndian.PutUint32(slot[rightLegIndex:rightLegIndex+4], right)

	default:
		return Slot{}, false
	}

	return slot, true
}

// the 4 byte id of a pair leg
func shareId(share Share) (uint32, bool) {
	switch share := share.(type) {
	case Token:
		return share.Symbol.Uint32(), true
	case Erc20:
		return erc20.IdOf(share.Address)
	default:
		return 0, false
	}
}

// Unpack - decode a slot back to a currency
//
// returns false for any malformed slot: a discriminant outside {0,1}
// or an id that resolves to no known token
//
// a pair leg carrying a contract id is reconstructed as a synthetic
// placeholder address, not the contract's real deployed address; a
// single currency payload has room for the full 20 byte address so no
// placeholder is needed there
func Unpack(slot Slot) (CurrencyId, bool) {

	switch slot[discriminantIndex] {

	case singleDiscriminant:
		// a zero tail signals a compressed token id, not a literal
		// address; a real address ending in 16 zero bytes is
		// misread here, an accepted limit of the wire format
		if zeroTail(slot) {
			id := binary.BigEndian.Uint32(slot[payloadIndex : payloadIndex+4])
			if id < token.ReservedOffset {
				symbol, ok := token.FromUint32(id)
				if !ok {
					return nil, false
				}
				return Token{Symbol: symbol}, true
			}
		}
		address, err := evm.AddressFromBytes(slot[payloadIndex:])
		if nil != err {
			return nil, false
		}
		return Erc20{Address: address}, true

	case pairDiscriminant:
		left, ok := shareFromId(binary.BigEndian.Uint32(slot[payloadIndex:rightLegIndex]))
		if !ok {
			return nil, false
		}
		right, ok := shareFromId(binary.BigEndian.Uint32(slot[rightLegIndex : rightLegIndex+4]))
		if !ok {
			return nil, false
		}
		return DexShare{Left: left, Right: right}, true

	default:
		return nil, false
	}
}

// rebuild a pair leg from its 4 byte id
func shareFromId(id uint32) (Share, bool) {
	if id < token.ReservedOffset {
		symbol, ok := token.FromUint32(id)
		if !ok {
			return nil, false
		}
		return Token{Symbol: symbol}, true
	}
	return Erc20{Address: PlaceholderAddress(id)}, true
}

// check bytes 16..31 are all zero
func zeroTail(slot Slot) bool {
	for _, b := range slot[rightLegIndex:] {
		if 0 != b {
			return false
		}
	}
	return true
}

// PlaceholderAddress - deterministic 20 byte stand-in for a contract
// known only by its registry id
//
// marker byte, 15 zero bytes, then the low 4 bytes of the id above
// the reserved offset; stable for a given id but not guaranteed to
// equal the contract's real deployed address
func PlaceholderAddress(id uint32) evm.Address {
	address := evm.Address{}
	address[0] = placeholderMarker
	binary.BigEndian.PutUint32(address[evm.AddressLength-4:], id-token.ReservedOffset)
	return address
}
