// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currencyid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evmlink/currencyd/currencyid"
	"github.com/evmlink/currencyd/erc20"
	"github.com/evmlink/currencyd/token"
)

func TestPackToken(t *testing.T) {
	setup(t)
	defer teardown(t)

	// ACA has id zero so its slot is all zero
	slot, ok := currencyid.Pack(currencyid.Token{Symbol: token.ACA})
	assert.True(t, ok, "pack error")
	assert.Equal(t, currencyid.Slot{}, slot, "wrong ACA slot")

	slot, ok = currencyid.Pack(currencyid.Token{Symbol: token.AUSD})
	assert.True(t, ok, "pack error")
	expected := currencyid.Slot{}
	expected[15] = 0x01
	assert.Equal(t, expected, slot, "wrong AUSD slot")
}

func TestPackErc20(t *testing.T) {
	setup(t)
	defer teardown(t)

	// the full address is embedded, no registration needed
	slot, ok := currencyid.Pack(currencyid.Erc20{Address: unregisteredContract})
	assert.True(t, ok, "pack error")

	expected := currencyid.Slot{}
	copy(expected[12:], unregisteredContract.Bytes())
	assert.Equal(t, expected, slot, "wrong contract slot")
}

func TestPackDexShareTokens(t *testing.T) {
	setup(t)
	defer teardown(t)

	slot, ok := currencyid.Pack(currencyid.DexShare{
		Left:  currencyid.Token{Symbol: token.ACA},
		Right: currencyid.Token{Symbol: token.AUSD},
	})
	assert.True(t, ok, "pack error")

	expected := currencyid.Slot{}
	expected[11] = 0x01
	expected[19] = 0x01 // AUSD id in bytes 16..19
	assert.Equal(t, expected, slot, "wrong pair slot")
}

func TestPackDexShareContracts(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.NoError(t, erc20.Register(registeredContract), "register error")

	slot, ok := currencyid.Pack(currencyid.DexShare{
		Left:  currencyid.Erc20{Address: registeredContract},
		Right: currencyid.Erc20{Address: registeredContract},
	})
	assert.True(t, ok, "pack error")

	expected := currencyid.Slot{}
	expected[11] = 0x01
	expected[12] = 0x20 // both legs carry id 0x20000000
	expected[16] = 0x20
	assert.Equal(t, expected, slot, "wrong pair slot")
}

// a pair cannot reference an unregistered contract
func TestPackDexShareRequiresRegistration(t *testing.T) {
	setup(t)
	defer teardown(t)

	pair := currencyid.DexShare{
		Left:  currencyid.Erc20{Address: registeredContract},
		Right: currencyid.Token{Symbol: token.ACA},
	}

	_, ok := currencyid.Pack(pair)
	assert.False(t, ok, "unregistered contract packed into a pair")

	assert.NoError(t, erc20.Register(registeredContract), "register error")

	_, ok = currencyid.Pack(pair)
	assert.True(t, ok, "pack failed after registration")
}

func TestUnpackSingle(t *testing.T) {
	setup(t)
	defer teardown(t)

	// all zero decodes as the zero id token
	c, ok := currencyid.Unpack(currencyid.Slot{})
	assert.True(t, ok, "unpack error")
	assert.Equal(t, currencyid.Token{Symbol: token.ACA}, c, "wrong currency")

	// a zero tail with an unknown token id is malformed
	slot := currencyid.Slot{}
	slot[15] = 0x99
	_, ok = currencyid.Unpack(slot)
	assert.False(t, ok, "unknown token id unpacked")

	// a zero tail id at or above the reserved offset reads as a
	// literal address
	slot = currencyid.Slot{}
	slot[12] = 0x20
	c, ok = currencyid.Unpack(slot)
	assert.True(t, ok, "unpack error")
	expected, err := currencyid.FromString("0x2000000000000000000000000000000000000000")
	assert.NoError(t, err, "fixture error")
	assert.Equal(t, expected, c, "wrong currency")
}

func TestUnpackBadDiscriminant(t *testing.T) {
	setup(t)
	defer teardown(t)

	slot := currencyid.Slot{}
	for i := 0; i < len(slot); i += 1 {
		slot[i] = 0xff
	}
	_, ok := currencyid.Unpack(slot)
	assert.False(t, ok, "bad discriminant unpacked")

	// any discriminant outside {0,1} fails regardless of payload
	slot = currencyid.Slot{}
	slot[11] = 0x02
	_, ok = currencyid.Unpack(slot)
	assert.False(t, ok, "bad discriminant unpacked")
}

func TestUnpackPair(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.NoError(t, erc20.Register(registeredContract), "register error")

	id, ok := erc20.IdOf(registeredContract)
	assert.True(t, ok, "missing id")

	slot := currencyid.Slot{}
	slot[11] = 0x01
	slot[12] = byte(id >> 24)
	slot[13] = byte(id >> 16)
	slot[14] = byte(id >> 8)
	slot[15] = byte(id)
	// right leg: ACA, id zero

	c, ok := currencyid.Unpack(slot)
	assert.True(t, ok, "unpack error")

	// the contract leg comes back as the placeholder, not the real
	// deployed address
	expected := currencyid.DexShare{
		Left:  currencyid.Erc20{Address: currencyid.PlaceholderAddress(id)},
		Right: currencyid.Token{Symbol: token.ACA},
	}
	assert.Equal(t, expected, c, "wrong pair")

	placeholder := currencyid.PlaceholderAddress(id)
	assert.Equal(t, "0x2000000000000000000000000000000000000000", placeholder.String(),
		"wrong placeholder address")

	// an unknown token id in a leg is malformed
	slot = currencyid.Slot{}
	slot[11] = 0x01
	slot[15] = 0x99
	_, ok = currencyid.Unpack(slot)
	assert.False(t, ok, "unknown leg id unpacked")
}

func TestRoundTrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	assert.NoError(t, erc20.Register(registeredContract), "register error")

	currencies := []currencyid.CurrencyId{
		currencyid.Token{Symbol: token.ACA},
		currencyid.Token{Symbol: token.AUSD},
		currencyid.Token{Symbol: token.DOT},
		currencyid.Token{Symbol: token.LDOT},
		currencyid.Token{Symbol: token.RENBTC},
		currencyid.Erc20{Address: registeredContract},
		currencyid.Erc20{Address: unregisteredContract},
		currencyid.DexShare{
			Left:  currencyid.Token{Symbol: token.DOT},
			Right: currencyid.Token{Symbol: token.RENBTC},
		},
	}

	for i, c := range currencies {
		slot, ok := currencyid.Pack(c)
		assert.True(t, ok, "%d: pack error", i)

		decoded, ok := currencyid.Unpack(slot)
		assert.True(t, ok, "%d: unpack error", i)
		assert.Equal(t, c, decoded, "%d: round trip mismatch", i)
	}
}

func TestSlotFromHexString(t *testing.T) {
	slot, err := currencyid.SlotFromHexString("0x0000000000000000000000010000000000000000000000000000000000000001")
	assert.NoError(t, err, "hex to slot error")
	assert.Equal(t, byte(0x01), slot[11], "wrong discriminant byte")
	assert.Equal(t, byte(0x01), slot[31], "wrong last byte")

	_, err = currencyid.SlotFromHexString("0x00")
	assert.Error(t, err, "short slot accepted")

	_, err = currencyid.SlotFromHexString("zz00000000000000000000000000000000000000000000000000000000000000")
	assert.Error(t, err, "bad hex accepted")
}
