// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/evmlink/currencyd/currencyid"
	"github.com/evmlink/currencyd/erc20"
	"github.com/evmlink/currencyd/evm"
	"github.com/evmlink/currencyd/fault"
)

// setup command handler
//
// commands that cannot access the database or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "help", "h", "?":
		fmt.Printf("usage: %s --config-file=FILE command [arguments]\n", program)
		fmt.Printf("supported commands:\n")
		fmt.Printf("  help                       (h)      - display this message\n")
		fmt.Printf("  version                    (v)      - display version\n")
		fmt.Printf("  register ADDRESS           (r)      - register a token contract\n")
		fmt.Printf("  list                       (l)      - list all registered contracts\n")
		fmt.Printf("  encode CURRENCY            (e)      - currency to its 32 byte slot\n")
		fmt.Printf("  decode HEX-SLOT            (d)      - 32 byte slot to a currency\n")
		fmt.Printf("  info CURRENCY              (i)      - decimals, id and address of a currency\n")
		fmt.Printf("CURRENCY is a token symbol, a 0x address, or PAIR like: ACA/AUSD\n")
		return true

	default:
		// not a setup command, continue processing
		return false
	}
}

// which commands never modify the registry
func readOnlyCommand(command string) bool {
	switch command {
	case "list", "l", "encode", "e", "decode", "d", "info", "i":
		return true
	default:
		return false
	}
}

// main command handler
//
// the database and registry are already open
func processCommand(log *logger.L, command string, arguments []string) error {

	switch command {

	case "register", "r":
		if 1 != len(arguments) {
			return fault.InvalidError("register needs exactly one ADDRESS")
		}
		address, err := evm.AddressFromHexString(arguments[0])
		if nil != err {
			return err
		}
		if err := erc20.Register(address); nil != err {
			return err
		}
		id, _ := erc20.IdOf(address)
		symbol, _ := erc20.SymbolOf(address)
		fmt.Printf("registered: %s  id: %d  symbol: %q\n", address, id, symbol)

	case "list", "l":
		err := erc20.Scan(func(entry erc20.Entry) error {
			buffer, err := json.Marshal(entry)
			if nil != err {
				return err
			}
			fmt.Printf("%s\n", buffer)
			return nil
		})
		if nil != err {
			return err
		}

	case "encode", "e":
		if 1 != len(arguments) {
			return fault.InvalidError("encode needs exactly one CURRENCY")
		}
		c, err := currencyid.FromString(arguments[0])
		if nil != err {
			return err
		}
		slot, ok := currencyid.Pack(c)
		if !ok {
			return fault.CannotEncodeCurrency
		}
		fmt.Printf("%s\n", slot)

	case "decode", "d":
		if 1 != len(arguments) {
			return fault.InvalidError("decode needs exactly one HEX-SLOT")
		}
		slot, err := currencyid.SlotFromHexString(arguments[0])
		if nil != err {
			return err
		}
		c, ok := currencyid.Unpack(slot)
		if !ok {
			return fault.InvalidSlot
		}
		fmt.Printf("%s\n", c)

	case "info", "i":
		if 1 != len(arguments) {
			return fault.InvalidError("info needs exactly one CURRENCY")
		}
		c, err := currencyid.FromString(arguments[0])
		if nil != err {
			return err
		}
		fmt.Printf("currency: %s\n", c)
		if decimals, ok := currencyid.Decimals(c); ok {
			fmt.Printf("decimals: %d\n", decimals)
		}
		if address, ok := currencyid.EvmAddress(c); ok {
			fmt.Printf("evm address: %s\n", address)
		}
		if slot, ok := currencyid.Pack(c); ok {
			fmt.Printf("slot: %s\n", slot)
		}

	default:
		log.Warnf("unknown command: %q", command)
		fmt.Printf("unknown command: %q\n", command)
		exitwithstatus.Exit(1)
	}

	return nil
}
