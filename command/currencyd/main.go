// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/evmlink/currencyd/erc20"
	"github.com/evmlink/currencyd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	command := "help"
	commandArguments := []string{}
	if len(arguments) > 0 {
		command = arguments[0]
		commandArguments = arguments[1:]
	}

	// open the registry database, read only where the command
	// cannot modify it
	err = storage.Initialise(theConfiguration.Database.Name, readOnlyCommand(command))
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer storage.Finalise()

	// the contract table from the configuration stands in for a
	// live execution environment
	querier, err := theConfiguration.Querier()
	if nil != err {
		log.Criticalf("contract table error: %s", err)
		exitwithstatus.Message("%s: contract table error: %s", program, err)
	}

	err = erc20.Initialise(querier)
	if nil != err {
		log.Criticalf("erc20 initialise error: %s", err)
		exitwithstatus.Message("%s: erc20 initialise error: %s", program, err)
	}
	defer erc20.Finalise()

	err = processCommand(log, command, commandArguments)
	if nil != err {
		log.Criticalf("command: %q error: %s", command, err)
		exitwithstatus.Message("%s: command: %q error: %s", program, command, err)
	}
}
