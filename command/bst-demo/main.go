// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--count=N] [--seed=N]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if len(options["config-file"]) == 1 {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if n := len(options["count"]); n > 0 {
		count, err := strconv.Atoi(options["count"][n-1])
		if err != nil || count < 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][n-1])
		}
		theConfiguration.Count = count
	}
	if n := len(options["seed"]); n > 0 {
		seed, err := strconv.ParseInt(options["seed"][n-1], 10, 64)
		if err != nil {
			exitwithstatus.Message("%s: invalid seed: %q", program, options["seed"][n-1])
		}
		theConfiguration.Seed = seed
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = LoglevelMap{
			"main":            "debug",
			logger.DefaultTag: "info",
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// set up the fault panic log (now that logging is available)
	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault log setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	src := newRandomSource(theConfiguration.Seed, theConfiguration.Maximum)
	_, err = run(os.Stdout, log, src, theConfiguration)
	fault.PanicIfError("run", err)
}
