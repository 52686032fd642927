// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultCount     = 10  // values inserted
	defaultMaximum   = 100 // values are drawn from [0, defaultMaximum)
	defaultRebalance = true

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"main":            "info",
	logger.DefaultTag: "critical",
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Count         int                  `gluamapper:"count" json:"count"`
	Maximum       int                  `gluamapper:"maximum" json:"maximum"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Rebalance     bool                 `gluamapper:"rebalance" json:"rebalance"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Count:         defaultCount,
		Maximum:       defaultMaximum,
		Seed:          0, // time based
		Rebalance:     defaultRebalance,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	baseDirectory, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	if configurationFileName != "" {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if err != nil {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if options.Count < 0 {
		return nil, fault.ErrInvalidCount
	}
	if options.Maximum <= 0 {
		return nil, fault.ErrInvalidMaximum
	}

	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); err != nil {
		return nil, err
	}

	// done
	return options, nil
}
