// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"

	"github.com/bitmark-inc/logger"
)

const panicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - open the log channel used for last messages
//
// the logger itself must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the log channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// PanicIfError - panic only if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %s", message, err)
	critical(s)
	panic(s)
}

// write to the log channel, or to stdout if it was never opened
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
