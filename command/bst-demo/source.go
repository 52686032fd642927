// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"
)

// Source - supplies the values to insert
type Source interface {
	Next() int
}

type randomSource struct {
	r       *rand.Rand
	maximum int
}

// values are uniform in [0, maximum), seed zero uses the clock
func newRandomSource(seed int64, maximum int) Source {
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return &randomSource{
		r:       rand.New(rand.NewSource(seed)),
		maximum: maximum,
	}
}

func (s *randomSource) Next() int {
	return s.r.Intn(s.maximum)
}
