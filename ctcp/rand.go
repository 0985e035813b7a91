/*
 * Copyright (c) 2014, Yawning Angel <yawning at schwanenlied dot me>
 * All rights reserved.
 *
 * Redistribution and use in source and binary forms, with or without
 * modification, are permitted provided that the following conditions are met:
 *
 *  * Redistributions of source code must retain the above copyright notice,
 *    this list of conditions and the following disclaimer.
 *
 *  * Redistributions in binary form must reproduce the above copyright notice,
 *    this list of conditions and the following disclaimer in the documentation
 *    and/or other materials provided with the distribution.
 *
 * THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
 * AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
 * IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
 * ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
 * LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
 * CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
 * SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
 * INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
 * CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
 * ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
 * POSSIBILITY OF SUCH DAMAGE.
 */

package ctcp

import (
	cryptRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

// csRandSource is a math/rand.Source backed by crypto/rand, so that the
// per-frame nonce byte draws from an OS-entropy source without requiring a
// cipher-strength generator.
type csRandSource struct{}

func (csRandSource) Int63() int64 {
	var buf [8]byte
	if _, err := io.ReadFull(cryptRand.Reader, buf[:]); err != nil {
		panic(fmt.Sprintf("ctcp: failed to read entropy: %v", err))
	}
	return int64(binary.BigEndian.Uint64(buf[:]) & (1<<63 - 1))
}

func (csRandSource) Seed(int64) {}

// csRand is shared by every Encoder; it carries no mutable state of its own
// since it is itself backed by crypto/rand.
var csRand = rand.New(csRandSource{})

// randIntRange returns a uniformly distributed int in [min, max].
func randIntRange(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("ctcp: randIntRange: min > max (%d, %d)", min, max))
	}
	return min + csRand.Intn(max+1-min)
}

// randByte returns a single random byte.
func randByte() byte {
	return byte(randIntRange(0, 0xff))
}
