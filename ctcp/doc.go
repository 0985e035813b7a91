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

// Package ctcp implements the CTCP printable-ASCII obfuscation codec used to
// carry aggligator frames over links that mangle or fingerprint arbitrary
// binary payloads.
//
// The wire format is:
//
//	[ length prefix : 3 or 6 bytes ][ payload : variable, all bytes 0x20-0x7e ]
//	payload = base-94 encoding of [ 3-byte header ][ body ]
//
// Every byte a peer emits after wrapping a frame lies in [0x20, 0x7e]. The
// length prefix starts "long" (6 bytes, with a verification tail) and
// collapses to "short" (3 bytes) once a direction has produced or consumed
// its first long prefix; see Encoder and Decoder.
//
// This is an obfuscation scheme, not a cipher: the key is a process-wide
// constant shared out of band by both peers, and the codec makes no
// confidentiality or authenticity claims beyond resisting naive payload
// fingerprinting.
package ctcp

// DefaultKey is the default CTCP key, matching the openppp2 reference
// implementation's AppConfiguration default.
const DefaultKey uint32 = 154_543_927

// MaxFrameLength is the largest aggregation frame the codec will encode.
// 65536 == u16::MAX + 1, so the on-wire "length minus one" field fits
// exactly in 16 bits.
const MaxFrameLength = 65536

// base94Modulus is M = 94^3 - 1, the modulus used for the wire length
// arithmetic in the prefix codec.
const base94Modulus = 94*94*94 - 1

// keyByte returns the single byte mask derived from a 32-bit key.
func keyByte(key uint32) byte {
	return byte(key & 0xff)
}

// kfMod returns the additive term mixed into every encoded wire length.
func kfMod(key uint32) uint32 {
	return key % base94Modulus
}
