// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package littlefs probes a flash sniff for littlefs metadata.
//
// The structural probe accepts any word whose type and length fields fall
// within range; no CRC is verified, so unrelated binary data can probe
// true.
package littlefs

import (
	"bytes"
	"encoding/binary"
)

// Magic is the superblock name string. It may sit anywhere in the first
// metadata pair, so the probe searches the whole sniff for it.
var Magic = []byte("littlefs")

// Candidate erase block sizes, largest first.
var blockSizes = []int{4096, 2048, 1024, 512}

const (
	typeMax = 0x7ff
	lenMax  = 1022
)

func Probe(s []byte) bool {
	if bytes.Contains(s, Magic) {
		return true
	}
	return probeTags(s)
}

// probeTags scans the first metadata block for a plausible tag word: a
// 32 bit little-endian value with 12 type bits within the valid range and
// a payload length that fits the sniff. The sniff must hold two full
// blocks of a candidate size before that size is considered.
func probeTags(s []byte) bool {
	for _, bs := range blockSizes {
		if len(s) < 2*bs {
			continue
		}
		for off := 0; off+4 <= bs; off += 4 {
			tag := binary.LittleEndian.Uint32(s[off:])
			typ := (tag >> 20) & 0xfff
			length := int(tag & 0x3ff)
			if typ > typeMax || length == 0 || length > lenMax {
				continue
			}
			if off+length+4 <= len(s) {
				return true
			}
		}
	}
	return false
}
