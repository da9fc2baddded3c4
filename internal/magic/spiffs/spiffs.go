// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package spiffs probes a flash sniff for the spiffs object index magic.
package spiffs

import "encoding/binary"

// Object index magics of the two spiffs generations.
const (
	Magic2014 = 0x20140529
	Magic2016 = 0x20160529
)

// ScanLen bounds the probe window; on any supported layout the magic
// lands within the first erase block.
const ScanLen = 4096

func Probe(s []byte) bool {
	n := len(s)
	if n > ScanLen {
		n = ScanLen
	}
	for off := 0; off+4 <= n; off += 4 {
		switch binary.LittleEndian.Uint32(s[off:]) {
		case Magic2014, Magic2016:
			return true
		}
	}
	return false
}
