// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package littlefs

import (
	"encoding/binary"
	"testing"
)

// tag builds a little-endian tag word from its type and length fields.
func tag(typ, length uint32) uint32 {
	return typ<<20 | length&0x3ff
}

func testProbe(t *testing.T, s []byte, expected bool) {
	t.Helper()
	if got := Probe(s); got != expected {
		t.Errorf("Probe() = %v, expected %v", got, expected)
	}
}

func TestMarker(t *testing.T) {
	s := make([]byte, 8192)
	copy(s[100:], Magic)
	testProbe(t, s, true)
}

func TestMarkerShortSniff(t *testing.T) {
	// too short for any tag scan, but the marker still matches
	s := make([]byte, 64)
	copy(s[8:], Magic)
	testProbe(t, s, true)
}

func TestTag(t *testing.T) {
	s := make([]byte, 8192)
	binary.LittleEndian.PutUint32(s[8:], tag(0x7ff, 100))
	testProbe(t, s, true)
}

func TestTagLargestBlockScanned(t *testing.T) {
	// offset 3000 is beyond the 2048 byte block but within the 4096
	// byte block, which is tried first
	s := make([]byte, 8192)
	binary.LittleEndian.PutUint32(s[3000:], tag(1, 8))
	testProbe(t, s, true)
}

func TestTagBeyondFirstBlock(t *testing.T) {
	// only 512 byte blocks fit a 1024 byte sniff, so a tag past the
	// first 512 bytes is never read
	s := make([]byte, 1024)
	binary.LittleEndian.PutUint32(s[600:], tag(1, 8))
	testProbe(t, s, false)
}

func TestTagTypeTooBig(t *testing.T) {
	s := make([]byte, 8192)
	binary.LittleEndian.PutUint32(s[8:], tag(0x800, 100))
	testProbe(t, s, false)
}

func TestTagZeroLength(t *testing.T) {
	s := make([]byte, 8192)
	binary.LittleEndian.PutUint32(s[8:], tag(0x7ff, 0))
	testProbe(t, s, false)
}

func TestTagLengthBounds(t *testing.T) {
	s := make([]byte, 8192)
	binary.LittleEndian.PutUint32(s[8:], 0x7ff<<20|1023)
	testProbe(t, s, false)

	s = make([]byte, 8192)
	binary.LittleEndian.PutUint32(s[8:], 0x7ff<<20|1022)
	testProbe(t, s, true)
}

func TestTagPayloadOverflow(t *testing.T) {
	// 508 + 600 + 4 overruns a 1024 byte sniff
	s := make([]byte, 1024)
	binary.LittleEndian.PutUint32(s[508:], tag(1, 600))
	testProbe(t, s, false)

	s = make([]byte, 1024)
	binary.LittleEndian.PutUint32(s[508:], tag(1, 100))
	testProbe(t, s, true)
}

func TestSniffTooShortForBlocks(t *testing.T) {
	// less than two 512 byte blocks, no size is ever scanned
	s := make([]byte, 600)
	binary.LittleEndian.PutUint32(s[8:], tag(1, 8))
	testProbe(t, s, false)
}

func TestAllZero(t *testing.T) {
	testProbe(t, make([]byte, 8192), false)
}
