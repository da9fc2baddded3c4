// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package flashfs classifies the filesystem occupying a raw flash
// partition from a sniff of its first bytes. The verdict is always either
// spiffs or littlefs; whenever the evidence is missing, short, or
// unreadable the partition is assumed to be spiffs, the format older
// tooling expects.
package flashfs

import "github.com/Jason2866/esp-web-tools-sub001/internal/magic"

// SniffLen is the most Detect reads from a partition.
const SniffLen = 8192

// MinSniff is the least Detect needs before it will run any probe.
const MinSniff = 32

// A Reader supplies bytes from flash. It may be backed by a serial
// protocol, a memory mapped device, or a plain file; Detect does not care
// and imposes no timeout of its own.
type Reader interface {
	ReadFlash(offset, length uint32) ([]byte, error)
}

// A Logger receives detection diagnostics. Log is for informational
// traces, Err for read failures. Detection returns the same verdict with
// or without one.
type Logger interface {
	Log(args ...interface{})
	Err(args ...interface{})
}

// Fs is a flash filesystem classification.
type Fs int

const (
	SPIFFS Fs = iota
	LittleFS
)

func (fs Fs) String() string {
	if fs == LittleFS {
		return "littlefs"
	}
	return "spiffs"
}

// Detect classifies the filesystem within the size byte partition at
// offset. It reads at most SniffLen bytes through r and never returns an
// error; read failures resolve to SPIFFS. The verdict is a pure function
// of the bytes read, so repeated calls over the same data agree, and
// concurrent calls need no coordination beyond what r itself requires.
func Detect(r Reader, offset, size uint32, l Logger) Fs {
	n := size
	if n > SniffLen {
		n = SniffLen
	}
	sniff, err := r.ReadFlash(offset, n)
	if err != nil {
		logErr(l, "flash read at ", offset, ": ", err)
		return SPIFFS
	}
	if len(sniff) < MinSniff {
		logInfo(l, len(sniff), " bytes is too short to probe, assuming spiffs")
		return SPIFFS
	}
	switch magic.IdentifyFlashFs(sniff) {
	case "littlefs":
		logInfo(l, "littlefs signature found")
		return LittleFS
	case "spiffs":
		logInfo(l, "spiffs object index magic found")
		return SPIFFS
	}
	logInfo(l, "warning: no filesystem signature found, assuming spiffs")
	return SPIFFS
}

func logInfo(l Logger, args ...interface{}) {
	if l != nil {
		l.Log(args...)
	}
}

func logErr(l Logger, args ...interface{}) {
	if l != nil {
		l.Err(args...)
	}
}
