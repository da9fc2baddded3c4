// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package magic identifies embedded flash filesystems from a sniff of the
// first bytes of a partition.
package magic

import (
	"github.com/Jason2866/esp-web-tools-sub001/internal/magic/littlefs"
	"github.com/Jason2866/esp-web-tools-sub001/internal/magic/spiffs"
)

// IdentifyFlashFs returns the name of the filesystem whose signature was
// found in the sniff, or "" if none matched. Probes run strongest evidence
// first; the littlefs metadata structure is far more specific than the
// spiffs object index magic.
func IdentifyFlashFs(sniff []byte) string {
	if littlefs.Probe(sniff) {
		return "littlefs"
	}
	if spiffs.Probe(sniff) {
		return "spiffs"
	}
	return ""
}
