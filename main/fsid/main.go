// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Identify the filesystem on a flash partition image.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Jason2866/esp-web-tools-sub001/cmd/fsid"
)

var Args = os.Args
var Exit = os.Exit
var Stderr io.Writer = os.Stderr

func main() {
	if err := (fsid.Command{}).Main(Args[1:]...); err != nil {
		fmt.Fprintln(Stderr, "fsid:", err)
		Exit(1)
	}
}
