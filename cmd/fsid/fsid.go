// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package fsid

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/Jason2866/esp-web-tools-sub001/flashfs"
	"github.com/Jason2866/esp-web-tools-sub001/lang"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/url"
)

type Command struct{}

func (Command) String() string { return "fsid" }

func (Command) Usage() string {
	return "fsid [-v] [-o OFFSET] [-s SIZE] DEVICE"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "identify the filesystem on a flash partition",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	The fsid command reads the first bytes of a flash partition and
	prints "littlefs" or "spiffs". DEVICE may be a flash device node,
	a plain image file, or a http or file URL; OFFSET and SIZE select
	a partition within it.

	Without signature evidence the verdict is spiffs, the safe
	assumption for tooling that predates littlefs partitions.

OPTIONS
	-o OFFSET
		partition offset within DEVICE in bytes, hex accepted
		(default 0)

	-s SIZE
		partition size in bytes, hex accepted (default: the
		remainder of DEVICE)

	-v	log each probe verdict

EXAMPLES
	fsid -o 0x290000 -s 0x160000 flash.bin
		Identify the filesystem partition of a 4MB ESP32 image.`,
	}
}

func (c Command) Main(args ...string) error {
	flag, args := flags.New(args, "-v")
	parm, args := parms.New(args, "-o", "-s")

	if len(args) == 0 {
		return errors.New(c.Usage())
	}
	if len(args) > 1 {
		return fmt.Errorf("%v: unexpected", args[1:])
	}

	var offset, size uint64
	var err error
	if us := parm.ByName["-o"]; us != "" {
		offset, err = strconv.ParseUint(us, 0, 32)
		if err != nil {
			return fmt.Errorf("offset %s: %w", us, err)
		}
	}
	if us := parm.ByName["-s"]; us != "" {
		size, err = strconv.ParseUint(us, 0, 32)
		if err != nil {
			return fmt.Errorf("size %s: %w", us, err)
		}
	}

	r, err := url.Open(args[0])
	if err != nil {
		return fmt.Errorf("Unable to open %s: %w", args[0], err)
	}
	defer r.Close()
	image, err := ioutil.ReadAll(r)
	if err != nil {
		return fmt.Errorf("Error reading %s: %w", args[0], err)
	}

	if offset > uint64(len(image)) {
		return fmt.Errorf("offset %#x: beyond %d byte image",
			offset, len(image))
	}
	if size == 0 || offset+size > uint64(len(image)) {
		size = uint64(len(image)) - offset
	}

	var l flashfs.Logger
	if flag.ByName["-v"] {
		l = syslogger{}
	}
	fs := flashfs.Detect(imageReader(image), uint32(offset), uint32(size),
		l)
	fmt.Println(fs)
	return nil
}

// imageReader serves the flash read capability from an in-memory image.
type imageReader []byte

func (img imageReader) ReadFlash(offset, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(img)) {
		return nil, fmt.Errorf("read %d at %#x: past end of %d byte image",
			length, offset, len(img))
	}
	return img[offset:end], nil
}

// syslogger routes detector diagnostics to the system log.
type syslogger struct{}

func (syslogger) Log(args ...interface{}) {
	log.Print(append([]interface{}{"info"}, args...)...)
}

func (syslogger) Err(args ...interface{}) {
	log.Print(append([]interface{}{"err"}, args...)...)
}
