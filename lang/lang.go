// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package lang provides text in alternative languages.
//
// The language precedence is the value of the "LANG" environment variable
// followed by a configurable default, then en_US.UTF-8.
//
// Use this build ldflag to configure the default,
//
//	-X github.com/Jason2866/esp-web-tools-sub001/lang.Default=fr_FR.UTF-8
package lang

import "os"

const (
	DeDE = "de_DE.UTF-8"
	EnGB = "en_GB.UTF-8"
	EnUS = "en_US.UTF-8"
	EsES = "es_ES.UTF-8"
	FrFR = "fr_FR.UTF-8"
	JaJP = "ja_JP.UTF-8"
	ZhCN = "zh_CN.UTF-8"
)

var (
	Default = EnUS

	// Lang, if non-empty, takes precedence over the LANG environment
	// variable.
	Lang string
)

type Alt map[string]string

// If available, this returns text in the prefered language.
func (m Alt) String() string {
	lang := Lang
	if len(lang) == 0 {
		lang = os.Getenv("LANG")
	}
	for _, l := range []string{lang, Default, EnUS} {
		if s, found := m[l]; found {
			return s
		}
	}
	return ""
}
