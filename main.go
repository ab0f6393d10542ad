// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Caldera Works
//
// Zwatch - Z-Wave Serial Traffic Analyzer
//
// A CLI tool for monitoring, decoding and interpreting Z-Wave command
// class traffic in human-readable format.

package main

import (
	"os"

	"github.com/calderaworks/zwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
