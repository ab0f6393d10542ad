// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Caldera Works

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/calderaworks/zwatch/pkg/zwcc"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex frame> [<hex frame>...]",
	Short: "Decode application frames from hex",
	Long: `Decode one or more Z-Wave application frames given as hex strings.

Each argument is a complete application frame: two header bytes (command
class, command) followed by the frame body. Fields are decoded against the
command's layout and, where the command carries a semantic action, resolved
into a typed value, event or security classification.

Examples:
  zwatch decode 310501224400
  zwatch decode 2001FF 800362`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	resolver, err := zwcc.NewResolver(newLogger())
	if err != nil {
		return err
	}

	for _, arg := range args {
		raw, err := hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
		if err != nil {
			return fmt.Errorf("invalid hex %q: %v", arg, err)
		}

		fmt.Print(zwcc.FormatFrame(time.Now(), raw))

		key, fields, err := zwcc.ParseFrame(raw)
		if err != nil {
			continue
		}
		outcome, err := resolver.Resolve(key.Class(), key.Command(), fields)
		if err != nil {
			fmt.Printf("  resolve error: %v\n", err)
			continue
		}
		fmt.Print(zwcc.FormatOutcome(outcome))
	}
	return nil
}
