// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Caldera Works

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calderaworks/zwatch/pkg/capture"
	"github.com/calderaworks/zwatch/pkg/serialapi"
	"github.com/calderaworks/zwatch/pkg/zwcc"
	"github.com/spf13/cobra"
)

var replayShowAcks bool

var replayCmd = &cobra.Command{
	Use:   "replay <capture file>",
	Short: "Decode a recorded capture file",
	Long: `Replay a capture file written by the monitor command.

Each record is decoded the same way live traffic is, tagged with the
direction and the timestamp it was recorded at.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayShowAcks, "show-acks", false, "Print ACK/NAK/CAN records")
}

func runReplay(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	resolver, err := zwcc.NewResolver(newLogger())
	if err != nil {
		return err
	}

	stats := serialapi.NewStatistics()
	reader := capture.NewReader(file)
	records := 0
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("record %d: %v", records+1, err)
		}
		records++

		decoder := serialapi.NewDecoder()
		seen := false
		for _, b := range rec.Raw {
			frame, decodeErr := decoder.DecodeByte(b)
			if frame == nil && decodeErr == nil {
				continue
			}
			seen = true
			stats.RecordFrame(frame, decodeErr)
			if decodeErr != nil {
				fmt.Printf("[%s] %s #%d decode error: %v\n",
					rec.Time().Format("15:04:05.000"), rec.Direction, rec.Seq, decodeErr)
				continue
			}
			printReplayFrame(rec, frame, resolver, stats)
		}
		if !seen {
			fmt.Printf("[%s] %s #%d incomplete frame: % X\n",
				rec.Time().Format("15:04:05.000"), rec.Direction, rec.Seq, rec.Raw)
		}
	}

	stats.CalculateRates()
	fmt.Printf("\nReplayed %d records\n%s\n", records, stats.String())
	return nil
}

func printReplayFrame(rec *capture.Record, frame *serialapi.Frame, resolver *zwcc.Resolver, stats *serialapi.Statistics) {
	prefix := fmt.Sprintf("[%s] %s #%d", rec.Time().Format("15:04:05.000"), rec.Direction, rec.Seq)

	if !frame.IsData() {
		if replayShowAcks {
			fmt.Printf("%s %s\n", prefix, frame.String())
		}
		return
	}

	if frame.Function != serialapi.FuncApplicationCommandHandler {
		fmt.Printf("%s %s body % X\n", prefix, frame.String(), frame.Body)
		return
	}

	node, command, err := frame.ApplicationCommand()
	if err != nil {
		stats.RecordCommand(err)
		fmt.Printf("%s malformed application command: %v\n", prefix, err)
		return
	}

	fmt.Printf("%s node %d %s", prefix, node, zwcc.FormatFrame(rec.Time(), command))
	key, fields, err := zwcc.ParseFrame(command)
	stats.RecordCommand(err)
	if err != nil {
		return
	}
	outcome, err := resolver.Resolve(key.Class(), key.Command(), fields)
	if err != nil || outcome == nil {
		return
	}
	fmt.Print(zwcc.FormatOutcome(outcome))
}
