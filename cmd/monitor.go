// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Caldera Works

package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/calderaworks/zwatch/pkg/capture"
	"github.com/calderaworks/zwatch/pkg/serialapi"
	"github.com/calderaworks/zwatch/pkg/zwcc"
	"github.com/spf13/cobra"
)

var (
	monitorStats    int
	monitorRecord   string
	monitorShowAcks bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Decode live traffic in human-readable format",
	Long: `Continuously decode and display Z-Wave traffic as it arrives.

Serial frames are unframed and checked, application command frames are decoded
field by field, and reports are resolved into typed sensor, meter and event
values with their units.

Use --stats to print periodic frame and error statistics, and --record to
append every frame to a CBOR capture file for later replay.

Supports both serial and WebSocket connections.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVar(&monitorStats, "stats", 0, "Statistics interval in seconds (0 disables)")
	monitorCmd.Flags().StringVar(&monitorRecord, "record", "", "Append frames to a capture file")
	monitorCmd.Flags().BoolVar(&monitorShowAcks, "show-acks", false, "Display ACK/NAK/CAN frames")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	resolver, err := zwcc.NewResolver(newLogger())
	if err != nil {
		return err
	}

	var recorder *capture.Writer
	if monitorRecord != "" {
		file, err := os.OpenFile(monitorRecord, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open capture file: %v", err)
		}
		defer file.Close()
		recorder = capture.NewWriter(file)
	}

	fmt.Printf("Zwatch - Live Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	stats := serialapi.NewStatistics()
	decoder := serialapi.NewDecoder()
	buf := make([]byte, 128)

	var nextStats time.Time
	if monitorStats > 0 {
		nextStats = time.Now().Add(time.Duration(monitorStats) * time.Second)
	}

	for {
		n, err := conn.Read(buf)
		if err != nil {
			// For WebSocket connections, a read error usually means
			// the connection is permanently closed
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			frame, err := decoder.DecodeByte(buf[i])
			if frame == nil && err == nil {
				continue
			}
			stats.RecordFrame(frame, err)
			if err != nil {
				fmt.Printf("[ERROR] %v\n", err)
				continue
			}

			if recorder != nil {
				raw, encErr := frame.Encode()
				if encErr == nil {
					if wErr := recorder.Write(frame.Timestamp(), capture.DirectionRx, raw); wErr != nil {
						log.Printf("Record error: %v", wErr)
					}
				}
			}

			printFrame(resolver, stats, frame)
		}

		if monitorStats > 0 && time.Now().After(nextStats) {
			fmt.Print(stats.String())
			nextStats = time.Now().Add(time.Duration(monitorStats) * time.Second)
		}
	}
}

// printFrame renders one serial frame, decoding the embedded
// application command when present.
func printFrame(resolver *zwcc.Resolver, stats *serialapi.Statistics, frame *serialapi.Frame) {
	if !frame.IsData() {
		if monitorShowAcks {
			fmt.Printf("[%s] %s\n", frame.Timestamp().Format("15:04:05.000"), frame)
		}
		return
	}

	if frame.Function != serialapi.FuncApplicationCommandHandler {
		fmt.Printf("[%s] %s body=% X\n", frame.Timestamp().Format("15:04:05.000"), frame, frame.Body)
		return
	}

	node, command, err := frame.ApplicationCommand()
	if err != nil {
		stats.RecordCommand(err)
		fmt.Printf("[ERROR] %v\n", err)
		return
	}

	fmt.Printf("node %d ", node)
	fmt.Print(zwcc.FormatFrame(frame.Timestamp(), command))

	key, fields, err := zwcc.ParseFrame(command)
	stats.RecordCommand(err)
	if err != nil {
		return
	}
	outcome, err := resolver.Resolve(key.Class(), key.Command(), fields)
	if err != nil {
		fmt.Printf("  resolve error: %v\n", err)
		return
	}
	if outcome != nil {
		fmt.Print(zwcc.FormatOutcome(outcome))
	}
}
