// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Caldera Works

package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calderaworks/zwatch/pkg/serialapi"
	"github.com/calderaworks/zwatch/pkg/zwcc"
	"github.com/spf13/cobra"
)

var (
	sendNode       int
	sendAckTimeout int
	sendTxOptions  int
)

var sendCmd = &cobra.Command{
	Use:   "send --node <id> <request> [args]",
	Short: "Assemble and transmit a request to a node",
	Long: `Assemble an application frame and transmit it to a node.

Named requests:
  basic-get                       read the basic level
  basic-set <level>               set the basic level (0-255)
  switch-on | switch-off          binary switch control
  battery-get                     read the battery level
  meter-get [scale]               read a meter (optional scale 0-7)
  version-get                     read version information
  config-get <param>              read a configuration parameter
  config-set <param> <size> <val> write a configuration parameter
  hex <bytes>                     raw application frame as hex

The frame is wrapped in a SendData serial request; the command waits for the
controller's ACK before exiting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().IntVar(&sendNode, "node", 0, "Destination node id (1-232)")
	sendCmd.Flags().IntVar(&sendAckTimeout, "ack-timeout", 3, "Seconds to wait for the controller ACK")
	sendCmd.Flags().IntVar(&sendTxOptions, "tx-options", 0x25, "SendData transmit option bits")
	sendCmd.MarkFlagRequired("node")
}

// buildRequest turns the positional arguments into an application frame.
func buildRequest(args []string) (frame []byte, err error) {
	// Assembly panics on contract violations; surface them as errors
	// since these arguments come from the command line.
	defer func() {
		if r := recover(); r != nil {
			if argErr, ok := r.(*zwcc.ArgumentError); ok {
				frame, err = nil, argErr
				return
			}
			panic(r)
		}
	}()

	num := func(i int, bits int) (int64, error) {
		if i >= len(args) {
			return 0, fmt.Errorf("%s: missing argument %d", args[0], i)
		}
		return strconv.ParseInt(args[i], 0, bits)
	}

	switch args[0] {
	case "basic-get":
		return zwcc.NewBasicGet(), nil
	case "basic-set":
		level, err := num(1, 16)
		if err != nil {
			return nil, err
		}
		return zwcc.NewBasicSet(uint8(level)), nil
	case "switch-on":
		return zwcc.NewSwitchBinarySet(true), nil
	case "switch-off":
		return zwcc.NewSwitchBinarySet(false), nil
	case "battery-get":
		return zwcc.NewBatteryGet(), nil
	case "meter-get":
		if len(args) == 1 {
			return zwcc.NewMeterGet(nil), nil
		}
		scale, err := num(1, 8)
		if err != nil {
			return nil, err
		}
		s := uint8(scale)
		return zwcc.NewMeterGet(&s), nil
	case "version-get":
		return zwcc.NewVersionGet(), nil
	case "config-get":
		param, err := num(1, 16)
		if err != nil {
			return nil, err
		}
		return zwcc.NewConfigurationGet(uint8(param)), nil
	case "config-set":
		param, err := num(1, 16)
		if err != nil {
			return nil, err
		}
		size, err := num(2, 8)
		if err != nil {
			return nil, err
		}
		value, err := num(3, 64)
		if err != nil {
			return nil, err
		}
		return zwcc.NewConfigurationSet(uint8(param), uint8(size), value), nil
	case "hex":
		if len(args) < 2 {
			return nil, fmt.Errorf("hex: missing frame bytes")
		}
		raw, err := hex.DecodeString(strings.ReplaceAll(args[1], " ", ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex: %v", err)
		}
		if len(raw) < 2 {
			return nil, fmt.Errorf("frame shorter than the 2-byte header")
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown request %q", args[0])
	}
}

func runSend(cmd *cobra.Command, args []string) error {
	if sendNode < 1 || sendNode > 232 {
		return fmt.Errorf("node id %d out of range (1-232)", sendNode)
	}

	command, err := buildRequest(args)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	body := serialapi.SendDataBody(byte(sendNode), command, byte(sendTxOptions))
	raw, err := serialapi.NewDataFrame(serialapi.TypeRequest, serialapi.FuncSendData, body).Encode()
	if err != nil {
		return err
	}

	fmt.Printf("Zwatch - Send\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Node %d: %s\n", sendNode, zwcc.CommandName(command[0], command[1]))
	fmt.Printf("Frame: % X\n", raw)

	if _, err := conn.Write(raw); err != nil {
		return fmt.Errorf("write failed: %v", err)
	}

	// Wait for the controller to ACK the frame.
	ackChan := make(chan byte, 1)
	go func() {
		decoder := serialapi.NewDecoder()
		buf := make([]byte, 64)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				return
			}
			for i := 0; i < n; i++ {
				frame, _ := decoder.DecodeByte(buf[i])
				if frame != nil && !frame.IsData() {
					ackChan <- frame.Preamble
					return
				}
			}
		}
	}()

	select {
	case preamble := <-ackChan:
		switch preamble {
		case serialapi.FrameACK:
			fmt.Println("ACK received")
			return nil
		case serialapi.FrameNAK:
			return fmt.Errorf("controller rejected the frame (NAK)")
		case serialapi.FrameCAN:
			return fmt.Errorf("controller cancelled the frame (CAN)")
		}
		return fmt.Errorf("unexpected acknowledgement 0x%02X", preamble)
	case <-time.After(time.Duration(sendAckTimeout) * time.Second):
		return fmt.Errorf("no ACK within %d seconds", sendAckTimeout)
	}
}
