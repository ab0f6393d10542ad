// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

// Package serialapi frames and unframes the host-side serial protocol
// spoken by Z-Wave controller sticks: single-byte ACK/NAK/CAN exchanges
// and SOF-delimited data frames carrying one function call each. The
// application payload of a data frame is opaque here; command-class
// decoding lives elsewhere.
package serialapi

import (
	"fmt"
	"time"
)

// Frame delimiters and acknowledgement bytes.
const (
	FrameSOF byte = 0x01
	FrameACK byte = 0x06
	FrameNAK byte = 0x15
	FrameCAN byte = 0x18
)

// Data frame directions.
const (
	TypeRequest  byte = 0x00
	TypeResponse byte = 0x01
)

// Function ids seen on the wire. Only the ones the tooling inspects are
// named; unknown functions still round-trip.
const (
	FuncApplicationCommandHandler byte = 0x04
	FuncSendData                  byte = 0x13
	FuncGetVersion                byte = 0x15
	FuncApplicationUpdate         byte = 0x49
	FuncRequestNodeInfo           byte = 0x60
)

// Length counts the type, function and checksum bytes plus the body.
const minFrameLength = 3

// Frame is one unit of serial traffic: either a bare acknowledgement
// (Preamble ACK/NAK/CAN, all other fields zero) or a SOF data frame.
type Frame struct {
	Preamble byte
	Type     byte
	Function byte
	Body     []byte

	timestamp time.Time
}

// NewDataFrame builds a SOF data frame ready for encoding.
func NewDataFrame(frameType, function byte, body []byte) *Frame {
	return &Frame{Preamble: FrameSOF, Type: frameType, Function: function, Body: body}
}

// NewControlFrame builds a bare ACK, NAK or CAN frame.
func NewControlFrame(preamble byte) *Frame {
	return &Frame{Preamble: preamble}
}

// IsData reports whether the frame carries a function call.
func (f *Frame) IsData() bool { return f.Preamble == FrameSOF }

// Timestamp returns the receive time stamped by the decoder, or the
// zero time for locally built frames.
func (f *Frame) Timestamp() time.Time { return f.timestamp }

// Length returns the wire length byte for a data frame.
func (f *Frame) Length() byte {
	return byte(minFrameLength + len(f.Body))
}

// Checksum computes the frame checksum: 0xFF XORed with every byte from
// the length through the end of the body. The SOF byte is excluded.
func (f *Frame) Checksum() byte {
	sum := byte(0xFF)
	sum ^= f.Length()
	sum ^= f.Type
	sum ^= f.Function
	for _, b := range f.Body {
		sum ^= b
	}
	return sum
}

// Encode serializes the frame for transmission.
func (f *Frame) Encode() ([]byte, error) {
	switch f.Preamble {
	case FrameACK, FrameNAK, FrameCAN:
		return []byte{f.Preamble}, nil
	case FrameSOF:
	default:
		return nil, fmt.Errorf("unencodable preamble 0x%02X", f.Preamble)
	}
	if len(f.Body) > 0xFF-minFrameLength {
		return nil, fmt.Errorf("body too long: %d bytes", len(f.Body))
	}
	out := make([]byte, 0, 5+len(f.Body))
	out = append(out, FrameSOF, f.Length(), f.Type, f.Function)
	out = append(out, f.Body...)
	return append(out, f.Checksum()), nil
}

// ApplicationCommand extracts the source node and embedded application
// frame from an ApplicationCommandHandler request. The returned slice
// aliases the frame body.
func (f *Frame) ApplicationCommand() (node byte, command []byte, err error) {
	if !f.IsData() || f.Function != FuncApplicationCommandHandler {
		return 0, nil, fmt.Errorf("not an application command frame")
	}
	// body: rx status, source node, command length, command bytes
	if len(f.Body) < 3 {
		return 0, nil, fmt.Errorf("application command body too short: %d bytes", len(f.Body))
	}
	size := int(f.Body[2])
	if len(f.Body) < 3+size {
		return 0, nil, fmt.Errorf("application command truncated: want %d bytes, have %d", size, len(f.Body)-3)
	}
	return f.Body[1], f.Body[3 : 3+size], nil
}

// SendDataBody builds the body of a SendData request addressed to one
// node: node id, payload length, payload, transmit options.
func SendDataBody(node byte, command []byte, txOptions byte) []byte {
	body := make([]byte, 0, 3+len(command))
	body = append(body, node, byte(len(command)))
	body = append(body, command...)
	return append(body, txOptions)
}

func (f *Frame) String() string {
	switch f.Preamble {
	case FrameACK:
		return "ACK"
	case FrameNAK:
		return "NAK"
	case FrameCAN:
		return "CAN"
	case FrameSOF:
		dir := "REQ"
		if f.Type == TypeResponse {
			dir = "RSP"
		}
		return fmt.Sprintf("%s func=0x%02X len=%d", dir, f.Function, len(f.Body))
	}
	return fmt.Sprintf("0x%02X", f.Preamble)
}
