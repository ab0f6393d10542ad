// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package serialapi

import (
	"fmt"
	"time"
)

// Decoder states.
const (
	stateIdle = iota
	stateLength
	stateType
	stateFunction
	stateBody
	stateChecksum
)

// Decoder implements the byte-at-a-time serial frame decoder state
// machine. Feed it received bytes in order; completed frames come back
// timestamped. It is not safe for concurrent use.
type Decoder struct {
	state     int
	frame     *Frame
	remaining int
	rawBuffer []byte
}

// NewDecoder creates a new serial frame decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		state:     stateIdle,
		rawBuffer: make([]byte, 0, 0x100),
	}
}

// Reset returns the decoder to idle, discarding any partial frame.
func (d *Decoder) Reset() {
	d.state = stateIdle
	d.frame = nil
	d.remaining = 0
	d.rawBuffer = d.rawBuffer[:0]
}

// RawBytes returns the raw bytes accumulated since the last completed
// frame or reset, framing included.
func (d *Decoder) RawBytes() []byte {
	return d.rawBuffer
}

// DecodeByte processes a single byte through the state machine.
// Returns a completed frame, or nil while the frame is incomplete.
// Returns an error when framing or the checksum fails; the decoder
// resynchronizes on the next SOF or acknowledgement byte.
func (d *Decoder) DecodeByte(b byte) (*Frame, error) {
	d.rawBuffer = append(d.rawBuffer, b)

	switch d.state {
	case stateIdle:
		switch b {
		case FrameACK, FrameNAK, FrameCAN:
			frame := &Frame{Preamble: b, timestamp: time.Now()}
			d.Reset()
			return frame, nil
		case FrameSOF:
			d.frame = &Frame{Preamble: FrameSOF}
			d.state = stateLength
			return nil, nil
		default:
			// Line noise between frames; stay idle.
			return nil, nil
		}

	case stateLength:
		if b < minFrameLength {
			d.Reset()
			return nil, fmt.Errorf("invalid length: %d (min %d)", b, minFrameLength)
		}
		d.remaining = int(b) - minFrameLength
		d.frame.Body = make([]byte, 0, d.remaining)
		d.state = stateType
		return nil, nil

	case stateType:
		if b != TypeRequest && b != TypeResponse {
			d.Reset()
			return nil, fmt.Errorf("invalid frame type: 0x%02X", b)
		}
		d.frame.Type = b
		d.state = stateFunction
		return nil, nil

	case stateFunction:
		d.frame.Function = b
		if d.remaining == 0 {
			d.state = stateChecksum
		} else {
			d.state = stateBody
		}
		return nil, nil

	case stateBody:
		d.frame.Body = append(d.frame.Body, b)
		if len(d.frame.Body) >= d.remaining {
			d.state = stateChecksum
		}
		return nil, nil

	case stateChecksum:
		frame := d.frame
		expected := frame.Checksum()
		d.Reset()
		if b != expected {
			return nil, fmt.Errorf("checksum mismatch: expected 0x%02X, got 0x%02X", expected, b)
		}
		frame.timestamp = time.Now()
		return frame, nil

	default:
		d.Reset()
		return nil, fmt.Errorf("invalid state: %d", d.state)
	}
}

// Decode runs a whole buffer through the state machine, collecting the
// frames and errors encountered. Convenient for offline captures.
func (d *Decoder) Decode(data []byte) ([]*Frame, []error) {
	var frames []*Frame
	var errs []error
	for _, b := range data {
		frame, err := d.DecodeByte(b)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if frame != nil {
			frames = append(frames, frame)
		}
	}
	return frames, errs
}
