// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package serialapi

import (
	"fmt"
	"strings"
	"time"
)

// Statistics tracks serial frame counters and error rates.
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalFrames     uint64
	DataFrames      uint64
	Acks            uint64
	Naks            uint64
	Cancels         uint64
	ChecksumErrors  uint64
	FramingErrors   uint64
	DecodedCommands uint64
	CommandErrors   uint64

	// Rates (calculated)
	FrameRate float64 // frames/sec
	ErrorRate float64 // errors/sec
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// RecordFrame counts one completed frame or decoder error.
func (s *Statistics) RecordFrame(frame *Frame, decodeErr error) {
	s.LastUpdateTime = time.Now()

	if decodeErr != nil {
		if strings.HasPrefix(decodeErr.Error(), "checksum mismatch") {
			s.ChecksumErrors++
		} else {
			s.FramingErrors++
		}
		return
	}
	if frame == nil {
		return
	}

	s.TotalFrames++
	switch frame.Preamble {
	case FrameACK:
		s.Acks++
	case FrameNAK:
		s.Naks++
	case FrameCAN:
		s.Cancels++
	case FrameSOF:
		s.DataFrames++
	}
}

// RecordCommand counts one application command decode attempt.
func (s *Statistics) RecordCommand(err error) {
	if err != nil {
		s.CommandErrors++
	} else {
		s.DecodedCommands++
	}
}

// CalculateRates updates the frame and error rates.
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.FrameRate = float64(s.TotalFrames) / elapsed
		errorCount := s.ChecksumErrors + s.FramingErrors + s.CommandErrors
		s.ErrorRate = float64(errorCount) / elapsed
	}
}

// String returns a formatted statistics summary.
func (s *Statistics) String() string {
	s.CalculateRates()

	var dataPercent, checksumPercent float64
	observed := s.TotalFrames + s.ChecksumErrors + s.FramingErrors
	if observed > 0 {
		dataPercent = float64(s.DataFrames) * 100.0 / float64(observed)
		checksumPercent = float64(s.ChecksumErrors) * 100.0 / float64(observed)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Frames:    %8d\n", s.TotalFrames)
	result += fmt.Sprintf("Data Frames:     %8d (%.1f%%)\n", s.DataFrames, dataPercent)
	if s.Acks > 0 || s.Naks > 0 || s.Cancels > 0 {
		result += fmt.Sprintf("ACK/NAK/CAN:     %8d/%d/%d\n", s.Acks, s.Naks, s.Cancels)
	}
	if s.ChecksumErrors > 0 {
		result += fmt.Sprintf("Checksum Errors: %8d (%.1f%%)\n", s.ChecksumErrors, checksumPercent)
	}
	if s.FramingErrors > 0 {
		result += fmt.Sprintf("Framing Errors:  %8d\n", s.FramingErrors)
	}
	if s.DecodedCommands > 0 || s.CommandErrors > 0 {
		result += fmt.Sprintf("Commands:        %8d decoded, %d failed\n", s.DecodedCommands, s.CommandErrors)
	}
	result += fmt.Sprintf("Frame Rate:      %8.1f frames/sec\n", s.FrameRate)
	result += fmt.Sprintf("Error Rate:      %8.2f errors/sec\n", s.ErrorRate)

	return result
}
