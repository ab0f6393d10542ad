// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "fmt"

// DecodeErrorKind classifies frame decode failures.
type DecodeErrorKind int

const (
	// UnknownCommand: no schema registered for the frame's header pair.
	UnknownCommand DecodeErrorKind = iota
	// TruncatedFrame: a field needs more bytes than remain.
	TruncatedFrame
	// MalformedField: the bytes are present but the value is invalid,
	// e.g. an unsupported string-encoding selector.
	MalformedField
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UnknownCommand:
		return "unknown command"
	case TruncatedFrame:
		return "truncated frame"
	case MalformedField:
		return "malformed field"
	default:
		return fmt.Sprintf("decode error %d", int(k))
	}
}

// DecodeError reports a frame decode failure. Decode is all-or-nothing:
// the error identifies the failing schema entry (Index into the schema,
// Tag of the entry, byte Offset into the frame) and no partial field
// list is returned.
type DecodeError struct {
	Kind   DecodeErrorKind
	Key    Key
	Tag    FieldTag
	Index  int
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Kind == UnknownCommand {
		return fmt.Sprintf("%v: class=0x%02X command=0x%02X", e.Kind, e.Key.Class(), e.Key.Command())
	}
	s := fmt.Sprintf("%v: %s field %d (tag %v) at offset %d",
		e.Kind, CommandName(e.Key.Class(), e.Key.Command()), e.Index, e.Tag, e.Offset)
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

// ResolveErrorKind classifies value-resolution failures.
type ResolveErrorKind int

const (
	// UnresolvedUnit: the sensor/meter kind+scale combination has no
	// unit mapping; the frame decoded fine but is unusable.
	UnresolvedUnit ResolveErrorKind = iota
	// FieldShapeMismatch: the decoded field list does not have the
	// shape the action descriptor requires.
	FieldShapeMismatch
)

func (k ResolveErrorKind) String() string {
	switch k {
	case UnresolvedUnit:
		return "unresolved unit"
	case FieldShapeMismatch:
		return "field shape mismatch"
	default:
		return fmt.Sprintf("resolve error %d", int(k))
	}
}

// ResolveError reports a value-resolution failure for an otherwise
// well-decoded frame.
type ResolveError struct {
	Kind   ResolveErrorKind
	Key    Key
	Detail string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Kind, CommandName(e.Key.Class(), e.Key.Command()), e.Detail)
}
