// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "fmt"

// NodeState is a device's interview progress. The codec only signals
// transitions; the node state machine owns the actual state.
type NodeState int

const (
	// StateNone doubles as "no transition signalled" in an Outcome.
	StateNone NodeState = iota
	StateIncluded
	// StateDiscovered: the node's command classes are known.
	StateDiscovered
	// StateInterviewed: static info and versions are known.
	StateInterviewed
)

func (s NodeState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateIncluded:
		return "Included"
	case StateDiscovered:
		return "Discovered"
	case StateInterviewed:
		return "Interviewed"
	default:
		return fmt.Sprintf("NodeState(%d)", int(s))
	}
}

// SecurityPrimitive classifies security-handshake frames. The codec
// extracts the raw bytes only; key handling and crypto live elsewhere.
type SecurityPrimitive int

const (
	SecurityNone SecurityPrimitive = iota
	SecuritySetClass
	SecurityScheme
	SecurityNonceReceived
	SecurityNonceRequested
	SecurityUnwrap
	SecurityKeyVerify
)

func (p SecurityPrimitive) String() string {
	switch p {
	case SecurityNone:
		return "None"
	case SecuritySetClass:
		return "SetClass"
	case SecurityScheme:
		return "Scheme"
	case SecurityNonceReceived:
		return "NonceReceived"
	case SecurityNonceRequested:
		return "NonceRequested"
	case SecurityUnwrap:
		return "Unwrap"
	case SecurityKeyVerify:
		return "KeyVerify"
	default:
		return fmt.Sprintf("SecurityPrimitive(%d)", int(p))
	}
}

// Event labels emitted by the action table.
const (
	EventAlarm           = "Alarm"
	EventWakeUp          = "WakeUp"
	EventHail            = "Hail"
	EventRejectedRequest = "RejectedRequest"
	EventBasicGet        = "BasicGet"
)

// Value is the resolved semantic output of one frame: a physical
// quantity or event label, an optional unit, and the payload. Values
// are constructed once per resolved frame and are immutable thereafter.
type Value struct {
	Kind string
	Unit string
	Val  Field

	// Meter-only auxiliaries.
	PrevVal   float64
	DeltaTime uint16
}

// Less orders values by kind, then unit. Values with equal kind and
// unit are equivalent for ordering purposes regardless of payload.
func (v Value) Less(other Value) bool {
	if v.Kind != other.Kind {
		return v.Kind < other.Kind
	}
	return v.Unit < other.Unit
}

func (v Value) String() string {
	if v.Unit == UnitNone {
		return fmt.Sprintf("%v[%s]", v.Val, v.Kind)
	}
	return fmt.Sprintf("%v[%s, %s]", v.Val, v.Kind, v.Unit)
}

// Outcome is the resolved semantic effect of one decoded frame. The
// zero fields of the variants not taken stay zero: a plain value store
// has only Value set; a keyed-map update adds MapName/MapKey; events
// set Event (and carry their payload in Value); security frames set
// only Security. Advance may accompany any variant.
type Outcome struct {
	Value    *Value
	MapName  string
	MapKey   int64
	Event    string
	Security SecurityPrimitive
	// Advance signals interview progress; the state machine decides
	// whether to act on it.
	Advance NodeState
}
