// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"fmt"
	"strings"
	"time"
)

// FormatFrame formats a raw application frame into a human-readable
// line plus per-field detail. Undecodable frames still yield a line
// with the hex body and the decode failure.
func FormatFrame(ts time.Time, raw []byte) string {
	stamp := ts.Format("15:04:05.000")
	if len(raw) < 2 {
		return fmt.Sprintf("[%s] short frame: % X\n", stamp, raw)
	}

	key, fields, err := ParseFrame(raw)
	if err != nil {
		return fmt.Sprintf("[%s] %s len=%d\n  body: % X\n  decode error: %v\n",
			stamp, CommandName(raw[0], raw[1]), len(raw), raw[2:], err)
	}

	result := fmt.Sprintf("[%s] %s len=%d\n", stamp, CommandName(key.Class(), key.Command()), len(raw))
	result += FormatFields(fields)
	return result
}

// FormatFields renders decoded fields one per line, indented.
func FormatFields(fields []Field) string {
	if len(fields) == 0 {
		return "  (no fields)\n"
	}
	var b strings.Builder
	for i, f := range fields {
		fmt.Fprintf(&b, "  [%d] %s\n", i, FormatField(f))
	}
	return b.String()
}

// FormatField renders a single decoded field.
func FormatField(f Field) string {
	switch v := f.(type) {
	case nil:
		return "(absent)"
	case int64:
		return fmt.Sprintf("%d", v)
	case []byte:
		return fmt.Sprintf("% X", v)
	case string:
		return fmt.Sprintf("%q", v)
	case SizedValue:
		return fmt.Sprintf("%d (size %d)", v.Value, v.Size)
	case Reading:
		return fmt.Sprintf("%g (scale %d)", v.Value, v.Scale)
	case MeterReading:
		return formatMeter(v)
	case DateTime:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
			v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second)
	case EncodedString:
		return fmt.Sprintf("%s: % X", v.Encoding, v.Data)
	case BitSet:
		return formatBitSet(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatOutcome renders a resolved outcome. A nil outcome means the
// frame carried no semantic action.
func FormatOutcome(out *Outcome) string {
	if out == nil {
		return "  (no action)\n"
	}
	var b strings.Builder
	if out.Value != nil {
		if out.MapName != "" {
			fmt.Fprintf(&b, "  %s[%d] = %s%s\n", out.MapName, out.MapKey, out.Value, valueLabel(out))
		} else {
			fmt.Fprintf(&b, "  %s%s\n", out.Value, valueLabel(out))
		}
	}
	if out.Event != "" {
		if label := eventLabel(out); label != "" {
			fmt.Fprintf(&b, "  event: %s (%s)\n", out.Event, label)
		} else {
			fmt.Fprintf(&b, "  event: %s\n", out.Event)
		}
	}
	if out.Security != SecurityNone {
		fmt.Fprintf(&b, "  security: %s\n", out.Security)
	}
	if out.Advance != StateNone {
		fmt.Fprintf(&b, "  interview: %s\n", out.Advance)
	}
	if b.Len() == 0 {
		return "  (no action)\n"
	}
	return b.String()
}

// valueLabel annotates stored values whose raw code has a label table:
// thermostat modes and door-lock log records.
func valueLabel(out *Outcome) string {
	switch {
	case out.MapName == "lock_log":
		// payload after the record number: date, event, user id, code
		if fields, ok := out.Value.Val.([]Field); ok && len(fields) > 1 {
			if event, ok := fields[1].(int64); ok {
				return fmt.Sprintf(" (%s)", DoorLogEventName(int(event)))
			}
		}
	case out.Value.Kind == "ThermostatMode":
		if mode, ok := out.Value.Val.(int64); ok {
			return fmt.Sprintf(" (%s)", ThermostatModeName(int(mode)))
		}
	}
	return ""
}

// eventLabel names the alarm type of an alarm event payload.
func eventLabel(out *Outcome) string {
	if out.Event != EventAlarm || out.Value == nil {
		return ""
	}
	if fields, ok := out.Value.Val.([]Field); ok && len(fields) > 0 {
		if t, ok := fields[0].(int64); ok {
			return AlarmTypeName(int(t))
		}
	}
	return ""
}

func formatMeter(m MeterReading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "meter type %d scale %d", m.Type, m.Scale)
	if m.HasValue {
		fmt.Fprintf(&b, " value %g", m.Value)
	}
	if m.HasDelta {
		fmt.Fprintf(&b, " dt %ds", m.DeltaTime)
	}
	if m.HasPrevious {
		fmt.Fprintf(&b, " prev %g", m.Previous)
	}
	return b.String()
}

func formatBitSet(bits BitSet) string {
	if len(bits) == 0 {
		return "{}"
	}
	parts := make([]string, len(bits))
	for i, bit := range bits {
		parts[i] = fmt.Sprintf("%d", bit)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
