// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"strings"
	"testing"
)

// formatResolved decodes a frame, resolves it and renders the outcome.
func formatResolved(t *testing.T, raw []byte) string {
	t.Helper()
	r := newTestResolver(t)
	key, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	out, err := r.Resolve(key.Class(), key.Command(), fields)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	return FormatOutcome(out)
}

func TestFormatOutcome_AlarmLabel(t *testing.T) {
	got := formatResolved(t, []byte{ClassAlarm, AlarmReport, 0x01, 0x63})
	if !strings.Contains(got, "event: Alarm (Smoke)") {
		t.Errorf("missing alarm type label in %q", got)
	}

	// codes beyond the table still render, with a placeholder
	got = formatResolved(t, []byte{ClassAlarm, AlarmReport, 0x77, 0x00})
	if !strings.Contains(got, "event: Alarm (@UNKNOWN_ALARM[119]@)") {
		t.Errorf("missing placeholder label in %q", got)
	}
}

func TestFormatOutcome_ThermostatModeLabel(t *testing.T) {
	got := formatResolved(t, []byte{ClassThermostatMode, ThermostatModeReport, 0x02})
	if !strings.Contains(got, "(Cooling)") {
		t.Errorf("missing thermostat mode label in %q", got)
	}
}

func TestFormatOutcome_DoorLogEventLabel(t *testing.T) {
	raw := []byte{ClassDoorLockLogging, DoorLockLoggingReport,
		0x01, 0x07, 0xEA, 0x08, 0x1A, 0x0C, 0x1E, 0x00, 0x01, 0x05, 0x04, '1', '2', '3', '4'}
	got := formatResolved(t, raw)
	if !strings.Contains(got, "lock_log[1]") {
		t.Errorf("missing map target in %q", got)
	}
	if !strings.Contains(got, "(Unlock: Access Code)") {
		t.Errorf("missing door log event label in %q", got)
	}
}

func TestFormatOutcome_NoAction(t *testing.T) {
	if got := FormatOutcome(nil); got != "  (no action)\n" {
		t.Errorf("unexpected rendering %q", got)
	}
}
