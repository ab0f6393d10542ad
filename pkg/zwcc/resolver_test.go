// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(zerolog.Nop())
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	return r
}

// resolveRaw decodes then resolves one frame, failing on decode errors.
func resolveRaw(t *testing.T, r *Resolver, raw []byte) (*Outcome, error) {
	t.Helper()
	key, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return r.Resolve(key.Class(), key.Command(), fields)
}

// ============================================================
// Action Table Tests
// ============================================================

func TestNewActionTable(t *testing.T) {
	table, err := NewActionTable()
	if err != nil {
		t.Fatalf("NewActionTable failed: %v", err)
	}
	if table.Len() == 0 {
		t.Fatal("empty action table")
	}
	// Every registered action must point at a decodable command.
	for key := range table.actions {
		if _, ok := LookupSchema(key.Class(), key.Command()); !ok {
			t.Errorf("action for %s has no schema", CommandName(key.Class(), key.Command()))
		}
	}
}

func TestActionTable_InterviewAugmentation(t *testing.T) {
	table, err := NewActionTable()
	if err != nil {
		t.Fatalf("NewActionTable failed: %v", err)
	}
	a, ok := table.Lookup(ClassManufacturerSpec, ManufacturerSpecificReport)
	if !ok {
		t.Fatal("no action for manufacturer report")
	}
	if a.Kind != ActionStoreList {
		t.Errorf("expected list store, got kind %d", a.Kind)
	}
	if a.Advance != StateInterviewed {
		t.Errorf("expected interview advance, got %v", a.Advance)
	}
}

// ============================================================
// Resolution Tests
// ============================================================

func TestResolve_NoAction(t *testing.T) {
	r := newTestResolver(t)
	out, err := resolveRaw(t, r, []byte{ClassVersion, VersionGet})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Errorf("expected nil outcome for request frame, got %+v", out)
	}
}

func TestResolve_SensorValue(t *testing.T) {
	r := newTestResolver(t)
	out, err := resolveRaw(t, r, []byte{ClassSwitchBinary, SwitchBinaryReport, 0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Value{Kind: KindSwitchBinary, Unit: UnitLevel, Val: int64(255)}
	if !reflect.DeepEqual(*out.Value, want) {
		t.Errorf("expected %+v, got %+v", want, *out.Value)
	}
}

func TestResolve_SensorNormal(t *testing.T) {
	r := newTestResolver(t)
	// temperature, precision 1, scale 0, magnitude 215
	out, err := resolveRaw(t, r, []byte{ClassSensorMultilevel, SensorMultilevelReport, 0x01, 0x21, 0xD7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value.Kind != KindTemperature {
		t.Errorf("kind mismatch: %q", out.Value.Kind)
	}
	if out.Value.Unit != "C" {
		t.Errorf("unit mismatch: %q", out.Value.Unit)
	}
	if out.Value.Val != 21.5 {
		t.Errorf("value mismatch: %v", out.Value.Val)
	}
}

func TestResolve_UnresolvedSensorUnit(t *testing.T) {
	r := newTestResolver(t)
	// temperature only defines scales 0 and 1
	raw := []byte{ClassSensorMultilevel, SensorMultilevelReport, 0x01, 0x31, 0xD7}
	_, err := resolveRaw(t, r, raw)
	var rerr *ResolveError
	if !errors.As(err, &rerr) || rerr.Kind != UnresolvedUnit {
		t.Errorf("expected UnresolvedUnit, got %v", err)
	}
}

func TestResolve_Meter(t *testing.T) {
	r := newTestResolver(t)
	// electric kWh: type 1, scale 0, 12.3 then delta 60s and previous 11.9
	raw := AssembleFrame(ClassMeter, MeterReport, []Field{MeterReading{
		Type: 1, Scale: 0, Value: 12.3, HasValue: true,
		DeltaTime: 60, HasDelta: true, Previous: 11.9, HasPrevious: true,
	}})
	out, err := resolveRaw(t, r, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := out.Value
	if v.Kind != KindElectric || v.Unit != "kWh" {
		t.Errorf("kind/unit mismatch: %q %q", v.Kind, v.Unit)
	}
	if v.Val != 12.3 || v.PrevVal != 11.9 || v.DeltaTime != 60 {
		t.Errorf("reading mismatch: %+v", v)
	}
}

func TestResolve_MeterWithoutReading(t *testing.T) {
	r := newTestResolver(t)
	_, err := resolveRaw(t, r, []byte{ClassMeter, MeterReport, 0x01})
	var rerr *ResolveError
	if !errors.As(err, &rerr) || rerr.Kind != FieldShapeMismatch {
		t.Errorf("expected FieldShapeMismatch, got %v", err)
	}
}

func TestResolve_Map(t *testing.T) {
	r := newTestResolver(t)
	raw := []byte{ClassConfiguration, ConfigurationReport, 0x07, 0x01, 0x2A}
	out, err := resolveRaw(t, r, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.MapName != "parameter" || out.MapKey != 7 {
		t.Errorf("map target mismatch: %q[%d]", out.MapName, out.MapKey)
	}
	want := SizedValue{Size: 1, Value: 42}
	if out.Value.Val != want {
		t.Errorf("expected %+v, got %+v", want, out.Value.Val)
	}
}

func TestResolve_Event(t *testing.T) {
	r := newTestResolver(t)
	out, err := resolveRaw(t, r, []byte{ClassWakeUp, WakeUpNotification})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Event != EventWakeUp {
		t.Errorf("expected wake-up event, got %q", out.Event)
	}
	if out.Value == nil || out.Value.Val != int64(1) {
		t.Errorf("expected marker value 1, got %+v", out.Value)
	}
}

func TestResolve_Security(t *testing.T) {
	r := newTestResolver(t)
	out, err := resolveRaw(t, r, []byte{ClassSecurity, SecurityNonceGet})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Security != SecurityNonceRequested {
		t.Errorf("expected nonce request, got %v", out.Security)
	}
	if out.Value != nil || out.Event != "" {
		t.Errorf("security outcome carries extra state: %+v", out)
	}
}

func TestResolve_ScalarShape(t *testing.T) {
	r := newTestResolver(t)
	a, ok := r.Table().Lookup(ClassLock, LockReport)
	if !ok || a.Kind != ActionStoreScalar {
		t.Fatalf("lock report should be a scalar store")
	}
	_, err := r.Resolve(ClassLock, LockReport, []Field{int64(1), int64(2)})
	var rerr *ResolveError
	if !errors.As(err, &rerr) || rerr.Kind != FieldShapeMismatch {
		t.Errorf("expected FieldShapeMismatch, got %v", err)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := newTestResolver(t)
	raw := []byte{ClassSensorMultilevel, SensorMultilevelReport, 0x01, 0x21, 0xD7}
	key, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	first, err := r.Resolve(key.Class(), key.Command(), fields)
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	second, err := r.Resolve(key.Class(), key.Command(), fields)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolution is not idempotent:\n first  %+v\n second %+v", first, second)
	}
}
