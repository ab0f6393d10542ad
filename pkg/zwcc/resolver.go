// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "github.com/rs/zerolog"

// Resolver turns decoded field lists into semantic outcomes using the
// action table and the unit tables. It holds no per-node state, so a
// single Resolver is safe for concurrent use.
type Resolver struct {
	table *ActionTable
	log   zerolog.Logger
}

// NewResolver builds a resolver over a freshly constructed action
// table. Diagnostics for unresolvable frames go to log.
func NewResolver(log zerolog.Logger) (*Resolver, error) {
	table, err := NewActionTable()
	if err != nil {
		return nil, err
	}
	return &Resolver{table: table, log: log}, nil
}

// Table exposes the underlying action table for introspection.
func (r *Resolver) Table() *ActionTable { return r.table }

// Resolve interprets the decoded fields of one frame. A nil outcome
// with a nil error means the pair is decodable but carries no semantic
// action. Resolution never mutates fields, so resolving the same frame
// twice yields equal outcomes.
func (r *Resolver) Resolve(class, command byte, fields []Field) (*Outcome, error) {
	action, ok := r.table.Lookup(class, command)
	if !ok {
		return nil, nil
	}

	out := &Outcome{Advance: action.Advance}
	switch action.Kind {
	case ActionStoreScalar:
		v, err := r.scalarField(class, command, fields)
		if err != nil {
			return nil, err
		}
		out.Value = &Value{Kind: action.Name, Unit: UnitNone, Val: v}

	case ActionStoreList:
		out.Value = &Value{Kind: action.Name, Unit: UnitNone, Val: copyFields(fields)}

	case ActionStoreConst:
		out.Value = &Value{Kind: action.Name, Unit: UnitNone, Val: action.Const}

	case ActionStoreSensorValue:
		v, err := r.scalarField(class, command, fields)
		if err != nil {
			return nil, err
		}
		out.Value = &Value{Kind: action.Name, Unit: action.Unit, Val: v}

	case ActionStoreSensorNormal:
		value, err := r.resolveSensor(class, command, fields)
		if err != nil {
			return nil, err
		}
		out.Value = value

	case ActionStoreMeterNormal:
		value, err := r.resolveMeter(class, command, fields)
		if err != nil {
			return nil, err
		}
		out.Value = value

	case ActionStoreMap:
		key, payload, err := r.splitMapKey(class, command, action, fields)
		if err != nil {
			return nil, err
		}
		out.MapName = action.MapName
		out.MapKey = key
		if action.List {
			out.Value = &Value{Kind: action.MapName, Unit: UnitNone, Val: payload}
		} else {
			v, err := r.scalarField(class, command, payload)
			if err != nil {
				return nil, err
			}
			out.Value = &Value{Kind: action.MapName, Unit: UnitNone, Val: v}
		}

	case ActionStoreEvent:
		out.Event = action.Name
		if action.List {
			out.Value = &Value{Kind: action.Name, Unit: UnitNone, Val: copyFields(fields)}
		} else {
			out.Value = &Value{Kind: action.Name, Unit: UnitNone, Val: action.Const}
		}

	case ActionChangeState:
		// Advance already set.

	case ActionSecurity:
		out.Security = action.Security
	}

	return out, nil
}

// scalarField enforces the scalar-store contract: exactly one decoded
// field, and not a bit set (supported-bitmask reports are lists).
func (r *Resolver) scalarField(class, command byte, fields []Field) (Field, error) {
	if len(fields) != 1 {
		return nil, r.shapeError(class, command, "scalar action needs exactly one field")
	}
	if _, isBits := fields[0].(BitSet); isBits {
		return nil, r.shapeError(class, command, "scalar action cannot store a bit set")
	}
	return fields[0], nil
}

func (r *Resolver) resolveSensor(class, command byte, fields []Field) (*Value, error) {
	if len(fields) != 2 {
		return nil, r.shapeError(class, command, "sensor action needs a type and a reading")
	}
	sensorType, ok := fields[0].(int64)
	if !ok {
		return nil, r.shapeError(class, command, "sensor type field is not an integer")
	}
	reading, ok := fields[1].(Reading)
	if !ok {
		return nil, r.shapeError(class, command, "sensor reading field has the wrong shape")
	}
	kind, unit, ok := sensorKindUnit(byte(sensorType), reading.Scale)
	if !ok {
		r.log.Warn().
			Str("command", CommandName(class, command)).
			Int64("sensor_type", sensorType).
			Uint8("scale", reading.Scale).
			Msg("unresolved sensor unit")
		return nil, &ResolveError{
			Kind:   UnresolvedUnit,
			Key:    MakeKey(class, command),
			Detail: "no unit for sensor type " + hexByte(byte(sensorType)),
		}
	}
	return &Value{Kind: kind, Unit: unit, Val: reading.Value}, nil
}

func (r *Resolver) resolveMeter(class, command byte, fields []Field) (*Value, error) {
	if len(fields) != 1 {
		return nil, r.shapeError(class, command, "meter action needs exactly one meter tuple")
	}
	meter, ok := fields[0].(MeterReading)
	if !ok {
		return nil, r.shapeError(class, command, "meter field has the wrong shape")
	}
	if !meter.HasValue {
		return nil, r.shapeError(class, command, "meter tuple carries no reading")
	}
	kind, unit, ok := meterKindUnit(meter.Type, meter.Scale)
	if !ok {
		r.log.Warn().
			Str("command", CommandName(class, command)).
			Uint8("meter_type", meter.Type).
			Uint8("scale", meter.Scale).
			Msg("unresolved meter unit")
		return nil, &ResolveError{
			Kind:   UnresolvedUnit,
			Key:    MakeKey(class, command),
			Detail: "no unit for meter type " + hexByte(meter.Type),
		}
	}
	value := &Value{Kind: kind, Unit: unit, Val: meter.Value}
	if meter.HasDelta {
		value.DeltaTime = meter.DeltaTime
	}
	if meter.HasPrevious {
		value.PrevVal = meter.Previous
	}
	return value, nil
}

func (r *Resolver) splitMapKey(class, command byte, action Action, fields []Field) (int64, []Field, error) {
	if action.KeyIndex >= len(fields) {
		return 0, nil, r.shapeError(class, command, "map action key index out of range")
	}
	key, ok := fields[action.KeyIndex].(int64)
	if !ok {
		return 0, nil, r.shapeError(class, command, "map key field is not an integer")
	}
	payload := make([]Field, 0, len(fields)-1)
	for i, f := range fields {
		if i == action.KeyIndex {
			continue
		}
		payload = append(payload, f)
	}
	return key, payload, nil
}

func (r *Resolver) shapeError(class, command byte, detail string) error {
	r.log.Warn().
		Str("command", CommandName(class, command)).
		Str("detail", detail).
		Msg("field shape mismatch")
	return &ResolveError{
		Kind:   FieldShapeMismatch,
		Key:    MakeKey(class, command),
		Detail: detail,
	}
}

func copyFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// sensorKindUnit resolves a sensor type byte and scale to a kind name
// and unit, rejecting unused slots.
func sensorKindUnit(sensorType, scale byte) (string, string, bool) {
	name := SensorTypeName(int(sensorType))
	if name == KindInvalid {
		return "", "", false
	}
	unit, ok := SensorUnit(int(sensorType), int(scale))
	if !ok {
		return "", "", false
	}
	return name, unit, true
}

func meterKindUnit(meterType, scale byte) (string, string, bool) {
	name := MeterTypeName(int(meterType))
	if name == KindInvalid {
		return "", "", false
	}
	unit, ok := MeterUnit(int(meterType), int(scale))
	if !ok {
		return "", "", false
	}
	return name, unit, true
}
