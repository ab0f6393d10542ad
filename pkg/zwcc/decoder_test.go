// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

// ============================================================
// Frame Header Tests
// ============================================================

func TestParseFrame_ShortHeader(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, {ClassBasic}} {
		_, _, err := ParseFrame(raw)
		var derr *DecodeError
		if !errors.As(err, &derr) || derr.Kind != TruncatedFrame {
			t.Errorf("ParseFrame(% X): expected TruncatedFrame, got %v", raw, err)
		}
	}
}

func TestParseFrame_UnknownCommand(t *testing.T) {
	_, _, err := ParseFrame([]byte{0xEE, 0x01})
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if derr.Kind != UnknownCommand {
		t.Errorf("expected UnknownCommand, got %v", derr.Kind)
	}
	if derr.Key != MakeKey(0xEE, 0x01) {
		t.Errorf("error key mismatch: %v", derr.Key)
	}
}

func TestParseFrame_BasicReport(t *testing.T) {
	key, fields, err := ParseFrame([]byte{ClassBasic, BasicReport, 0x63})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.Class() != ClassBasic || key.Command() != BasicReport {
		t.Errorf("key mismatch: %v", key)
	}
	if len(fields) != 1 || fields[0] != int64(0x63) {
		t.Errorf("fields mismatch: %v", fields)
	}
}

func TestParseFrame_AllOrNothing(t *testing.T) {
	// Second field truncated: no partial field list may escape.
	_, fields, err := ParseFrame([]byte{ClassConfiguration, ConfigurationReport, 0x07})
	if err == nil {
		t.Fatal("expected error for truncated frame")
	}
	if fields != nil {
		t.Errorf("partial fields returned on failure: %v", fields)
	}
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if derr.Index != 1 || derr.Offset != 3 {
		t.Errorf("error position mismatch: index=%d offset=%d", derr.Index, derr.Offset)
	}
}

// ============================================================
// Signed Magnitude Tests
// ============================================================

func TestDecodeSizedValue(t *testing.T) {
	tests := []struct {
		name string
		body []byte // size byte plus magnitude
		want SizedValue
	}{
		{"positive one byte", []byte{0x01, 0x2A}, SizedValue{Size: 1, Value: 42}},
		{"minimum one byte", []byte{0x01, 0x80}, SizedValue{Size: 1, Value: -128}},
		{"minus one two bytes", []byte{0x02, 0xFF, 0xFF}, SizedValue{Size: 2, Value: -1}},
		{"minus one four bytes", []byte{0x04, 0xFF, 0xFF, 0xFF, 0xFF}, SizedValue{Size: 4, Value: -1}},
		{"maximum four bytes", []byte{0x04, 0x7F, 0xFF, 0xFF, 0xFF}, SizedValue{Size: 4, Value: 1<<31 - 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{ClassConfiguration, ConfigurationReport, 0x07}, tt.body...)
			_, fields, err := ParseFrame(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fields[1].(SizedValue); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDecodeSizedValue_BadWidth(t *testing.T) {
	raw := []byte{ClassConfiguration, ConfigurationReport, 0x07, 0x03, 0x01, 0x02, 0x03}
	_, _, err := ParseFrame(raw)
	var derr *DecodeError
	if !errors.As(err, &derr) || derr.Kind != MalformedField {
		t.Errorf("expected MalformedField for width 3, got %v", err)
	}
}

// ============================================================
// Sensor Reading Tests
// ============================================================

func TestDecodeSensorReport(t *testing.T) {
	tests := []struct {
		name       string
		body       []byte // sensor type, conf, magnitude
		sensorType int64
		want       Reading
	}{
		{
			// precision 1, scale 0, size 2, magnitude 100
			name:       "temperature 10.0 C",
			body:       []byte{0x01, 0x22, 0x00, 0x64},
			sensorType: 1,
			want:       Reading{Scale: 0, Value: 10.0},
		},
		{
			// precision 0, scale 1, size 1
			name:       "temperature 77 F",
			body:       []byte{0x01, 0x09, 0x4D},
			sensorType: 1,
			want:       Reading{Scale: 1, Value: 77},
		},
		{
			// precision 2, scale 0, size 2, negative magnitude
			name:       "negative reading",
			body:       []byte{0x01, 0x42, 0xFF, 0x38},
			sensorType: 1,
			want:       Reading{Scale: 0, Value: -2.0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{ClassSensorMultilevel, SensorMultilevelReport}, tt.body...)
			_, fields, err := ParseFrame(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fields[0] != tt.sensorType {
				t.Errorf("sensor type mismatch: %v", fields[0])
			}
			if got := fields[1].(Reading); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDecodeSensorReport_Truncated(t *testing.T) {
	// conf byte promises 2 magnitude bytes, only 1 present
	raw := []byte{ClassSensorMultilevel, SensorMultilevelReport, 0x01, 0x22, 0x00}
	_, _, err := ParseFrame(raw)
	var derr *DecodeError
	if !errors.As(err, &derr) || derr.Kind != TruncatedFrame {
		t.Errorf("expected TruncatedFrame, got %v", err)
	}
}

// ============================================================
// Meter Tuple Tests
// ============================================================

func TestDecodeMeterReport(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want MeterReading
	}{
		{
			name: "type only",
			body: []byte{0x01},
			want: MeterReading{Type: 1},
		},
		{
			name: "reading",
			// electric, precision 1 scale 0 size 2, magnitude 1234
			body: []byte{0x01, 0x22, 0x04, 0xD2},
			want: MeterReading{Type: 1, Scale: 0, Value: 123.4, HasValue: true},
		},
		{
			name: "reading with delta and previous",
			body: []byte{0x01, 0x22, 0x04, 0xD2, 0x00, 0x3C, 0x22, 0x04, 0xC8},
			want: MeterReading{
				Type: 1, Scale: 0, Value: 123.4, HasValue: true,
				DeltaTime: 60, HasDelta: true,
				Previous: 122.4, HasPrevious: true,
			},
		},
		{
			// bit 7 of the type byte contributes scale bit 2
			name: "extra scale bit",
			body: []byte{0x81, 0x01, 0x2A},
			want: MeterReading{Type: 1, Scale: 4, Value: 42, HasValue: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{ClassMeter, MeterReport}, tt.body...)
			_, fields, err := ParseFrame(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fields[0].(MeterReading); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

// ============================================================
// Date Tests
// ============================================================

func TestDecodeDate(t *testing.T) {
	raw := []byte{ClassTimeParameters, TimeParametersReport, 0x07, 0xE9, 12, 31, 23, 59, 30}
	_, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DateTime{Year: 2025, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 30}
	if got := fields[0].(DateTime); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

// ============================================================
// Name Encoding Tests
// ============================================================

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want string
	}{
		{"ascii", append([]byte{0x00}, []byte("Porch Light")...), "Porch Light"},
		{"latin1", []byte{0x01, 'C', 'a', 'f', 0xE9}, "Café"},
		{"utf16be", []byte{0x02, 0x26, 0x03, 0x00, 0x21}, "☃!"},
		{"empty", []byte{0x00}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{ClassNodeNaming, NodeNamingReport}, tt.body...)
			_, fields, err := ParseFrame(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fields[0].(string); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodeName_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"high byte in ascii", []byte{0x00, 0x80}},
		{"odd utf16 payload", []byte{0x02, 0x26, 0x03, 0x00}},
		{"unknown selector", []byte{0x05, 'x'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{ClassNodeNaming, NodeNamingReport}, tt.body...)
			_, _, err := ParseFrame(raw)
			var derr *DecodeError
			if !errors.As(err, &derr) || derr.Kind != MalformedField {
				t.Errorf("expected MalformedField, got %v", err)
			}
		})
	}
}

// ============================================================
// Bit Vector Tests
// ============================================================

func TestDecodeBits(t *testing.T) {
	// length-prefixed vector: 0x05 sets bits 0 and 2
	raw := []byte{ClassSensorAlarm, SensorAlarmSupportedReport, 0x01, 0x05}
	_, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BitSet{0, 2}
	if got := fields[0].(BitSet); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDecodeBitsRest(t *testing.T) {
	raw := []byte{ClassSensorMultilevel, SensorMultilevelSupportedReport, 0x05, 0x01}
	_, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BitSet{0, 2, 8}
	got := fields[0].(BitSet)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	for _, n := range want {
		if !got.Contains(n) {
			t.Errorf("Contains(%d) = false", n)
		}
	}
	if got.Contains(1) {
		t.Error("Contains(1) = true")
	}
}

// ============================================================
// Fixed Width and Trailing Field Tests
// ============================================================

func TestDecodeNonce(t *testing.T) {
	nonce := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	raw := append([]byte{ClassSecurity, SecurityNonceReport}, nonce...)
	_, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fields[0], nonce) {
		t.Errorf("nonce mismatch: %v", fields[0])
	}

	_, _, err = ParseFrame(raw[:8])
	var derr *DecodeError
	if !errors.As(err, &derr) || derr.Kind != TruncatedFrame {
		t.Errorf("expected TruncatedFrame for short nonce, got %v", err)
	}
}

func TestDecodeOptionalByte(t *testing.T) {
	_, fields, err := ParseFrame([]byte{ClassMeter, MeterGet})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields[0] != nil {
		t.Errorf("expected absent optional byte, got %v", fields[0])
	}

	_, fields, err = ParseFrame([]byte{ClassMeter, MeterGet, 0x10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields[0] != int64(0x10) {
		t.Errorf("expected 0x10, got %v", fields[0])
	}
}

// ============================================================
// String and Integer Field Tests
// ============================================================

func TestDecodeString(t *testing.T) {
	// lock log record: number, 7-byte date, event, user id, then the
	// length-prefixed user code
	raw := []byte{ClassDoorLockLogging, DoorLockLoggingReport,
		0x01, 0x07, 0xEA, 0x08, 0x1A, 0x0C, 0x1E, 0x00, 0x01, 0x05, 0x04, '1', '2', '3', '4'}
	_, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fields[4].([]byte); !bytes.Equal(got, []byte("1234")) {
		t.Errorf("expected user code 1234, got % X", got)
	}

	// the length byte promises more bytes than remain
	_, _, err = ParseFrame(raw[:len(raw)-1])
	var derr *DecodeError
	if !errors.As(err, &derr) || derr.Kind != TruncatedFrame {
		t.Errorf("expected TruncatedFrame for short string, got %v", err)
	}
}

func TestDecodeString_Empty(t *testing.T) {
	_, field, ferr := decodeString([]byte{0x00}, 0)
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if got := field.([]byte); len(got) != 0 {
		t.Errorf("expected empty string, got % X", got)
	}
}

func TestDecodeStringEnc(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want EncodedString
	}{
		{"ascii", []byte{0x02, 'h', 'i'},
			EncodedString{Encoding: EncodingASCII, Data: []byte("hi")}},
		{"latin1", []byte{0x21, 0xE9},
			EncodedString{Encoding: EncodingLatin1, Data: []byte{0xE9}}},
		{"utf16be", []byte{0x42, 0x26, 0x03},
			EncodedString{Encoding: EncodingUTF16BE, Data: []byte{0x26, 0x03}}},
		{"empty", []byte{0x00},
			EncodedString{Encoding: EncodingASCII, Data: []byte{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, field, ferr := decodeStringEnc(tt.raw, 0)
			if ferr != nil {
				t.Fatalf("unexpected error: %v", ferr)
			}
			if next != len(tt.raw) {
				t.Errorf("consumed %d bytes, want %d", next, len(tt.raw))
			}
			if !reflect.DeepEqual(field, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, field)
			}
		})
	}
}

func TestDecodeStringEnc_Malformed(t *testing.T) {
	// encoding selector 3 is reserved
	if _, _, ferr := decodeStringEnc([]byte{0x61}, 0); ferr == nil || ferr.kind != MalformedField {
		t.Errorf("expected MalformedField for reserved selector, got %v", ferr)
	}
	// header promises two bytes, none follow
	if _, _, ferr := decodeStringEnc([]byte{0x02}, 0); ferr == nil || ferr.kind != TruncatedFrame {
		t.Errorf("expected TruncatedFrame for short body, got %v", ferr)
	}
}

func TestDecodeIntRest(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want int64
	}{
		{"empty", nil, 0},
		{"single byte", []byte{0x2A}, 42},
		{"little endian order", []byte{0x01, 0x02}, 0x0201},
		{"three bytes", []byte{0x10, 0x0E, 0x00}, 3600},
		{"max positive", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, 1<<63 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, field, ferr := decodeIntRest(tt.raw, 0)
			if ferr != nil {
				t.Fatalf("unexpected error: %v", ferr)
			}
			if next != len(tt.raw) {
				t.Errorf("consumed %d bytes, want %d", next, len(tt.raw))
			}
			if field != tt.want {
				t.Errorf("expected %d, got %v", tt.want, field)
			}
		})
	}
}

func TestDecodeIntRest_Overflow(t *testing.T) {
	// nine bytes never fit
	if _, _, ferr := decodeIntRest(make([]byte, 9), 0); ferr == nil || ferr.kind != MalformedField {
		t.Errorf("expected MalformedField for nine bytes, got %v", ferr)
	}
	// eight bytes with the top bit set exceed the signed range
	raw := []byte{0, 0, 0, 0, 0, 0, 0, 0x80}
	if _, _, ferr := decodeIntRest(raw, 0); ferr == nil || ferr.kind != MalformedField {
		t.Errorf("expected MalformedField for out-of-range value, got %v", ferr)
	}
}

func TestDecodeManufacturerReport(t *testing.T) {
	raw := []byte{ClassManufacturerSpec, ManufacturerSpecificReport, 0x01, 0x0E, 0x00, 0x02, 0x00, 0x30}
	_, fields, err := ParseFrame(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Field{int64(0x010E), int64(2), int64(0x30)}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("expected %v, got %v", want, fields)
	}
}
