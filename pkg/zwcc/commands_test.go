// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"bytes"
	"testing"
)

func TestCommandBuilders(t *testing.T) {
	two := uint8(2)

	tests := []struct {
		name  string
		frame []byte
		want  []byte
	}{
		{
			name:  "basic get",
			frame: NewBasicGet(),
			want:  []byte{0x20, 0x02},
		},
		{
			name:  "basic set",
			frame: NewBasicSet(99),
			want:  []byte{0x20, 0x01, 0x63},
		},
		{
			name:  "switch binary on",
			frame: NewSwitchBinarySet(true),
			want:  []byte{0x25, 0x01, 0xFF},
		},
		{
			name:  "switch binary off",
			frame: NewSwitchBinarySet(false),
			want:  []byte{0x25, 0x01, 0x00},
		},
		{
			name:  "switch multilevel with duration",
			frame: NewSwitchMultilevelSet(50, &two),
			want:  []byte{0x26, 0x01, 0x32, 0x02},
		},
		{
			name:  "switch multilevel without duration",
			frame: NewSwitchMultilevelSet(50, nil),
			want:  []byte{0x26, 0x01, 0x32},
		},
		{
			name:  "sensor multilevel get",
			frame: NewSensorMultilevelGet(),
			want:  []byte{0x31, 0x04},
		},
		{
			name:  "meter get default scale",
			frame: NewMeterGet(nil),
			want:  []byte{0x32, 0x01},
		},
		{
			name:  "meter get scale 2",
			frame: NewMeterGet(&two),
			want:  []byte{0x32, 0x01, 0x10},
		},
		{
			name:  "configuration get",
			frame: NewConfigurationGet(7),
			want:  []byte{0x70, 0x05, 0x07},
		},
		{
			name:  "configuration set two bytes",
			frame: NewConfigurationSet(7, 2, -1),
			want:  []byte{0x70, 0x04, 0x07, 0x02, 0xFF, 0xFF},
		},
		{
			name:  "association set",
			frame: NewAssociationSet(1, []byte{2, 3}),
			want:  []byte{0x85, 0x01, 0x01, 0x02, 0x03},
		},
		{
			name:  "association remove",
			frame: NewAssociationRemove(1, []byte{3}),
			want:  []byte{0x85, 0x04, 0x01, 0x03},
		},
		{
			name:  "version get",
			frame: NewVersionGet(),
			want:  []byte{0x86, 0x11},
		},
		{
			name:  "version command class get",
			frame: NewVersionCommandClassGet(0x25),
			want:  []byte{0x86, 0x13, 0x25},
		},
		{
			name:  "manufacturer specific get",
			frame: NewManufacturerSpecificGet(),
			want:  []byte{0x72, 0x04},
		},
		{
			// 3600 seconds occupies three big-endian bytes, then the
			// notification node id.
			name:  "wake up interval set",
			frame: NewWakeUpIntervalSet(3600, 1),
			want:  []byte{0x84, 0x04, 0x00, 0x0E, 0x10, 0x01},
		},
		{
			name:  "wake up no more information",
			frame: NewWakeUpNoMoreInformation(),
			want:  []byte{0x84, 0x08},
		},
		{
			name:  "battery get",
			frame: NewBatteryGet(),
			want:  []byte{0x80, 0x02},
		},
		{
			name:  "thermostat mode set",
			frame: NewThermostatModeSet(1),
			want:  []byte{0x40, 0x01, 0x01},
		},
		{
			name:  "node naming set ascii",
			frame: NewNodeNamingSet("Lamp"),
			want:  []byte{0x77, 0x01, 0x00, 'L', 'a', 'm', 'p'},
		},
		{
			name:  "security nonce get",
			frame: NewSecurityNonceGet(),
			want:  []byte{0x98, 0x40},
		},
		{
			name:  "security nonce report",
			frame: NewSecurityNonceReport([]byte{1, 2, 3, 4, 5, 6, 7, 8}),
			want:  []byte{0x98, 0x80, 1, 2, 3, 4, 5, 6, 7, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.frame, tt.want) {
				t.Errorf("frame = % X, want % X", tt.frame, tt.want)
			}
		})
	}
}

func TestCommandBuilders_Decodable(t *testing.T) {
	dt := DateTime{Year: 2026, Month: 8, Day: 26, Hour: 12, Minute: 30, Second: 0}

	frames := [][]byte{
		NewBasicGet(),
		NewMeterReset(),
		NewTimeParametersSet(dt),
		NewSecuritySchemeGet(0),
		NewSecurityNetworkKeySet(bytes.Repeat([]byte{0xAA}, 16)),
	}

	for _, frame := range frames {
		if _, _, err := ParseFrame(frame); err != nil {
			t.Errorf("ParseFrame(% X) = %v", frame, err)
		}
	}
}
