// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "testing"

func TestValueLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{
			name: "kind orders first",
			a:    Value{Kind: "Battery", Unit: UnitLevel, Val: int64(80)},
			b:    Value{Kind: "Temperature", Unit: "C", Val: int64(21)},
			want: true,
		},
		{
			name: "kind orders first reversed",
			a:    Value{Kind: "Temperature", Unit: "C"},
			b:    Value{Kind: "Battery", Unit: UnitLevel},
			want: false,
		},
		{
			name: "unit breaks kind ties",
			a:    Value{Kind: "Temperature", Unit: "C"},
			b:    Value{Kind: "Temperature", Unit: "F"},
			want: true,
		},
		{
			name: "equal kind and unit ignores payload",
			a:    Value{Kind: "Temperature", Unit: "C", Val: int64(5)},
			b:    Value{Kind: "Temperature", Unit: "C", Val: int64(30)},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}
