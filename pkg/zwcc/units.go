// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "fmt"

// UnitNone marks a dimensionless value. Distinct from unitUnused: some
// sensor rows (Direction, Ultraviolet) legitimately report without a
// unit, while an unused slot means the kind+scale pair does not exist
// and must resolve to an UnresolvedUnit error, never a silent default.
const (
	UnitNone  = ""
	UnitLevel = "level"

	unitUnused = "@unused@"
)

// Sensor kind labels shared between the unit tables and the sensor
// store actions.
const (
	KindInvalid          = "@invalid@"
	KindBasic            = "Basic"
	KindBattery          = "Battery"
	KindSwitchBinary     = "SwitchBinary"
	KindSwitchMultilevel = "SwitchMultilevel"
	KindSwitchToggle     = "SwitchToggle"
	KindTemperature      = "Temperature"
	KindRelativeHumidity = "Relative Humidity"
	KindElectric         = "Electric"
	KindGas              = "Gas"
	KindWater            = "Water"
)

// SensorType is one row of the multilevel-sensor table: a kind label
// and the unit for each of the four wire scale codes.
type SensorType struct {
	Kind  string
	Units [4]string
}

// sensorTypes is indexed by the sensor kind code from the wire.
var sensorTypes = []SensorType{
	{KindInvalid, [4]string{unitUnused, unitUnused, unitUnused, unitUnused}},
	{KindTemperature, [4]string{"C", "F", unitUnused, unitUnused}},
	{"General", [4]string{"%", unitUnused, unitUnused, unitUnused}},
	{"Luminance", [4]string{"%", "lux", unitUnused, unitUnused}},
	// 4
	{"Power", [4]string{"W", "BTU/h", unitUnused, unitUnused}},
	{KindRelativeHumidity, [4]string{"%", unitUnused, unitUnused, unitUnused}},
	{"Velocity", [4]string{"m/s", "mph", unitUnused, unitUnused}},
	{"Direction", [4]string{UnitNone, UnitNone, unitUnused, unitUnused}},
	// 8
	{"Atmospheric Pressure", [4]string{"kPa", "inHg", unitUnused, unitUnused}},
	{"Barometric Pressure", [4]string{"kPa", "inHg", unitUnused, unitUnused}},
	{"Solar Radiation", [4]string{"W/m2", unitUnused, unitUnused, unitUnused}},
	{"Dew Point", [4]string{"C", "F", unitUnused, unitUnused}},
	// 12
	{"Rain Rate", [4]string{"mm/h", "in/h", unitUnused, unitUnused}},
	{"Tide Level", [4]string{"m", "ft", unitUnused, unitUnused}},
	{"Weight", [4]string{"kg", "lb", unitUnused, unitUnused}},
	{"Voltage", [4]string{"V", "mV", unitUnused, unitUnused}},
	// 16
	{"Current", [4]string{"A", "mA", unitUnused, unitUnused}},
	{"CO2 Level", [4]string{"ppm", unitUnused, unitUnused, unitUnused}},
	{"Air Flow", [4]string{"m3/h", "cfm", unitUnused, unitUnused}},
	{"Tank Capacity", [4]string{"l", "cbm", "gal", unitUnused}},
	// 20
	{"Distance", [4]string{"m", "cm", "ft", unitUnused}},
	{"Angle Position", [4]string{"%", "deg N", "deg S", unitUnused}},
	{"Rotation", [4]string{"rpm", "Hz", unitUnused, unitUnused}},
	{"Water Temperature", [4]string{"C", "F", unitUnused, unitUnused}},
	// 24
	{"Soil Temperature", [4]string{"C", "F", unitUnused, unitUnused}},
	{"Seismic Intensity", [4]string{"mercalli", "EU macroseismic", "liedu", "shindo"}},
	{"Seismic Magnitude", [4]string{"local", "moment", "surface wave", "body wave"}},
	{"Ultraviolet", [4]string{UnitNone, UnitNone, unitUnused, unitUnused}},
	// 28
	{"Electrical Resistivity", [4]string{"ohm", unitUnused, unitUnused, unitUnused}},
	{"Electrical Conductivity", [4]string{"siemens/m", unitUnused, unitUnused, unitUnused}},
	{"Loudness", [4]string{"db", "dbA", unitUnused, unitUnused}},
	{"Moisture", [4]string{"%", "content", "k ohms", "water activity"}},
}

// MeterType is one row of the meter table: a kind label and the unit
// for each of the eight wire scale codes.
type MeterType struct {
	Kind  string
	Units [8]string
}

// meterTypes is indexed by the meter kind code from the wire.
var meterTypes = []MeterType{
	{KindInvalid, [8]string{unitUnused, unitUnused, unitUnused, unitUnused, unitUnused, unitUnused, unitUnused, unitUnused}},
	{KindElectric, [8]string{"kWh", "kVAh", "W", "Pulses", "V", "A", "Power-Factor", unitUnused}},
	{KindGas, [8]string{"m^3", "ft^3", unitUnused, "Pulses", unitUnused, unitUnused, unitUnused, unitUnused}},
	{KindWater, [8]string{"m^3", "ft^3", unitUnused, "Pulses", unitUnused, unitUnused, unitUnused, unitUnused}},
}

// SensorTypeName returns the kind label for a sensor kind code.
func SensorTypeName(kind int) string {
	if kind < 0 || kind >= len(sensorTypes) {
		return KindInvalid
	}
	return sensorTypes[kind].Kind
}

// SensorUnit resolves a sensor (kind, scale) pair. ok is false when the
// pair has no unit mapping.
func SensorUnit(kind, scale int) (unit string, ok bool) {
	if kind < 0 || kind >= len(sensorTypes) || scale < 0 || scale >= len(sensorTypes[kind].Units) {
		return "", false
	}
	u := sensorTypes[kind].Units[scale]
	if u == unitUnused {
		return "", false
	}
	return u, true
}

// MeterTypeName returns the kind label for a meter kind code.
func MeterTypeName(kind int) string {
	if kind < 0 || kind >= len(meterTypes) {
		return KindInvalid
	}
	return meterTypes[kind].Kind
}

// MeterUnit resolves a meter (kind, scale) pair. ok is false when the
// pair has no unit mapping.
func MeterUnit(kind, scale int) (unit string, ok bool) {
	if kind < 0 || kind >= len(meterTypes) || scale < 0 || scale >= len(meterTypes[kind].Units) {
		return "", false
	}
	u := meterTypes[kind].Units[scale]
	if u == unitUnused {
		return "", false
	}
	return u, true
}

// alarmTypes labels the low alarm type codes.
var alarmTypes = []string{
	"General",
	"Smoke",
	"Carbon Monoxide",
	"Carbon Dioxide",
	"Heat",
	"Flood",
}

// AlarmTypeName returns the label for an alarm type code.
func AlarmTypeName(t int) string {
	if t >= 0 && t < len(alarmTypes) {
		return alarmTypes[t]
	}
	return fmt.Sprintf("@UNKNOWN_ALARM[%d]@", t)
}

// ThermostatMode describes one thermostat mode code. Setpoint reports
// whether the mode accepts a target temperature.
type ThermostatMode struct {
	Name     string
	Setpoint bool
}

var thermostatModes = []ThermostatMode{
	{"Off", false},
	{"Heating", true},
	{"Cooling", true},
	{"Auto", false},
	{"Auxiliary Heat", false},
	{"Resume", false},
	{"Fan Only", false},
	{"Furnace", true},
	{"Dry Air", true},
	{"Moist Air", true},
	{"Auto Changeover", true},
	{"Heating Econ", true},
	{"Cooling Econ", true},
	{"Away Heating", true},
}

// ThermostatModeName returns the label for a thermostat mode code.
func ThermostatModeName(mode int) string {
	if mode >= 0 && mode < len(thermostatModes) {
		return thermostatModes[mode].Name
	}
	return fmt.Sprintf("@UNKNOWN_MODE[%d]@", mode)
}

// doorLogEvents labels door-lock logging event type codes.
var doorLogEvents = []string{
	"Lock: Access Code",
	"Unlock: Access Code",
	"Lock: Lock Button",
	"Unlock: Lock Button",
	"Lock Attempt: Out of Schedule Access Code",
	"Unlock Attempt: Out of Schedule Access Code",
	"Illegal Access Code Entered",
	"Lock: Manual",
	"Unlock: Manual",
	"Lock: Auto",
	"Unlock: Auto",
	"Lock: Remote Out of Schedule Access Code",
	"Unlock: Remote Out of Schedule Access Code",
	"Lock: Remote",
	"Unlock: Remote",
	"Lock Attempt: Remote Out of Schedule Access Code",
	"Unlock Attempt Remote Out of Schedule Access Code",
	"Illegal Remote Access Code",
	"Lock: Manual (2)",
	"Unlock: Manual (2)",
	"Lock Secured",
	"Lock Unsecured",
	"User Code Added",
	"User Code Deleted",
	"All User Codes Deleted",
	"Master Code Changed",
	"User Code Changed",
	"Lock Reset",
	"Configuration Changed",
	"Low Battery",
	"New Battery Installed",
}

// DoorLogEventName returns the label for a door-lock logging event code.
func DoorLogEventName(t int) string {
	if t >= 0 && t < len(doorLogEvents) {
		return doorLogEvents[t]
	}
	return fmt.Sprintf("@UNKNOWN_EVENT[%d]@", t)
}
