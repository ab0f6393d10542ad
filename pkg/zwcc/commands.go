// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

// Command builder functions assemble ready-to-send application frames.
// These are convenience wrappers around AssembleFrame for the requests
// a controller commonly issues during interview and control. Like
// AssembleFrame itself they panic with *ArgumentError on bad arguments,
// so callers constructing frames from untrusted input should recover.

// NewBasicGet requests the current basic level.
func NewBasicGet() []byte {
	return AssembleFrame(ClassBasic, BasicGet, nil)
}

// NewBasicSet sets the basic level. Level 0 is off, 255 is on,
// 1..99 are dimmer positions.
func NewBasicSet(level uint8) []byte {
	return AssembleFrame(ClassBasic, BasicSet, []Field{int64(level)})
}

// NewSwitchBinarySet turns a binary switch on or off.
func NewSwitchBinarySet(on bool) []byte {
	level := int64(0)
	if on {
		level = 255
	}
	return AssembleFrame(ClassSwitchBinary, SwitchBinarySet, []Field{level})
}

// NewSwitchMultilevelSet sets a multilevel switch. A nil duration omits
// the dimming-duration byte for devices that predate it.
func NewSwitchMultilevelSet(level uint8, duration *uint8) []byte {
	var d Field
	if duration != nil {
		d = int64(*duration)
	}
	return AssembleFrame(ClassSwitchMultilevel, SwitchMultilevelSet, []Field{int64(level), d})
}

// NewSensorMultilevelGet requests the current sensor reading.
func NewSensorMultilevelGet() []byte {
	return AssembleFrame(ClassSensorMultilevel, SensorMultilevelGet, nil)
}

// NewMeterGet requests a meter reading. A nil scale omits the scale
// selector byte and returns the device's default scale.
func NewMeterGet(scale *uint8) []byte {
	var s Field
	if scale != nil {
		s = int64(*scale) << 3
	}
	return AssembleFrame(ClassMeter, MeterGet, []Field{s})
}

// NewMeterReset clears accumulated meter values.
func NewMeterReset() []byte {
	return AssembleFrame(ClassMeter, MeterReset, nil)
}

// NewConfigurationGet reads one configuration parameter.
func NewConfigurationGet(parameter uint8) []byte {
	return AssembleFrame(ClassConfiguration, ConfigurationGet, []Field{int64(parameter)})
}

// NewConfigurationSet writes one configuration parameter. The value is
// sent with the narrowest width that represents it.
func NewConfigurationSet(parameter uint8, size uint8, value int64) []byte {
	return AssembleFrame(ClassConfiguration, ConfigurationSet,
		[]Field{int64(parameter), SizedValue{Size: size, Value: value}})
}

// NewAssociationGet reads the node list of an association group.
func NewAssociationGet(group uint8) []byte {
	return AssembleFrame(ClassAssociation, AssociationGet, []Field{int64(group)})
}

// NewAssociationSet adds nodes to an association group.
func NewAssociationSet(group uint8, nodes []byte) []byte {
	return AssembleFrame(ClassAssociation, AssociationSet, []Field{int64(group), nodes})
}

// NewAssociationRemove removes nodes from an association group.
func NewAssociationRemove(group uint8, nodes []byte) []byte {
	return AssembleFrame(ClassAssociation, AssociationRemove, []Field{int64(group), nodes})
}

// NewVersionGet requests library, protocol and application versions.
func NewVersionGet() []byte {
	return AssembleFrame(ClassVersion, VersionGet, nil)
}

// NewVersionCommandClassGet requests the implemented version of one
// command class.
func NewVersionCommandClassGet(class uint8) []byte {
	return AssembleFrame(ClassVersion, VersionCommandClassGet, []Field{int64(class)})
}

// NewManufacturerSpecificGet requests manufacturer, product type and
// product id. The report completes the interview.
func NewManufacturerSpecificGet() []byte {
	return AssembleFrame(ClassManufacturerSpec, ManufacturerSpecificGet, nil)
}

// NewWakeUpIntervalSet configures the wake-up interval in seconds and
// the node that receives wake-up notifications. The interval occupies
// three big-endian bytes on the wire.
func NewWakeUpIntervalSet(seconds uint32, node uint8) []byte {
	body := []byte{byte(seconds >> 16), byte(seconds >> 8), byte(seconds), node}
	return AssembleFrame(ClassWakeUp, WakeUpIntervalSet, []Field{body})
}

// NewWakeUpNoMoreInformation tells a sleeping node it may return to
// sleep.
func NewWakeUpNoMoreInformation() []byte {
	return AssembleFrame(ClassWakeUp, WakeUpNoMoreInformation, nil)
}

// NewBatteryGet requests the battery level.
func NewBatteryGet() []byte {
	return AssembleFrame(ClassBattery, BatteryGet, nil)
}

// NewThermostatModeSet selects a thermostat operating mode.
func NewThermostatModeSet(mode uint8) []byte {
	return AssembleFrame(ClassThermostatMode, ThermostatModeSet, []Field{int64(mode)})
}

// NewNodeNamingSet assigns a human-readable node name. The narrowest
// encoding that represents the name is chosen on the wire.
func NewNodeNamingSet(name string) []byte {
	return AssembleFrame(ClassNodeNaming, NodeNamingSet, []Field{name})
}

// NewTimeParametersSet writes the device clock.
func NewTimeParametersSet(dt DateTime) []byte {
	return AssembleFrame(ClassTimeParameters, TimeParametersSet, []Field{dt})
}

// NewSecurityNonceGet requests a fresh nonce for an encapsulated
// exchange.
func NewSecurityNonceGet() []byte {
	return AssembleFrame(ClassSecurity, SecurityNonceGet, nil)
}

// NewSecurityNonceReport answers a nonce request with the given 8-byte
// nonce.
func NewSecurityNonceReport(nonce []byte) []byte {
	return AssembleFrame(ClassSecurity, SecurityNonceReport, []Field{nonce})
}

// NewSecuritySchemeGet opens the security scheme negotiation.
func NewSecuritySchemeGet(scheme uint8) []byte {
	return AssembleFrame(ClassSecurity, SecuritySchemeGet, []Field{int64(scheme)})
}

// NewSecurityNetworkKeySet transports the 16-byte network key during
// secure inclusion. Only ever sent inside an encapsulated frame.
func NewSecurityNetworkKeySet(key []byte) []byte {
	return AssembleFrame(ClassSecurity, SecurityNetworkKeySet, []Field{key})
}
