// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "strings"

// FieldTag identifies the wire encoding of one schema entry. The set is
// closed: every tag has exactly one decoder and one encoder, and the
// codec switches over it exhaustively.
type FieldTag int

const (
	// TagByte is a single unsigned byte.
	TagByte FieldTag = iota
	// TagWord is a big-endian 16-bit unsigned integer.
	TagWord
	// TagValue is a conf byte (low 3 bits = width 1/2/4) followed by a
	// signed magnitude of that width.
	TagValue
	// TagSensor is a scaled sensor reading: precision/scale/size byte
	// followed by a signed magnitude.
	TagSensor
	// TagMeter is the meter tuple: type byte, current reading, then an
	// optional time delta and optional previous reading.
	TagMeter
	// TagDate is a 7-byte calendar timestamp.
	TagDate
	// TagString is a length-prefixed byte string.
	TagString
	// TagStringEnc packs a 3-bit encoding selector and 5-bit length
	// into one byte, followed by the string bytes.
	TagStringEnc
	// TagName is an encoding-selector byte followed by the rest of the
	// buffer, decoded to text.
	TagName
	// TagNonce is a fixed 8-byte security nonce.
	TagNonce
	// TagBits is a byte-length-prefixed bit vector.
	TagBits
	// TagBitsRest is a bit vector consuming the rest of the buffer.
	TagBitsRest
	// TagBlobRest is a raw byte blob consuming the rest of the buffer.
	TagBlobRest
	// TagIntRest is a little-endian unsigned integer assembled from
	// all remaining bytes.
	TagIntRest
	// TagKey is a fixed 16-byte network key.
	TagKey
	// TagOptionalByte is a trailing byte that may be absent; on encode
	// a nil argument emits nothing.
	TagOptionalByte
)

var fieldTagNames = [...]string{
	TagByte:         "Byte",
	TagWord:         "Word",
	TagValue:        "Value",
	TagSensor:       "Sensor",
	TagMeter:        "Meter",
	TagDate:         "Date",
	TagString:       "String",
	TagStringEnc:    "StringEnc",
	TagName:         "Name",
	TagNonce:        "Nonce",
	TagBits:         "Bits",
	TagBitsRest:     "BitsRest",
	TagBlobRest:     "BlobRest",
	TagIntRest:      "IntRest",
	TagKey:          "Key",
	TagOptionalByte: "OptionalByte",
}

func (t FieldTag) String() string {
	if int(t) < len(fieldTagNames) {
		return fieldTagNames[t]
	}
	return "Tag?"
}

// Schema is the ordered field layout of one command's body. The same
// schema drives both decode and encode.
type Schema []FieldTag

// commandSchemas maps every known (class, command) pair to its body
// layout. An empty schema means the command carries no body. Built once
// and read-only thereafter.
var commandSchemas = map[Key]Schema{
	MakeKey(ClassBasic, BasicSet):    {TagByte},
	MakeKey(ClassBasic, BasicGet):    {},
	MakeKey(ClassBasic, BasicReport): {TagByte},

	MakeKey(ClassApplicationStatus, ApplicationStatusBusy):            {TagByte, TagByte},
	MakeKey(ClassApplicationStatus, ApplicationStatusRejectedRequest): {TagByte},

	MakeKey(ClassSwitchBinary, SwitchBinarySet):    {TagByte},
	MakeKey(ClassSwitchBinary, SwitchBinaryGet):    {},
	MakeKey(ClassSwitchBinary, SwitchBinaryReport): {TagByte},

	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSet):              {TagByte, TagOptionalByte},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelGet):              {},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelReport):           {TagByte},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelStartLevelChange): {TagByte, TagByte},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelStopLevelChange):  {},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSupportedGet):     {},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSupportedReport):  {TagByte, TagByte},

	MakeKey(ClassSwitchAll, SwitchAllSet):    {TagByte},
	MakeKey(ClassSwitchAll, SwitchAllGet):    {},
	MakeKey(ClassSwitchAll, SwitchAllReport): {TagByte},
	MakeKey(ClassSwitchAll, SwitchAllOn):     {},
	MakeKey(ClassSwitchAll, SwitchAllOff):    {},

	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinarySet):    {},
	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinaryGet):    {},
	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinaryReport): {TagByte},

	MakeKey(ClassSceneActivation, SceneActivationSet): {TagByte, TagByte},

	MakeKey(ClassSceneActuatorConf, SceneActuatorConfSet):    {TagByte, TagByte, TagByte, TagByte},
	MakeKey(ClassSceneActuatorConf, SceneActuatorConfGet):    {TagByte},
	MakeKey(ClassSceneActuatorConf, SceneActuatorConfReport): {TagByte, TagByte, TagByte},

	MakeKey(ClassSceneControllerConf, SceneControllerConfSet):    {TagByte, TagByte, TagByte},
	MakeKey(ClassSceneControllerConf, SceneControllerConfGet):    {TagByte},
	MakeKey(ClassSceneControllerConf, SceneControllerConfReport): {TagByte, TagByte, TagByte},

	MakeKey(ClassSensorBinary, SensorBinaryGet):    {},
	MakeKey(ClassSensorBinary, SensorBinaryReport): {TagByte},

	MakeKey(ClassSensorMultilevel, SensorMultilevelSupportedGet):    {},
	MakeKey(ClassSensorMultilevel, SensorMultilevelSupportedReport): {TagBitsRest},
	MakeKey(ClassSensorMultilevel, SensorMultilevelGet):             {},
	MakeKey(ClassSensorMultilevel, SensorMultilevelReport):          {TagByte, TagSensor},

	MakeKey(ClassMeter, MeterGet):             {TagOptionalByte},
	MakeKey(ClassMeter, MeterReport):          {TagMeter},
	MakeKey(ClassMeter, MeterSupportedGet):    {},
	MakeKey(ClassMeter, MeterSupportedReport): {TagByte, TagByte},
	MakeKey(ClassMeter, MeterReset):           {},

	MakeKey(ClassColorSwitch, ColorSwitchSupportedGet):    {},
	MakeKey(ClassColorSwitch, ColorSwitchSupportedReport): {TagBitsRest},
	MakeKey(ClassColorSwitch, ColorSwitchGet):             {TagByte},
	MakeKey(ClassColorSwitch, ColorSwitchReport):          {TagByte, TagByte},
	MakeKey(ClassColorSwitch, ColorSwitchSet):             {TagBlobRest},

	MakeKey(ClassThermostatMode, ThermostatModeSet):    {TagByte},
	MakeKey(ClassThermostatMode, ThermostatModeGet):    {},
	MakeKey(ClassThermostatMode, ThermostatModeReport): {TagByte},

	MakeKey(ClassDoorLockLogging, DoorLockLoggingSupportedGet):    {},
	MakeKey(ClassDoorLockLogging, DoorLockLoggingSupportedReport): {TagByte},
	MakeKey(ClassDoorLockLogging, DoorLockLoggingRecordGet):       {TagByte},
	MakeKey(ClassDoorLockLogging, DoorLockLoggingReport):          {TagByte, TagDate, TagByte, TagByte, TagString},

	MakeKey(ClassZwavePlusInfo, ZwavePlusInfoGet):    {},
	MakeKey(ClassZwavePlusInfo, ZwavePlusInfoReport): {TagByte, TagByte, TagByte, TagWord, TagWord},

	MakeKey(ClassMultiInstance, MultiInstanceGet):                   {TagByte},
	MakeKey(ClassMultiInstance, MultiInstanceReport):                {TagByte, TagByte},
	MakeKey(ClassMultiInstance, MultiInstanceChannelEndPointGet):    {},
	MakeKey(ClassMultiInstance, MultiInstanceChannelEndPointReport): {TagByte, TagByte, TagByte},

	MakeKey(ClassDoorLock, DoorLockSet):                 {TagByte},
	MakeKey(ClassDoorLock, DoorLockGet):                 {},
	MakeKey(ClassDoorLock, DoorLockReport):              {TagByte},
	MakeKey(ClassDoorLock, DoorLockConfigurationSet):    {TagByte, TagByte, TagByte, TagByte},
	MakeKey(ClassDoorLock, DoorLockConfigurationGet):    {},
	MakeKey(ClassDoorLock, DoorLockConfigurationReport): {TagByte, TagByte, TagByte, TagByte},

	MakeKey(ClassUserCode, UserCodeSet):          {TagByte, TagByte, TagBlobRest},
	MakeKey(ClassUserCode, UserCodeGet):          {TagByte},
	MakeKey(ClassUserCode, UserCodeReport):       {TagByte, TagByte, TagBlobRest},
	MakeKey(ClassUserCode, UserCodeNumberGet):    {},
	MakeKey(ClassUserCode, UserCodeNumberReport): {TagByte},

	MakeKey(ClassConfiguration, ConfigurationSet):    {TagByte, TagValue},
	MakeKey(ClassConfiguration, ConfigurationGet):    {TagByte},
	MakeKey(ClassConfiguration, ConfigurationReport): {TagByte, TagValue},

	MakeKey(ClassAlarm, AlarmGet):             {TagByte},
	MakeKey(ClassAlarm, AlarmReport):          {TagByte, TagByte},
	MakeKey(ClassAlarm, AlarmSet):             {TagByte, TagByte},
	MakeKey(ClassAlarm, AlarmSupportedGet):    {},
	MakeKey(ClassAlarm, AlarmSupportedReport): {TagByte, TagBitsRest},

	MakeKey(ClassManufacturerSpec, ManufacturerSpecificGet):          {},
	MakeKey(ClassManufacturerSpec, ManufacturerSpecificReport):       {TagWord, TagWord, TagWord},
	MakeKey(ClassManufacturerSpec, ManufacturerDeviceSpecificGet):    {TagByte},
	MakeKey(ClassManufacturerSpec, ManufacturerDeviceSpecificReport): {TagByte, TagByte, TagBlobRest},

	MakeKey(ClassPowerlevel, PowerlevelSet):    {TagByte, TagByte},
	MakeKey(ClassPowerlevel, PowerlevelGet):    {},
	MakeKey(ClassPowerlevel, PowerlevelReport): {TagByte, TagByte},

	MakeKey(ClassProtection, ProtectionSet):    {TagByte},
	MakeKey(ClassProtection, ProtectionGet):    {},
	MakeKey(ClassProtection, ProtectionReport): {TagByte},

	MakeKey(ClassLock, LockSet):    {TagByte},
	MakeKey(ClassLock, LockGet):    {},
	MakeKey(ClassLock, LockReport): {TagByte},

	MakeKey(ClassNodeNaming, NodeNamingSet):            {TagName},
	MakeKey(ClassNodeNaming, NodeNamingGet):            {},
	MakeKey(ClassNodeNaming, NodeNamingReport):         {TagName},
	MakeKey(ClassNodeNaming, NodeNamingLocationSet):    {TagName},
	MakeKey(ClassNodeNaming, NodeNamingLocationGet):    {},
	MakeKey(ClassNodeNaming, NodeNamingLocationReport): {TagName},

	MakeKey(ClassFirmware, FirmwareMetadataGet):    {},
	MakeKey(ClassFirmware, FirmwareMetadataReport): {TagWord, TagWord, TagWord},

	MakeKey(ClassBattery, BatteryGet):    {},
	MakeKey(ClassBattery, BatteryReport): {TagByte},

	MakeKey(ClassClock, ClockSet):    {TagByte, TagByte},
	MakeKey(ClassClock, ClockGet):    {},
	MakeKey(ClassClock, ClockReport): {TagByte, TagByte},

	MakeKey(ClassHail, HailHail): {},

	MakeKey(ClassWakeUp, WakeUpIntervalSet):                {TagBlobRest},
	MakeKey(ClassWakeUp, WakeUpIntervalGet):                {},
	MakeKey(ClassWakeUp, WakeUpIntervalReport):             {TagBlobRest},
	MakeKey(ClassWakeUp, WakeUpNotification):               {},
	MakeKey(ClassWakeUp, WakeUpNoMoreInformation):          {},
	MakeKey(ClassWakeUp, WakeUpIntervalCapabilitiesGet):    {},
	MakeKey(ClassWakeUp, WakeUpIntervalCapabilitiesReport): {TagBlobRest},

	MakeKey(ClassAssociation, AssociationSet):             {TagByte, TagBlobRest},
	MakeKey(ClassAssociation, AssociationGet):             {TagByte},
	MakeKey(ClassAssociation, AssociationReport):          {TagByte, TagByte, TagByte, TagBlobRest},
	MakeKey(ClassAssociation, AssociationRemove):          {TagByte, TagBlobRest},
	MakeKey(ClassAssociation, AssociationGroupingsGet):    {},
	MakeKey(ClassAssociation, AssociationGroupingsReport): {TagByte},

	MakeKey(ClassVersion, VersionGet):                {},
	MakeKey(ClassVersion, VersionReport):             {TagByte, TagByte, TagByte, TagByte, TagByte},
	MakeKey(ClassVersion, VersionCommandClassGet):    {TagByte},
	MakeKey(ClassVersion, VersionCommandClassReport): {TagByte, TagByte},

	MakeKey(ClassIndicator, IndicatorSet):    {TagByte},
	MakeKey(ClassIndicator, IndicatorGet):    {},
	MakeKey(ClassIndicator, IndicatorReport): {TagByte},

	MakeKey(ClassTimeParameters, TimeParametersSet):    {TagDate},
	MakeKey(ClassTimeParameters, TimeParametersGet):    {},
	MakeKey(ClassTimeParameters, TimeParametersReport): {TagDate},

	MakeKey(ClassSecurity, SecuritySupportedGet):         {},
	MakeKey(ClassSecurity, SecuritySupportedReport):      {TagByte, TagBlobRest},
	MakeKey(ClassSecurity, SecuritySchemeGet):            {TagByte},
	MakeKey(ClassSecurity, SecuritySchemeReport):         {TagByte},
	MakeKey(ClassSecurity, SecurityNetworkKeySet):        {TagKey},
	MakeKey(ClassSecurity, SecurityNetworkKeyVerify):     {},
	MakeKey(ClassSecurity, SecurityNonceGet):             {},
	MakeKey(ClassSecurity, SecurityNonceReport):          {TagNonce},
	MakeKey(ClassSecurity, SecurityMessageEncap):         {TagBlobRest},
	MakeKey(ClassSecurity, SecurityMessageEncapNonceGet): {TagBlobRest},

	MakeKey(ClassSensorAlarm, SensorAlarmGet):             {TagByte},
	MakeKey(ClassSensorAlarm, SensorAlarmReport):          {TagByte, TagByte, TagByte, TagWord},
	MakeKey(ClassSensorAlarm, SensorAlarmSupportedGet):    {},
	MakeKey(ClassSensorAlarm, SensorAlarmSupportedReport): {TagBits},
}

// LookupSchema returns the body layout for a (class, command) pair.
func LookupSchema(class, command byte) (Schema, bool) {
	s, ok := commandSchemas[MakeKey(class, command)]
	return s, ok
}

// CommandName returns the canonical display name for a (class, command)
// pair, or a hex placeholder for unregistered pairs.
func CommandName(class, command byte) string {
	if name, ok := commandNames[MakeKey(class, command)]; ok {
		return name
	}
	return "Unknown_" + hexByte(class) + "_" + hexByte(command)
}

// ValueName derives the value-kind label for a command: its display
// name with any Report suffix stripped, so Battery_Report and a future
// BatteryReport both store under "Battery".
func ValueName(class, command byte) string {
	name := CommandName(class, command)
	name = strings.TrimSuffix(name, "_Report")
	name = strings.TrimSuffix(name, "Report")
	return name
}

const hexDigits = "0123456789ABCDEF"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}
