// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

// Package zwcc implements the Z-Wave application command-class codec.
//
// An application command frame is a short byte sequence whose first two
// bytes name a (command class, command) pair and whose body layout is
// described by a per-command schema of field tags. This package decodes
// such frames into typed field values, assembles frames from typed
// arguments, and resolves decoded frames into semantic values (sensor
// readings, meter readings, events, interview-state signals, security
// handshake primitives) for a node state machine to consume.
package zwcc

// Command classes
const (
	ClassBasic               = 0x20
	ClassApplicationStatus   = 0x22
	ClassSwitchBinary        = 0x25
	ClassSwitchMultilevel    = 0x26
	ClassSwitchAll           = 0x27
	ClassSwitchToggleBinary  = 0x28
	ClassSceneActivation     = 0x2B
	ClassSceneActuatorConf   = 0x2C
	ClassSceneControllerConf = 0x2D
	ClassSensorBinary        = 0x30
	ClassSensorMultilevel    = 0x31
	ClassMeter               = 0x32
	ClassColorSwitch         = 0x33
	ClassThermostatMode      = 0x40
	ClassDoorLockLogging     = 0x4C
	ClassZwavePlusInfo       = 0x5E
	ClassMultiInstance       = 0x60
	ClassDoorLock            = 0x62
	ClassUserCode            = 0x63
	ClassConfiguration       = 0x70
	ClassAlarm               = 0x71
	ClassManufacturerSpec    = 0x72
	ClassPowerlevel          = 0x73
	ClassProtection          = 0x75
	ClassLock                = 0x76
	ClassNodeNaming          = 0x77
	ClassFirmware            = 0x7A
	ClassBattery             = 0x80
	ClassClock               = 0x81
	ClassHail                = 0x82
	ClassWakeUp              = 0x84
	ClassAssociation         = 0x85
	ClassVersion             = 0x86
	ClassIndicator           = 0x87
	ClassTimeParameters      = 0x8B
	ClassSecurity            = 0x98
	ClassSensorAlarm         = 0x9C
)

// Basic (0x20)
const (
	BasicSet    = 0x01
	BasicGet    = 0x02
	BasicReport = 0x03
)

// ApplicationStatus (0x22)
const (
	ApplicationStatusBusy            = 0x01
	ApplicationStatusRejectedRequest = 0x02
)

// SwitchBinary (0x25)
const (
	SwitchBinarySet    = 0x01
	SwitchBinaryGet    = 0x02
	SwitchBinaryReport = 0x03
)

// SwitchMultilevel (0x26)
const (
	SwitchMultilevelSet              = 0x01
	SwitchMultilevelGet              = 0x02
	SwitchMultilevelReport           = 0x03
	SwitchMultilevelStartLevelChange = 0x04
	SwitchMultilevelStopLevelChange  = 0x05
	SwitchMultilevelSupportedGet     = 0x06
	SwitchMultilevelSupportedReport  = 0x07
)

// SwitchAll (0x27)
const (
	SwitchAllSet    = 0x01
	SwitchAllGet    = 0x02
	SwitchAllReport = 0x03
	SwitchAllOn     = 0x04
	SwitchAllOff    = 0x05
)

// SwitchToggleBinary (0x28)
const (
	SwitchToggleBinarySet    = 0x01
	SwitchToggleBinaryGet    = 0x02
	SwitchToggleBinaryReport = 0x03
)

// SceneActivation (0x2B)
const (
	SceneActivationSet = 0x01
)

// SceneActuatorConf (0x2C)
const (
	SceneActuatorConfSet    = 0x01
	SceneActuatorConfGet    = 0x02
	SceneActuatorConfReport = 0x03
)

// SceneControllerConf (0x2D)
const (
	SceneControllerConfSet    = 0x01
	SceneControllerConfGet    = 0x02
	SceneControllerConfReport = 0x03
)

// SensorBinary (0x30)
const (
	SensorBinaryGet    = 0x02
	SensorBinaryReport = 0x03
)

// SensorMultilevel (0x31)
const (
	SensorMultilevelSupportedGet    = 0x01
	SensorMultilevelSupportedReport = 0x02
	SensorMultilevelGet             = 0x04
	SensorMultilevelReport          = 0x05
)

// Meter (0x32)
const (
	MeterGet             = 0x01
	MeterReport          = 0x02
	MeterSupportedGet    = 0x03
	MeterSupportedReport = 0x04
	MeterReset           = 0x05
)

// ColorSwitch (0x33)
const (
	ColorSwitchSupportedGet    = 0x01
	ColorSwitchSupportedReport = 0x02
	ColorSwitchGet             = 0x03
	ColorSwitchReport          = 0x04
	ColorSwitchSet             = 0x05
)

// ThermostatMode (0x40)
const (
	ThermostatModeSet    = 0x01
	ThermostatModeGet    = 0x02
	ThermostatModeReport = 0x03
)

// DoorLockLogging (0x4C)
const (
	DoorLockLoggingSupportedGet    = 0x01
	DoorLockLoggingSupportedReport = 0x02
	DoorLockLoggingRecordGet       = 0x03
	DoorLockLoggingReport          = 0x04
)

// ZwavePlusInfo (0x5E)
const (
	ZwavePlusInfoGet    = 0x01
	ZwavePlusInfoReport = 0x02
)

// MultiInstance (0x60)
const (
	MultiInstanceGet                   = 0x04
	MultiInstanceReport                = 0x05
	MultiInstanceChannelEndPointGet    = 0x07
	MultiInstanceChannelEndPointReport = 0x08
)

// DoorLock (0x62)
const (
	DoorLockSet                 = 0x01
	DoorLockGet                 = 0x02
	DoorLockReport              = 0x03
	DoorLockConfigurationSet    = 0x04
	DoorLockConfigurationGet    = 0x05
	DoorLockConfigurationReport = 0x06
)

// UserCode (0x63)
const (
	UserCodeSet          = 0x01
	UserCodeGet          = 0x02
	UserCodeReport       = 0x03
	UserCodeNumberGet    = 0x04
	UserCodeNumberReport = 0x05
)

// Configuration (0x70)
const (
	ConfigurationSet    = 0x04
	ConfigurationGet    = 0x05
	ConfigurationReport = 0x06
)

// Alarm (0x71)
const (
	AlarmGet             = 0x04
	AlarmReport          = 0x05
	AlarmSet             = 0x06
	AlarmSupportedGet    = 0x07
	AlarmSupportedReport = 0x08
)

// ManufacturerSpecific (0x72)
const (
	ManufacturerSpecificGet          = 0x04
	ManufacturerSpecificReport       = 0x05
	ManufacturerDeviceSpecificGet    = 0x06
	ManufacturerDeviceSpecificReport = 0x07
)

// Powerlevel (0x73)
const (
	PowerlevelSet    = 0x01
	PowerlevelGet    = 0x02
	PowerlevelReport = 0x03
)

// Protection (0x75)
const (
	ProtectionSet    = 0x01
	ProtectionGet    = 0x02
	ProtectionReport = 0x03
)

// Lock (0x76)
const (
	LockSet    = 0x01
	LockGet    = 0x02
	LockReport = 0x03
)

// NodeNaming (0x77)
const (
	NodeNamingSet            = 0x01
	NodeNamingGet            = 0x02
	NodeNamingReport         = 0x03
	NodeNamingLocationSet    = 0x04
	NodeNamingLocationGet    = 0x05
	NodeNamingLocationReport = 0x06
)

// Firmware metadata (0x7A)
const (
	FirmwareMetadataGet    = 0x01
	FirmwareMetadataReport = 0x02
)

// Battery (0x80)
const (
	BatteryGet    = 0x02
	BatteryReport = 0x03
)

// Clock (0x81)
const (
	ClockSet    = 0x04
	ClockGet    = 0x05
	ClockReport = 0x06
)

// Hail (0x82)
const (
	HailHail = 0x01
)

// WakeUp (0x84)
const (
	WakeUpIntervalSet                = 0x04
	WakeUpIntervalGet                = 0x05
	WakeUpIntervalReport             = 0x06
	WakeUpNotification               = 0x07
	WakeUpNoMoreInformation          = 0x08
	WakeUpIntervalCapabilitiesGet    = 0x09
	WakeUpIntervalCapabilitiesReport = 0x0A
)

// Association (0x85)
const (
	AssociationSet             = 0x01
	AssociationGet             = 0x02
	AssociationReport          = 0x03
	AssociationRemove          = 0x04
	AssociationGroupingsGet    = 0x05
	AssociationGroupingsReport = 0x06
)

// Version (0x86)
const (
	VersionGet                = 0x11
	VersionReport             = 0x12
	VersionCommandClassGet    = 0x13
	VersionCommandClassReport = 0x14
)

// Indicator (0x87)
const (
	IndicatorSet    = 0x01
	IndicatorGet    = 0x02
	IndicatorReport = 0x03
)

// TimeParameters (0x8B)
const (
	TimeParametersSet    = 0x01
	TimeParametersGet    = 0x02
	TimeParametersReport = 0x03
)

// Security (0x98)
const (
	SecuritySupportedGet         = 0x02
	SecuritySupportedReport      = 0x03
	SecuritySchemeGet            = 0x04
	SecuritySchemeReport         = 0x05
	SecurityNetworkKeySet        = 0x06
	SecurityNetworkKeyVerify     = 0x07
	SecurityNonceGet             = 0x40
	SecurityNonceReport          = 0x80
	SecurityMessageEncap         = 0x81
	SecurityMessageEncapNonceGet = 0xC1
)

// SensorAlarm (0x9C)
const (
	SensorAlarmGet             = 0x01
	SensorAlarmReport          = 0x02
	SensorAlarmSupportedGet    = 0x03
	SensorAlarmSupportedReport = 0x04
)

// Key identifies one (class, command) pair.
type Key uint16

// MakeKey packs a class/command pair into a Key.
func MakeKey(class, command byte) Key {
	return Key(class)<<8 | Key(command)
}

// Class returns the command-class byte of the key.
func (k Key) Class() byte { return byte(k >> 8) }

// Command returns the command byte of the key.
func (k Key) Command() byte { return byte(k) }

// commandNames maps every registered (class, command) pair to its
// canonical display name. Value kinds are derived from these names by
// stripping the Report suffix (see ValueName).
var commandNames = map[Key]string{
	MakeKey(ClassBasic, BasicSet):    "Basic_Set",
	MakeKey(ClassBasic, BasicGet):    "Basic_Get",
	MakeKey(ClassBasic, BasicReport): "Basic_Report",

	MakeKey(ClassApplicationStatus, ApplicationStatusBusy):            "ApplicationStatus_Busy",
	MakeKey(ClassApplicationStatus, ApplicationStatusRejectedRequest): "ApplicationStatus_RejectedRequest",

	MakeKey(ClassSwitchBinary, SwitchBinarySet):    "SwitchBinary_Set",
	MakeKey(ClassSwitchBinary, SwitchBinaryGet):    "SwitchBinary_Get",
	MakeKey(ClassSwitchBinary, SwitchBinaryReport): "SwitchBinary_Report",

	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSet):              "SwitchMultilevel_Set",
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelGet):              "SwitchMultilevel_Get",
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelReport):           "SwitchMultilevel_Report",
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelStartLevelChange): "SwitchMultilevel_StartLevelChange",
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelStopLevelChange):  "SwitchMultilevel_StopLevelChange",
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSupportedGet):     "SwitchMultilevel_SupportedGet",
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSupportedReport):  "SwitchMultilevel_SupportedReport",

	MakeKey(ClassSwitchAll, SwitchAllSet):    "SwitchAll_Set",
	MakeKey(ClassSwitchAll, SwitchAllGet):    "SwitchAll_Get",
	MakeKey(ClassSwitchAll, SwitchAllReport): "SwitchAll_Report",
	MakeKey(ClassSwitchAll, SwitchAllOn):     "SwitchAll_On",
	MakeKey(ClassSwitchAll, SwitchAllOff):    "SwitchAll_Off",

	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinarySet):    "SwitchToggleBinary_Set",
	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinaryGet):    "SwitchToggleBinary_Get",
	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinaryReport): "SwitchToggleBinary_Report",

	MakeKey(ClassSceneActivation, SceneActivationSet): "SceneActivation_Set",

	MakeKey(ClassSceneActuatorConf, SceneActuatorConfSet):    "SceneActuatorConf_Set",
	MakeKey(ClassSceneActuatorConf, SceneActuatorConfGet):    "SceneActuatorConf_Get",
	MakeKey(ClassSceneActuatorConf, SceneActuatorConfReport): "SceneActuatorConf_Report",

	MakeKey(ClassSceneControllerConf, SceneControllerConfSet):    "SceneControllerConf_Set",
	MakeKey(ClassSceneControllerConf, SceneControllerConfGet):    "SceneControllerConf_Get",
	MakeKey(ClassSceneControllerConf, SceneControllerConfReport): "SceneControllerConf_Report",

	MakeKey(ClassSensorBinary, SensorBinaryGet):    "SensorBinary_Get",
	MakeKey(ClassSensorBinary, SensorBinaryReport): "SensorBinary_Report",

	MakeKey(ClassSensorMultilevel, SensorMultilevelSupportedGet):    "SensorMultilevel_SupportedGet",
	MakeKey(ClassSensorMultilevel, SensorMultilevelSupportedReport): "SensorMultilevel_SupportedReport",
	MakeKey(ClassSensorMultilevel, SensorMultilevelGet):             "SensorMultilevel_Get",
	MakeKey(ClassSensorMultilevel, SensorMultilevelReport):          "SensorMultilevel_Report",

	MakeKey(ClassMeter, MeterGet):             "Meter_Get",
	MakeKey(ClassMeter, MeterReport):          "Meter_Report",
	MakeKey(ClassMeter, MeterSupportedGet):    "Meter_SupportedGet",
	MakeKey(ClassMeter, MeterSupportedReport): "Meter_SupportedReport",
	MakeKey(ClassMeter, MeterReset):           "Meter_Reset",

	MakeKey(ClassColorSwitch, ColorSwitchSupportedGet):    "ColorSwitch_SupportedGet",
	MakeKey(ClassColorSwitch, ColorSwitchSupportedReport): "ColorSwitch_SupportedReport",
	MakeKey(ClassColorSwitch, ColorSwitchGet):             "ColorSwitch_Get",
	MakeKey(ClassColorSwitch, ColorSwitchReport):          "ColorSwitch_Report",
	MakeKey(ClassColorSwitch, ColorSwitchSet):             "ColorSwitch_Set",

	MakeKey(ClassThermostatMode, ThermostatModeSet):    "ThermostatMode_Set",
	MakeKey(ClassThermostatMode, ThermostatModeGet):    "ThermostatMode_Get",
	MakeKey(ClassThermostatMode, ThermostatModeReport): "ThermostatMode_Report",

	MakeKey(ClassDoorLockLogging, DoorLockLoggingSupportedGet):    "DoorLockLogging_SupportedGet",
	MakeKey(ClassDoorLockLogging, DoorLockLoggingSupportedReport): "DoorLockLogging_SupportedReport",
	MakeKey(ClassDoorLockLogging, DoorLockLoggingRecordGet):       "DoorLockLogging_RecordGet",
	MakeKey(ClassDoorLockLogging, DoorLockLoggingReport):          "DoorLockLogging_Report",

	MakeKey(ClassZwavePlusInfo, ZwavePlusInfoGet):    "ZwavePlusInfo_Get",
	MakeKey(ClassZwavePlusInfo, ZwavePlusInfoReport): "ZwavePlusInfo_Report",

	MakeKey(ClassMultiInstance, MultiInstanceGet):                   "MultiInstance_Get",
	MakeKey(ClassMultiInstance, MultiInstanceReport):                "MultiInstance_Report",
	MakeKey(ClassMultiInstance, MultiInstanceChannelEndPointGet):    "MultiInstance_ChannelEndPointGet",
	MakeKey(ClassMultiInstance, MultiInstanceChannelEndPointReport): "MultiInstance_ChannelEndPointReport",

	MakeKey(ClassDoorLock, DoorLockSet):                 "DoorLock_Set",
	MakeKey(ClassDoorLock, DoorLockGet):                 "DoorLock_Get",
	MakeKey(ClassDoorLock, DoorLockReport):              "DoorLock_Report",
	MakeKey(ClassDoorLock, DoorLockConfigurationSet):    "DoorLock_ConfigurationSet",
	MakeKey(ClassDoorLock, DoorLockConfigurationGet):    "DoorLock_ConfigurationGet",
	MakeKey(ClassDoorLock, DoorLockConfigurationReport): "DoorLock_ConfigurationReport",

	MakeKey(ClassUserCode, UserCodeSet):          "UserCode_Set",
	MakeKey(ClassUserCode, UserCodeGet):          "UserCode_Get",
	MakeKey(ClassUserCode, UserCodeReport):       "UserCode_Report",
	MakeKey(ClassUserCode, UserCodeNumberGet):    "UserCode_NumberGet",
	MakeKey(ClassUserCode, UserCodeNumberReport): "UserCode_NumberReport",

	MakeKey(ClassConfiguration, ConfigurationSet):    "Configuration_Set",
	MakeKey(ClassConfiguration, ConfigurationGet):    "Configuration_Get",
	MakeKey(ClassConfiguration, ConfigurationReport): "Configuration_Report",

	MakeKey(ClassAlarm, AlarmGet):             "Alarm_Get",
	MakeKey(ClassAlarm, AlarmReport):          "Alarm_Report",
	MakeKey(ClassAlarm, AlarmSet):             "Alarm_Set",
	MakeKey(ClassAlarm, AlarmSupportedGet):    "Alarm_SupportedGet",
	MakeKey(ClassAlarm, AlarmSupportedReport): "Alarm_SupportedReport",

	MakeKey(ClassManufacturerSpec, ManufacturerSpecificGet):          "ManufacturerSpecific_Get",
	MakeKey(ClassManufacturerSpec, ManufacturerSpecificReport):       "ManufacturerSpecific_Report",
	MakeKey(ClassManufacturerSpec, ManufacturerDeviceSpecificGet):    "ManufacturerSpecific_DeviceSpecificGet",
	MakeKey(ClassManufacturerSpec, ManufacturerDeviceSpecificReport): "ManufacturerSpecific_DeviceSpecificReport",

	MakeKey(ClassPowerlevel, PowerlevelSet):    "Powerlevel_Set",
	MakeKey(ClassPowerlevel, PowerlevelGet):    "Powerlevel_Get",
	MakeKey(ClassPowerlevel, PowerlevelReport): "Powerlevel_Report",

	MakeKey(ClassProtection, ProtectionSet):    "Protection_Set",
	MakeKey(ClassProtection, ProtectionGet):    "Protection_Get",
	MakeKey(ClassProtection, ProtectionReport): "Protection_Report",

	MakeKey(ClassLock, LockSet):    "Lock_Set",
	MakeKey(ClassLock, LockGet):    "Lock_Get",
	MakeKey(ClassLock, LockReport): "Lock_Report",

	MakeKey(ClassNodeNaming, NodeNamingSet):            "NodeNaming_Set",
	MakeKey(ClassNodeNaming, NodeNamingGet):            "NodeNaming_Get",
	MakeKey(ClassNodeNaming, NodeNamingReport):         "NodeNaming_Report",
	MakeKey(ClassNodeNaming, NodeNamingLocationSet):    "NodeNaming_LocationSet",
	MakeKey(ClassNodeNaming, NodeNamingLocationGet):    "NodeNaming_LocationGet",
	MakeKey(ClassNodeNaming, NodeNamingLocationReport): "NodeNaming_LocationReport",

	MakeKey(ClassFirmware, FirmwareMetadataGet):    "Firmware_MetadataGet",
	MakeKey(ClassFirmware, FirmwareMetadataReport): "Firmware_MetadataReport",

	MakeKey(ClassBattery, BatteryGet):    "Battery_Get",
	MakeKey(ClassBattery, BatteryReport): "Battery_Report",

	MakeKey(ClassClock, ClockSet):    "Clock_Set",
	MakeKey(ClassClock, ClockGet):    "Clock_Get",
	MakeKey(ClassClock, ClockReport): "Clock_Report",

	MakeKey(ClassHail, HailHail): "Hail_Hail",

	MakeKey(ClassWakeUp, WakeUpIntervalSet):                "WakeUp_IntervalSet",
	MakeKey(ClassWakeUp, WakeUpIntervalGet):                "WakeUp_IntervalGet",
	MakeKey(ClassWakeUp, WakeUpIntervalReport):             "WakeUp_IntervalReport",
	MakeKey(ClassWakeUp, WakeUpNotification):               "WakeUp_Notification",
	MakeKey(ClassWakeUp, WakeUpNoMoreInformation):          "WakeUp_NoMoreInformation",
	MakeKey(ClassWakeUp, WakeUpIntervalCapabilitiesGet):    "WakeUp_IntervalCapabilitiesGet",
	MakeKey(ClassWakeUp, WakeUpIntervalCapabilitiesReport): "WakeUp_IntervalCapabilitiesReport",

	MakeKey(ClassAssociation, AssociationSet):             "Association_Set",
	MakeKey(ClassAssociation, AssociationGet):             "Association_Get",
	MakeKey(ClassAssociation, AssociationReport):          "Association_Report",
	MakeKey(ClassAssociation, AssociationRemove):          "Association_Remove",
	MakeKey(ClassAssociation, AssociationGroupingsGet):    "Association_GroupingsGet",
	MakeKey(ClassAssociation, AssociationGroupingsReport): "Association_GroupingsReport",

	MakeKey(ClassVersion, VersionGet):                "Version_Get",
	MakeKey(ClassVersion, VersionReport):             "Version_Report",
	MakeKey(ClassVersion, VersionCommandClassGet):    "Version_CommandClassGet",
	MakeKey(ClassVersion, VersionCommandClassReport): "Version_CommandClassReport",

	MakeKey(ClassIndicator, IndicatorSet):    "Indicator_Set",
	MakeKey(ClassIndicator, IndicatorGet):    "Indicator_Get",
	MakeKey(ClassIndicator, IndicatorReport): "Indicator_Report",

	MakeKey(ClassTimeParameters, TimeParametersSet):    "TimeParameters_Set",
	MakeKey(ClassTimeParameters, TimeParametersGet):    "TimeParameters_Get",
	MakeKey(ClassTimeParameters, TimeParametersReport): "TimeParameters_Report",

	MakeKey(ClassSecurity, SecuritySupportedGet):         "Security_SupportedGet",
	MakeKey(ClassSecurity, SecuritySupportedReport):      "Security_SupportedReport",
	MakeKey(ClassSecurity, SecuritySchemeGet):            "Security_SchemeGet",
	MakeKey(ClassSecurity, SecuritySchemeReport):         "Security_SchemeReport",
	MakeKey(ClassSecurity, SecurityNetworkKeySet):        "Security_NetworkKeySet",
	MakeKey(ClassSecurity, SecurityNetworkKeyVerify):     "Security_NetworkKeyVerify",
	MakeKey(ClassSecurity, SecurityNonceGet):             "Security_NonceGet",
	MakeKey(ClassSecurity, SecurityNonceReport):          "Security_NonceReport",
	MakeKey(ClassSecurity, SecurityMessageEncap):         "Security_MessageEncap",
	MakeKey(ClassSecurity, SecurityMessageEncapNonceGet): "Security_MessageEncapNonceGet",

	MakeKey(ClassSensorAlarm, SensorAlarmGet):             "SensorAlarm_Get",
	MakeKey(ClassSensorAlarm, SensorAlarmReport):          "SensorAlarm_Report",
	MakeKey(ClassSensorAlarm, SensorAlarmSupportedGet):    "SensorAlarm_SupportedGet",
	MakeKey(ClassSensorAlarm, SensorAlarmSupportedReport): "SensorAlarm_SupportedReport",
}
