// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import "fmt"

// ActionKind selects how a decoded field list becomes a semantic
// outcome.
type ActionKind int

const (
	// ActionStoreScalar stores the single decoded field under Name.
	ActionStoreScalar ActionKind = iota
	// ActionStoreList stores the whole field list under Name.
	ActionStoreList
	// ActionStoreConst stores the fixed marker Const under Name,
	// ignoring the decoded fields (zero-payload notifications).
	ActionStoreConst
	// ActionStoreSensorValue stores a reading with a statically known
	// unit.
	ActionStoreSensorValue
	// ActionStoreSensorNormal resolves the unit from the sensor-type
	// table using the decoded kind and scale.
	ActionStoreSensorNormal
	// ActionStoreMeterNormal resolves the unit from the meter-type
	// table and carries the previous reading and time delta.
	ActionStoreMeterNormal
	// ActionStoreMap produces a keyed-map update under MapName, keyed
	// by the decoded field at KeyIndex.
	ActionStoreMap
	// ActionStoreEvent emits an event marker named Name.
	ActionStoreEvent
	// ActionChangeState signals interview progress only.
	ActionChangeState
	// ActionSecurity classifies a security-handshake frame.
	ActionSecurity
)

// Action describes how the resolver treats one (class, command) pair.
// Every variant's parameters are explicit named fields; the resolver
// never reads descriptor state positionally.
type Action struct {
	Kind     ActionKind
	Name     string // value kind or event label
	Unit     string // static unit (ActionStoreSensorValue)
	Const    int64  // marker value (ActionStoreConst, const events)
	MapName  string // map label (ActionStoreMap)
	KeyIndex int    // decoded-field index of the map key
	List     bool   // map/event payload is the field list, not a scalar
	Security SecurityPrimitive
	// Advance is the interview-state augmentation; it may be set on
	// entries of any kind.
	Advance NodeState
}

// ActionTable maps (class, command) keys to action descriptors. Built
// once by NewActionTable and read-only thereafter.
type ActionTable struct {
	actions map[Key]Action
}

// Lookup returns the action for a (class, command) pair. A missing
// entry is legal: many frames are decoded but carry no semantic action.
func (t *ActionTable) Lookup(class, command byte) (Action, bool) {
	a, ok := t.actions[MakeKey(class, command)]
	return a, ok
}

// Len returns the number of registered actions.
func (t *ActionTable) Len() int { return len(t.actions) }

// scalarStoreKeys: reports whose single decoded field is stored under
// the command's value name.
var scalarStoreKeys = []Key{
	MakeKey(ClassAssociation, AssociationGroupingsReport),
	MakeKey(ClassSwitchAll, SwitchAllReport),
	MakeKey(ClassProtection, ProtectionReport),
	MakeKey(ClassNodeNaming, NodeNamingReport),
	MakeKey(ClassNodeNaming, NodeNamingLocationReport),
	MakeKey(ClassTimeParameters, TimeParametersReport),
	MakeKey(ClassLock, LockReport),
	MakeKey(ClassIndicator, IndicatorReport),
	MakeKey(ClassDoorLock, DoorLockReport),
	MakeKey(ClassDoorLockLogging, DoorLockLoggingSupportedReport),
	MakeKey(ClassUserCode, UserCodeNumberReport),
	MakeKey(ClassThermostatMode, ThermostatModeReport),
	MakeKey(ClassWakeUp, WakeUpIntervalReport),
	MakeKey(ClassWakeUp, WakeUpIntervalCapabilitiesReport),
	// a few requests may actually be sent to the controller
	MakeKey(ClassBasic, BasicSet),
}

// listStoreKeys: reports whose whole field list is stored under the
// command's value name.
var listStoreKeys = []Key{
	MakeKey(ClassAlarm, AlarmSupportedReport),
	MakeKey(ClassPowerlevel, PowerlevelReport),
	MakeKey(ClassSensorAlarm, SensorAlarmSupportedReport),
	MakeKey(ClassSensorMultilevel, SensorMultilevelSupportedReport),
	MakeKey(ClassManufacturerSpec, ManufacturerDeviceSpecificReport),
	MakeKey(ClassApplicationStatus, ApplicationStatusBusy),
	MakeKey(ClassMultiInstance, MultiInstanceChannelEndPointReport),
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelStartLevelChange),
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelSupportedReport),
	MakeKey(ClassDoorLock, DoorLockConfigurationReport),
	MakeKey(ClassZwavePlusInfo, ZwavePlusInfoReport),
	MakeKey(ClassVersion, VersionReport),
	MakeKey(ClassManufacturerSpec, ManufacturerSpecificReport),
	MakeKey(ClassMeter, MeterSupportedReport),
	MakeKey(ClassColorSwitch, ColorSwitchSupportedReport),
	MakeKey(ClassFirmware, FirmwareMetadataReport),
	MakeKey(ClassSceneActivation, SceneActivationSet),
	MakeKey(ClassClock, ClockReport),
}

// sensorStoreActions: level-style reports stored with a statically
// known kind and unit.
var sensorStoreActions = map[Key]Action{
	MakeKey(ClassSwitchBinary, SwitchBinaryReport):             {Name: KindSwitchBinary, Unit: UnitLevel},
	MakeKey(ClassBattery, BatteryReport):                       {Name: KindBattery, Unit: UnitLevel},
	MakeKey(ClassSensorBinary, SensorBinaryReport):             {Name: KindSwitchBinary, Unit: UnitLevel},
	MakeKey(ClassSwitchToggleBinary, SwitchToggleBinaryReport): {Name: KindSwitchToggle, Unit: UnitLevel},
	MakeKey(ClassSwitchMultilevel, SwitchMultilevelReport):     {Name: KindSwitchMultilevel, Unit: UnitLevel},
	MakeKey(ClassBasic, BasicReport):                           {Name: KindBasic, Unit: UnitLevel},
}

// mapStoreActions: reports merged into per-node keyed maps by the
// external state machine. The key is the decoded field at KeyIndex.
var mapStoreActions = map[Key]Action{
	MakeKey(ClassMultiInstance, MultiInstanceReport):             {MapName: "multi_instance"},
	MakeKey(ClassConfiguration, ConfigurationReport):             {MapName: "parameter"},
	MakeKey(ClassVersion, VersionCommandClassReport):             {MapName: "command_version"},
	MakeKey(ClassSceneControllerConf, SceneControllerConfReport): {MapName: "button", List: true},
	MakeKey(ClassSceneActuatorConf, SceneActuatorConfReport):     {MapName: "scene", List: true},
	MakeKey(ClassUserCode, UserCodeReport):                       {MapName: "user_code", List: true},
	MakeKey(ClassDoorLockLogging, DoorLockLoggingReport):         {MapName: "lock_log", List: true},
	MakeKey(ClassAssociation, AssociationReport):                 {MapName: "association", List: true},
}

// eventActions: frames that surface as events rather than stored
// values.
var eventActions = map[Key]Action{
	MakeKey(ClassAlarm, AlarmReport):                                  {Name: EventAlarm, List: true},
	MakeKey(ClassWakeUp, WakeUpNotification):                          {Name: EventWakeUp, Const: 1},
	MakeKey(ClassApplicationStatus, ApplicationStatusRejectedRequest): {Name: EventRejectedRequest, Const: 1},
	MakeKey(ClassBasic, BasicGet):                                     {Name: EventBasicGet, Const: 1},
	MakeKey(ClassHail, HailHail):                                      {Name: EventHail, Const: 1},
}

// securityActions: handshake frames classified for the security layer.
var securityActions = map[Key]SecurityPrimitive{
	MakeKey(ClassSecurity, SecuritySupportedReport):      SecuritySetClass,
	MakeKey(ClassSecurity, SecuritySchemeReport):         SecurityScheme,
	MakeKey(ClassSecurity, SecurityNonceGet):             SecurityNonceRequested,
	MakeKey(ClassSecurity, SecurityNonceReport):          SecurityNonceReceived,
	MakeKey(ClassSecurity, SecurityMessageEncap):         SecurityUnwrap,
	MakeKey(ClassSecurity, SecurityMessageEncapNonceGet): SecurityUnwrap,
	MakeKey(ClassSecurity, SecurityNetworkKeyVerify):     SecurityKeyVerify,
}

// sensorNormalKeys / meterNormalKeys: table-resolved readings.
var sensorNormalKeys = []Key{
	MakeKey(ClassSensorMultilevel, SensorMultilevelReport),
}

var meterNormalKeys = []Key{
	MakeKey(ClassMeter, MeterReport),
}

// stateChangeActions augment existing entries (or stand alone) with an
// interview-progress signal. This is the only category allowed to touch
// a key another category already owns.
var stateChangeActions = map[Key]NodeState{
	MakeKey(ClassManufacturerSpec, ManufacturerSpecificReport): StateInterviewed,
}

// NewActionTable builds the action table from the disjoint category
// lists. Construction is deterministic and fails fast: a key claimed by
// two categories is an error, not a silent overwrite.
func NewActionTable() (*ActionTable, error) {
	actions := make(map[Key]Action)
	claim := func(k Key, a Action) error {
		if prior, dup := actions[k]; dup {
			return fmt.Errorf("action table: %s claimed by both kind %d and kind %d",
				CommandName(k.Class(), k.Command()), prior.Kind, a.Kind)
		}
		actions[k] = a
		return nil
	}

	for _, k := range scalarStoreKeys {
		if err := claim(k, Action{Kind: ActionStoreScalar, Name: ValueName(k.Class(), k.Command())}); err != nil {
			return nil, err
		}
	}
	for _, k := range listStoreKeys {
		if err := claim(k, Action{Kind: ActionStoreList, Name: ValueName(k.Class(), k.Command())}); err != nil {
			return nil, err
		}
	}
	for k, a := range sensorStoreActions {
		a.Kind = ActionStoreSensorValue
		if err := claim(k, a); err != nil {
			return nil, err
		}
	}
	for _, k := range sensorNormalKeys {
		if err := claim(k, Action{Kind: ActionStoreSensorNormal}); err != nil {
			return nil, err
		}
	}
	for _, k := range meterNormalKeys {
		if err := claim(k, Action{Kind: ActionStoreMeterNormal}); err != nil {
			return nil, err
		}
	}
	for k, a := range mapStoreActions {
		a.Kind = ActionStoreMap
		if err := claim(k, a); err != nil {
			return nil, err
		}
	}
	for k, a := range eventActions {
		a.Kind = ActionStoreEvent
		if err := claim(k, a); err != nil {
			return nil, err
		}
	}
	for k, p := range securityActions {
		if err := claim(k, Action{Kind: ActionSecurity, Security: p}); err != nil {
			return nil, err
		}
	}

	// State changes augment in place; a key with no prior entry
	// becomes a standalone ChangeState action.
	for k, state := range stateChangeActions {
		if a, ok := actions[k]; ok {
			a.Advance = state
			actions[k] = a
		} else {
			actions[k] = Action{Kind: ActionChangeState, Advance: state}
		}
	}

	return &ActionTable{actions: actions}, nil
}
