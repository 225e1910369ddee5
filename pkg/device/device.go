// Package device implements the simulated HART field device: its
// identification/status/configuration fields, its table of process
// variables, and the periodic sine-wave simulation that drives them.
package device

import (
	"math"
	"time"

	"github.com/hartsim/hartsim/pkg/field"
)

// DeviceVariable is one process variable slot (the "device variable" HART
// commands 1/2/3/8/9 read from): a current value plus its observed
// minimum/maximum, range, classification, and the units/alternate-units
// pair Command 9 exchanges on every read.
type DeviceVariable struct {
	Units          *field.Uint
	AlternateUnits *field.Uint
	Value          *field.Float32Field
	MaxSeen        *field.Float32Field
	MinSeen        *field.Float32Field
	URV            *field.Float32Field
	LRV            *field.Float32Field
	Classification *field.Uint
	Status         *field.Uint
}

// NewDeviceVariable returns a variable slot seeded so the first
// UpdateVariables call always widens both MinSeen and MaxSeen, regardless
// of which direction the simulated value first moves.
func NewDeviceVariable() *DeviceVariable {
	return &DeviceVariable{
		Units:          field.U8(0),
		AlternateUnits: field.U8(0),
		Value:          field.F32(0),
		MaxSeen:        field.F32(-math.MaxFloat32),
		MinSeen:        field.F32(math.MaxFloat32),
		URV:            field.F32(0),
		LRV:            field.F32(0),
		Classification: field.U8(0),
		Status:         field.U8(0),
	}
}

// DynamicCommand is a device-specific command declared in a device-spec
// JSON file rather than compiled in: its request/reply shape is a list of
// names resolved against the device's NamedVariables at dispatch time.
type DynamicCommand struct {
	Number  int
	Request []string
	Reply   []string
}

// Device is the full simulated field device: identity, status, analog
// output, and the full extended configuration set the original Python
// model carries (volumetric tank setup, strapping tables, PV damping)
// beyond what a minimal HART responder strictly needs.
type Device struct {
	DeviceVariables    map[int]*DeviceVariable
	VariableOrder      []int // iteration order for UpdateVariables' phase spacing
	DynamicVariables   map[int]int // PV/SV/TV/QV slot (0..3) -> variable code
	SimulatedVariables map[int]float64

	PollingAddress     *field.Uint
	LongAddress        uint64
	IsBurstMode        bool
	ExpandedDeviceType *field.Uint
	DeviceID           *field.Uint
	HartTag            *field.PackedAscii
	HartDescriptor     *field.PackedAscii
	HartDate           *field.Uint
	HartMessage        *field.PackedAscii
	HartLongTag        *field.Ascii
	UniversalRevision  *field.Uint

	DeviceStatus         *field.Uint
	ExtendedDeviceStatus *field.Uint

	ConfigChangeCounter *field.Uint

	LoopCurrentMode                *field.Uint
	LoopCurrent                    *field.Float32Field
	PercentOfRange                 *field.Float32Field
	DeviceSpecificStatus0          *field.Uint
	AlternateDeviceSpecificStatus0 *field.Uint
	DisplayParameters              *field.Uint
	AlarmSaturationSetting         *field.Uint
	HighAlarmLevel                 *field.Float32Field
	LowAlarmLevel                  *field.Float32Field
	HighSaturationLevel            *field.Float32Field
	LowSaturationLevel             *field.Float32Field

	PVSelection *field.Uint
	SVSelection *field.Uint
	TVSelection *field.Uint
	QVSelection *field.Uint

	VolumeSetupNumStrapWritePoints *field.Uint
	VolumeSetupTankWriteType       *field.Uint
	VolumeSetupTankWriteLength     *field.Float32Field
	VolumeSetupTankWriteRadius     *field.Float32Field
	StrappingTableLevel            []float32
	StrappingTableVolume           []float32
	PVDamping                      *field.Float32Field

	NamedVariables  map[string]field.Field
	DynamicCommands map[int]DynamicCommand
}

// New returns a device populated with the same defaults the reference
// implementation's dataclass carried.
func New() *Device {
	strapLevel := make([]float32, 53)
	strapVolume := make([]float32, 53)
	for i := 0; i < 53; i++ {
		strapLevel[i] = float32((i + 1) * 10)
		strapVolume[i] = float32((i + 1) * 15)
	}

	d := &Device{
		DeviceVariables:    map[int]*DeviceVariable{},
		VariableOrder:      nil,
		DynamicVariables:   map[int]int{0: 0, 1: 1, 2: 2, 3: 3},
		SimulatedVariables: map[int]float64{},

		PollingAddress:     field.U8(0),
		LongAddress:        0x2606123456,
		IsBurstMode:        false,
		ExpandedDeviceType: field.U16(0x2606),
		DeviceID:           field.U24(0x123456),
		HartTag:            field.NewPackedAscii(8, "????????"),
		HartDescriptor:     field.NewPackedAscii(16, "????????????????"),
		HartDate:           field.U24(0x010100),
		HartMessage:        field.NewPackedAscii(32, ""),
		HartLongTag:        field.NewAscii(32, ""),
		UniversalRevision:  field.U8(7),

		DeviceStatus:         field.U8(0),
		ExtendedDeviceStatus: field.U8(0),

		ConfigChangeCounter: field.U16(0),

		LoopCurrentMode:                field.U8(1),
		LoopCurrent:                    field.F32(4.321),
		PercentOfRange:                 field.F32(0.0200625),
		DeviceSpecificStatus0:          field.U8(0x02),
		AlternateDeviceSpecificStatus0: field.U8(0),
		DisplayParameters:              field.U16(0xAAAA),
		AlarmSaturationSetting:         field.U8(1),
		HighAlarmLevel:                 field.F32(23.0),
		LowAlarmLevel:                  field.F32(3.4),
		HighSaturationLevel:            field.F32(22.8),
		LowSaturationLevel:             field.F32(3.9),

		PVSelection: field.U8(0),
		SVSelection: field.U8(0),
		TVSelection: field.U8(0),
		QVSelection: field.U8(0),

		VolumeSetupNumStrapWritePoints: field.U8(4),
		VolumeSetupTankWriteType:       field.U8(5),
		VolumeSetupTankWriteLength:     field.F32(100),
		VolumeSetupTankWriteRadius:     field.F32(20),
		StrappingTableLevel:            strapLevel,
		StrappingTableVolume:           strapVolume,
		PVDamping:                      field.F32(1.23),

		NamedVariables:  map[string]field.Field{},
		DynamicCommands: map[int]DynamicCommand{},
	}
	return d
}

// UniqueAddress is the device's 38-bit HART unique address, derived from
// its device type and device ID.
func (d *Device) UniqueAddress() uint64 {
	return (uint64(d.ExpandedDeviceType.Value())<<24 | uint64(d.DeviceID.Value())) & 0x3FFFFFFFFF
}

// AddVariable registers a process variable under code, preserving
// insertion order for UpdateVariables' phase spacing.
func (d *Device) AddVariable(code int, v *DeviceVariable) {
	if _, exists := d.DeviceVariables[code]; !exists {
		d.VariableOrder = append(d.VariableOrder, code)
	}
	d.DeviceVariables[code] = v
}

// Variable returns the process variable registered for slot (0=PV, 1=SV,
// 2=TV, 3=QV, ...) via DynamicVariables.
func (d *Device) Variable(slot int) *DeviceVariable {
	return d.DeviceVariables[d.DynamicVariables[slot]]
}

// UpdateVariables advances the simulated loop current and every process
// variable one tick, as of now. Each variable follows its own phase-shifted
// sine wave across [-5, 255]; a variable listed in SimulatedVariables is
// tracked there instead of in its own Value (an indirection the reference
// device used for variables driven by an external simulation rather than
// the built-in generator).
func (d *Device) UpdateVariables(now time.Time) {
	t := float64(now.UnixNano()) / 1e9

	d.LoopCurrent.SetValue(float32(3.5 + (1+math.Sin(t/36))/2*17))

	const minValue = -5.0
	const maxValue = 255.0
	valuesRange := maxValue - minValue
	n := len(d.VariableOrder)

	for index, code := range d.VariableOrder {
		phase := 2 * math.Pi * float64(index) / float64(n)
		newValue := minValue + (1+math.Sin((t-phase)/32))/2*valuesRange
		v := d.DeviceVariables[code]

		if _, simulated := d.SimulatedVariables[code]; simulated {
			d.SimulatedVariables[code] = newValue
		} else {
			v.Value.SetValue(float32(newValue))
		}

		if float64(v.MinSeen.Value()) > newValue {
			v.MinSeen.SetValue(float32(newValue))
		}
		if float64(v.MaxSeen.Value()) < newValue {
			v.MaxSeen.SetValue(float32(newValue))
		}
	}
}
