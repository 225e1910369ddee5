package command

import (
	"strings"

	"github.com/hartsim/hartsim/pkg/field"
)

// zeroFill is N NUL characters, used for reserved payload fields whose
// packed/ASCII encoding must come out as all-zero bytes rather than the
// space padding a normal text field would default to.
func zeroFill(n int) string { return strings.Repeat("\x00", n) }

// Every reply in this file starts with ResponseCode and DeviceStatus (the
// two header bytes every HART reply carries) and implements field.Sequence
// so field.Encode/field.Decode can drive it directly.

func newU8(v uint8) *field.Uint   { return field.U8(v) }
func newU16(v uint16) *field.Uint { return field.U16(v) }
func newU24(v uint32) *field.Uint { return field.U24(v) }
func newU32(v uint32) *field.Uint { return field.U32(v) }
func newF32(v float32) *field.Float32Field { return field.F32(v) }

// --- Command 0 ---------------------------------------------------------

type Cmd0Hart5Reply struct {
	ResponseCode              *field.Uint
	DeviceStatus               *field.Uint
	ExpansionCode               *field.Uint
	ExpandedDeviceType          *field.Uint
	RequestPreambles            *field.Uint
	UniversalRevision            *field.Uint
	DeviceRevision               *field.Uint
	SoftwareRevision             *field.Uint
	HardwareRevisionSignalingCode *field.Uint
	Flags                        *field.Uint
	DeviceID                     *field.Uint
}

func NewCmd0Hart5Reply() *Cmd0Hart5Reply {
	return &Cmd0Hart5Reply{
		ResponseCode:                  newU8(0),
		DeviceStatus:                  newU8(0),
		ExpansionCode:                 newU8(254),
		ExpandedDeviceType:            newU16(0),
		RequestPreambles:              newU8(5),
		UniversalRevision:             newU8(5),
		DeviceRevision:                newU8(11),
		SoftwareRevision:              newU8(3),
		HardwareRevisionSignalingCode: newU8(0x64),
		Flags:                         newU8(0),
		DeviceID:                      newU24(0),
	}
}

func (r *Cmd0Hart5Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.ExpansionCode, r.ExpandedDeviceType,
		r.RequestPreambles, r.UniversalRevision, r.DeviceRevision, r.SoftwareRevision,
		r.HardwareRevisionSignalingCode, r.Flags, r.DeviceID}
}

type Cmd0Hart7Reply struct {
	ResponseCode                  *field.Uint
	DeviceStatus                  *field.Uint
	ExpansionCode                 *field.Uint
	ExpandedDeviceType             *field.Uint
	RequestPreambles               *field.Uint
	UniversalRevision                *field.Uint
	DeviceRevision                   *field.Uint
	SoftwareRevision                 *field.Uint
	HardwareRevisionSignalingCode    *field.Uint
	Flags                            *field.Uint
	DeviceID                        *field.Uint
	ResponsePreambles                *field.Uint
	MaxDeviceVariables               *field.Uint
	ConfigChangeCounter              *field.Uint
	ExtendedDeviceStatus             *field.Uint
	ManufacturerCode                 *field.Uint
	PrivateLabelDistributor          *field.Uint
	DeviceProfile                    *field.Uint
}

func NewCmd0Hart7Reply() *Cmd0Hart7Reply {
	return &Cmd0Hart7Reply{
		ResponseCode:                  newU8(0),
		DeviceStatus:                  newU8(0),
		ExpansionCode:                 newU8(254),
		ExpandedDeviceType:            newU16(0),
		RequestPreambles:              newU8(5),
		UniversalRevision:             newU8(7),
		DeviceRevision:                newU8(7),
		SoftwareRevision:              newU8(3),
		HardwareRevisionSignalingCode: newU8(0x64),
		Flags:                         newU8(0),
		DeviceID:                      newU24(0),
		ResponsePreambles:             newU8(5),
		MaxDeviceVariables:            newU8(1),
		ConfigChangeCounter:           newU16(0),
		ExtendedDeviceStatus:          newU8(0),
		ManufacturerCode:              newU16(0x0099),
		PrivateLabelDistributor:       newU16(0x0099),
		DeviceProfile:                 newU8(0),
	}
}

func (r *Cmd0Hart7Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.ExpansionCode, r.ExpandedDeviceType,
		r.RequestPreambles, r.UniversalRevision, r.DeviceRevision, r.SoftwareRevision,
		r.HardwareRevisionSignalingCode, r.Flags, r.DeviceID, r.ResponsePreambles,
		r.MaxDeviceVariables, r.ConfigChangeCounter, r.ExtendedDeviceStatus,
		r.ManufacturerCode, r.PrivateLabelDistributor, r.DeviceProfile}
}

// --- Command 1 ---------------------------------------------------------

type Cmd1Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	PVUnits      *field.Uint
	PVValue      *field.Float32Field
}

func NewCmd1Reply() *Cmd1Reply {
	return &Cmd1Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), PVUnits: newU8(0), PVValue: newF32(0)}
}

func (r *Cmd1Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.PVUnits, r.PVValue}
}

// --- Command 2 ---------------------------------------------------------

// LoopCurrent is F32 here, not the source's U8 (an apparent source bug: a
// 4-20mA loop current cannot be represented in one byte). See DESIGN.md.
type Cmd2Reply struct {
	ResponseCode   *field.Uint
	DeviceStatus   *field.Uint
	LoopCurrent    *field.Float32Field
	PercentOfRange *field.Float32Field
}

func NewCmd2Reply() *Cmd2Reply {
	return &Cmd2Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), LoopCurrent: newF32(0), PercentOfRange: newF32(0)}
}

func (r *Cmd2Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.LoopCurrent, r.PercentOfRange}
}

// --- Command 3 ---------------------------------------------------------

type Cmd3Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	LoopCurrent  *field.Float32Field
	PVUnits      *field.Uint
	PVValue      *field.Float32Field
	SVUnits      *field.Uint
	SVValue      *field.Float32Field
	TVUnits      *field.Uint
	TVValue      *field.Float32Field
	QVUnits      *field.Uint
	QVValue      *field.Float32Field
}

func NewCmd3Reply() *Cmd3Reply {
	return &Cmd3Reply{
		ResponseCode: newU8(0), DeviceStatus: newU8(0), LoopCurrent: newF32(0),
		PVUnits: newU8(0), PVValue: newF32(0), SVUnits: newU8(0), SVValue: newF32(0),
		TVUnits: newU8(0), TVValue: newF32(0), QVUnits: newU8(0), QVValue: newF32(0),
	}
}

func (r *Cmd3Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.LoopCurrent,
		r.PVUnits, r.PVValue, r.SVUnits, r.SVValue, r.TVUnits, r.TVValue, r.QVUnits, r.QVValue}
}

// --- Command 7 ---------------------------------------------------------

type Cmd7Reply struct {
	ResponseCode    *field.Uint
	DeviceStatus    *field.Uint
	PollingAddress  *field.Uint
	LoopCurrentMode *field.Uint
}

func NewCmd7Reply() *Cmd7Reply {
	return &Cmd7Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), PollingAddress: newU8(0), LoopCurrentMode: newU8(0)}
}

func (r *Cmd7Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.PollingAddress, r.LoopCurrentMode}
}

// --- Command 8 ---------------------------------------------------------

type Cmd8Reply struct {
	ResponseCode      *field.Uint
	DeviceStatus      *field.Uint
	PVClassification  *field.Uint
	SVClassification  *field.Uint
	TVClassification  *field.Uint
	QVClassification  *field.Uint
}

func NewCmd8Reply() *Cmd8Reply {
	return &Cmd8Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), PVClassification: newU8(0),
		SVClassification: newU8(0), TVClassification: newU8(0), QVClassification: newU8(0)}
}

func (r *Cmd8Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.PVClassification, r.SVClassification, r.TVClassification, r.QVClassification}
}

// --- Command 9 ---------------------------------------------------------

const cmd9Slots = 8

type Cmd9Request struct {
	Codes [cmd9Slots]*field.Uint
}

func NewCmd9Request() *Cmd9Request {
	r := &Cmd9Request{}
	for i := range r.Codes {
		r.Codes[i] = newU8(0)
		if i > 0 {
			r.Codes[i].SetOptional(true)
		}
	}
	return r
}

func (r *Cmd9Request) Fields() []field.Field {
	out := make([]field.Field, cmd9Slots)
	for i, c := range r.Codes {
		out[i] = c
	}
	return out
}

// cmd9Slot is one 5-field group (code, classification, units, value,
// status) repeated 8 times in the Command 9 reply.
type cmd9Slot struct {
	Code           *field.Uint
	Classification *field.Uint
	Units          *field.Uint
	Value          *field.Float32Field
	Status         *field.Uint
}

func newCmd9Slot(optional bool) cmd9Slot {
	s := cmd9Slot{Code: newU8(0), Classification: newU8(0), Units: newU8(0), Value: newF32(0), Status: newU8(0)}
	if optional {
		s.Code.SetOptional(true)
		s.Classification.SetOptional(true)
		s.Units.SetOptional(true)
		s.Value.SetOptional(true)
		s.Status.SetOptional(true)
	}
	return s
}

func (s cmd9Slot) fields() []field.Field {
	return []field.Field{s.Code, s.Classification, s.Units, s.Value, s.Status}
}

type Cmd9Reply struct {
	ResponseCode         *field.Uint
	DeviceStatus         *field.Uint
	ExtendedDeviceStatus *field.Uint
	Slots                [cmd9Slots]cmd9Slot
	Timestamp            *field.Uint
}

func NewCmd9Reply() *Cmd9Reply {
	r := &Cmd9Reply{
		ResponseCode:         newU8(0),
		DeviceStatus:         newU8(0),
		ExtendedDeviceStatus: newU8(0),
		Timestamp:            newU32(0),
	}
	for i := 0; i < cmd9Slots; i++ {
		r.Slots[i] = newCmd9Slot(i > 0)
	}
	return r
}

func (r *Cmd9Reply) Fields() []field.Field {
	out := []field.Field{r.ResponseCode, r.DeviceStatus, r.ExtendedDeviceStatus}
	for _, s := range r.Slots {
		out = append(out, s.fields()...)
	}
	out = append(out, r.Timestamp)
	return out
}

// --- Command 12 ---------------------------------------------------------

type Cmd12Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	HartMessage  *field.PackedAscii
}

func NewCmd12Reply() *Cmd12Reply {
	return &Cmd12Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), HartMessage: field.NewPackedAscii(32, "")}
}

func (r *Cmd12Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.HartMessage} }

// --- Command 13 ---------------------------------------------------------

type Cmd13Reply struct {
	ResponseCode   *field.Uint
	DeviceStatus   *field.Uint
	HartTag        *field.PackedAscii
	HartDescriptor *field.PackedAscii
	HartDate       *field.Uint
}

func NewCmd13Reply() *Cmd13Reply {
	return &Cmd13Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0),
		HartTag: field.NewPackedAscii(8, ""), HartDescriptor: field.NewPackedAscii(16, ""), HartDate: newU24(0)}
}

func (r *Cmd13Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.HartTag, r.HartDescriptor, r.HartDate}
}

// --- Command 15 ---------------------------------------------------------

type Cmd15Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Uint
	Reserved1    *field.Uint
	Reserved2    *field.Uint
	Reserved3    *field.Uint
	Reserved4    *field.Uint
}

func NewCmd15Reply() *Cmd15Reply {
	return &Cmd15Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0),
		Reserved0: newU32(0), Reserved1: newU32(0), Reserved2: newU32(0), Reserved3: newU32(0), Reserved4: newU24(0)}
}

func (r *Cmd15Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0, r.Reserved1, r.Reserved2, r.Reserved3, r.Reserved4}
}

// --- Command 20 ---------------------------------------------------------

type Cmd20Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	LongTag      *field.Ascii
}

func NewCmd20Reply() *Cmd20Reply {
	return &Cmd20Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), LongTag: field.NewAscii(32, "")}
}

func (r *Cmd20Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.LongTag} }

// --- Command 34 (write damping value) -----------------------------------

type Cmd34Request struct {
	Damping *field.Float32Field
}

func NewCmd34Request() *Cmd34Request { return &Cmd34Request{Damping: newF32(0)} }

func (r *Cmd34Request) Fields() []field.Field { return []field.Field{r.Damping} }

type Cmd34Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Damping      *field.Float32Field
}

func NewCmd34Reply() *Cmd34Reply {
	return &Cmd34Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Damping: newF32(0)}
}

func (r *Cmd34Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Damping} }

// --- Command 36 / 37 (set upper/lower range value to PV) -----------------

type Cmd36Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	URV          *field.Float32Field
}

func NewCmd36Reply() *Cmd36Reply { return &Cmd36Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), URV: newF32(0)} }

func (r *Cmd36Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.URV} }

type Cmd37Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	LRV          *field.Float32Field
}

func NewCmd37Reply() *Cmd37Reply { return &Cmd37Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), LRV: newF32(0)} }

func (r *Cmd37Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.LRV} }

// --- Command 40 (enter/exit fixed current mode) ---------------------------

type Cmd40Request struct {
	FixedCurrent *field.Float32Field
}

func NewCmd40Request() *Cmd40Request { return &Cmd40Request{FixedCurrent: newF32(0)} }

func (r *Cmd40Request) Fields() []field.Field { return []field.Field{r.FixedCurrent} }

type Cmd40Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	LoopCurrent  *field.Float32Field
}

func NewCmd40Reply() *Cmd40Reply {
	return &Cmd40Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), LoopCurrent: newF32(0)}
}

func (r *Cmd40Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.LoopCurrent} }

// --- Command 45 / 46 (trim loop current zero/gain) ------------------------

type Cmd45Request struct {
	MeasuredCurrent *field.Float32Field
}

func NewCmd45Request() *Cmd45Request { return &Cmd45Request{MeasuredCurrent: newF32(0)} }

func (r *Cmd45Request) Fields() []field.Field { return []field.Field{r.MeasuredCurrent} }

type Cmd45Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
}

func NewCmd45Reply() *Cmd45Reply { return &Cmd45Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0)} }

func (r *Cmd45Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus} }

type Cmd46Request struct {
	MeasuredCurrent *field.Float32Field
}

func NewCmd46Request() *Cmd46Request { return &Cmd46Request{MeasuredCurrent: newF32(0)} }

func (r *Cmd46Request) Fields() []field.Field { return []field.Field{r.MeasuredCurrent} }

type Cmd46Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
}

func NewCmd46Reply() *Cmd46Reply { return &Cmd46Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0)} }

func (r *Cmd46Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus} }

// --- Command 48 ---------------------------------------------------------

type Cmd48Reply struct {
	ResponseCode             *field.Uint
	DeviceStatus             *field.Uint
	DeviceSpecificStatus0    *field.Uint
	DeviceSpecificStatus1    *field.Uint
	DeviceSpecificStatus2    *field.Uint
	DeviceSpecificStatus3    *field.Uint
	DeviceSpecificStatus4    *field.Uint
	DeviceSpecificStatus5    *field.Uint
	ExtendedFldDeviceStatus  *field.Uint
	Reserved0                *field.Uint
	Reserved1                *field.Uint
	Reserved2                *field.Uint
}

func NewCmd48Reply() *Cmd48Reply {
	return &Cmd48Reply{
		ResponseCode: newU8(0), DeviceStatus: newU8(0),
		DeviceSpecificStatus0: newU8(0), DeviceSpecificStatus1: newU8(0), DeviceSpecificStatus2: newU8(0),
		DeviceSpecificStatus3: newU8(0x10), DeviceSpecificStatus4: newU8(0), DeviceSpecificStatus5: newU8(0),
		ExtendedFldDeviceStatus: newU8(0), Reserved0: newU8(0), Reserved1: newU8(0), Reserved2: newU8(0),
	}
}

func (r *Cmd48Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.DeviceSpecificStatus0, r.DeviceSpecificStatus1,
		r.DeviceSpecificStatus2, r.DeviceSpecificStatus3, r.DeviceSpecificStatus4, r.DeviceSpecificStatus5,
		r.ExtendedFldDeviceStatus, r.Reserved0, r.Reserved1, r.Reserved2}
}

// --- Command 53 (write device variable units) -----------------------------

type Cmd53Request struct {
	Code  *field.Uint
	Units *field.Uint
}

func NewCmd53Request() *Cmd53Request { return &Cmd53Request{Code: newU8(0), Units: newU8(0)} }

func (r *Cmd53Request) Fields() []field.Field { return []field.Field{r.Code, r.Units} }

type Cmd53Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Code         *field.Uint
	Units        *field.Uint
}

func NewCmd53Reply() *Cmd53Reply {
	return &Cmd53Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Code: newU8(0), Units: newU8(0)}
}

func (r *Cmd53Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Code, r.Units} }

// --- Command 54 (read device variable information) ------------------------

type Cmd54Request struct {
	Code *field.Uint
}

func NewCmd54Request() *Cmd54Request { return &Cmd54Request{Code: newU8(0)} }

func (r *Cmd54Request) Fields() []field.Field { return []field.Field{r.Code} }

type Cmd54Reply struct {
	ResponseCode   *field.Uint
	DeviceStatus   *field.Uint
	Code           *field.Uint
	Classification *field.Uint
	Units          *field.Uint
	SensorLRV      *field.Float32Field
	SensorURV      *field.Float32Field
}

func NewCmd54Reply() *Cmd54Reply {
	return &Cmd54Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Code: newU8(0),
		Classification: newU8(0), Units: newU8(0), SensorLRV: newF32(0), SensorURV: newF32(0)}
}

func (r *Cmd54Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Code, r.Classification, r.Units, r.SensorLRV, r.SensorURV}
}

// --- Command 72 (squawk) ---------------------------------------------------

type Cmd72Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
}

func NewCmd72Reply() *Cmd72Reply { return &Cmd72Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0)} }

func (r *Cmd72Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus} }

// --- Command 76 ---------------------------------------------------------

type Cmd76Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	LockStatus   *field.Uint
}

func NewCmd76Reply() *Cmd76Reply { return &Cmd76Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), LockStatus: newU8(0)} }

func (r *Cmd76Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.LockStatus} }

// --- Command 90 ---------------------------------------------------------

type Cmd90Reply struct {
	ResponseCode       *field.Uint
	DeviceStatus       *field.Uint
	Year               *field.Uint
	CurrentTime        *field.Uint
	DayClockLastSet    *field.Uint
	MonthClockLastSet  *field.Uint
	YearClockLastSet   *field.Uint
	TimeClockLastSet   *field.Uint
	RTCFlags           *field.Uint
}

func NewCmd90Reply() *Cmd90Reply {
	return &Cmd90Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Year: newU8(0), CurrentTime: newU32(0),
		DayClockLastSet: newU8(0), MonthClockLastSet: newU8(0), YearClockLastSet: newU8(0),
		TimeClockLastSet: newU32(0), RTCFlags: newU8(0)}
}

func (r *Cmd90Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Year, r.CurrentTime, r.DayClockLastSet,
		r.MonthClockLastSet, r.YearClockLastSet, r.TimeClockLastSet, r.RTCFlags}
}

// --- Command 105 ---------------------------------------------------------

// TriggerLevel is F32 here, not the source's `F32 = U32()` constructor
// mismatch (an apparent source typo). See DESIGN.md.
type Cmd105Reply struct {
	ResponseCode                    *field.Uint
	DeviceStatus                    *field.Uint
	BurstModeControlCode            *field.Uint
	BurstCommandNumberExpansionFlag *field.Uint
	DeviceVariableCodeSlot          [8]*field.Uint
	BurstMessage                    *field.Uint
	NumberOfBurstMessages           *field.Uint
	ExtendedCommandNumber           *field.Uint
	UpdatePeriod                    *field.Uint
	MaximumUpdatePeriod             *field.Uint
	BurstTriggerMode                *field.Uint
	Classification                  *field.Uint
	UnitsCode                       *field.Uint
	TriggerLevel                    *field.Float32Field
}

func NewCmd105Reply() *Cmd105Reply {
	r := &Cmd105Reply{
		ResponseCode: newU8(0), DeviceStatus: newU8(0), BurstModeControlCode: newU8(0),
		BurstCommandNumberExpansionFlag: newU8(0), BurstMessage: newU8(0), NumberOfBurstMessages: newU8(0),
		ExtendedCommandNumber: newU16(0), UpdatePeriod: newU32(0), MaximumUpdatePeriod: newU32(0),
		BurstTriggerMode: newU8(0), Classification: newU8(0), UnitsCode: newU8(0), TriggerLevel: newF32(0),
	}
	for i := range r.DeviceVariableCodeSlot {
		r.DeviceVariableCodeSlot[i] = newU8(0)
	}
	return r
}

func (r *Cmd105Reply) Fields() []field.Field {
	out := []field.Field{r.ResponseCode, r.DeviceStatus, r.BurstModeControlCode, r.BurstCommandNumberExpansionFlag}
	for _, s := range r.DeviceVariableCodeSlot {
		out = append(out, s)
	}
	out = append(out, r.BurstMessage, r.NumberOfBurstMessages, r.ExtendedCommandNumber, r.UpdatePeriod,
		r.MaximumUpdatePeriod, r.BurstTriggerMode, r.Classification, r.UnitsCode, r.TriggerLevel)
	return out
}

// --- Command 128 ---------------------------------------------------------

type Cmd128Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Ascii
}

func NewCmd128Reply() *Cmd128Reply {
	return &Cmd128Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: field.NewAscii(31, zeroFill(31))}
}

func (r *Cmd128Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0} }

// --- Command 133 ---------------------------------------------------------

type Cmd133Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Uint
}

func NewCmd133Reply() *Cmd133Reply {
	return &Cmd133Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: newU24(0)}
}

func (r *Cmd133Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0} }

// --- Command 148 ---------------------------------------------------------

// Reserved0 is a fixed 32-byte reserved block. The reference source types
// it as PackedAscii(32), but packed-ASCII's 4-characters-into-3-bytes
// encoding would only yield 24 bytes for 32 characters; an all-NUL Ascii
// field reproduces the 32-byte reserved block the wire format actually
// carries.
type Cmd148Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Ascii
}

func NewCmd148Reply() *Cmd148Reply {
	return &Cmd148Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: field.NewAscii(32, zeroFill(32))}
}

func (r *Cmd148Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0} }

// --- Commands with no recoverable layout from the reference source --------
// 136, 137, 140, 142, 177, 196, 200, 202, 203: returned as a status byte
// plus a fixed reserved block, matching the shape of the source's own
// reserved-field replies (Cmd15/Cmd216-style) rather than invented
// per-field semantics. See SPEC_FULL.md §4.4 / DESIGN.md.

type ReservedReply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved     *field.Uint
}

func NewReservedReply() *ReservedReply {
	return &ReservedReply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved: newU32(0)}
}

func (r *ReservedReply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved} }

// --- Command 160 ---------------------------------------------------------

// Reserved0 is a fixed 32-byte reserved block; see the note on Cmd148Reply.
type Cmd160Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Ascii
}

func NewCmd160Reply() *Cmd160Reply {
	return &Cmd160Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: field.NewAscii(32, zeroFill(32))}
}

func (r *Cmd160Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0} }

// --- Command 161 ---------------------------------------------------------

type Cmd161Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Ascii
	TankType     *field.Uint
	Reserved1    *field.Ascii
}

func NewCmd161Reply() *Cmd161Reply {
	return &Cmd161Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: field.NewAscii(3, zeroFill(3)),
		TankType: newU8(5), Reserved1: field.NewAscii(12, zeroFill(12))}
}

func (r *Cmd161Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0, r.TankType, r.Reserved1}
}

// --- Command 162 ---------------------------------------------------------

type Cmd162Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Ascii
}

func NewCmd162Reply() *Cmd162Reply {
	return &Cmd162Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: field.NewAscii(83, zeroFill(83))}
}

func (r *Cmd162Reply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0} }

// --- Commands 216-222 -----------------------------------------------------

type Cmd216Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Uint
	Reserved1    *field.Uint
	Reserved2    *field.Uint
	Reserved3    *field.Uint
}

func NewCmd216Reply() *Cmd216Reply {
	return &Cmd216Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0),
		Reserved0: newU32(0), Reserved1: newU32(0), Reserved2: newU32(0), Reserved3: newU32(0)}
}

func (r *Cmd216Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0, r.Reserved1, r.Reserved2, r.Reserved3}
}

type singleReservedU32Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Uint
}

func newSingleReservedU32Reply() *singleReservedU32Reply {
	return &singleReservedU32Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), Reserved0: newU32(0)}
}

func (r *singleReservedU32Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0}
}

type Cmd217Reply struct{ *singleReservedU32Reply }

func NewCmd217Reply() *Cmd217Reply { return &Cmd217Reply{newSingleReservedU32Reply()} }

type Cmd218Reply struct{ *singleReservedU32Reply }

func NewCmd218Reply() *Cmd218Reply { return &Cmd218Reply{newSingleReservedU32Reply()} }

type Cmd220Reply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
	Reserved0    *field.Uint
	Reserved1    *field.Uint
	Reserved2    *field.Uint
}

func NewCmd220Reply() *Cmd220Reply {
	return &Cmd220Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0),
		Reserved0: newU32(0), Reserved1: newU32(0), Reserved2: newU8(0)}
}

func (r *Cmd220Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.Reserved0, r.Reserved1, r.Reserved2}
}

type Cmd222Reply struct{ *singleReservedU32Reply }

func NewCmd222Reply() *Cmd222Reply { return &Cmd222Reply{newSingleReservedU32Reply()} }

// --- Error / extended command envelope ------------------------------------

type ErrorReply struct {
	ResponseCode *field.Uint
	DeviceStatus *field.Uint
}

func NewErrorReply(responseCode uint8) *ErrorReply {
	return &ErrorReply{ResponseCode: newU8(responseCode), DeviceStatus: newU8(0)}
}

func (r *ErrorReply) Fields() []field.Field { return []field.Field{r.ResponseCode, r.DeviceStatus} }

type Cmd31Request struct {
	ExtendedCommandNumber *field.Uint
	RequestData           *field.GreedyU8Array
}

func NewCmd31Request() *Cmd31Request {
	return &Cmd31Request{ExtendedCommandNumber: newU16(0), RequestData: new(field.GreedyU8Array)}
}

func (r *Cmd31Request) Fields() []field.Field {
	return []field.Field{r.ExtendedCommandNumber, r.RequestData}
}

type Cmd31Reply struct {
	ResponseCode          *field.Uint
	DeviceStatus          *field.Uint
	ExtendedCommandNumber *field.Uint
	ResponseData          *field.GreedyU8Array
}

func NewCmd31Reply() *Cmd31Reply {
	return &Cmd31Reply{ResponseCode: newU8(0), DeviceStatus: newU8(0), ExtendedCommandNumber: newU16(0),
		ResponseData: new(field.GreedyU8Array)}
}

func (r *Cmd31Reply) Fields() []field.Field {
	return []field.Field{r.ResponseCode, r.DeviceStatus, r.ExtendedCommandNumber, r.ResponseData}
}
