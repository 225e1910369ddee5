// Package command implements the HART command dispatcher (C4): routing a
// decoded request to the reply payload appropriate for the device's
// current state, including the Command 31 extended-command envelope and
// every per-command side effect (units exchange, status toggling) the
// reference device performs.
package command

import (
	"github.com/hartsim/hartsim/pkg/device"
	"github.com/hartsim/hartsim/pkg/field"
	"github.com/hartsim/hartsim/pkg/frame"
)

const responseSuccess = 0
const responseNotImplemented = 64

// Dispatch executes one request frame against dev and returns the reply
// frame to transmit. ok is false when the request warrants no reply at
// all: only STX (master-originated) frames get one, per the HART
// half-duplex discipline — a device never answers an ACK or BACK frame.
func Dispatch(dev *device.Device, req frame.Frame) (frame.Frame, bool) {
	if req.Type != frame.STX {
		return frame.Frame{}, false
	}

	payload := handleRequest(dev, int(req.CommandNumber), req.Data)

	reply := frame.Frame{
		Type:            frame.ACK,
		CommandNumber:   req.CommandNumber,
		IsLongAddress:   req.IsLongAddress,
		ShortAddress:    req.ShortAddress,
		LongAddress:     req.LongAddress,
		IsPrimaryMaster: false,
		IsBurst:         dev.IsBurstMode,
		Data:            payload,
	}
	reply.Serialize(true)
	return reply, true
}

// responseCodeOf reads the response-code header byte every reply type
// carries as the first entry of Fields().
func responseCodeOf(seq field.Sequence) uint8 {
	return uint8(seq.Fields()[0].(*field.Uint).Value())
}

// handleRequest mirrors the reference dispatcher: unwrap a Command 31
// envelope if present, route the (possibly unwrapped) command number, then
// rewrap the inner reply if this was an extended command.
func handleRequest(dev *device.Device, commandNumber int, data []byte) []byte {
	isExtended := commandNumber == 31
	effectiveNumber := commandNumber

	if isExtended {
		req := NewCmd31Request()
		if err := field.Decode(req, data); err != nil {
			return field.Encode(NewErrorReply(responseNotImplemented))
		}
		effectiveNumber = int(req.ExtendedCommandNumber.Value())
		data = req.RequestData.Value()
	}

	seq := route(dev, effectiveNumber, data)

	if isExtended {
		raw := field.Encode(seq)
		inner := raw[2:] // skip the inner reply's own response_code/device_status
		wrap := NewCmd31Reply()
		wrap.ResponseCode.SetValue(uint32(responseCodeOf(seq)))
		wrap.DeviceStatus.SetValue(dev.DeviceStatus.Value())
		wrap.ExtendedCommandNumber.SetValue(uint32(effectiveNumber))
		wrap.ResponseData.SetValue(inner)
		return field.Encode(wrap)
	}

	return field.Encode(seq)
}

func revision(dev *device.Device) uint32 { return dev.UniversalRevision.Value() }

// route selects and populates the reply payload for one command number. A
// command number this device doesn't support (unknown, or gated by
// revision and the device predates it) falls back to the universal
// not-implemented reply, response code 64.
func route(dev *device.Device, commandNumber int, data []byte) field.Sequence {
	switch commandNumber {
	case 0:
		return cmd0(dev)
	case 1:
		return cmd1(dev)
	case 2:
		return cmd2(dev)
	case 3:
		return cmd3(dev)
	case 7:
		if revision(dev) >= 6 {
			return cmd7(dev)
		}
	case 8:
		if revision(dev) >= 6 {
			return cmd8(dev)
		}
	case 9:
		if revision(dev) >= 6 {
			return cmd9(dev, data)
		}
	case 12:
		return cmd12(dev)
	case 13:
		return cmd13(dev)
	case 15:
		return cmd15(dev)
	case 20:
		if revision(dev) >= 6 {
			return cmd20(dev)
		}
	case 34:
		return cmd34(dev, data)
	case 36:
		return cmd36(dev)
	case 37:
		return cmd37(dev)
	case 40:
		return cmd40(dev, data)
	case 45:
		return cmd45(dev)
	case 46:
		return cmd46(dev)
	case 48:
		return cmd48(dev)
	case 53:
		return cmd53(dev, data)
	case 54:
		return cmd54(dev, data)
	case 72:
		return cmd72(dev)
	case 76:
		return withStatus(dev, NewCmd76Reply())
	case 90:
		return withStatus(dev, NewCmd90Reply())
	case 105:
		return withStatus(dev, NewCmd105Reply())
	case 128:
		return withStatus(dev, NewCmd128Reply())
	case 133:
		return withStatus(dev, NewCmd133Reply())
	case 136, 137, 140, 142, 177, 196, 200, 202, 203:
		if seq, ok := dynamicCommand(dev, commandNumber); ok {
			return seq
		}
		return withStatus(dev, NewReservedReply())
	case 148:
		return withStatus(dev, NewCmd148Reply())
	case 160:
		return withStatus(dev, NewCmd160Reply())
	case 161:
		return withStatus(dev, NewCmd161Reply())
	case 162:
		return withStatus(dev, NewCmd162Reply())
	case 216:
		return withStatus(dev, NewCmd216Reply())
	case 217:
		return withStatus(dev, NewCmd217Reply())
	case 218:
		return withStatus(dev, NewCmd218Reply())
	case 220:
		return withStatus(dev, NewCmd220Reply())
	case 222:
		return withStatus(dev, NewCmd222Reply())
	}
	if seq, ok := dynamicCommand(dev, commandNumber); ok {
		return seq
	}
	return NewErrorReply(responseNotImplemented)
}

// dynamicCommand builds a reply for a device-specific command declared in
// the device's JSON spec: each name in its reply layout is resolved against
// dev.NamedVariables, in declared order. ok is false when commandNumber
// names no dynamic command, or when a declared reply field no longer
// resolves (the device-spec loader rejects that case, but dispatch defends
// against it too).
func dynamicCommand(dev *device.Device, commandNumber int) (field.Sequence, bool) {
	dc, ok := dev.DynamicCommands[commandNumber]
	if !ok {
		return nil, false
	}
	fields := make([]field.Field, 0, len(dc.Reply))
	for _, name := range dc.Reply {
		f, ok := dev.NamedVariables[name]
		if !ok {
			return nil, false
		}
		fields = append(fields, f)
	}
	return &namedFieldSequence{fields: fields}, true
}

// namedFieldSequence adapts a plain field.Field slice to field.Sequence for
// dynamic-command replies, which have no compiled struct to hang Fields() off.
type namedFieldSequence struct {
	fields []field.Field
}

func (s *namedFieldSequence) Fields() []field.Field { return s.fields }

// withStatus copies dev.DeviceStatus into the reply's DeviceStatus field
// (Fields()[1] on every reply type here) for the many commands whose only
// device-derived content is that status byte.
func withStatus(dev *device.Device, seq field.Sequence) field.Sequence {
	seq.Fields()[1].(*field.Uint).SetValue(dev.DeviceStatus.Value())
	return seq
}

func cmd0(dev *device.Device) field.Sequence {
	if dev.UniversalRevision.Value() == 5 {
		r := NewCmd0Hart5Reply()
		r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
		r.ExpandedDeviceType.SetValue(dev.ExpandedDeviceType.Value())
		r.DeviceID.SetValue(dev.DeviceID.Value())
		return r
	}
	r := NewCmd0Hart7Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.ExpandedDeviceType.SetValue(dev.ExpandedDeviceType.Value())
	r.DeviceID.SetValue(dev.DeviceID.Value())
	r.ConfigChangeCounter.SetValue(dev.ConfigChangeCounter.Value())
	r.ExtendedDeviceStatus.SetValue(dev.ExtendedDeviceStatus.Value())
	return r
}

func cmd1(dev *device.Device) field.Sequence {
	r := NewCmd1Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	if pv := dev.Variable(0); pv != nil {
		r.PVUnits.SetValue(pv.Units.Value())
		r.PVValue.SetValue(pv.Value.Value())
	}
	return r
}

func cmd2(dev *device.Device) field.Sequence {
	r := NewCmd2Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.LoopCurrent.SetValue(dev.LoopCurrent.Value())
	r.PercentOfRange.SetValue(dev.PercentOfRange.Value())
	return r
}

func cmd3(dev *device.Device) field.Sequence {
	r := NewCmd3Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.LoopCurrent.SetValue(dev.LoopCurrent.Value())
	if pv := dev.Variable(0); pv != nil {
		r.PVUnits.SetValue(pv.Units.Value())
		r.PVValue.SetValue(pv.Value.Value())
	}
	if sv := dev.Variable(1); sv != nil {
		r.SVUnits.SetValue(sv.Units.Value())
		r.SVValue.SetValue(sv.Value.Value())
	}
	if tv := dev.Variable(2); tv != nil {
		r.TVUnits.SetValue(tv.Units.Value())
		r.TVValue.SetValue(tv.Value.Value())
	}
	if qv := dev.Variable(3); qv != nil {
		r.QVUnits.SetValue(qv.Units.Value())
		r.QVValue.SetValue(qv.Value.Value())
	}
	return r
}

func cmd7(dev *device.Device) field.Sequence {
	r := NewCmd7Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.PollingAddress.SetValue(dev.PollingAddress.Value())
	r.LoopCurrentMode.SetValue(dev.LoopCurrentMode.Value())
	return r
}

func cmd8(dev *device.Device) field.Sequence {
	r := NewCmd8Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	if pv := dev.Variable(0); pv != nil {
		r.PVClassification.SetValue(pv.Classification.Value())
	}
	if sv := dev.Variable(1); sv != nil {
		r.SVClassification.SetValue(sv.Classification.Value())
	}
	if tv := dev.Variable(2); tv != nil {
		r.TVClassification.SetValue(tv.Classification.Value())
	}
	if qv := dev.Variable(3); qv != nil {
		r.QVClassification.SetValue(qv.Classification.Value())
	}
	return r
}

// cmd9 reads up to 8 device variables by code and, per variable read,
// exchanges its units and alternate_units (the request's trailing slots
// are optional; a slot the master omitted stays Skipped in the reply).
func cmd9(dev *device.Device, data []byte) field.Sequence {
	req := NewCmd9Request()
	reply := NewCmd9Reply()
	reply.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	reply.ExtendedDeviceStatus.SetValue(dev.ExtendedDeviceStatus.Value())

	if err := field.Decode(req, data); err != nil {
		return NewErrorReply(responseNotImplemented)
	}

	for i, codeField := range req.Codes {
		slot := &reply.Slots[i]
		if codeField.Skipped() {
			for _, f := range slot.fields() {
				f.SetSkipped(true)
			}
			continue
		}

		code := int(codeField.Value())
		v := dev.DeviceVariables[code]
		slot.Code.SetValue(uint32(code))
		slot.Code.SetSkipped(false)
		if v == nil {
			continue
		}
		slot.Classification.SetValue(v.Classification.Value())
		slot.Classification.SetSkipped(false)
		slot.Units.SetValue(v.Units.Value())
		slot.Units.SetSkipped(false)
		slot.Value.SetValue(v.Value.Value())
		slot.Value.SetSkipped(false)
		slot.Status.SetValue(v.Status.Value())
		slot.Status.SetSkipped(false)

		units, alternate := v.Units.Value(), v.AlternateUnits.Value()
		v.Units.SetValue(alternate)
		v.AlternateUnits.SetValue(units)
	}

	return reply
}

func cmd12(dev *device.Device) field.Sequence {
	r := NewCmd12Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.HartMessage.SetValue(dev.HartMessage.Value())
	return r
}

func cmd13(dev *device.Device) field.Sequence {
	r := NewCmd13Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.HartTag.SetValue(dev.HartTag.Value())
	r.HartDescriptor.SetValue(dev.HartDescriptor.Value())
	r.HartDate.SetValue(dev.HartDate.Value())
	return r
}

func cmd15(dev *device.Device) field.Sequence {
	r := NewCmd15Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	return r
}

func cmd20(dev *device.Device) field.Sequence {
	r := NewCmd20Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.LongTag.SetValue(dev.HartLongTag.Value())
	return r
}

func cmd34(dev *device.Device, data []byte) field.Sequence {
	req := NewCmd34Request()
	if err := field.Decode(req, data); err != nil {
		return NewErrorReply(responseNotImplemented)
	}
	dev.PVDamping.SetValue(req.Damping.Value())
	r := NewCmd34Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.Damping.SetValue(dev.PVDamping.Value())
	return r
}

func cmd36(dev *device.Device) field.Sequence {
	r := NewCmd36Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	if pv := dev.Variable(0); pv != nil {
		pv.URV.SetValue(pv.Value.Value())
		r.URV.SetValue(pv.URV.Value())
	}
	return r
}

func cmd37(dev *device.Device) field.Sequence {
	r := NewCmd37Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	if pv := dev.Variable(0); pv != nil {
		pv.LRV.SetValue(pv.Value.Value())
		r.LRV.SetValue(pv.LRV.Value())
	}
	return r
}

func cmd40(dev *device.Device, data []byte) field.Sequence {
	req := NewCmd40Request()
	if err := field.Decode(req, data); err != nil {
		return NewErrorReply(responseNotImplemented)
	}
	dev.LoopCurrent.SetValue(req.FixedCurrent.Value())
	r := NewCmd40Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.LoopCurrent.SetValue(dev.LoopCurrent.Value())
	return r
}

func cmd45(dev *device.Device) field.Sequence {
	r := NewCmd45Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	return r
}

func cmd46(dev *device.Device) field.Sequence {
	r := NewCmd46Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	return r
}

// cmd48 swaps device_specific_status_0 with its alternate on every read,
// the same oscillation Command 9 performs for units.
func cmd48(dev *device.Device) field.Sequence {
	r := NewCmd48Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.DeviceSpecificStatus0.SetValue(dev.DeviceSpecificStatus0.Value())

	current, alternate := dev.DeviceSpecificStatus0.Value(), dev.AlternateDeviceSpecificStatus0.Value()
	dev.DeviceSpecificStatus0.SetValue(alternate)
	dev.AlternateDeviceSpecificStatus0.SetValue(current)

	return r
}

func cmd53(dev *device.Device, data []byte) field.Sequence {
	req := NewCmd53Request()
	if err := field.Decode(req, data); err != nil {
		return NewErrorReply(responseNotImplemented)
	}
	r := NewCmd53Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.Code.SetValue(req.Code.Value())
	r.Units.SetValue(req.Units.Value())
	if v := dev.DeviceVariables[int(req.Code.Value())]; v != nil {
		v.Units.SetValue(req.Units.Value())
	}
	return r
}

func cmd54(dev *device.Device, data []byte) field.Sequence {
	req := NewCmd54Request()
	if err := field.Decode(req, data); err != nil {
		return NewErrorReply(responseNotImplemented)
	}
	r := NewCmd54Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	r.Code.SetValue(req.Code.Value())
	if v := dev.DeviceVariables[int(req.Code.Value())]; v != nil {
		r.Classification.SetValue(v.Classification.Value())
		r.Units.SetValue(v.Units.Value())
		r.SensorLRV.SetValue(v.LRV.Value())
		r.SensorURV.SetValue(v.URV.Value())
	}
	return r
}

func cmd72(dev *device.Device) field.Sequence {
	r := NewCmd72Reply()
	r.DeviceStatus.SetValue(dev.DeviceStatus.Value())
	return r
}
