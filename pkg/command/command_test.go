package command

import (
	"bytes"
	"testing"

	"github.com/hartsim/hartsim/pkg/device"
	"github.com/hartsim/hartsim/pkg/field"
	"github.com/hartsim/hartsim/pkg/frame"
)

func newTestDevice() *device.Device {
	d := device.New()
	pv := device.NewDeviceVariable()
	pv.Units.SetValue(12)
	pv.AlternateUnits.SetValue(32)
	pv.Value.SetValue(1.2345)
	d.AddVariable(0, pv)
	d.DynamicVariables[0] = 0
	return d
}

func TestDispatchShortAddressCmd0Hart7(t *testing.T) {
	d := newTestDevice()
	d.PollingAddress.SetValue(0)

	req := frame.Frame{Type: frame.STX, CommandNumber: 0, ShortAddress: 0, IsPrimaryMaster: true}
	reply, ok := Dispatch(d, req)
	if !ok {
		t.Fatal("expected a reply")
	}
	if reply.CommandNumber != 0 {
		t.Errorf("CommandNumber = %d", reply.CommandNumber)
	}
	if reply.Data[0] != 0 {
		t.Errorf("response code = %#x, want 0", reply.Data[0])
	}
	// two header bytes + 22 field-layout payload bytes for the HART 7 reply
	if len(reply.Data) != 24 {
		t.Fatalf("byte count = %d, want 24", len(reply.Data))
	}
	if reply.Data[2] != 254 {
		t.Errorf("expansion code = %#x, want 0xFE", reply.Data[2])
	}
}

func TestDispatchUnknownCommandReturns64(t *testing.T) {
	d := newTestDevice()
	req := frame.Frame{Type: frame.STX, CommandNumber: 250, ShortAddress: 0, IsPrimaryMaster: true}
	reply, ok := Dispatch(d, req)
	if !ok {
		t.Fatal("expected a reply")
	}
	if len(reply.Data) != 2 || reply.Data[0] != 64 {
		t.Errorf("expected {64, status}, got %v", reply.Data)
	}
}

func TestDispatchAckOrBackProducesNoReply(t *testing.T) {
	d := newTestDevice()
	for _, typ := range []frame.FrameType{frame.ACK, frame.BACK} {
		_, ok := Dispatch(d, frame.Frame{Type: typ, CommandNumber: 0})
		if ok {
			t.Errorf("expected no reply for frame type %v", typ)
		}
	}
}

func TestDispatchLongAddressCmd1(t *testing.T) {
	d := newTestDevice()
	d.LongAddress = 0x2606123456

	req := frame.Frame{
		Type:            frame.STX,
		CommandNumber:   1,
		IsLongAddress:   true,
		LongAddress:     0x2606123456,
		IsPrimaryMaster: true,
	}
	reply, ok := Dispatch(d, req)
	if !ok {
		t.Fatal("expected a reply")
	}
	want := []byte{0x00, 0x00, 0x0C, 0x3F, 0x9E, 0x04, 0x19}
	if !bytes.Equal(reply.Data, want) {
		t.Errorf("payload = % X, want % X", reply.Data, want)
	}
}

func TestCmd9UnitsSwapOscillates(t *testing.T) {
	d := newTestDevice()

	// Request code 0 only: every slot left in the request is read and
	// swapped once, so the unused slots are skipped.
	req := NewCmd9Request()
	req.Codes[0].SetValue(0)
	for i := 1; i < cmd9Slots; i++ {
		req.Codes[i].SetSkipped(true)
	}
	reqBytes := field.Encode(req)

	// Reply: response code, device status, extended status, then slot 0
	// (code, classification, units, value, status) and the timestamp.
	const replyLen = 3 + 8 + 4
	const unitsIndex = 5

	frame1 := frame.Frame{Type: frame.STX, CommandNumber: 9, ShortAddress: 0, Data: reqBytes}
	r1, _ := Dispatch(d, frame1)
	if len(r1.Data) != replyLen {
		t.Fatalf("reply1 length = %d, want %d", len(r1.Data), replyLen)
	}
	if r1.Data[unitsIndex] != 12 {
		t.Errorf("first read units = %d, want 12", r1.Data[unitsIndex])
	}

	r2, _ := Dispatch(d, frame1)
	if len(r2.Data) != replyLen {
		t.Fatalf("reply2 length = %d, want %d", len(r2.Data), replyLen)
	}
	if r2.Data[unitsIndex] != 32 {
		t.Errorf("second read units = %d, want 32 (swapped)", r2.Data[unitsIndex])
	}

	r3, _ := Dispatch(d, frame1)
	if len(r3.Data) != replyLen {
		t.Fatalf("reply3 length = %d, want %d", len(r3.Data), replyLen)
	}
	if r3.Data[unitsIndex] != 12 {
		t.Errorf("third read units = %d, want 12 (swapped back)", r3.Data[unitsIndex])
	}
}

func TestCmd9TrailingOptionalSlotsSkippedWhenOmitted(t *testing.T) {
	d := newTestDevice()
	req := NewCmd9Request()
	req.Codes[0].SetValue(0)
	for i := 1; i < cmd9Slots; i++ {
		req.Codes[i].SetSkipped(true)
	}
	reqBytes := field.Encode(req)

	f := frame.Frame{Type: frame.STX, CommandNumber: 9, ShortAddress: 0, Data: reqBytes}
	reply, _ := Dispatch(d, f)

	// Checked on the wire: field.Decode cannot decode this shape, because
	// the optional slot-1 fields would consume the non-optional timestamp.
	// Omitted slots add no bytes: 3 header bytes, slot 0 (8 bytes), and
	// the 4-byte timestamp.
	if len(reply.Data) != 3+8+4 {
		t.Fatalf("reply length = %d, want %d (slots 1..7 skipped)", len(reply.Data), 3+8+4)
	}
	if reply.Data[3] != 0 {
		t.Errorf("slot 0 code = %d, want 0", reply.Data[3])
	}
	if reply.Data[5] != 12 {
		t.Errorf("slot 0 units = %d, want 12", reply.Data[5])
	}
}

func TestCmd48StatusOscillates(t *testing.T) {
	d := newTestDevice()
	d.DeviceSpecificStatus0.SetValue(0x02)
	d.AlternateDeviceSpecificStatus0.SetValue(0x00)

	f := frame.Frame{Type: frame.STX, CommandNumber: 48, ShortAddress: 0}

	r1, _ := Dispatch(d, f)
	if r1.Data[2] != 0x02 {
		t.Errorf("first read status0 = %#x, want 0x02", r1.Data[2])
	}
	r2, _ := Dispatch(d, f)
	if r2.Data[2] != 0x00 {
		t.Errorf("second read status0 = %#x, want 0x00 (swapped)", r2.Data[2])
	}
}

func TestDispatchResolvesDynamicCommandAgainstNamedVariables(t *testing.T) {
	d := newTestDevice()
	d.NamedVariables["response_code"] = field.U8(0)
	d.NamedVariables["custom_tag"] = field.NewAscii(6, "ABCDEF")
	d.DynamicCommands[200] = device.DynamicCommand{
		Number: 200,
		Reply:  []string{"response_code", "custom_tag"},
	}

	req := frame.Frame{Type: frame.STX, CommandNumber: 200, ShortAddress: 0, IsPrimaryMaster: true}
	reply, ok := Dispatch(d, req)
	if !ok {
		t.Fatal("expected a reply")
	}
	if reply.Data[0] != 0 {
		t.Errorf("response code = %d, want 0", reply.Data[0])
	}
	if got := string(reply.Data[1:]); got != "ABCDEF" {
		t.Errorf("custom_tag payload = %q, want %q", got, "ABCDEF")
	}
}

func TestDispatchUndeclaredDynamicCommandFallsBackToReserved(t *testing.T) {
	d := newTestDevice()
	req := frame.Frame{Type: frame.STX, CommandNumber: 200, ShortAddress: 0, IsPrimaryMaster: true}
	reply, ok := Dispatch(d, req)
	if !ok {
		t.Fatal("expected a reply")
	}
	if reply.Data[0] != 0 {
		t.Errorf("response code = %d, want 0 (reserved-command reply)", reply.Data[0])
	}
}

func TestCmd31ExtendedCommandWrapsCmd148(t *testing.T) {
	d := newTestDevice()
	inner := NewCmd31Request()
	inner.ExtendedCommandNumber.SetValue(148)
	inner.RequestData.SetValue([]byte{0xAB})
	innerBytes := field.Encode(inner)

	f := frame.Frame{Type: frame.STX, CommandNumber: 31, ShortAddress: 0, Data: innerBytes}
	reply, ok := Dispatch(d, f)
	if !ok {
		t.Fatal("expected a reply")
	}

	decoded := NewCmd31Reply()
	if err := field.Decode(decoded, reply.Data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ResponseCode.Value() != 0 {
		t.Errorf("response code = %d, want 0", decoded.ResponseCode.Value())
	}
	if decoded.ExtendedCommandNumber.Value() != 148 {
		t.Errorf("extended command number = %d, want 148", decoded.ExtendedCommandNumber.Value())
	}
	// response_data is the inner Cmd148 reply minus its own 2 header bytes:
	// a 32-byte all-zero reserved block.
	if len(decoded.ResponseData.Value()) != 32 {
		t.Errorf("response data length = %d, want 32", len(decoded.ResponseData.Value()))
	}
}
