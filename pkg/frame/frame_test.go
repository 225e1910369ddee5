package frame

import (
	"bytes"
	"testing"
)

func TestSerializeChecksumExercise(t *testing.T) {
	f := &Frame{
		Type:            ACK,
		CommandNumber:   0,
		ShortAddress:    42,
		IsPrimaryMaster: true,
		Data:            []byte{1, 2, 3},
	}
	got := f.Serialize(true)
	want := []byte{0x06, 0xAA, 0x00, 0x03, 0x01, 0x02, 0x03, 0xAF}
	if !bytes.Equal(got, want) {
		t.Fatalf("Serialize() = % X, want % X", got, want)
	}
	if f.CheckSum != 0xAF {
		t.Errorf("CheckSum = %#x, want 0xAF", f.CheckSum)
	}
	if !f.IsValid() {
		t.Errorf("expected frame to be valid")
	}
}

func TestByteCountZeroStillHasChecksum(t *testing.T) {
	f := &Frame{Type: ACK, CommandNumber: 5, ShortAddress: 1, IsPrimaryMaster: true}
	got := f.Serialize(true)
	if len(got) != 5 {
		t.Fatalf("expected 5 bytes (delim, addr, cmd, count=0, checksum) got %d: % X", len(got), got)
	}
}

func TestResyncAfterNoise(t *testing.T) {
	b := NewBuilder()
	stream := []byte{0x00, 0x55, 0xFF, 0xFF, 0x06, 0xAA, 0x00, 0x03, 0x01, 0x02, 0x03, 0xAF}
	if !b.Collect(stream) {
		t.Fatal("expected a frame to be recovered")
	}
	if b.Len() != 1 {
		t.Fatalf("expected exactly one frame, got %d", b.Len())
	}
	f := b.Dequeue()
	if f.Type != ACK || f.CommandNumber != 0 || f.ShortAddress != 42 {
		t.Errorf("unexpected frame: %+v", f)
	}
	if !bytes.Equal(f.Data, []byte{1, 2, 3}) {
		t.Errorf("unexpected data: %v", f.Data)
	}
}

func TestConcatenatedFramesBothRecoveredInOrder(t *testing.T) {
	b := NewBuilder()
	one := (&Frame{Type: ACK, CommandNumber: 0, ShortAddress: 1, IsPrimaryMaster: true, Data: []byte{0xAA}}).Serialize(true)
	two := (&Frame{Type: STX, CommandNumber: 3, ShortAddress: 2, IsPrimaryMaster: true, Data: []byte{0xBB, 0xCC}}).Serialize(true)

	stream := append([]byte{0xFF, 0xFF}, one...)
	stream = append(stream, two...)

	b.Collect(stream)
	if b.Len() != 2 {
		t.Fatalf("expected two frames recovered from one Collect call, got %d", b.Len())
	}
	first := b.Dequeue()
	second := b.Dequeue()
	if first.CommandNumber != 0 || first.ShortAddress != 1 {
		t.Errorf("unexpected first frame: %+v", first)
	}
	if second.CommandNumber != 3 || second.ShortAddress != 2 {
		t.Errorf("unexpected second frame: %+v", second)
	}
}

func TestLongAddressTopByteMasked(t *testing.T) {
	b := NewBuilder()
	// delimiter (ACK, long address) + 5 long-address bytes (top byte 0xFF
	// has its master/burst bits stripped by the 0x3F mask) + cmd + count=0
	body := []byte{0x86, 0xFF, 0x26, 0x06, 0x12, 0x34, 0x56, 0x00}
	var xor uint8
	for _, x := range body {
		xor ^= x
	}
	stream := append([]byte{0xFF, 0xFF}, body...)
	stream = append(stream, xor)

	if !b.Collect(stream) {
		t.Fatal("expected a frame")
	}
	f := b.Dequeue()
	if !f.IsLongAddress {
		t.Fatal("expected long address frame")
	}
	if f.LongAddress>>32 != 0x3F {
		t.Errorf("expected top byte masked to 0x3F, got %#x", f.LongAddress>>32)
	}
	if !f.IsValid() {
		t.Errorf("expected checksum to validate")
	}
}

func TestDecodeSerializeRoundTrip(t *testing.T) {
	orig := &Frame{
		Type:            STX,
		CommandNumber:   13,
		IsLongAddress:   true,
		LongAddress:     0x123456789A & 0x3FFFFFFFFF,
		IsPrimaryMaster: true,
		IsBurst:         false,
		Data:            []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	wire := orig.Serialize(true)

	b := NewBuilder()
	b.Collect(wire)
	if b.Len() != 1 {
		t.Fatalf("expected one frame, got %d", b.Len())
	}
	got := b.Dequeue()
	if got.Type != orig.Type || got.CommandNumber != orig.CommandNumber {
		t.Errorf("mismatch: %+v vs %+v", got, orig)
	}
	if !got.IsValid() {
		t.Errorf("expected recovered frame to validate")
	}
}
