package link

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/hartsim/hartsim/pkg/device"
	"github.com/hartsim/hartsim/pkg/frame"
)

// fakePort is an in-memory Port: Write appends to sent for inspection,
// Read drains a queue of byte chunks fed by the test, returning io.EOF
// once exhausted so Loop.Run terminates instead of spinning forever.
type fakePort struct {
	name   string
	chunks [][]byte
	next   int
	sent   []byte
	dtrLog []bool
}

func (p *fakePort) Read(buf []byte) (int, error) {
	if p.next >= len(p.chunks) {
		return 0, io.EOF
	}
	chunk := p.chunks[p.next]
	p.next++
	n := copy(buf, chunk)
	return n, nil
}

func (p *fakePort) Write(data []byte) (int, error) {
	p.sent = append(p.sent, data...)
	return len(data), nil
}

func (p *fakePort) SetDTR(on bool) error {
	p.dtrLog = append(p.dtrLog, on)
	return nil
}

func (p *fakePort) Name() string { return p.name }
func (p *fakePort) Close() error { return nil }

func newTestDevice(pollingAddr uint8) *device.Device {
	d := device.New()
	d.PollingAddress.SetValue(uint32(pollingAddr))
	d.LongAddress = d.UniqueAddress()
	return d
}

func TestLoopDispatchesAndRepliesWithPreambleAndDTR(t *testing.T) {
	dev := newTestDevice(0)
	registry := NewRegistry()
	registry.Add(dev)

	req := (&frame.Frame{Type: frame.STX, CommandNumber: 0, ShortAddress: 0, IsPrimaryMaster: true}).Serialize(true)
	port := &fakePort{name: "/dev/fake", chunks: [][]byte{append([]byte{0xFF, 0xFF}, req...)}}

	loop := NewLoop(port, registry)
	err := loop.Run()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Run() error = %v, want io.EOF once input is exhausted", err)
	}

	if len(port.sent) < 3 || !bytes.Equal(port.sent[:3], []byte{0xFF, 0xFF, 0xFF}) {
		t.Fatalf("expected reply to start with 3 preamble bytes, got % X", port.sent)
	}
	if len(port.dtrLog) != 2 || !port.dtrLog[0] || port.dtrLog[1] {
		t.Errorf("expected DTR raised then lowered around the write, got %v", port.dtrLog)
	}
}

func TestLoopIgnoresFrameForUnknownDevice(t *testing.T) {
	registry := NewRegistry()
	req := (&frame.Frame{Type: frame.STX, CommandNumber: 0, ShortAddress: 5, IsPrimaryMaster: true}).Serialize(true)
	port := &fakePort{name: "/dev/fake", chunks: [][]byte{append([]byte{0xFF, 0xFF}, req...)}}

	loop := NewLoop(port, registry)
	if err := loop.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run() error = %v, want io.EOF", err)
	}
	if len(port.sent) != 0 {
		t.Errorf("expected no reply for an unaddressed device, got % X", port.sent)
	}
}

func TestRegistryLookupByLongAddress(t *testing.T) {
	dev := newTestDevice(3)
	registry := NewRegistry()
	registry.Add(dev)

	req := frame.Frame{IsLongAddress: true, LongAddress: dev.LongAddress}
	if got := registry.Lookup(req); got != dev {
		t.Errorf("Lookup() by long address did not return the registered device")
	}
}

func TestRegistryLookupByShortAddress(t *testing.T) {
	dev := newTestDevice(7)
	registry := NewRegistry()
	registry.Add(dev)

	req := frame.Frame{ShortAddress: 7, CommandNumber: 0}
	if got := registry.Lookup(req); got != dev {
		t.Errorf("Lookup() by short address did not return the registered device")
	}
}

func TestRegistryLookupByShortAddressRequiresCommandZero(t *testing.T) {
	dev := newTestDevice(7)
	registry := NewRegistry()
	registry.Add(dev)

	req := frame.Frame{ShortAddress: 7, CommandNumber: 1}
	if got := registry.Lookup(req); got != nil {
		t.Errorf("Lookup() matched a short-addressed non-zero command, want nil (only the identification poll uses short addressing)")
	}
}
