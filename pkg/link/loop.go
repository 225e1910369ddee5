package link

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/hartsim/hartsim/pkg/command"
	"github.com/hartsim/hartsim/pkg/device"
	"github.com/hartsim/hartsim/pkg/frame"
)

// replyPreambleCount is the number of 0xFF synchronization bytes a reply
// is prefixed with, matching the reference datalink loop.
const replyPreambleCount = 3

// idlePollInterval is how long the loop sleeps between polls when the
// port has nothing waiting, mirroring the reference loop's 10ms sleep.
const idlePollInterval = 10 * time.Millisecond

// Registry maps a request frame to the device it addresses: by short
// (polling) address or by long (unique) address, per spec.md's "Multiple
// devices are supported" note.
type Registry struct {
	byShort map[uint8]*device.Device
	byLong  map[uint64]*device.Device
}

// NewRegistry returns an empty device registry.
func NewRegistry() *Registry {
	return &Registry{byShort: map[uint8]*device.Device{}, byLong: map[uint64]*device.Device{}}
}

// Add registers dev under both its polling address and its unique address.
func (r *Registry) Add(dev *device.Device) {
	r.byShort[uint8(dev.PollingAddress.Value())] = dev
	r.byLong[dev.LongAddress&0x3FFFFFFFFF] = dev
}

// Lookup returns the device a request frame addresses, or nil if none of
// the registered devices match. A short address only resolves on command
// 0, the identification poll; every other short-addressed command must
// reach the device through its long (unique) address instead.
func (r *Registry) Lookup(req frame.Frame) *device.Device {
	if req.IsLongAddress {
		return r.byLong[req.LongAddress&0x3FFFFFFFFF]
	}
	if req.CommandNumber != 0 {
		return nil
	}
	return r.byShort[req.ShortAddress]
}

// Loop is the data-link steady-state cycle: poll the port, feed bytes to
// the frame builder, dispatch every completed frame against the addressed
// device, and write the reply back with the preamble/DTR discipline a
// HART master expects.
type Loop struct {
	Port    Port
	Builder *frame.Builder
	Devices *Registry
	Logger  *log.Logger
	readBuf []byte
}

// NewLoop returns a Loop ready to Run against port and devices.
func NewLoop(port Port, devices *Registry) *Loop {
	return &Loop{
		Port:    port,
		Builder: frame.NewBuilder(),
		Devices: devices,
		Logger:  log.Default(),
		readBuf: make([]byte, 256),
	}
}

// Run polls the port forever, dispatching every frame it recovers. It
// returns only when a read, a write or a DTR change fails.
func (l *Loop) Run() error {
	l.Logger.Info("listening", "port", l.Port.Name())

	for {
		n, err := l.Port.Read(l.readBuf)
		if err != nil {
			return err
		}
		if n == 0 {
			time.Sleep(idlePollInterval)
			continue
		}

		if !l.Builder.Collect(l.readBuf[:n]) {
			continue
		}
		for l.Builder.Len() > 0 {
			if err := l.handle(l.Builder.Dequeue()); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) handle(req frame.Frame) error {
	l.Logger.Debug("request", "frame", req.String())

	dev := l.Devices.Lookup(req)
	if dev == nil {
		l.Logger.Debug("no device addressed", "frame", req.String())
		return nil
	}

	dev.UpdateVariables(time.Now())

	reply, ok := command.Dispatch(dev, req)
	if !ok {
		return nil
	}

	wire := reply.Serialize(true)
	out := make([]byte, 0, replyPreambleCount+len(wire))
	for i := 0; i < replyPreambleCount; i++ {
		out = append(out, 0xFF)
	}
	out = append(out, wire...)

	if err := l.Port.SetDTR(true); err != nil {
		return err
	}
	_, writeErr := l.Port.Write(out)
	if err := l.Port.SetDTR(false); err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	l.Logger.Info("reply", "frame", reply.String())
	return nil
}
