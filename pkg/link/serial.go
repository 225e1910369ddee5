// Package link implements the data-link layer (C5): the steady-state
// serial I/O loop that feeds incoming bytes to a frame builder, dispatches
// complete frames against the addressed device, and writes the reply back
// with the preamble/DTR discipline a HART master expects.
package link

import (
	goserial "github.com/daedaluz/goserial"
)

// Port is the narrow serial-port surface the data-link loop needs. It is
// an interface so the loop can be driven by a fake port in tests instead
// of a real tty.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetDTR(on bool) error
	Name() string
	Close() error
}

// SerialPort adapts a goserial.Port to the Port interface, configured for
// HART's fixed wire parameters: 1200 baud, 8 data bits, odd parity, one
// stop bit.
type SerialPort struct {
	name string
	port *goserial.Port
}

// OpenSerialPort opens path and configures it for HART framing.
func OpenSerialPort(path string) (*SerialPort, error) {
	port, err := goserial.Open(path, nil)
	if err != nil {
		return nil, wrapErr("open", err)
	}

	attrs, err := port.GetAttr()
	if err != nil {
		port.Close()
		return nil, wrapErr("get attr", err)
	}
	attrs.Cflag &^= goserial.CSIZE | goserial.CBAUD
	attrs.Cflag |= goserial.CS8 | goserial.B1200 | goserial.PARENB | goserial.PARODD | goserial.CREAD | goserial.CLOCAL
	if err := port.SetAttr(goserial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, wrapErr("set attr", err)
	}

	if err := port.Flush(goserial.TCIOFLUSH); err != nil {
		port.Close()
		return nil, wrapErr("flush", err)
	}

	sp := &SerialPort{name: path, port: port}
	if err := sp.SetDTR(false); err != nil {
		port.Close()
		return nil, err
	}
	return sp, nil
}

func (p *SerialPort) Read(data []byte) (int, error) {
	n, err := p.port.Read(data)
	if err != nil {
		return n, wrapErr("read", err)
	}
	return n, nil
}

func (p *SerialPort) Write(data []byte) (int, error) {
	n, err := p.port.Write(data)
	if err != nil {
		return n, wrapErr("write", err)
	}
	return n, nil
}

// SetDTR raises or lowers the DTR line; the reference implementation
// toggles it around every reply write.
func (p *SerialPort) SetDTR(on bool) error {
	var err error
	if on {
		err = p.port.EnableModemLines(goserial.TIOCM_DTR)
	} else {
		err = p.port.DisableModemLines(goserial.TIOCM_DTR)
	}
	return wrapErr("set dtr", err)
}

func (p *SerialPort) Name() string { return p.name }

func (p *SerialPort) Close() error {
	return wrapErr("close", p.port.Close())
}
