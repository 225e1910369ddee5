package link

import "fmt"

// PortError wraps a serial port operation's failure with the operation
// name, in the idiom of the goserial donor library's own Error type.
type PortError struct {
	Op  string
	Err error
}

func (e *PortError) Error() string {
	return fmt.Sprintf("link: %s: %v", e.Op, e.Err)
}

func (e *PortError) Unwrap() error { return e.Err }

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PortError{Op: op, Err: err}
}
