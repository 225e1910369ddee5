package field

import (
	"bytes"
	"errors"
	"io"
)

// Sequence is a wire-ordered payload: a command request or reply. Fields
// lists its fields in exactly the order they appear on the wire, standing
// in for the field-declaration-order the source's dataclasses got for
// free — Go has no such reflection, so the order is explicit here.
type Sequence interface {
	Fields() []Field
}

// Encode concatenates the wire bytes of every non-skipped field in s, in
// order.
func Encode(s Sequence) []byte {
	var out []byte
	for _, f := range s.Fields() {
		if f.Skipped() {
			continue
		}
		out = append(out, f.Encode()...)
	}
	return out
}

// Decode fills s's fields from data in wire order. A field that runs out of
// input and is Optional is marked Skipped and decoding continues with the
// rest of s's fields (also left Skipped, since no further data can exist
// past the exhausted reader); a non-optional field that runs out of input
// is an error.
func Decode(s Sequence, data []byte) error {
	r := bytes.NewReader(data)
	for _, f := range s.Fields() {
		if err := f.Decode(r); err != nil {
			if errors.Is(err, io.EOF) && f.Optional() {
				f.SetSkipped(true)
				continue
			}
			return err
		}
	}
	return nil
}
