package field

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Float32Field is a 4-byte IEEE-754 field, big-endian on the wire in both
// directions. SetValue/Value never jitter or round the stored bits; the
// value a caller puts in is exactly the value Encode serializes.
type Float32Field struct {
	base
	value float32
}

// F32 constructs a float field with the given initial value.
func F32(v float32) *Float32Field {
	return &Float32Field{value: v}
}

func (f *Float32Field) Value() float32 { return f.value }

func (f *Float32Field) SetValue(v float32) { f.value = v }

func (f *Float32Field) Encode() []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, math.Float32bits(f.value))
	return out
}

func (f *Float32Field) Decode(r *bytes.Reader) error {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	f.value = math.Float32frombits(binary.BigEndian.Uint32(buf))
	f.skipped = false
	return nil
}
