package field

import "bytes"

// GreedyU8Array consumes every remaining byte in the decode reader and
// re-emits them verbatim. Used for the Command 31 envelope's request/reply
// data, whose length is implied by the outer frame's byte count rather than
// self-described.
type GreedyU8Array struct {
	base
	value []byte
}

// NewGreedyU8Array constructs a greedy field pre-populated with value.
func NewGreedyU8Array(value []byte) *GreedyU8Array {
	return &GreedyU8Array{value: append([]byte(nil), value...)}
}

func (g *GreedyU8Array) Value() []byte { return g.value }

func (g *GreedyU8Array) SetValue(v []byte) { g.value = append([]byte(nil), v...) }

func (g *GreedyU8Array) Encode() []byte {
	return append([]byte(nil), g.value...)
}

func (g *GreedyU8Array) Decode(r *bytes.Reader) error {
	remaining := r.Len()
	buf := make([]byte, remaining)
	if remaining > 0 {
		if _, err := r.Read(buf); err != nil {
			return err
		}
	}
	g.value = buf
	g.skipped = false
	return nil
}
