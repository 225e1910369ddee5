// Package field implements the typed payload primitives a HART frame's
// data section is built from: fixed-width integers, a big-endian float,
// two ASCII encodings, and a greedy trailing byte array.
package field

import "bytes"

// Field is one wire-ordered element of a command payload. A Field that is
// Optional and fails to decode because the reader is exhausted is marked
// Skipped rather than treated as an error, and a Skipped field contributes
// no bytes on Encode.
type Field interface {
	Encode() []byte
	Decode(r *bytes.Reader) error
	Optional() bool
	SetOptional(bool)
	Skipped() bool
	SetSkipped(bool)
}

// base carries the optional/skipped bookkeeping shared by every field type,
// mirroring how a single Instruction struct in the teacher's opcode catalog
// serves every opcode instead of one struct per opcode.
type base struct {
	optional bool
	skipped  bool
}

func (b *base) Optional() bool     { return b.optional }
func (b *base) SetOptional(v bool) { b.optional = v }
func (b *base) Skipped() bool      { return b.skipped }
func (b *base) SetSkipped(v bool)  { b.skipped = v }

func padOrTrim(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	for len(s) < n {
		s += " "
	}
	return s
}
