package logreplay

import "time"

// IdleFramer accumulates bytes from a continuous serial stream and
// delimits a frame by line idleness rather than by the wire codec: the log
// replay path only ever records raw hex payloads, not the incremental byte
// stream a real frame codec would parse, so there is no delimiter/checksum
// to scan for here. A frame is considered complete once no new byte has
// arrived for Timeout.
type IdleFramer struct {
	Timeout time.Duration

	buffer       []byte
	lastByteTime time.Time
}

// NewIdleFramer returns a framer using the reference implementation's
// 100ms idle timeout.
func NewIdleFramer() *IdleFramer {
	return &IdleFramer{Timeout: 100 * time.Millisecond}
}

// Feed appends newly-read bytes to the in-progress frame.
func (f *IdleFramer) Feed(data []byte, now time.Time) {
	if len(data) == 0 {
		return
	}
	f.buffer = append(f.buffer, data...)
	f.lastByteTime = now
}

// Ready reports whether the buffered bytes should be treated as a complete
// frame: some bytes are buffered and the line has been idle for Timeout.
func (f *IdleFramer) Ready(now time.Time) bool {
	return len(f.buffer) > 0 && now.Sub(f.lastByteTime) > f.Timeout
}

// Take returns the buffered frame and resets the framer for the next one.
func (f *IdleFramer) Take() []byte {
	frame := f.buffer
	f.buffer = nil
	return frame
}
