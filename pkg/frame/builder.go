package frame

type scanState int

const (
	stateUnknown scanState = iota
	statePreambles
	stateShortAddress
	stateLongAddress
	stateCommandNumber
	stateByteCount
	stateData
	stateCheckSum
)

// Builder incrementally recovers Frames from a raw byte stream: at least
// two 0xFF preamble bytes, a delimiter, an address (short or long), a
// command number, a byte count, that many data bytes, and a checksum byte.
// Bytes belonging to an in-progress frame are held across calls to Collect;
// a malformed delimiter resyncs the scanner back to preamble hunting rather
// than aborting the whole stream.
type Builder struct {
	state              scanState
	typ                FrameType
	commandNumber      uint8
	isLongAddress      bool
	shortAddress       uint8
	longAddress        uint64
	isPrimaryMaster    bool
	isBurst            bool
	byteCount          uint8
	payload            []byte
	numberOfPreambles  int
	longAddressLength  int
	queue              []Frame
}

// NewBuilder returns a Builder ready to scan from a clean state.
func NewBuilder() *Builder {
	return &Builder{state: stateUnknown}
}

func (b *Builder) reset() {
	b.state = stateUnknown
	b.typ = 0
	b.commandNumber = 0
	b.isLongAddress = false
	b.shortAddress = 0
	b.longAddress = 0
	b.isPrimaryMaster = false
	b.isBurst = false
	b.byteCount = 0
	b.payload = nil
	b.numberOfPreambles = 0
	b.longAddressLength = 0
}

// Collect feeds data into the scanner. It keeps scanning past a completed
// frame rather than stopping at the first one, so that two frames arriving
// back-to-back in a single read are both recovered in the same call; it
// returns true if at least one new frame was enqueued.
func (b *Builder) Collect(data []byte) bool {
	newFrame := false

	for _, item := range data {
		switch b.state {
		case stateUnknown:
			if item == 0xFF {
				b.numberOfPreambles++
			} else {
				b.numberOfPreambles = 0
			}
			if b.numberOfPreambles >= 2 {
				b.state = statePreambles
			}

		case statePreambles:
			if item != 0xFF {
				masked := item & delimiterMask
				if isValidFrameType(masked) {
					b.typ = FrameType(masked)
					b.isLongAddress = item&longAddressMask == longAddressMask
					b.longAddress = 0
					b.shortAddress = 0
					b.longAddressLength = 0
					if b.isLongAddress {
						b.state = stateLongAddress
					} else {
						b.state = stateShortAddress
					}
				} else {
					b.state = stateUnknown
				}
			}

		case stateShortAddress:
			b.shortAddress = item & shortAddressMask
			b.isPrimaryMaster = item&primaryMasterMask == primaryMasterMask
			b.isBurst = item&burstModeMask == burstModeMask
			b.state = stateCommandNumber

		case stateLongAddress:
			if b.longAddressLength == 0 {
				b.longAddress = (b.longAddress << 8) | uint64(item&shortAddressMask)
				b.isPrimaryMaster = item&primaryMasterMask == primaryMasterMask
				b.isBurst = item&burstModeMask == burstModeMask
			} else {
				b.longAddress = (b.longAddress << 8) | uint64(item)
			}
			b.longAddressLength++
			if b.longAddressLength == 5 {
				b.state = stateCommandNumber
			}

		case stateCommandNumber:
			b.commandNumber = item
			b.state = stateByteCount

		case stateByteCount:
			b.byteCount = item
			b.payload = make([]byte, 0, b.byteCount)
			if b.byteCount > 0 {
				b.state = stateData
			} else {
				b.state = stateCheckSum
			}

		case stateData:
			b.payload = append(b.payload, item)
			if len(b.payload) == int(b.byteCount) {
				b.state = stateCheckSum
			}

		case stateCheckSum:
			f := Frame{
				Type:            b.typ,
				CommandNumber:   b.commandNumber,
				IsLongAddress:   b.isLongAddress,
				ShortAddress:    b.shortAddress,
				LongAddress:     b.longAddress,
				IsPrimaryMaster: b.isPrimaryMaster,
				IsBurst:         b.isBurst,
				Data:            b.payload,
				CheckSum:        item,
			}
			b.queue = append(b.queue, f)
			newFrame = true
			b.reset()
		}
	}

	return newFrame
}

// Dequeue pops the oldest completed frame. It panics if the queue is empty;
// callers check Len first.
func (b *Builder) Dequeue() Frame {
	f := b.queue[0]
	b.queue = b.queue[1:]
	return f
}

// Len reports how many completed frames are waiting to be dequeued.
func (b *Builder) Len() int {
	return len(b.queue)
}
