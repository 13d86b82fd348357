package membuf

// Counting wraps a fixed-capacity byte slice like Checked, but instead of
// failing on the first overflow it sets a sticky exhausted flag, skips
// further real writes, and keeps accumulating the total byte count the
// value would have required. SerializeOrSize uses this to report
// errs.BufferSizeRequiredError{Required} in one pass instead of two.
//
// required counts only bytes introduced by WriteStack and ReserveHeap
// calls; MoveToHeap relocates bytes already counted, so it never adds to
// the total. That makes required converge exactly to the same total
// SerializedSize would report via a Dry buffer.
type Counting struct {
	buf       *[]byte
	exhausted *bool
	required  *int
}

// NewCounting wraps buf as a counting fixed buffer.
func NewCounting(buf []byte) *Counting {
	exhausted := false
	required := 0
	return &Counting{buf: &buf, exhausted: &exhausted, required: &required}
}

// Exhausted reports whether any write has overflowed buf.
func (b *Counting) Exhausted() bool { return *b.exhausted }

// Required returns the total heap+stack bytes the value has needed so far
// (excluding any root header, which the caller accounts for separately).
func (b *Counting) Required() int { return *b.required }

func (b *Counting) WriteStack(heap, stack int, data []byte) error {
	*b.required += len(data)
	if *b.exhausted {
		return nil
	}
	buf := *b.buf
	if len(buf)-heap-stack < len(data) {
		*b.exhausted = true
		return nil
	}
	at := len(buf) - stack - len(data)
	copy(buf[at:at+len(data)], data)
	return nil
}

func (b *Counting) MoveToHeap(heap, stack, length int) {
	if *b.exhausted {
		return
	}
	buf := *b.buf
	start := len(buf) - stack
	copy(buf[heap:heap+length], buf[start:start+length])
}

func (b *Counting) ReserveHeap(heap, stack, length int) ([]byte, error) {
	*b.required += length
	if *b.exhausted {
		return nil, nil
	}
	buf := *b.buf
	if len(buf)-heap-stack < length {
		*b.exhausted = true
		return nil, nil
	}
	return buf[heap : heap+length], nil
}

func (b *Counting) Reborrow() Buffer { return b }
