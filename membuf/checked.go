package membuf

import "github.com/zform/zform/errs"

// Checked wraps a caller-provided, fixed-capacity byte slice. Writes that
// would overflow it fail with errs.ErrBufferExhausted instead of growing.
type Checked struct {
	buf []byte
}

// NewChecked wraps buf as a checked fixed buffer. Its length is the total
// usable capacity L.
func NewChecked(buf []byte) *Checked { return &Checked{buf: buf} }

// Bytes returns the buffer's backing slice.
func (b *Checked) Bytes() []byte { return b.buf }

func (b *Checked) WriteStack(heap, stack int, data []byte) error {
	if len(b.buf)-heap-stack < len(data) {
		return errs.ErrBufferExhausted
	}
	at := len(b.buf) - stack - len(data)
	copy(b.buf[at:at+len(data)], data)
	return nil
}

func (b *Checked) MoveToHeap(heap, stack, length int) {
	start := len(b.buf) - stack
	copy(b.buf[heap:heap+length], b.buf[start:start+length])
}

func (b *Checked) ReserveHeap(heap, stack, length int) ([]byte, error) {
	if len(b.buf)-heap-stack < length {
		return nil, errs.ErrBufferExhausted
	}
	return b.buf[heap : heap+length], nil
}

func (b *Checked) Reborrow() Buffer { return b }
