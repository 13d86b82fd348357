// Package membuf implements the four buffer strategies a Serializer can be
// pointed at: a measure-only Dry buffer, a Checked fixed buffer that fails
// on overflow, a Counting fixed buffer that keeps measuring past the first
// overflow so the caller learns the exact size it needed, and a Growing
// buffer that reallocates on demand. All four share the same Buffer
// contract so the serializer logic is written once and is strategy-
// agnostic.
//
// Every method takes the caller's current (heap, stack) cursor pair
// explicitly; a Buffer implementation never tracks cursors itself; they
// live in the ser.Serializer frame that drives it. This mirrors the
// dual-cursor model described for the root zform package: heap grows
// forward from offset 0, stack grows backward from the logical end of the
// frame's window.
package membuf

// Buffer is the contract a Serializer drives. heap and stack are always
// the caller's cursors *before* the call; the call does not mutate the
// caller's bookkeeping, only the buffer's backing bytes (and, for Growing,
// its own backing slice).
type Buffer interface {
	// WriteStack packs data as the next stack field: for a buffer of
	// total usable length L, data lands at [L-stack-len(data), L-stack).
	WriteStack(heap, stack int, data []byte) error

	// MoveToHeap relocates the last length bytes of the current stack
	// region (i.e. bytes at [L-stack, L-stack+length)) down to heap
	// region offset heap. It never fails; callers must ensure heap+length
	// does not exceed the bytes already known to be valid.
	MoveToHeap(heap, stack, length int)

	// ReserveHeap returns a window of exactly length bytes at absolute
	// heap-region offset heap, for a caller that wants to write a raw,
	// self-contained payload (such as a nested sub-message) directly
	// rather than through WriteStack.
	ReserveHeap(heap, stack, length int) ([]byte, error)

	// Reborrow returns a handle for a nested call that shares this
	// buffer's storage. Go has no borrow checker, so this typically just
	// returns the receiver itself.
	Reborrow() Buffer
}
