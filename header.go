// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// wordSize is the size, in bytes, of a cell header and of a free-list
// link. It is also the unit the size-class table's osize is measured
// against (see sizeclass.go).
const wordSize = unsafe.Sizeof(uintptr(0))

// Flags bits within a cell header's word. marked and finalize are the
// only bits a live cell may carry; every other bit is reserved for the
// free encoding (see cellHeader.isFree).
const (
	flagMarked   uintptr = 1 << 0
	flagFinalize uintptr = 1 << 1

	// flagFree is the discriminator bit this implementation uses to
	// resolve the header-aliasing ambiguity spec.md §9 calls out: a
	// freelist's terminal link is the zero pointer, which would be
	// indistinguishable from a live, unmarked, all-zero-flags cell if
	// "free" were inferred purely from "some reserved bit happens to be
	// set in this address". Setting flagFree explicitly whenever a
	// header holds a free-list link (including the terminal, where the
	// link portion is simply zero) makes free cells unambiguous.
	flagFree uintptr = 1 << 2
)

// reservedMask covers every bit except marked and finalize. A live cell's
// header must have reservedMask&word == 0; any reserved bit set means the
// cell is free (spec.md §3, "free/live discrimination").
const reservedMask = ^uintptr(flagMarked | flagFinalize)

// pointerMask clears the low bits a free-list link shares with the flags
// bits. Every pool osize is a multiple of wordSize and every page is
// obtained word-aligned from the OS (see page.go), so cell addresses
// always have their low 3 bits clear and survive the round trip.
const pointerMask = ^uintptr(0x7)

// cellHeader overlays the tagged-union header described in spec.md §3: a
// free-list link when the reserved bits are set, a flags word otherwise.
type cellHeader struct {
	word uintptr
}

// headerOf returns the header immediately preceding payload, per the
// object layout contract in spec.md §6 (payload - 1 word = header).
func headerOf(payload unsafe.Pointer) *cellHeader {
	return (*cellHeader)(unsafe.Pointer(uintptr(payload) - wordSize))
}

// payloadOf returns the payload immediately following h.
func payloadOf(h *cellHeader) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + wordSize)
}

// isFree reports whether h encodes a free cell.
func (h *cellHeader) isFree() bool {
	return h.word&reservedMask != 0
}

// isMarked reports whether the mark bit is set. Valid on both pool-cell
// and big-object headers.
func (h *cellHeader) isMarked() bool {
	return h.word&flagMarked != 0
}

func (h *cellHeader) setMarked() {
	h.word |= flagMarked
}

func (h *cellHeader) clearMarked() {
	h.word &^= flagMarked
}

// zero clears the header word entirely. Callers must zero the flags word
// at allocation time (spec.md §3); pool.get does this, and bigList.get
// writes a header whose flag bits are zero (see bigobject.go).
func (h *cellHeader) zero() {
	h.word = 0
}

// freeLink encodes p as this header's free-list link. p must already be
// pointerMask-aligned (true of every cell address in this package).
func freeLink(p unsafe.Pointer) uintptr {
	return (uintptr(p) & pointerMask) | flagFree
}

// next decodes this header as a free-list link, returning nil at the
// terminal cell.
func (h *cellHeader) next() unsafe.Pointer {
	return unsafe.Pointer(h.word & pointerMask)
}
