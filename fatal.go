// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import (
	"fmt"
	"unsafe"
)

// OutOfMemoryError is panicked when the OS page or big-object allocator
// fails to satisfy a request.
type OutOfMemoryError struct {
	Size  int
	Cause error
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("heapgc: out of memory allocating %d bytes: %v", e.Size, e.Cause)
}

func (e *OutOfMemoryError) Unwrap() error { return e.Cause }

// CorruptHeaderError is panicked when a cell header's Kind does not
// match any dispatch case mark.go knows how to trace. It is only raised
// when the debug build tag is compiled in (see debug_on.go): the check
// costs a type dispatch the release build does not otherwise make, and
// a corrupt header is a bug in the host runtime's type system, not a
// condition production code should spend cycles guarding against on
// every mark.
type CorruptHeaderError struct {
	Addr unsafe.Pointer
}

func (e *CorruptHeaderError) Error() string {
	return fmt.Sprintf("heapgc: corrupt header at %p: unrecognized kind", e.Addr)
}

// TraceIntoNullError is panicked when the host runtime's root set yields
// a nil root. Unlike CorruptHeaderError this check is always active: it
// is a single O(1) nil comparison per root, cheap enough to run in every
// build, and a nil root is evidence the host runtime's root enumeration
// itself is broken rather than something this package can recover from.
type TraceIntoNullError struct{}

func (e *TraceIntoNullError) Error() string {
	return "heapgc: root set yielded a nil root"
}
