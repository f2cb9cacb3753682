// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import (
	"unsafe"

	"code.hybscloud.com/heapgc/internal/osmem"
)

// pageSize is the size, in bytes, of one pool page (spec.md §4.1).
const pageSize = 16 * 1024

// page is one pool growth unit: a contiguous run of pageSize bytes sliced
// into equal osize cells, plus the bookkeeping a sweep needs to find and
// rewalk it.
type page struct {
	mem   []byte
	base  uintptr
	osize int
	// next links pages within a pool, most recently added first.
	next *page
}

// cellCount reports how many osize cells fit in this page.
func (p *page) cellCount() int {
	return len(p.mem) / p.osize
}

// cellAt returns the payload address of the i'th cell.
func (p *page) cellAt(i int) unsafe.Pointer {
	return unsafe.Pointer(p.base + uintptr(i*p.osize) + wordSize)
}

// pageAllocator obtains and releases the raw memory pages grow into.
// Tests substitute a fake to run without the OS.
type pageAllocator interface {
	allocPage(n int) ([]byte, error)
	freePage(b []byte) error
}

// osPageAllocator is the production pageAllocator, backed by
// internal/osmem.
type osPageAllocator struct{}

func (osPageAllocator) allocPage(n int) ([]byte, error) { return osmem.Map(n) }
func (osPageAllocator) freePage(b []byte) error         { return osmem.Unmap(b) }

// newPage obtains a fresh page of pageSize bytes from alloc, laid out for
// cells of the given osize.
func newPage(alloc pageAllocator, osize int) (*page, error) {
	mem, err := alloc.allocPage(pageSize)
	if err != nil {
		return nil, err
	}
	return &page{
		mem:   mem,
		base:  uintptr(unsafe.Pointer(unsafe.SliceData(mem))),
		osize: osize,
	}, nil
}
