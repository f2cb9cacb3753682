// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// pool is one segregated size class: a singly linked run of pages plus a
// free list threading through all of them (spec.md §4.1).
type pool struct {
	class int // index into sizeClasses
	osize int // wordSize + sizeClasses[class]

	pages *page
	free  unsafe.Pointer // payload address of the first free cell, or nil

	alloc pageAllocator
}

func newPool(class int, alloc pageAllocator) *pool {
	return &pool{
		class: class,
		osize: int(wordSize) + sizeClasses[class],
		alloc: alloc,
	}
}

// get returns a cell's payload address with the cell's header zeroed (the
// payload itself is left as it was), growing the pool by one
// page first if the free list is empty.
func (p *pool) get() (unsafe.Pointer, error) {
	if p.free == nil {
		if err := p.addPage(); err != nil {
			return nil, err
		}
	}
	cell := p.free
	h := headerOf(cell)
	p.free = h.next()
	h.zero()
	return cell, nil
}

// addPage grows the pool by one page, links it into the pool's page list,
// and threads every cell of the new page onto the free list ahead of
// whatever was already there. The prior free list (and any pages behind
// it) must not be dropped: the new page's last cell links to the pool's
// old p.free, not to nil, so earlier pages stay reachable for both
// allocation and sweep.
func (p *pool) addPage() error {
	np, err := newPage(p.alloc, p.osize)
	if err != nil {
		return err
	}
	np.next = p.pages
	p.pages = np

	n := np.cellCount()
	prev := p.free
	for i := n - 1; i >= 0; i-- {
		cell := np.cellAt(i)
		headerOf(cell).word = freeLink(prev)
		prev = cell
	}
	p.free = prev
	return nil
}
