// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// sweep rebuilds p's free list from scratch: live cells are left alone
// (their mark bit is cleared for the next cycle), dead cells are
// relinked onto the free list, and any page whose every cell comes back
// dead is unmapped and dropped from the page list entirely.
//
// Pages are walked oldest-last exactly as addPage links them (most
// recently added at the head), but the rebuilt free list ends up in
// cell order within each page: walking backward within a page and
// consing onto an accumulator, the same way addPage threads a fresh
// page, keeps cache locality similar to a freshly grown pool.
func (p *pool) sweep() (freed int, err error) {
	var head unsafe.Pointer
	var kept *page
	var tail *page // last page kept, for appending the dropped-page remainder

	for pg := p.pages; pg != nil; {
		next := pg.next
		n := pg.cellCount()

		prev := head
		dead := 0
		reclaimed := 0 // cells that were live this cycle, not already free
		for i := n - 1; i >= 0; i-- {
			cell := pg.cellAt(i)
			h := headerOf(cell)
			if h.isMarked() {
				h.clearMarked()
				continue
			}
			if !h.isFree() {
				reclaimed++
			}
			h.word = freeLink(prev)
			prev = cell
			dead++
		}

		if dead == n {
			// Every cell in the page came back dead: none of its
			// free-list links, including prev, are reachable from a
			// kept page or an earlier call's free list, so dropping
			// them here leaks nothing.
			if err := p.alloc.freePage(pg.mem); err != nil {
				return freed, err
			}
			freed += reclaimed
			pg = next
			continue
		}

		head = prev
		freed += reclaimed

		pg.next = nil
		if kept == nil {
			kept = pg
		} else {
			tail.next = pg
		}
		tail = pg

		pg = next
	}

	p.pages = kept
	p.free = head
	return freed, nil
}

// sweep walks the big-object list once, unmapping every object whose
// mark bit was not set this cycle and clearing the mark bit on every
// survivor. link tracks the address of the link field pointing at the
// current node so a dead node can be spliced out without a second pass.
func (l *bigList) sweep() (freed int, err error) {
	link := &l.head
	for *link != nil {
		obj := (*bigObject)(*link)
		if obj.isMarked() {
			obj.clearMarked()
			link = &obj.next
			continue
		}
		*link = obj.next
		mem := unsafe.Slice((*byte)(unsafe.Pointer(obj)), obj.mappedLen())
		if err := l.alloc.freePage(mem); err != nil {
			return freed, err
		}
		freed++
	}
	return freed, nil
}
