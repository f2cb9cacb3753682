// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import "unsafe"

// bigSizeShift is the bit offset, within a big-object header's word,
// above which this package packs the object's payload byte length. Big
// objects never sit on a pool free list, so the free/live discriminator
// bits (see header.go) are meaningless to them; reusing the space above
// flagFree to carry the size lets free release exactly what Map
// returned without a separate bookkeeping word (spec.md §6 counts a big
// object's overhead as sz + 2*wordSize: one word for the link below, one
// for the flags/size word here).
const bigSizeShift = 3

// bigObject is the header prefixed to every big allocation. next comes
// first so that, as with a pool cell, the flags/size word is the single
// word immediately preceding the payload: headerOf(payload) returns
// &bigObject.cellHeader for a big object exactly as it returns a pool
// cell's header, and the mark phase need not distinguish the two.
type bigObject struct {
	next unsafe.Pointer // *bigObject, or nil at the list tail
	cellHeader
}

// bigList is the single global intrusive list of big objects (spec.md
// §4.2).
type bigList struct {
	head  unsafe.Pointer // *bigObject
	alloc pageAllocator
}

func newBigList(alloc pageAllocator) *bigList {
	return &bigList{alloc: alloc}
}

// get allocates a big object of size payload bytes and links it at the
// head of the list.
func (l *bigList) get(size int) (unsafe.Pointer, error) {
	total := int(unsafe.Sizeof(bigObject{})) + size
	mem, err := l.alloc.allocPage(total)
	if err != nil {
		return nil, err
	}
	obj := (*bigObject)(unsafe.Pointer(unsafe.SliceData(mem)))
	obj.word = uintptr(size) << bigSizeShift
	obj.next = l.head
	l.head = unsafe.Pointer(obj)
	return unsafe.Pointer(uintptr(unsafe.Pointer(obj)) + unsafe.Sizeof(bigObject{})), nil
}

// bigHeaderOf returns the bigObject header immediately preceding a big
// object's payload.
func bigHeaderOf(payload unsafe.Pointer) *bigObject {
	return (*bigObject)(unsafe.Pointer(uintptr(payload) - unsafe.Sizeof(bigObject{})))
}

// size decodes the payload length packed above bigSizeShift.
func (b *bigObject) size() int {
	return int(b.word >> bigSizeShift)
}

// mappedLen reports the total byte length of b's original allocPage
// call, for use with freePage.
func (b *bigObject) mappedLen() int {
	return int(unsafe.Sizeof(bigObject{})) + b.size()
}
