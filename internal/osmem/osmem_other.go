// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

// Package osmem maps and unmaps the OS memory that backs pool pages and
// big-object allocations.
package osmem

import (
	"os"
	"unsafe"
)

// Map returns n bytes of zeroed memory with its starting address aligned
// to the system page size, adapted from the teacher's page-alignment
// trick for targets with no unix mmap: over-allocate by one page and
// slide the returned window up to the next page boundary.
func Map(n int) ([]byte, error) {
	pageSize := uintptr(os.Getpagesize())
	p := make([]byte, uintptr(n)+pageSize-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+pageSize-1)/pageSize)*pageSize - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), n), nil
}

// Unmap is a no-op on this target: the Go garbage collector reclaims b
// once heapgc drops its last reference.
func Unmap(b []byte) error {
	return nil
}
