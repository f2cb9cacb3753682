// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package heapgc implements the core of a precise, non-moving,
// stop-the-world mark-and-sweep garbage collector for a heap of typed,
// variably-sized cells with internal pointer structure.
//
// # Allocation classes
//
// Requests of 2048 bytes or less are served from one of 16 segregated
// pools, each holding fixed-size cells for one size class:
//
//	8, 16, 24, 32, 48, 64, 96, 128, 192, 256, 384, 512, 768, 1024, 1536, 2048
//
// Each pool grows by whole 16 KiB pages obtained from the OS and threads
// every cell in a new page onto its free list. Requests above 2048 bytes
// go to the big-object allocator instead, which allocates directly from
// the OS and links the record into a single global intrusive list.
//
// # Header model
//
// Every cell, small or big, carries one machine-word header immediately
// before its payload:
//
//	payload := heap.Allocate(n)
//	header  := (*byte)(unsafe.Pointer(uintptr(payload) - unsafe.Sizeof(uintptr(0))))
//
// The header is a tagged union: on a free cell it is a free-list link; on
// a live cell it is a flags word with a mark bit and a reserved finalize
// bit. See header.go for the exact bit layout and the discriminator bit
// this package uses to keep the two interpretations from colliding.
//
// # Collecting
//
//	h := heapgc.NewHeap(introspector, roots)
//	p := h.Allocate(32)
//	h.Collect() // force a cycle; otherwise triggered automatically
//
// Allocate may itself trigger a collection once cumulative allocation
// since the last cycle exceeds the configured interval (8 MiB by
// default). A collection visits the root set supplied by the host
// runtime, traces every reachable object through the Introspector
// capability the host runtime supplies, then sweeps every pool and the
// big-object list.
//
// # Thread safety
//
// Heap is not safe for concurrent use. It implements a single-threaded,
// stop-the-world collector: allocation, marking, and sweeping all run on
// the mutator's own goroutine, and Allocate is the only operation that
// may itself run a full cycle. Running it from more than one goroutine,
// or mutating the object graph from another goroutine while Collect
// runs, corrupts the heap. See SPEC_FULL.md for the full design.
//
// # Dependencies
//
// heapgc depends on:
//   - go.uber.org/zap: structured logging of collection cycles
//   - golang.org/x/sys/unix: OS-backed page and big-object memory on unix targets
package heapgc
