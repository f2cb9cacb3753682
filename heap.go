// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

import (
	"unsafe"

	"go.uber.org/zap"
)

// defaultCollectInterval is the cumulative allocation, in bytes, that
// triggers an automatic collection (spec.md §4.6).
const defaultCollectInterval = 8 * 1024 * 1024

// Collections summarizes one completed collection cycle, returned by
// Stats for the most recently completed cycle.
type Collections struct {
	// Count is the total number of cycles run so far.
	Count int
	// LastFreedSmall is how many pool cells the last cycle reclaimed.
	LastFreedSmall int
	// LastFreedBig is how many big objects the last cycle reclaimed.
	LastFreedBig int
	// LastBytesAllocated is the cumulative allocation since the previous
	// cycle at the moment the last cycle began, whether that cycle was
	// triggered by Allocate or forced via Collect.
	LastBytesAllocated int64
}

// Heap is a precise, non-moving, stop-the-world mark-and-sweep
// collector. The zero value is not usable; construct one with NewHeap.
type Heap struct {
	pools [16]*pool
	big   *bigList

	introspect Introspector
	roots      RootSet

	collectInterval int64
	autoCollect     bool
	sinceCollect    int64

	stats  Collections
	logger *zap.Logger

	// activeMark is the work stack for the collection cycle in
	// progress, if any. Set for the duration of gcMark so Mark has
	// somewhere to push to.
	activeMark *marker
}

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithCollectInterval sets the cumulative allocation, in bytes, that
// triggers an automatic collection. The default is 8 MiB.
func WithCollectInterval(bytes int64) Option {
	return func(h *Heap) {
		h.collectInterval = bytes
	}
}

// DisableAutoCollect turns off allocation-triggered collection. Collect
// must then be called explicitly.
func DisableAutoCollect() Option {
	return func(h *Heap) {
		h.autoCollect = false
	}
}

// WithLogger supplies the structured logger a Heap uses to report
// collection cycles. The default is zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(h *Heap) {
		h.logger = logger
	}
}

// withPageAllocator overrides the page source. Unexported: production
// callers always get osPageAllocator; tests substitute a fake.
func withPageAllocator(alloc pageAllocator) Option {
	return func(h *Heap) {
		for i := range h.pools {
			h.pools[i].alloc = alloc
		}
		h.big.alloc = alloc
	}
}

// NewHeap constructs a Heap over the given Introspector and RootSet
// capabilities, both supplied by the host runtime (spec.md §1, §6).
func NewHeap(introspect Introspector, roots RootSet, opts ...Option) *Heap {
	h := &Heap{
		introspect:      introspect,
		roots:           roots,
		collectInterval: defaultCollectInterval,
		autoCollect:     true,
		logger:          zap.NewNop(),
		big:             newBigList(osPageAllocator{}),
	}
	for i := range h.pools {
		h.pools[i] = newPool(i, osPageAllocator{})
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Allocate returns size bytes of payload, addressable starting at the
// returned pointer, with a zeroed live header immediately before it. The
// payload is not cleared: a reused cell keeps its previous contents. size
// must be positive. Allocate may itself run a full collection first if
// automatic collection is enabled and the configured interval has been
// exceeded (spec.md §4.6).
func (h *Heap) Allocate(size int) unsafe.Pointer {
	if size <= 0 {
		panic("heapgc: Allocate called with non-positive size")
	}

	if h.autoCollect && h.sinceCollect > h.collectInterval {
		h.Collect()
	}

	var payload unsafe.Pointer
	var err error
	if size <= maxSmallSize {
		payload, err = h.pools[szclass(size)].get()
	} else {
		payload, err = h.big.get(size)
	}
	if err != nil {
		panic(&OutOfMemoryError{Size: size, Cause: err})
	}

	h.sinceCollect += int64(size)
	return payload
}

// Collect runs one full mark-and-sweep cycle immediately, regardless of
// the automatic collection threshold.
func (h *Heap) Collect() {
	before := h.sinceCollect
	h.gcMark()

	freedBig, err := h.big.sweep()
	if err != nil {
		h.logger.Error("heapgc: sweep failed to release a big object", zap.Error(err))
	}
	freedSmall := 0
	for i := range h.pools {
		n, err := h.pools[i].sweep()
		if err != nil {
			h.logger.Error("heapgc: sweep failed to release a page", zap.Int("class", i), zap.Error(err))
		}
		freedSmall += n
	}

	h.stats.Count++
	h.stats.LastFreedSmall = freedSmall
	h.stats.LastFreedBig = freedBig
	h.stats.LastBytesAllocated = before
	h.sinceCollect = 0

	h.logger.Info("heapgc: collection complete",
		zap.Int("cycle", h.stats.Count),
		zap.Int64("bytesSinceLast", before),
	)
}

// gcMark runs the mark phase: every root is pushed, then drained through
// the Introspector-driven dispatch in mark.go.
func (h *Heap) gcMark() {
	m := &marker{introspect: h.introspect}
	h.activeMark = m
	h.roots.EnumerateRoots(h.Mark)
	m.drain()
	h.activeMark = nil
}

// Mark marks obj reachable and queues it for tracing in the collection
// cycle currently running. It is the re-entrant entry point a host
// runtime's root enumeration or trace callback calls directly (spec.md
// §6), rather than collecting roots into a slice first. Calling it
// outside an active Collect is a programmer error.
func (h *Heap) Mark(obj unsafe.Pointer) {
	if h.activeMark == nil {
		panic("heapgc: Mark called outside an active collection")
	}
	if obj == nil {
		panic(&TraceIntoNullError{})
	}
	h.activeMark.push(obj)
}

// Stats returns a snapshot of collection statistics as of the most
// recently completed cycle.
func (h *Heap) Stats() Collections {
	return h.stats
}
