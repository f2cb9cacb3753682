// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heapgc

// sizeClasses lists the nominal payload size, in bytes, of each of the 16
// small size classes (spec.md §3). A pool's osize is wordSize plus its
// class's entry here.
var sizeClasses = [16]int{
	8, 16, 24, 32, 48, 64, 96, 128,
	192, 256, 384, 512, 768, 1024, 1536, 2048,
}

// maxSmallSize is the largest request size served by a pool; anything
// above it goes to the big-object allocator.
const maxSmallSize = 2048

// szclass maps a request size in 1..maxSmallSize to a pool index 0..15
// (spec.md §4.1). It is a total function over that range; calling it with
// a size above maxSmallSize is a precondition violation.
func szclass(sz int) int {
	switch {
	case sz <= 8:
		return 0
	case sz <= 16:
		return 1
	case sz <= 24:
		return 2
	case sz <= 32:
		return 3
	case sz <= 48:
		return 4
	case sz <= 64:
		return 5
	case sz <= 96:
		return 6
	case sz <= 128:
		return 7
	case sz <= 192:
		return 8
	case sz <= 256:
		return 9
	case sz <= 384:
		return 10
	case sz <= 512:
		return 11
	case sz <= 768:
		return 12
	case sz <= 1024:
		return 13
	case sz <= 1536:
		return 14
	case sz <= 2048:
		return 15
	default:
		panic("heapgc: szclass called with size above maxSmallSize")
	}
}
