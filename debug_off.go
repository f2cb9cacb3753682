// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !heapgc.debug

package heapgc

// debugChecks enables assertions too expensive to run on every
// collection by default. Build with -tags heapgc.debug to turn them on.
const debugChecks = false
