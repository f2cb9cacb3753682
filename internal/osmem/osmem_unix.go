// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

// Package osmem maps and unmaps the OS memory that backs pool pages and
// big-object allocations.
package osmem

import "golang.org/x/sys/unix"

// Map reserves n bytes of zeroed, read-write, anonymous memory. n need
// not be a multiple of the platform page size: the kernel rounds the
// mapping up to whole pages.
func Map(n int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Unmap releases memory obtained from Map.
func Unmap(b []byte) error {
	return unix.Munmap(b)
}
