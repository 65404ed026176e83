// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package thread

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux limits thread names to 15 bytes plus the terminator.
const maxNameLength = 15

func platformCurrentID() uint64 {
	return uint64(unix.Gettid())
}

// platformSetAffinity pins the calling OS thread to cpu.
func platformSetAffinity(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if set.Count() == 0 {
		return fmt.Errorf("cpu %d out of range", cpu)
	}
	return unix.SchedSetaffinity(0, &set)
}

// platformSetName names the calling OS thread as shown by ps and debuggers.
func platformSetName(name string) error {
	p, err := unix.BytePtrFromString(truncateName(name, maxNameLength))
	if err != nil {
		return err
	}
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0)
}
