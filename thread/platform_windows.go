// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package thread

import (
	"fmt"
	"math/bits"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	procSetThreadDescription  = kernel32.NewProc("SetThreadDescription")
)

func platformCurrentID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

// platformSetAffinity pins the calling OS thread to cpu within its
// processor group.
func platformSetAffinity(cpu int) error {
	if cpu >= bits.UintSize {
		return fmt.Errorf("cpu %d out of range", cpu)
	}
	mask := uintptr(1) << uint(cpu)
	ret, _, err := procSetThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return err
	}
	return nil
}

// platformSetName sets the thread description shown by debuggers.
// Windows versions without SetThreadDescription keep the thread unnamed.
func platformSetName(name string) error {
	if procSetThreadDescription.Find() != nil {
		return nil
	}
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	hr, _, _ := procSetThreadDescription.Call(uintptr(windows.CurrentThread()), uintptr(unsafe.Pointer(p)))
	if int32(hr) < 0 {
		return fmt.Errorf("SetThreadDescription failed, HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
