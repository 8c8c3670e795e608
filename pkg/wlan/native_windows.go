// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package wlan

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modwlanapi = windows.NewLazySystemDLL("wlanapi.dll")

	procWlanOpenHandle     = modwlanapi.NewProc("WlanOpenHandle")
	procWlanCloseHandle    = modwlanapi.NewProc("WlanCloseHandle")
	procWlanEnumInterfaces = modwlanapi.NewProc("WlanEnumInterfaces")
	procWlanGetProfileList = modwlanapi.NewProc("WlanGetProfileList")
	procWlanDeleteProfile  = modwlanapi.NewProc("WlanDeleteProfile")
	procWlanFreeMemory     = modwlanapi.NewProc("WlanFreeMemory")
)

type nativeAPI struct{}

var _ = API(nativeAPI{})

// NativeAPI returns the API backed by wlanapi.dll.
func NativeAPI() API {
	return nativeAPI{}
}

func (nativeAPI) OpenHandle(version uint32) (Handle, uint32, uint32) {
	// Server SKUs ship without the WLAN AutoConfig feature and so without
	// the DLL.
	if err := procWlanOpenHandle.Find(); err != nil {
		return invalidHandle, 0, ErrorNotSupported
	}
	var negotiated uint32
	h := windows.InvalidHandle
	r, _, _ := syscall.SyscallN(procWlanOpenHandle.Addr(),
		uintptr(version),
		0,
		uintptr(unsafe.Pointer(&negotiated)),
		uintptr(unsafe.Pointer(&h)))
	return Handle(h), negotiated, uint32(r)
}

func (nativeAPI) CloseHandle(h Handle) uint32 {
	r, _, _ := syscall.SyscallN(procWlanCloseHandle.Addr(), uintptr(h), 0)
	return uint32(r)
}

func (nativeAPI) EnumInterfaces(h Handle) (unsafe.Pointer, uint32) {
	var list *interfaceInfoList
	r, _, _ := syscall.SyscallN(procWlanEnumInterfaces.Addr(),
		uintptr(h),
		0,
		uintptr(unsafe.Pointer(&list)))
	return unsafe.Pointer(list), uint32(r)
}

func (nativeAPI) GetProfileList(h Handle, iface *GUID) (unsafe.Pointer, uint32) {
	var list *profileInfoList
	r, _, _ := syscall.SyscallN(procWlanGetProfileList.Addr(),
		uintptr(h),
		uintptr(unsafe.Pointer(iface)),
		0,
		uintptr(unsafe.Pointer(&list)))
	return unsafe.Pointer(list), uint32(r)
}

func (nativeAPI) DeleteProfile(h Handle, iface *GUID, name string) uint32 {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return ErrorInvalidParameter
	}
	r, _, _ := syscall.SyscallN(procWlanDeleteProfile.Addr(),
		uintptr(h),
		uintptr(unsafe.Pointer(iface)),
		uintptr(unsafe.Pointer(p)),
		0)
	return uint32(r)
}

func (nativeAPI) FreeMemory(p unsafe.Pointer) {
	syscall.SyscallN(procWlanFreeMemory.Addr(), uintptr(p))
}

func codeMessage(code uint32) string {
	return windows.Errno(code).Error()
}
