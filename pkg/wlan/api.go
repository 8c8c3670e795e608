// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wlan wraps the Windows Native Wifi API (wlanapi.dll).
//
// The API hands out buffers that it allocated itself: a list header
// followed by a trailing array of fixed-size records. Session, InterfaceList
// and ProfileList each own exactly one such resource and release it exactly
// once in Close. Interface and Profile are views into a list's buffer; they
// own nothing and panic if used after the list, or the Session the list came
// from, has been closed.
//
//	s, err := wlan.Open(wlan.NativeAPI())
//	...
//	defer s.Close()
//	ifaces, err := s.Interfaces()
//	...
//	defer ifaces.Close()
//	for iface := range ifaces.All() {
//		profiles, err := iface.Profiles()
//		...
//	}
package wlan

import (
	"fmt"
	"unsafe"
)

// Handle is a WLAN client handle as returned by WlanOpenHandle.
type Handle uintptr

// invalidHandle is INVALID_HANDLE_VALUE. Open never returns a Session
// holding it.
const invalidHandle = ^Handle(0)

// Version is a WLAN API client version.
type Version uint32

const (
	// Version1 is the client version of Windows XP SP2/SP3.
	Version1 Version = 1
	// Version2 is the client version of Windows Vista and later.
	Version2 Version = 2

	// DefaultVersion is the newer of the two.
	DefaultVersion = Version2
)

// Valid reports whether v is one of the versions the API negotiates.
func (v Version) Valid() bool {
	return v == Version1 || v == Version2
}

func (v Version) String() string {
	switch v {
	case Version1:
		return "1.0"
	case Version2:
		return "2.0"
	}
	return fmt.Sprintf("Version(%d)", uint32(v))
}

// API is the boundary with the operating system. Every method except
// FreeMemory returns a Win32 status code, ErrorSuccess on success.
//
// Buffers returned by EnumInterfaces and GetProfileList belong to the API
// and must be handed back to FreeMemory exactly once.
type API interface {
	OpenHandle(version uint32) (h Handle, negotiated uint32, code uint32)
	CloseHandle(h Handle) uint32
	EnumInterfaces(h Handle) (list unsafe.Pointer, code uint32)
	GetProfileList(h Handle, iface *GUID) (list unsafe.Pointer, code uint32)
	DeleteProfile(h Handle, iface *GUID, name string) uint32
	FreeMemory(p unsafe.Pointer)
}
