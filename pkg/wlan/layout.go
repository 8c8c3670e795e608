// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import (
	"fmt"
	"slices"
	"sync/atomic"
	"unicode/utf16"
	"unsafe"
)

// maxNameLength is WLAN_MAX_NAME_LENGTH.
const maxNameLength = 256

// WLAN_INTERFACE_INFO
type interfaceInfo struct {
	InterfaceGUID        GUID
	InterfaceDescription [maxNameLength]uint16
	State                uint32
}

// WLAN_INTERFACE_INFO_LIST
type interfaceInfoList struct {
	NumberOfItems uint32
	Index         uint32
	InterfaceInfo [1]interfaceInfo
}

// WLAN_PROFILE_INFO
type profileInfo struct {
	ProfileName [maxNameLength]uint16
	Flags       uint32
}

// WLAN_PROFILE_INFO_LIST
type profileInfoList struct {
	NumberOfItems uint32
	Index         uint32
	ProfileInfo   [1]profileInfo
}

// The header is the same for both lists.
type listHeader struct {
	NumberOfItems uint32
	Index         uint32
}

var (
	interfaceRecordsOffset = unsafe.Offsetof(interfaceInfoList{}.InterfaceInfo)
	profileRecordsOffset   = unsafe.Offsetof(profileInfoList{}.ProfileInfo)
)

// listSize is the number of bytes the API allocates for a list of n records
// of type T starting at off. Like the C structure it always has room for at
// least one record.
func listSize[T any](off uintptr, n int) uintptr {
	var rec T
	return off + uintptr(max(n, 1))*unsafe.Sizeof(rec)
}

// rawList owns one API buffer shaped as listHeader followed by records of
// type T. The header count is trusted; records are only ever addressed
// through at, which refuses indexes outside [0, count).
type rawList[T any] struct {
	api   API
	base  unsafe.Pointer
	off   uintptr
	freed atomic.Bool
}

func (l *rawList[T]) init(api API, base unsafe.Pointer, off uintptr) {
	l.api = api
	l.base = base
	l.off = off
}

func (l *rawList[T]) live() bool {
	return !l.freed.Load()
}

func (l *rawList[T]) len() int {
	return int((*listHeader)(l.base).NumberOfItems)
}

func (l *rawList[T]) at(i int) *T {
	n := l.len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("wlan: record index %d out of range [0:%d]", i, n))
	}
	var rec T
	return (*T)(unsafe.Add(l.base, l.off+uintptr(i)*unsafe.Sizeof(rec)))
}

// free hands the buffer back to the API. Only the first call does anything.
func (l *rawList[T]) free() bool {
	if !l.freed.CompareAndSwap(false, true) {
		return false
	}
	l.api.FreeMemory(l.base)
	return true
}

// utf16String decodes the NUL-terminated string held in a fixed-width
// buffer. A buffer without a terminator is malformed and yields false.
func utf16String(buf []uint16) (string, bool) {
	n := slices.Index(buf, 0)
	if n < 0 {
		return "", false
	}
	return string(utf16.Decode(buf[:n])), true
}
