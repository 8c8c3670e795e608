// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package wlan

import (
	"fmt"
	"unsafe"
)

type unsupportedAPI struct{}

var _ = API(unsupportedAPI{})

// NativeAPI returns an API whose every call fails with ERROR_NOT_SUPPORTED;
// the Native Wifi API only exists on Windows.
func NativeAPI() API {
	return unsupportedAPI{}
}

func (unsupportedAPI) OpenHandle(uint32) (Handle, uint32, uint32) {
	return invalidHandle, 0, ErrorNotSupported
}

func (unsupportedAPI) CloseHandle(Handle) uint32 {
	return ErrorNotSupported
}

func (unsupportedAPI) EnumInterfaces(Handle) (unsafe.Pointer, uint32) {
	return nil, ErrorNotSupported
}

func (unsupportedAPI) GetProfileList(Handle, *GUID) (unsafe.Pointer, uint32) {
	return nil, ErrorNotSupported
}

func (unsupportedAPI) DeleteProfile(Handle, *GUID, string) uint32 {
	return ErrorNotSupported
}

func (unsupportedAPI) FreeMemory(unsafe.Pointer) {}

var codeMessages = map[uint32]string{
	ErrorSuccess:          "The operation completed successfully.",
	ErrorAccessDenied:     "Access is denied.",
	ErrorInvalidHandle:    "The handle is invalid.",
	ErrorNotEnoughMemory:  "Not enough memory resources are available to process this command.",
	ErrorNotSupported:     "The request is not supported.",
	ErrorInvalidParameter: "The parameter is incorrect.",
	ErrorServiceNotActive: "The service has not been started.",
	ErrorNotFound:         "Element not found.",
}

func codeMessage(code uint32) string {
	if m, ok := codeMessages[code]; ok {
		return m
	}
	return fmt.Sprintf("winapi error #%d", code)
}
