// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import "fmt"

// Win32 status codes returned by the WLAN API that callers commonly need to
// tell apart.
const (
	ErrorSuccess          uint32 = 0
	ErrorAccessDenied     uint32 = 5
	ErrorInvalidHandle    uint32 = 6
	ErrorNotEnoughMemory  uint32 = 8
	ErrorNotSupported     uint32 = 50
	ErrorInvalidParameter uint32 = 87
	ErrorServiceNotActive uint32 = 1062
	ErrorNotFound         uint32 = 1168
)

// Names of the OS calls, as used in OSCallError.Op.
const (
	OpOpenHandle     = "WlanOpenHandle"
	OpCloseHandle    = "WlanCloseHandle"
	OpEnumInterfaces = "WlanEnumInterfaces"
	OpGetProfileList = "WlanGetProfileList"
	OpDeleteProfile  = "WlanDeleteProfile"
)

// OSCallError reports that a WLAN API call returned something other than
// ERROR_SUCCESS. The code is passed through unchanged; there is no retry at
// this layer.
type OSCallError struct {
	Op   string
	Code uint32
}

// Sentinels for errors.Is. They match any OSCallError with the same code.
var (
	ErrNotSupported     = &OSCallError{Code: ErrorNotSupported}
	ErrServiceNotActive = &OSCallError{Code: ErrorServiceNotActive}
	ErrNotFound         = &OSCallError{Code: ErrorNotFound}
	ErrAccessDenied     = &OSCallError{Code: ErrorAccessDenied}
)

func (e *OSCallError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s (code %d)", codeMessage(e.Code), e.Code)
	}
	return fmt.Sprintf("%s: %s (code %d)", e.Op, codeMessage(e.Code), e.Code)
}

// Is matches another *OSCallError with the same code. An empty Op in the
// target matches any operation.
func (e *OSCallError) Is(target error) bool {
	t, ok := target.(*OSCallError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Op == "" || t.Op == e.Op)
}

// check turns a status code into an error.
func check(op string, code uint32) error {
	if code == ErrorSuccess {
		return nil
	}
	return &OSCallError{Op: op, Code: code}
}
