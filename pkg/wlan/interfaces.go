// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import (
	"iter"

	"go.uber.org/zap"
)

// InterfaceList owns the buffer returned by WlanEnumInterfaces.
type InterfaceList struct {
	session *Session
	raw     rawList[interfaceInfo]
}

// EnumInterfaces makes one WlanEnumInterfaces call on s. The returned list
// must be closed, and must not be used after s is closed.
func EnumInterfaces(s *Session) (*InterfaceList, error) {
	s.mustBeOpen()
	p, code := s.api.EnumInterfaces(s.handle)
	if err := check(OpEnumInterfaces, code); err != nil {
		s.log.Debug("enumerate interfaces failed", zap.Uint32("code", code))
		return nil, err
	}
	l := &InterfaceList{session: s}
	l.raw.init(s.api, p, interfaceRecordsOffset)
	s.log.Debug("enumerated interfaces", zap.Int("count", l.raw.len()))
	return l, nil
}

func (l *InterfaceList) mustBeLive() {
	if !l.raw.live() {
		panic("wlan: use of closed interface list")
	}
	l.session.mustBeOpen()
}

// Len returns the number of interfaces reported in the list header.
func (l *InterfaceList) Len() int {
	l.mustBeLive()
	return l.raw.len()
}

// At returns a view of the i'th interface. It panics if i is out of range.
func (l *InterfaceList) At(i int) Interface {
	l.mustBeLive()
	return Interface{list: l, rec: l.raw.at(i)}
}

// All yields every interface in index order. Each call starts over from the
// first record.
func (l *InterfaceList) All() iter.Seq[Interface] {
	return func(yield func(Interface) bool) {
		n := l.Len()
		for i := 0; i < n; i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Close frees the buffer. Only the first call reaches the OS.
func (l *InterfaceList) Close() error {
	if l.raw.free() {
		l.session.log.Debug("freed interface list")
	}
	return nil
}

// Interface is a view of one WLAN_INTERFACE_INFO inside an InterfaceList.
type Interface struct {
	list *InterfaceList
	rec  *interfaceInfo
}

// GUID returns a view of the interface identifier.
func (i Interface) GUID() GUIDRef {
	i.list.mustBeLive()
	return GUIDRef{p: &i.rec.InterfaceGUID, live: i.list.mustBeLive}
}

// Description returns the adapter description, or false if the record's
// description is not NUL-terminated.
func (i Interface) Description() (string, bool) {
	i.list.mustBeLive()
	return utf16String(i.rec.InterfaceDescription[:])
}

// State returns the interface state.
func (i Interface) State() State {
	i.list.mustBeLive()
	return stateOf(i.rec.State)
}

// Profiles enumerates the profiles saved for the interface.
func (i Interface) Profiles() (*ProfileList, error) {
	return EnumProfiles(i)
}

// DeleteProfile removes the named profile from the interface.
func (i Interface) DeleteProfile(name string) error {
	i.list.mustBeLive()
	s := i.list.session
	code := s.api.DeleteProfile(s.handle, &i.rec.InterfaceGUID, name)
	s.log.Debug("delete profile",
		zap.Stringer("interface", i.rec.InterfaceGUID),
		zap.String("profile", name),
		zap.Uint32("code", code))
	return check(OpDeleteProfile, code)
}
