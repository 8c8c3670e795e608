// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import (
	"iter"
	"strings"

	"go.uber.org/zap"
)

// ProfileFlags holds the dwFlags bits of WLAN_PROFILE_INFO.
type ProfileFlags uint32

const (
	// ProfileGroupPolicy is WLAN_PROFILE_GROUP_POLICY.
	ProfileGroupPolicy ProfileFlags = 0x00000001
	// ProfileUser is WLAN_PROFILE_USER.
	ProfileUser ProfileFlags = 0x00000002
)

func (f ProfileFlags) String() string {
	var parts []string
	if f&ProfileGroupPolicy != 0 {
		parts = append(parts, "group-policy")
	}
	if f&ProfileUser != 0 {
		parts = append(parts, "user")
	}
	if len(parts) == 0 {
		return "all-users"
	}
	return strings.Join(parts, "|")
}

// ProfileList owns the buffer returned by WlanGetProfileList for one
// interface.
type ProfileList struct {
	iface Interface
	raw   rawList[profileInfo]
}

// EnumProfiles makes one WlanGetProfileList call for iface. The returned
// list must be closed, and must not be used after the interface's list or
// session is closed.
func EnumProfiles(iface Interface) (*ProfileList, error) {
	iface.list.mustBeLive()
	s := iface.list.session
	p, code := s.api.GetProfileList(s.handle, &iface.rec.InterfaceGUID)
	if err := check(OpGetProfileList, code); err != nil {
		s.log.Debug("get profile list failed",
			zap.Stringer("interface", iface.rec.InterfaceGUID),
			zap.Uint32("code", code))
		return nil, err
	}
	l := &ProfileList{iface: iface}
	l.raw.init(s.api, p, profileRecordsOffset)
	s.log.Debug("got profile list",
		zap.Stringer("interface", iface.rec.InterfaceGUID),
		zap.Int("count", l.raw.len()))
	return l, nil
}

func (l *ProfileList) mustBeLive() {
	if !l.raw.live() {
		panic("wlan: use of closed profile list")
	}
	l.iface.list.mustBeLive()
}

// Interface returns the interface the profiles belong to.
func (l *ProfileList) Interface() Interface {
	return l.iface
}

// Len returns the number of profiles reported in the list header.
func (l *ProfileList) Len() int {
	l.mustBeLive()
	return l.raw.len()
}

// At returns a view of the i'th profile. It panics if i is out of range.
func (l *ProfileList) At(i int) Profile {
	l.mustBeLive()
	return Profile{list: l, rec: l.raw.at(i)}
}

// All yields every profile in index order. Each call starts over from the
// first record.
func (l *ProfileList) All() iter.Seq[Profile] {
	return func(yield func(Profile) bool) {
		n := l.Len()
		for i := 0; i < n; i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Lookup returns the first profile whose name is name. On a miss the
// returned Profile is the zero value, which panics if used.
func (l *ProfileList) Lookup(name string) (Profile, bool) {
	for p := range l.All() {
		if n, ok := p.Name(); ok && n == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Close frees the buffer. Only the first call reaches the OS. Closing after
// the parent list or session is fine.
func (l *ProfileList) Close() error {
	if l.raw.free() {
		l.iface.list.session.log.Debug("freed profile list")
	}
	return nil
}

// Profile is a view of one WLAN_PROFILE_INFO inside a ProfileList.
type Profile struct {
	list *ProfileList
	rec  *profileInfo
}

func (p Profile) mustBeLive() {
	if p.list == nil {
		panic("wlan: use of zero Profile")
	}
	p.list.mustBeLive()
}

// Name returns the profile name, or false if the record's name is not
// NUL-terminated.
func (p Profile) Name() (string, bool) {
	p.mustBeLive()
	return utf16String(p.rec.ProfileName[:])
}

// Flags returns the raw flag bits.
func (p Profile) Flags() ProfileFlags {
	p.mustBeLive()
	return ProfileFlags(p.rec.Flags)
}

// IsGroupPolicy reports whether the profile was created by group policy.
// It is independent of IsUser.
func (p Profile) IsGroupPolicy() bool {
	return p.Flags()&ProfileGroupPolicy != 0
}

// IsUser reports whether the profile is a per-user profile.
func (p Profile) IsUser() bool {
	return p.Flags()&ProfileUser != 0
}
