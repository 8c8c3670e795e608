// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import (
	"sync"
	"unicode/utf16"
	"unsafe"
)

var _ = API(&StubAPI{})

// StubInterface describes one interface served by StubAPI.
type StubInterface struct {
	GUID        GUID
	Description string
	// RawDescription, if set, is copied into the record verbatim instead of
	// Description, without adding a terminator.
	RawDescription []uint16
	State          State
	Profiles       []StubProfile
}

// StubProfile describes one saved profile served by StubAPI.
type StubProfile struct {
	Name string
	// RawName, if set, is copied verbatim instead of Name.
	RawName []uint16
	Flags   ProfileFlags
}

// StubCounts is a snapshot of what a StubAPI has handed out and taken back.
type StubCounts struct {
	Opens     int
	Closes    int
	BadCloses int
	Allocs    int
	Frees     int
	BadFrees  int
}

// Outstanding is the number of buffers handed out and not yet freed.
func (c StubCounts) Outstanding() int {
	return c.Allocs - c.Frees
}

// StubAPI implements API in memory. Buffers have the same layout as the
// ones wlanapi.dll returns, so everything above the API boundary runs
// unchanged. It counts every acquire and release, and poisons freed buffers.
type StubAPI struct {
	// Negotiated, when non-zero, is reported instead of the requested version.
	Negotiated uint32
	Interfaces []StubInterface
	// Fail maps an Op* name to the status code that call should return.
	Fail map[string]uint32

	mu      sync.Mutex
	next    Handle
	handles map[Handle]bool
	live    map[unsafe.Pointer][]uint64
	counts  StubCounts
}

// NewStubAPI returns a StubAPI serving ifaces.
func NewStubAPI(ifaces ...StubInterface) *StubAPI {
	return &StubAPI{Interfaces: ifaces}
}

// Counts returns a snapshot of the counters.
func (s *StubAPI) Counts() StubCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

func (s *StubAPI) fail(op string) uint32 {
	return s.Fail[op]
}

func (s *StubAPI) OpenHandle(version uint32) (Handle, uint32, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code := s.fail(OpOpenHandle); code != ErrorSuccess {
		return invalidHandle, 0, code
	}
	if !Version(version).Valid() {
		return invalidHandle, 0, ErrorInvalidParameter
	}
	if s.handles == nil {
		s.handles = make(map[Handle]bool)
	}
	s.next++
	s.handles[s.next] = true
	s.counts.Opens++
	negotiated := version
	if s.Negotiated != 0 {
		negotiated = s.Negotiated
	}
	return s.next, negotiated, ErrorSuccess
}

func (s *StubAPI) CloseHandle(h Handle) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.handles[h] {
		s.counts.BadCloses++
		return ErrorInvalidHandle
	}
	delete(s.handles, h)
	s.counts.Closes++
	return s.fail(OpCloseHandle)
}

func (s *StubAPI) EnumInterfaces(h Handle) (unsafe.Pointer, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.handles[h] {
		return nil, ErrorInvalidHandle
	}
	if code := s.fail(OpEnumInterfaces); code != ErrorSuccess {
		return nil, code
	}

	n := len(s.Interfaces)
	p := s.alloc(listSize[interfaceInfo](interfaceRecordsOffset, n))
	(*listHeader)(p).NumberOfItems = uint32(n)
	recs := unsafe.Slice((*interfaceInfo)(unsafe.Add(p, interfaceRecordsOffset)), n)
	for i, si := range s.Interfaces {
		recs[i].InterfaceGUID = si.GUID
		fillName(recs[i].InterfaceDescription[:], si.Description, si.RawDescription)
		recs[i].State = uint32(si.State)
	}
	return p, ErrorSuccess
}

func (s *StubAPI) GetProfileList(h Handle, iface *GUID) (unsafe.Pointer, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.handles[h] {
		return nil, ErrorInvalidHandle
	}
	if code := s.fail(OpGetProfileList); code != ErrorSuccess {
		return nil, code
	}
	si := s.find(*iface)
	if si == nil {
		return nil, ErrorNotFound
	}

	n := len(si.Profiles)
	p := s.alloc(listSize[profileInfo](profileRecordsOffset, n))
	(*listHeader)(p).NumberOfItems = uint32(n)
	recs := unsafe.Slice((*profileInfo)(unsafe.Add(p, profileRecordsOffset)), n)
	for i, sp := range si.Profiles {
		fillName(recs[i].ProfileName[:], sp.Name, sp.RawName)
		recs[i].Flags = uint32(sp.Flags)
	}
	return p, ErrorSuccess
}

func (s *StubAPI) DeleteProfile(h Handle, iface *GUID, name string) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.handles[h] {
		return ErrorInvalidHandle
	}
	if code := s.fail(OpDeleteProfile); code != ErrorSuccess {
		return code
	}
	si := s.find(*iface)
	if si == nil {
		return ErrorNotFound
	}
	for i, sp := range si.Profiles {
		if sp.Name == name {
			si.Profiles = append(si.Profiles[:i:i], si.Profiles[i+1:]...)
			return ErrorSuccess
		}
	}
	return ErrorNotFound
}

func (s *StubAPI) FreeMemory(p unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	words, ok := s.live[p]
	if !ok {
		s.counts.BadFrees++
		return
	}
	for i := range words {
		words[i] = 0xdeadbeefdeadbeef
	}
	delete(s.live, p)
	s.counts.Frees++
}

func (s *StubAPI) find(g GUID) *StubInterface {
	for i := range s.Interfaces {
		if s.Interfaces[i].GUID == g {
			return &s.Interfaces[i]
		}
	}
	return nil
}

// alloc returns size zeroed bytes, 8-byte aligned, kept reachable until
// FreeMemory.
func (s *StubAPI) alloc(size uintptr) unsafe.Pointer {
	if s.live == nil {
		s.live = make(map[unsafe.Pointer][]uint64)
	}
	words := make([]uint64, (size+7)/8)
	p := unsafe.Pointer(&words[0])
	s.live[p] = words
	s.counts.Allocs++
	return p
}

// fillName copies raw verbatim if set, else name as UTF-16 truncated to
// leave room for the terminator. The rest of dst stays zero.
func fillName(dst []uint16, name string, raw []uint16) {
	if raw != nil {
		copy(dst, raw)
		return
	}
	enc := utf16.Encode([]rune(name))
	copy(dst[:len(dst)-1], enc)
}
