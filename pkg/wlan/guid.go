// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUID has the field layout of the Windows GUID structure. Data1 through
// Data3 are stored in host byte order, Data4 is stored as bytes.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// ParseGUID parses the canonical 8-4-4-4-12 form, with or without braces.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("invalid interface GUID %q: %v", s, err)
	}
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:16])
	return g, nil
}

// uuid returns g in RFC 4122 byte order. The clock sequence and node live
// in Data4 and are already stored most significant byte first, so only the
// three leading fields need swapping.
func (g GUID) uuid() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}

// String renders g as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx in lower case.
func (g GUID) String() string {
	return g.uuid().String()
}

// GUIDRef is a read-only view of a GUID that lives inside a buffer owned by
// someone else. It never copies the identifier unless asked to.
// A view taken from an Interface panics once that interface's list or
// session is closed.
type GUIDRef struct {
	p *GUID
	// live panics if the buffer holding p has been released. Nil for
	// views over caller memory.
	live func()
}

// RefOf returns a view of the GUID at g. The caller keeps g alive for as
// long as the view is used.
func RefOf(g *GUID) GUIDRef {
	return GUIDRef{p: g}
}

func (r GUIDRef) get() *GUID {
	if r.live != nil {
		r.live()
	}
	return r.p
}

// Equal reports whether the viewed GUID equals g.
func (r GUIDRef) Equal(g GUID) bool {
	return *r.get() == g
}

// Value copies the viewed GUID out of the foreign buffer.
func (r GUIDRef) Value() GUID {
	return *r.get()
}

func (r GUIDRef) String() string {
	return r.get().String()
}
