// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Session owns one WLAN client handle. It is the root of every list and view
// obtained through it.
type Session struct {
	api        API
	handle     Handle
	version    Version
	negotiated uint32
	log        *zap.Logger
	closed     atomic.Bool
}

// Option configures Open.
type Option func(*Session)

// WithVersion requests a client version other than DefaultVersion.
func WithVersion(v Version) Option {
	return func(s *Session) {
		s.version = v
	}
}

// WithLogger sets the logger used for debug records of OS calls.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Open negotiates a client version with the WLAN service and returns a
// session holding the resulting handle. The caller must Close it.
func Open(api API, opts ...Option) (*Session, error) {
	s := &Session{
		api:     api,
		handle:  invalidHandle,
		version: DefaultVersion,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	h, negotiated, code := api.OpenHandle(uint32(s.version))
	if err := check(OpOpenHandle, code); err != nil {
		s.log.Debug("open wlan handle failed", zap.Stringer("version", s.version), zap.Uint32("code", code))
		return nil, err
	}
	s.handle = h
	s.negotiated = negotiated
	s.log.Debug("opened wlan handle",
		zap.Stringer("version", s.version),
		zap.Uint32("negotiated", negotiated))
	return s, nil
}

// Version returns the client version that was requested.
func (s *Session) Version() Version {
	return s.version
}

// NegotiatedVersion returns the version the service agreed to.
func (s *Session) NegotiatedVersion() Version {
	return Version(s.negotiated)
}

// Interfaces enumerates the wireless interfaces visible to the session.
func (s *Session) Interfaces() (*InterfaceList, error) {
	return EnumInterfaces(s)
}

// Close releases the handle. Only the first call reaches the OS; lists and
// views derived from s panic if used afterwards.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.handle == invalidHandle {
		return nil
	}
	code := s.api.CloseHandle(s.handle)
	s.log.Debug("closed wlan handle", zap.Uint32("code", code))
	return check(OpCloseHandle, code)
}

func (s *Session) mustBeOpen() {
	if s.closed.Load() {
		panic("wlan: use of closed session")
	}
}
