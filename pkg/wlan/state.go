// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wlan

import "fmt"

// State is WLAN_INTERFACE_STATE.
type State uint32

const (
	StateNotReady State = iota
	StateConnected
	StateAdHocNetworkFormed
	StateDisconnecting
	StateDisconnected
	StateAssociating
	StateDiscovering
	StateAuthenticating
)

var stateNames = [...]string{
	StateNotReady:           "not ready",
	StateConnected:          "connected",
	StateAdHocNetworkFormed: "ad hoc network formed",
	StateDisconnecting:      "disconnecting",
	StateDisconnected:       "disconnected",
	StateAssociating:        "associating",
	StateDiscovering:        "discovering",
	StateAuthenticating:     "authenticating",
}

// stateOf converts the wire value. The API documents exactly these eight
// states; anything else means the OS broke its contract.
func stateOf(v uint32) State {
	if v >= uint32(len(stateNames)) {
		panic(fmt.Sprintf("wlan: interface state %d is not a WLAN_INTERFACE_STATE", v))
	}
	return State(v)
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}
