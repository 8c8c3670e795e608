// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/u-root/winwifi/pkg/wlan"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	home = wlan.GUID{Data1: 0x12345678, Data2: 0x1234, Data3: 0x1234, Data4: [8]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}}
	usb  = wlan.GUID{Data1: 0xdeadbeef, Data2: 0xcafe, Data3: 0xf00d, Data4: [8]byte{0xa0, 0xb1, 0xc2, 0xd3, 0xe4, 0xf5, 0x06, 0x17}}
)

const (
	homeGUID = "12345678-1234-1234-1122-334455667788"
	usbGUID  = "deadbeef-cafe-f00d-a0b1-c2d3e4f50617"
)

func newStub() *wlan.StubAPI {
	return wlan.NewStubAPI(
		wlan.StubInterface{
			GUID:        home,
			Description: "Intel(R) Wi-Fi 6 AX201 160MHz",
			State:       wlan.StateConnected,
			Profiles: []wlan.StubProfile{
				{Name: "HomeNet", Flags: wlan.ProfileUser},
				{Name: "CorpNet", Flags: wlan.ProfileGroupPolicy},
			},
		},
		wlan.StubInterface{
			GUID:        usb,
			Description: "TP-Link USB Adapter",
			State:       wlan.StateDisconnected,
			Profiles: []wlan.StubProfile{
				{Name: "CoffeeShop"},
				{Name: "HomeNet", Flags: wlan.ProfileUser},
			},
		},
	)
}

// run executes one winwifi invocation against api and returns what it
// printed.
func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := a.command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func appFor(api wlan.API) *app {
	return newApp(func() wlan.API { return api })
}

// balanced checks that every handle and buffer the stub handed out came
// back.
func balanced(t *testing.T, stub *wlan.StubAPI) {
	t.Helper()
	c := stub.Counts()
	if c.Opens != c.Closes || c.Outstanding() != 0 || c.BadCloses != 0 || c.BadFrees != 0 {
		t.Errorf("stub counts unbalanced: %+v", c)
	}
}
