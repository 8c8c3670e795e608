// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/u-root/winwifi/pkg/menu"
	"github.com/u-root/winwifi/pkg/wlan"
	"gopkg.in/yaml.v3"
)

func TestProfileList(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		want []profileRecord
	}{
		{
			name: "all interfaces",
			want: []profileRecord{
				{Interface: homeGUID, Name: "HomeNet", User: true},
				{Interface: homeGUID, Name: "CorpNet", GroupPolicy: true},
				{Interface: usbGUID, Name: "CoffeeShop"},
				{Interface: usbGUID, Name: "HomeNet", User: true},
			},
		},
		{
			name: "one interface",
			args: []string{"--interface", usbGUID},
			want: []profileRecord{
				{Interface: usbGUID, Name: "CoffeeShop"},
				{Interface: usbGUID, Name: "HomeNet", User: true},
			},
		},
		{
			name: "braced upper case GUID",
			args: []string{"--interface", "{" + strings.ToUpper(homeGUID) + "}"},
			want: []profileRecord{
				{Interface: homeGUID, Name: "HomeNet", User: true},
				{Interface: homeGUID, Name: "CorpNet", GroupPolicy: true},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			args := append([]string{"profile", "list", "-o", "json"}, tt.args...)
			out, err := run(t, appFor(stub), args...)
			require.NoError(t, err)
			balanced(t, stub)

			var got []profileRecord
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("profiles (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProfileListText(t *testing.T) {
	stub := newStub()
	out, err := run(t, appFor(stub), "profile", "list")
	require.NoError(t, err)
	balanced(t, stub)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for i, want := range [][]string{
		{"INTERFACE", "NAME", "SCOPE"},
		{homeGUID, "HomeNet", "user"},
		{homeGUID, "CorpNet", "group-policy"},
		{usbGUID, "CoffeeShop", "all-users"},
		{usbGUID, "HomeNet", "user"},
	} {
		require.Equal(t, want, strings.Fields(lines[i]))
	}
}

func TestProfileListNoProfiles(t *testing.T) {
	stub := wlan.NewStubAPI(wlan.StubInterface{GUID: home})
	out, err := run(t, appFor(stub), "profile", "list", "-o", "yaml")
	require.NoError(t, err)
	balanced(t, stub)
	require.Equal(t, "[]\n", out)
}

func TestProfileListUnknownInterface(t *testing.T) {
	stub := newStub()
	_, err := run(t, appFor(stub), "profile", "list", "--interface", "00000000-0000-0000-0000-000000000001")
	require.ErrorContains(t, err, "no wireless interface with GUID 00000000-0000-0000-0000-000000000001")
	balanced(t, stub)
}

func TestProfileListBadGUID(t *testing.T) {
	stub := newStub()
	_, err := run(t, appFor(stub), "profile", "list", "--interface", "not-a-guid")
	require.Error(t, err)
	balanced(t, stub)
}

func TestProfileListFailure(t *testing.T) {
	stub := newStub()
	stub.Fail = map[string]uint32{wlan.OpGetProfileList: wlan.ErrorAccessDenied}
	_, err := run(t, appFor(stub), "profile", "list")
	require.ErrorIs(t, err, wlan.ErrAccessDenied)
	require.ErrorContains(t, err, "listing profiles of "+homeGUID)
	balanced(t, stub)
}

func TestProfilePick(t *testing.T) {
	stub := newStub()
	a := appFor(stub)
	var labels []string
	a.choose = func(title, intro string, entries []menu.Entry) (menu.Entry, error) {
		for _, e := range entries {
			labels = append(labels, e.Label())
		}
		return entries[1], nil
	}
	out, err := run(t, a, "profile", "list", "--pick", "-o", "yaml")
	require.NoError(t, err)
	balanced(t, stub)

	require.Equal(t, []string{
		"Intel(R) Wi-Fi 6 AX201 160MHz (connected)",
		"TP-Link USB Adapter (disconnected)",
	}, labels)
	var got []profileRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, []profileRecord{
		{Interface: usbGUID, Name: "CoffeeShop"},
		{Interface: usbGUID, Name: "HomeNet", User: true},
	}, got)
}

func TestProfilePickSingleInterface(t *testing.T) {
	stub := wlan.NewStubAPI(wlan.StubInterface{
		GUID:     home,
		Profiles: []wlan.StubProfile{{Name: "HomeNet"}},
	})
	a := appFor(stub)
	a.choose = func(string, string, []menu.Entry) (menu.Entry, error) {
		t.Fatal("menu shown with a single interface")
		return nil, nil
	}
	out, err := run(t, a, "profile", "list", "--pick")
	require.NoError(t, err)
	require.Contains(t, out, "HomeNet")
}

func TestProfilePickGiveUp(t *testing.T) {
	stub := newStub()
	a := appFor(stub)
	a.choose = func(string, string, []menu.Entry) (menu.Entry, error) {
		return nil, io.EOF
	}
	_, err := run(t, a, "profile", "list", "--pick")
	require.ErrorIs(t, err, io.EOF)
	balanced(t, stub)
}

func TestProfileGet(t *testing.T) {
	stub := newStub()
	out, err := run(t, appFor(stub), "profile", "get", "--name", "CorpNet", "-o", "json")
	require.NoError(t, err)
	balanced(t, stub)

	var got profileRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, profileRecord{Interface: homeGUID, Name: "CorpNet", GroupPolicy: true}, got)
}

func TestProfileGetText(t *testing.T) {
	stub := newStub()
	out, err := run(t, appFor(stub), "profile", "get", "-n", "CoffeeShop")
	require.NoError(t, err)
	require.Contains(t, out, "CoffeeShop")
	require.Contains(t, out, usbGUID)
}

func TestProfileGetFirstMatch(t *testing.T) {
	stub := newStub()
	out, err := run(t, appFor(stub), "profile", "get", "--name", "HomeNet", "--interface", usbGUID, "-o", "json")
	require.NoError(t, err)
	var got profileRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, usbGUID, got.Interface)
}

func TestProfileGetMissing(t *testing.T) {
	stub := newStub()
	_, err := run(t, appFor(stub), "profile", "get", "--name", "Nowhere")
	require.EqualError(t, err, `no saved profile named "Nowhere"`)
	balanced(t, stub)
}

func TestProfileGetNameRequired(t *testing.T) {
	stub := newStub()
	_, err := run(t, appFor(stub), "profile", "get")
	require.ErrorContains(t, err, `"name" not set`)
	require.Zero(t, stub.Counts().Opens)
}

func TestProfileRemove(t *testing.T) {
	stub := newStub()
	out, err := run(t, appFor(stub), "profile", "remove", "--name", "HomeNet")
	require.NoError(t, err)
	balanced(t, stub)

	require.Equal(t,
		`Removed profile "HomeNet" from interface `+homeGUID+"\n"+
			`Removed profile "HomeNet" from interface `+usbGUID+"\n", out)
	for _, si := range stub.Interfaces {
		for _, p := range si.Profiles {
			require.NotEqual(t, "HomeNet", p.Name)
		}
	}
}

func TestProfileRemoveOneInterface(t *testing.T) {
	stub := newStub()
	_, err := run(t, appFor(stub), "profile", "remove", "--name", "HomeNet", "--interface", usbGUID)
	require.NoError(t, err)
	balanced(t, stub)
	require.Equal(t, []wlan.StubProfile{
		{Name: "HomeNet", Flags: wlan.ProfileUser},
		{Name: "CorpNet", Flags: wlan.ProfileGroupPolicy},
	}, stub.Interfaces[0].Profiles)
	require.Equal(t, []wlan.StubProfile{{Name: "CoffeeShop"}}, stub.Interfaces[1].Profiles)
}

func TestProfileRemoveMissing(t *testing.T) {
	stub := newStub()
	_, err := run(t, appFor(stub), "profile", "remove", "--name", "Nowhere")
	require.EqualError(t, err, `no saved profile named "Nowhere"`)
	balanced(t, stub)
}

func TestProfileRemoveFailure(t *testing.T) {
	stub := newStub()
	stub.Fail = map[string]uint32{wlan.OpDeleteProfile: wlan.ErrorAccessDenied}
	_, err := run(t, appFor(stub), "profile", "remove", "--name", "CorpNet")
	require.ErrorIs(t, err, wlan.ErrAccessDenied)
	var oe *wlan.OSCallError
	require.True(t, errors.As(err, &oe))
	require.Equal(t, wlan.OpDeleteProfile, oe.Op)
	balanced(t, stub)
}
