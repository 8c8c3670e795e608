// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"

	"github.com/u-root/winwifi/pkg/config"
	"github.com/u-root/winwifi/pkg/menu"
	"github.com/u-root/winwifi/pkg/wlan"
)

// interfaceEntry is a menu entry for a wireless interface.
type interfaceEntry struct {
	iface wlan.Interface
}

var _ = menu.Entry(&interfaceEntry{})

func (e *interfaceEntry) Label() string {
	desc, ok := e.iface.Description()
	if !ok || desc == "" {
		desc = e.iface.GUID().String()
	}
	return fmt.Sprintf("%s (%s)", desc, e.iface.State())
}

func chooseOnTerminal(title, intro string, entries []menu.Entry) (menu.Entry, error) {
	if err := menu.Init(); err != nil {
		return nil, err
	}
	defer menu.Close()
	return menu.Choose(title, intro, entries, menu.Events())
}

// selectInterfaces returns the interfaces a command acts on: the one named
// by --interface, else the one picked from a menu when pick is set and
// there is a choice to make, else all of them.
func (a *app) selectInterfaces(ifaces *wlan.InterfaceList, pick bool) ([]wlan.Interface, error) {
	want, ok, err := config.Interface(a.v)
	if err != nil {
		return nil, err
	}
	if ok {
		for iface := range ifaces.All() {
			if iface.GUID().Equal(want) {
				return []wlan.Interface{iface}, nil
			}
		}
		return nil, fmt.Errorf("no wireless interface with GUID %v", want)
	}

	all := slices.Collect(ifaces.All())
	if !pick || len(all) < 2 {
		return all, nil
	}
	entries := make([]menu.Entry, 0, len(all))
	for _, iface := range all {
		entries = append(entries, &interfaceEntry{iface: iface})
	}
	e, err := a.choose("Wireless Interfaces", "Choose an interface", entries)
	if err != nil {
		return nil, fmt.Errorf("choosing interface: %w", err)
	}
	ie, ok := e.(*interfaceEntry)
	if !ok {
		return nil, fmt.Errorf("bad menu entry %T", e)
	}
	return []wlan.Interface{ie.iface}, nil
}
