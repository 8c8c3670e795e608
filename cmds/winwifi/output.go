// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/u-root/winwifi/pkg/config"
	"github.com/u-root/winwifi/pkg/wlan"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type interfaceRecord struct {
	GUID        string `json:"guid" yaml:"guid"`
	Description string `json:"description" yaml:"description"`
	State       string `json:"state" yaml:"state"`
}

type profileRecord struct {
	Interface   string `json:"interface" yaml:"interface"`
	Name        string `json:"name" yaml:"name"`
	GroupPolicy bool   `json:"group_policy" yaml:"group_policy"`
	User        bool   `json:"user" yaml:"user"`
}

// The records copy everything out of the OS buffers, so they stay valid
// after the lists are closed.

func (a *app) interfaceRecord(iface wlan.Interface) interfaceRecord {
	desc, ok := iface.Description()
	if !ok {
		a.log.Warn("interface description is not terminated", zap.Stringer("interface", iface.GUID()))
	}
	return interfaceRecord{
		GUID:        iface.GUID().String(),
		Description: desc,
		State:       iface.State().String(),
	}
}

func (a *app) profileRecord(iface wlan.Interface, p wlan.Profile) profileRecord {
	name, ok := p.Name()
	if !ok {
		a.log.Warn("profile name is not terminated", zap.Stringer("interface", iface.GUID()))
	}
	return profileRecord{
		Interface:   iface.GUID().String(),
		Name:        name,
		GroupPolicy: p.IsGroupPolicy(),
		User:        p.IsUser(),
	}
}

func scope(r profileRecord) string {
	var f wlan.ProfileFlags
	if r.GroupPolicy {
		f |= wlan.ProfileGroupPolicy
	}
	if r.User {
		f |= wlan.ProfileUser
	}
	return f.String()
}

// write encodes v in the given format. Text output is produced by text on a
// tabwriter.
func write(w io.Writer, format string, v any, text func(w io.Writer)) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText:
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		text(tw)
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeInterfaces(w io.Writer, format string, recs []interfaceRecord) error {
	return write(w, format, recs, func(w io.Writer) {
		fmt.Fprintln(w, "GUID\tSTATE\tDESCRIPTION")
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.GUID, r.State, r.Description)
		}
	})
}

func writeProfiles(w io.Writer, format string, recs []profileRecord) error {
	return write(w, format, recs, func(w io.Writer) {
		fmt.Fprintln(w, "INTERFACE\tNAME\tSCOPE")
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Interface, r.Name, scope(r))
		}
	})
}

func writeProfile(w io.Writer, format string, r profileRecord) error {
	return write(w, format, r, func(w io.Writer) {
		fmt.Fprintf(w, "Name:\t%s\n", r.Name)
		fmt.Fprintf(w, "Interface:\t%s\n", r.Interface)
		fmt.Fprintf(w, "Group policy:\t%v\n", r.GroupPolicy)
		fmt.Fprintf(w, "User:\t%v\n", r.User)
	})
}
