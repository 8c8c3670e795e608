// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/u-root/winwifi/pkg/wlan"
)

func newInterfaceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interface",
		Aliases: []string{"interfaces", "if"},
		Short:   "Inspect wireless interfaces",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List wireless interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			var recs []interfaceRecord
			err = a.withInterfaces(func(ifaces *wlan.InterfaceList) error {
				recs = make([]interfaceRecord, 0, ifaces.Len())
				for iface := range ifaces.All() {
					recs = append(recs, a.interfaceRecord(iface))
				}
				return nil
			})
			if err != nil {
				return err
			}
			return writeInterfaces(cmd.OutOrStdout(), format, recs)
		},
	})
	return cmd
}
