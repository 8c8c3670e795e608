// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/u-root/winwifi/pkg/wlan"
	"go.uber.org/zap"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manipulate saved WiFi profiles",
	}
	cmd.AddCommand(newProfileListCommand(a), newProfileGetCommand(a), newProfileRemoveCommand(a))
	return cmd
}

// eachProfileList calls fn with the profile list of every selected
// interface, closing each list after fn returns.
func (a *app) eachProfileList(pick bool, fn func(wlan.Interface, *wlan.ProfileList) error) error {
	return a.withInterfaces(func(ifaces *wlan.InterfaceList) error {
		selected, err := a.selectInterfaces(ifaces, pick)
		if err != nil {
			return err
		}
		for _, iface := range selected {
			profiles, err := iface.Profiles()
			if err != nil {
				return fmt.Errorf("listing profiles of %v: %w", iface.GUID(), err)
			}
			err = fn(iface, profiles)
			profiles.Close()
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func newProfileListCommand(a *app) *cobra.Command {
	var pick bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved WiFi profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			recs := []profileRecord{}
			err = a.eachProfileList(pick, func(iface wlan.Interface, profiles *wlan.ProfileList) error {
				for p := range profiles.All() {
					recs = append(recs, a.profileRecord(iface, p))
				}
				return nil
			})
			if err != nil {
				return err
			}
			return writeProfiles(cmd.OutOrStdout(), format, recs)
		},
	}
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the interface from a menu")
	return cmd
}

func newProfileGetCommand(a *app) *cobra.Command {
	var (
		name string
		pick bool
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get information about a saved WiFi profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			var (
				rec   profileRecord
				found bool
			)
			err = a.eachProfileList(pick, func(iface wlan.Interface, profiles *wlan.ProfileList) error {
				if found {
					return nil
				}
				if p, ok := profiles.Lookup(name); ok {
					rec, found = a.profileRecord(iface, p), true
				}
				return nil
			})
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no saved profile named %q", name)
			}
			return writeProfile(cmd.OutOrStdout(), format, rec)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the WiFi profile to display")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the interface from a menu")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newProfileRemoveCommand(a *app) *cobra.Command {
	var (
		name string
		pick bool
	)
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a saved WiFi profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed := 0
			err := a.eachProfileList(pick, func(iface wlan.Interface, profiles *wlan.ProfileList) error {
				if _, ok := profiles.Lookup(name); !ok {
					return nil
				}
				if err := iface.DeleteProfile(name); err != nil {
					return fmt.Errorf("removing profile %q from %v: %w", name, iface.GUID(), err)
				}
				a.log.Info("removed profile", zap.String("profile", name), zap.Stringer("interface", iface.GUID()))
				fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %q from interface %v\n", name, iface.GUID())
				removed++
				return nil
			})
			if err != nil {
				return err
			}
			if removed == 0 {
				return fmt.Errorf("no saved profile named %q", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the WiFi profile to remove")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the interface from a menu")
	cmd.MarkFlagRequired("name")
	return cmd
}
