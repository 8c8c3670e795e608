// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/u-root/winwifi/pkg/config"
	"github.com/u-root/winwifi/pkg/menu"
	"github.com/u-root/winwifi/pkg/wlan"
	"go.uber.org/zap"
)

// app is the state shared by all commands of one invocation.
type app struct {
	newAPI  func() wlan.API
	v       *viper.Viper
	log     *zap.Logger
	cfgFile string

	// choose asks the user to pick one of entries.
	choose func(title, intro string, entries []menu.Entry) (menu.Entry, error)
}

func newApp(newAPI func() wlan.API) *app {
	return &app{
		newAPI: newAPI,
		v:      config.New(),
		log:    zap.NewNop(),
		choose: chooseOnTerminal,
	}
}

func newRootCommand(newAPI func() wlan.API) *cobra.Command {
	return newApp(newAPI).command()
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "winwifi",
		Short:         "winwifi inspects the Windows WLAN service",
		Long:          "winwifi lists wireless interfaces and the WiFi profiles saved for them,\nusing the Windows Native Wifi API.",
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	root.SetVersionTemplate("winwifi version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file path")
	pf.Uint32("api-version", uint32(wlan.DefaultVersion), "WLAN client API version to negotiate (1 or 2)")
	pf.StringP("output", "o", config.FormatText, "output format (text, json, yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("interface", "", "GUID of the interface to use")

	root.AddCommand(newInterfaceCommand(a), newProfileCommand(a), newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the winwifi version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "winwifi version %s\n", buildVersion)
		},
	}
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"api-version": config.KeyAPIVersion,
	"output":      config.KeyOutputFormat,
	"log-level":   config.KeyLogLevel,
	"log-format":  config.KeyLogFormat,
	"interface":   config.KeyInterfaceGUID,
}

func (a *app) setup(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	log, err := config.NewLogger(a.v)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// withInterfaces opens a session, enumerates interfaces and hands them to
// fn. Everything is released before it returns.
func (a *app) withInterfaces(fn func(*wlan.InterfaceList) error) error {
	ver, err := config.APIVersion(a.v)
	if err != nil {
		return err
	}
	s, err := wlan.Open(a.newAPI(), wlan.WithVersion(ver), wlan.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("opening WLAN session: %w", err)
	}
	defer s.Close()

	ifaces, err := s.Interfaces()
	if err != nil {
		return fmt.Errorf("enumerating interfaces: %w", err)
	}
	defer ifaces.Close()

	return fn(ifaces)
}

func (a *app) outputFormat() (string, error) {
	return config.OutputFormat(a.v)
}
